package api

import (
	"log"
	"net/http"

	_ "backend/docs"
	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/gateway"
	"backend/internal/app/handler"
	"backend/internal/app/repository"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newRepository выбирает хранилище по конфигурации
func newRepository(cfg *config.Config) (repository.Repository, error) {
	if cfg.Storage.Mode == config.StoragePostgres {
		return repository.NewPostgres(dsn.FromEnv())
	}
	return repository.NewMemory()
}

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	// MinIO опционален: без него недоступна только загрузка пакетов обновлений
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logrus.Warnf("MinIO недоступен, загрузка пакетов отключена: %v", err)
			minioClient = nil
		}
	}

	h := handler.NewAPIHandler(repo, minioClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	gw := gateway.New(cfg)
	gw.RegisterRoutes(r, h)

	r.GET("/ping", h.Ping)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	app := pkg.NewApp(cfg, r)
	app.RunApp()

	log.Println("Server down")
}
