package pkg

import (
	"fmt"
	"math/rand"
	"net"

	"backend/internal/app/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config *config.Config
	Router *gin.Engine
}

func NewApp(c *config.Config, r *gin.Engine) *Application {
	return &Application{
		Config: c,
		Router: r,
	}
}

// RunApp поднимает HTTP-сервер. Если настроенный порт занят, перебираем
// до десяти случайных портов в диапазоне 3000-5000
func (a *Application) RunApp() {
	logrus.Info("Server start up")

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logrus.Warnf("port %d is busy: %v", a.Config.ServicePort, err)
		for i := 0; i < 10; i++ {
			port := 3000 + rand.Intn(2001)
			addr = fmt.Sprintf("%s:%d", a.Config.ServiceHost, port)
			if ln, err = net.Listen("tcp", addr); err == nil {
				break
			}
		}
	}
	if ln == nil {
		logrus.Fatalf("failed to find a free port: %v", err)
	}

	logrus.Infof("Starting server on %s", addr)
	if err := a.Router.RunListener(ln); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
