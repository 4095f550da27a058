package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"backend/internal/app/config"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// APIHandler содержит обработчики REST API для шести семейств ресурсов
type APIHandler struct {
	Repository  repository.Repository
	MinIOClient *storage.MinIOClient
	Config      *config.Config
}

func NewAPIHandler(r repository.Repository, minioClient *storage.MinIOClient, cfg *config.Config) *APIHandler {
	registerTagNameFunc()
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		Config:      cfg,
	}
}

// В полевых ошибках валидации отдаём имена полей из json-тегов, а не из Go
func registerTagNameFunc() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("json")
			for i := 0; i < len(name); i++ {
				if name[i] == ',' {
					name = name[:i]
					break
				}
			}
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// generateHashString генерирует SHA-1 хеш из строки
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// parseID разбирает path-параметр id; вторым значением — успех
func parseID(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ============ Вспомогательные ответы ============

func (h *APIHandler) errorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// validationResponse преобразует ошибку binding в список полевых ошибок
func (h *APIHandler) validationResponse(ctx *gin.Context, message string, err error) {
	fieldErrors := []dto.FieldError{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, dto.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	} else {
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "body", Message: err.Error()})
	}

	ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
		Message: message,
		Errors:  fieldErrors,
	})
}

// fieldErrorResponse — одиночная полевая ошибка (FK, уникальность)
func (h *APIHandler) fieldErrorResponse(ctx *gin.Context, message, field, detail string) {
	ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
		Message: message,
		Errors:  []dto.FieldError{{Field: field, Message: detail}},
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "invalid value"
	}
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} dto.PingResponse
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
}
