package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// checkUserRefs проверяет необязательные ссылки пользователя на партнёра и клиента
func (h *APIHandler) checkUserRefs(ctx *gin.Context, partnerID, clientID *uint) bool {
	if partnerID != nil {
		if _, err := h.Repository.GetPartnerByID(*partnerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				h.fieldErrorResponse(ctx, "Invalid user data", "partner_id", "referenced partner does not exist")
				return false
			}
			logrus.Errorf("failed to check partner %d: %v", *partnerID, err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save user")
			return false
		}
	}
	if clientID != nil {
		if _, err := h.Repository.GetClientByID(*clientID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				h.fieldErrorResponse(ctx, "Invalid user data", "client_id", "referenced client does not exist")
				return false
			}
			logrus.Errorf("failed to check client %d: %v", *clientID, err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save user")
			return false
		}
	}
	return true
}

// GetUsers возвращает список всех пользователей
// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/users/ [get]
func (h *APIHandler) GetUsers(ctx *gin.Context) {
	users, err := h.Repository.GetAllUsers()
	if err != nil {
		logrus.Errorf("failed to get users: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get users")
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetUser возвращает пользователя по ID
// @Summary Получить пользователя
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *APIHandler) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		logrus.Errorf("failed to get user %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get user")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser создает нового пользователя консоли
// @Summary Создать пользователя
// @Description Создает пользователя; email должен быть уникален, пароль хранится хешем
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/users/ [post]
func (h *APIHandler) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid user data", err)
		return
	}

	if !h.checkUserRefs(ctx, req.PartnerID, req.ClientID) {
		return
	}

	if req.Status == "" {
		req.Status = ds.UserStatusCreated
	}
	if req.Role == "" {
		req.Role = ds.UserRoleUser
	}

	user := ds.User{
		Email:     req.Email,
		Password:  generateHashString(req.Password),
		FullName:  req.FullName,
		Status:    req.Status,
		Role:      req.Role,
		PartnerID: req.PartnerID,
		ClientID:  req.ClientID,
	}

	if err := h.Repository.CreateUser(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid user data", "email", "email already exists")
			return
		}
		logrus.Errorf("failed to create user: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create user")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUserResponse(&user))
}

// UpdateUser обновляет данные пользователя
// @Summary Обновить пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param user body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *APIHandler) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid user data", err)
		return
	}

	if !h.checkUserRefs(ctx, req.PartnerID, req.ClientID) {
		return
	}

	if req.Password != nil {
		hashed := generateHashString(*req.Password)
		req.Password = &hashed
	}

	user, err := h.Repository.UpdateUser(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid user data", "email", "email already exists")
			return
		}
		logrus.Errorf("failed to update user %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update user")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser удаляет пользователя
// @Summary Удалить пользователя
// @Tags Users
// @Param id path int true "ID пользователя"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *APIHandler) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.Repository.DeleteUser(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		logrus.Errorf("failed to delete user %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	ctx.Status(http.StatusNoContent)
}
