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

// checkClientPartner проверяет, что партнёр из запроса существует
func (h *APIHandler) checkClientPartner(ctx *gin.Context, partnerID uint) bool {
	if _, err := h.Repository.GetPartnerByID(partnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fieldErrorResponse(ctx, "Invalid client data", "partner_id", "referenced partner does not exist")
			return false
		}
		logrus.Errorf("failed to check partner %d: %v", partnerID, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save client")
		return false
	}
	return true
}

// GetClients возвращает список всех клиентов
// @Summary Список клиентов
// @Tags Clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/clients/ [get]
func (h *APIHandler) GetClients(ctx *gin.Context) {
	clients, err := h.Repository.GetAllClients()
	if err != nil {
		logrus.Errorf("failed to get clients: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get clients")
		return
	}

	responses := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, dto.NewClientResponse(&clients[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetClient возвращает клиента по ID
// @Summary Получить клиента
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/clients/{id} [get]
func (h *APIHandler) GetClient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	client, err := h.Repository.GetClientByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Client not found")
			return
		}
		logrus.Errorf("failed to get client %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get client")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewClientResponse(client))
}

// CreateClient создает нового клиента партнёра
// @Summary Создать клиента
// @Description Создает клиента; partner_id должен ссылаться на существующего партнёра
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/clients/ [post]
func (h *APIHandler) CreateClient(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid client data", err)
		return
	}

	if !h.checkClientPartner(ctx, req.PartnerID) {
		return
	}

	client := ds.Client{
		PartnerID: req.PartnerID,
		Name:      req.Name,
		INN:       req.INN,
		Type:      req.Type,
	}

	if err := h.Repository.CreateClient(&client); err != nil {
		logrus.Errorf("failed to create client: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create client")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewClientResponse(&client))
}

// UpdateClient обновляет данные клиента
// @Summary Обновить клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "ID клиента"
// @Param client body dto.UpdateClientRequest true "Изменяемые поля"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/clients/{id} [put]
func (h *APIHandler) UpdateClient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid client data", err)
		return
	}

	if req.PartnerID != nil && !h.checkClientPartner(ctx, *req.PartnerID) {
		return
	}

	client, err := h.Repository.UpdateClient(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Client not found")
			return
		}
		logrus.Errorf("failed to update client %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update client")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewClientResponse(client))
}

// DeleteClient удаляет клиента
// @Summary Удалить клиента
// @Tags Clients
// @Param id path int true "ID клиента"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/clients/{id} [delete]
func (h *APIHandler) DeleteClient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.Repository.DeleteClient(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Client not found")
			return
		}
		logrus.Errorf("failed to delete client %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	ctx.Status(http.StatusNoContent)
}
