package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetPartners возвращает список всех партнёров
// @Summary Список партнёров
// @Description Возвращает всех партнёров консоли
// @Tags Partners
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/partners/ [get]
func (h *APIHandler) GetPartners(ctx *gin.Context) {
	partners, err := h.Repository.GetAllPartners()
	if err != nil {
		logrus.Errorf("failed to get partners: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get partners")
		return
	}

	responses := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		responses = append(responses, dto.NewPartnerResponse(&partners[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetPartner возвращает партнёра по ID
// @Summary Получить партнёра
// @Tags Partners
// @Produce json
// @Param id path int true "ID партнёра"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/partners/{id} [get]
func (h *APIHandler) GetPartner(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	partner, err := h.Repository.GetPartnerByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.Errorf("failed to get partner %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get partner")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPartnerResponse(partner))
}

// CreatePartner создает нового партнёра
// @Summary Создать партнёра
// @Description Создает партнёра; если api_token не передан, выпускает его автоматически
// @Tags Partners
// @Accept json
// @Produce json
// @Param partner body dto.CreatePartnerRequest true "Данные партнёра"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/partners/ [post]
func (h *APIHandler) CreatePartner(ctx *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid partner data", err)
		return
	}

	if req.Status == "" {
		req.Status = ds.PartnerStatusActive
	}
	if req.APIToken == "" {
		apiToken, err := token.IssuePartnerToken(&h.Config.JWT, req.Name)
		if err != nil {
			logrus.Errorf("failed to issue partner token: %v", err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create partner")
			return
		}
		req.APIToken = apiToken
	}

	partner := ds.Partner{
		Name:     req.Name,
		INN:      req.INN,
		KPP:      req.KPP,
		OGRN:     req.OGRN,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		APIToken: req.APIToken,
		Type:     req.Type,
		Status:   req.Status,
	}

	if err := h.Repository.CreatePartner(&partner); err != nil {
		logrus.Errorf("failed to create partner: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create partner")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewPartnerResponse(&partner))
}

// UpdatePartner обновляет данные партнёра
// @Summary Обновить партнёра
// @Description Частичное обновление: пустые поля не изменяются
// @Tags Partners
// @Accept json
// @Produce json
// @Param id path int true "ID партнёра"
// @Param partner body dto.UpdatePartnerRequest true "Изменяемые поля"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/partners/{id} [put]
func (h *APIHandler) UpdatePartner(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid partner data", err)
		return
	}

	partner, err := h.Repository.UpdatePartner(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.Errorf("failed to update partner %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update partner")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPartnerResponse(partner))
}

// DeletePartner удаляет партнёра
// @Summary Удалить партнёра
// @Tags Partners
// @Param id path int true "ID партнёра"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/partners/{id} [delete]
func (h *APIHandler) DeletePartner(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.Repository.DeletePartner(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Partner not found")
			return
		}
		logrus.Errorf("failed to delete partner %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete partner")
		return
	}

	ctx.Status(http.StatusNoContent)
}
