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

// checkLicenseClient проверяет, что клиент из запроса существует
func (h *APIHandler) checkLicenseClient(ctx *gin.Context, clientID uint) bool {
	if _, err := h.Repository.GetClientByID(clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fieldErrorResponse(ctx, "Invalid license data", "client_id", "referenced client does not exist")
			return false
		}
		logrus.Errorf("failed to check client %d: %v", clientID, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save license")
		return false
	}
	return true
}

// GetLicenses возвращает список всех лицензий
// @Summary Список лицензий
// @Tags Licenses
// @Produce json
// @Success 200 {array} dto.LicenseResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/licenses/ [get]
func (h *APIHandler) GetLicenses(ctx *gin.Context) {
	licenses, err := h.Repository.GetAllLicenses()
	if err != nil {
		logrus.Errorf("failed to get licenses: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get licenses")
		return
	}

	responses := make([]dto.LicenseResponse, 0, len(licenses))
	for i := range licenses {
		responses = append(responses, dto.NewLicenseResponse(&licenses[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetLicense возвращает лицензию по ID
// @Summary Получить лицензию
// @Tags Licenses
// @Produce json
// @Param id path int true "ID лицензии"
// @Success 200 {object} dto.LicenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/licenses/{id} [get]
func (h *APIHandler) GetLicense(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	license, err := h.Repository.GetLicenseByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "License not found")
			return
		}
		logrus.Errorf("failed to get license %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get license")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLicenseResponse(license))
}

// CreateLicense создает новую лицензию
// @Summary Создать лицензию
// @Description Создает лицензию для клиента; license_key должен быть уникален
// @Tags Licenses
// @Accept json
// @Produce json
// @Param license body dto.CreateLicenseRequest true "Данные лицензии"
// @Success 201 {object} dto.LicenseResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/licenses/ [post]
func (h *APIHandler) CreateLicense(ctx *gin.Context) {
	var req dto.CreateLicenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid license data", err)
		return
	}

	if !h.checkLicenseClient(ctx, req.ClientID) {
		return
	}

	if req.Status == "" {
		req.Status = ds.LicenseStatusAvail
	}

	license := ds.License{
		ClientID:   req.ClientID,
		LicenseKey: req.LicenseKey,
		Status:     req.Status,
	}

	if err := h.Repository.CreateLicense(&license); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid license data", "license_key", "license key already exists")
			return
		}
		logrus.Errorf("failed to create license: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create license")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewLicenseResponse(&license))
}

// UpdateLicense обновляет данные лицензии
// @Summary Обновить лицензию
// @Tags Licenses
// @Accept json
// @Produce json
// @Param id path int true "ID лицензии"
// @Param license body dto.UpdateLicenseRequest true "Изменяемые поля"
// @Success 200 {object} dto.LicenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/licenses/{id} [put]
func (h *APIHandler) UpdateLicense(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdateLicenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid license data", err)
		return
	}

	if req.ClientID != nil && !h.checkLicenseClient(ctx, *req.ClientID) {
		return
	}

	license, err := h.Repository.UpdateLicense(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "License not found")
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid license data", "license_key", "license key already exists")
			return
		}
		logrus.Errorf("failed to update license %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update license")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLicenseResponse(license))
}

// DeleteLicense удаляет лицензию
// @Summary Удалить лицензию
// @Tags Licenses
// @Param id path int true "ID лицензии"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/licenses/{id} [delete]
func (h *APIHandler) DeleteLicense(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.Repository.DeleteLicense(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "License not found")
			return
		}
		logrus.Errorf("failed to delete license %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete license")
		return
	}

	ctx.Status(http.StatusNoContent)
}
