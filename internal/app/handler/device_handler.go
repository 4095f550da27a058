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

// checkDeviceRefs проверяет ссылки устройства на клиента и лицензию.
// Нулевое значение означает «не проверять» (поле не передано)
func (h *APIHandler) checkDeviceRefs(ctx *gin.Context, clientID, licenseID uint) bool {
	if clientID != 0 {
		if _, err := h.Repository.GetClientByID(clientID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				h.fieldErrorResponse(ctx, "Invalid device data", "client_id", "referenced client does not exist")
				return false
			}
			logrus.Errorf("failed to check client %d: %v", clientID, err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save device")
			return false
		}
	}
	if licenseID != 0 {
		if _, err := h.Repository.GetLicenseByID(licenseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				h.fieldErrorResponse(ctx, "Invalid device data", "license_id", "referenced license does not exist")
				return false
			}
			logrus.Errorf("failed to check license %d: %v", licenseID, err)
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save device")
			return false
		}
	}
	return true
}

// GetDevices возвращает список всех устройств
// @Summary Список устройств
// @Tags Devices
// @Produce json
// @Success 200 {array} dto.DeviceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/devices/ [get]
func (h *APIHandler) GetDevices(ctx *gin.Context) {
	devices, err := h.Repository.GetAllDevices()
	if err != nil {
		logrus.Errorf("failed to get devices: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get devices")
		return
	}

	responses := make([]dto.DeviceResponse, 0, len(devices))
	for i := range devices {
		responses = append(responses, dto.NewDeviceResponse(&devices[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetDevice возвращает устройство по ID
// @Summary Получить устройство
// @Tags Devices
// @Produce json
// @Param id path int true "ID устройства"
// @Success 200 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/devices/{id} [get]
func (h *APIHandler) GetDevice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	device, err := h.Repository.GetDeviceByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Device not found")
			return
		}
		logrus.Errorf("failed to get device %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get device")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeviceResponse(device))
}

// CreateDevice регистрирует новое устройство
// @Summary Зарегистрировать устройство
// @Description Регистрирует устройство клиента; inst_id должен быть уникален
// @Tags Devices
// @Accept json
// @Produce json
// @Param device body dto.CreateDeviceRequest true "Данные устройства"
// @Success 201 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/devices/ [post]
func (h *APIHandler) CreateDevice(ctx *gin.Context) {
	var req dto.CreateDeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid device data", err)
		return
	}

	if !h.checkDeviceRefs(ctx, req.ClientID, req.LicenseID) {
		return
	}

	if req.Status == "" {
		req.Status = ds.DeviceStatusNotConfigured
	}

	device := ds.Device{
		ClientID:  req.ClientID,
		LicenseID: req.LicenseID,
		InstID:    req.InstID,
		OSVersion: req.OSVersion,
		LocalID:   req.LocalID,
		Status:    req.Status,
	}

	if err := h.Repository.CreateDevice(&device); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid device data", "inst_id", "installation ID already exists")
			return
		}
		logrus.Errorf("failed to create device: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create device")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDeviceResponse(&device))
}

// UpdateDevice обновляет данные устройства
// @Summary Обновить устройство
// @Description Частичное обновление, в том числе смена статуса устройства
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "ID устройства"
// @Param device body dto.UpdateDeviceRequest true "Изменяемые поля"
// @Success 200 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/devices/{id} [put]
func (h *APIHandler) UpdateDevice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdateDeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid device data", err)
		return
	}

	var clientID, licenseID uint
	if req.ClientID != nil {
		clientID = *req.ClientID
	}
	if req.LicenseID != nil {
		licenseID = *req.LicenseID
	}
	if !h.checkDeviceRefs(ctx, clientID, licenseID) {
		return
	}

	device, err := h.Repository.UpdateDevice(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Device not found")
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			h.fieldErrorResponse(ctx, "Invalid device data", "inst_id", "installation ID already exists")
			return
		}
		logrus.Errorf("failed to update device %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update device")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeviceResponse(device))
}

// DeleteDevice удаляет устройство
// @Summary Удалить устройство
// @Tags Devices
// @Param id path int true "ID устройства"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/devices/{id} [delete]
func (h *APIHandler) DeleteDevice(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if err := h.Repository.DeleteDevice(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Device not found")
			return
		}
		logrus.Errorf("failed to delete device %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete device")
		return
	}

	ctx.Status(http.StatusNoContent)
}
