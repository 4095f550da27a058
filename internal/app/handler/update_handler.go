package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetUpdates возвращает список всех обновлений ПО
// @Summary Список обновлений
// @Tags Updates
// @Produce json
// @Success 200 {array} dto.UpdateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/updates/ [get]
func (h *APIHandler) GetUpdates(ctx *gin.Context) {
	updates, err := h.Repository.GetAllUpdates()
	if err != nil {
		logrus.Errorf("failed to get updates: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get updates")
		return
	}

	responses := make([]dto.UpdateResponse, 0, len(updates))
	for i := range updates {
		responses = append(responses, dto.NewUpdateResponse(&updates[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetUpdate возвращает обновление по ID
// @Summary Получить обновление
// @Tags Updates
// @Produce json
// @Param id path int true "ID обновления"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/updates/{id} [get]
func (h *APIHandler) GetUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	update, err := h.Repository.GetUpdateByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to get update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get update")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdateResponse(update))
}

// CreateUpdate создает запись об обновлении ПО
// @Summary Создать обновление
// @Tags Updates
// @Accept json
// @Produce json
// @Param update body dto.CreateUpdateRequest true "Данные обновления"
// @Success 201 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/updates/ [post]
func (h *APIHandler) CreateUpdate(ctx *gin.Context) {
	var req dto.CreateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid update data", err)
		return
	}

	update := ds.Update{
		Version:      req.Version,
		Title:        req.Title,
		Description:  req.Description,
		ReleaseNotes: req.ReleaseNotes,
		Size:         req.Size,
		DownloadURL:  req.DownloadURL,
		IsRequired:   req.IsRequired,
	}

	if err := h.Repository.CreateUpdate(&update); err != nil {
		logrus.Errorf("failed to create update: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create update")
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUpdateResponse(&update))
}

// UpdateUpdate обновляет запись об обновлении ПО
// @Summary Обновить запись об обновлении
// @Tags Updates
// @Accept json
// @Produce json
// @Param id path int true "ID обновления"
// @Param update body dto.UpdateUpdateRequest true "Изменяемые поля"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/updates/{id} [put]
func (h *APIHandler) UpdateUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	var req dto.UpdateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.validationResponse(ctx, "Invalid update data", err)
		return
	}

	update, err := h.Repository.UpdateUpdate(id, req.ToUpdate())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to update update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update update")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdateResponse(update))
}

// DeleteUpdate удаляет запись об обновлении вместе с загруженным пакетом
// @Summary Удалить обновление
// @Tags Updates
// @Param id path int true "ID обновления"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/updates/{id} [delete]
func (h *APIHandler) DeleteUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	update, err := h.Repository.GetUpdateByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to get update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete update")
		return
	}

	if err := h.Repository.DeleteUpdate(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to delete update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete update")
		return
	}

	// Пакет в объектном хранилище удаляем после записи
	if h.MinIOClient != nil && strings.HasPrefix(update.DownloadURL, "update_") {
		if err := h.MinIOClient.DeletePackage(update.DownloadURL); err != nil {
			logrus.Warnf("failed to delete package %s: %v", update.DownloadURL, err)
		}
	}

	ctx.Status(http.StatusNoContent)
}

// UploadUpdatePackage загружает файл пакета обновления в объектное хранилище
// @Summary Загрузить пакет обновления
// @Description Принимает multipart-файл в поле package, сохраняет его в MinIO и проставляет size и download_url
// @Tags Updates
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID обновления"
// @Param package formData file true "Файл пакета"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/updates/{id}/package [post]
func (h *APIHandler) UploadUpdatePackage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(ctx, http.StatusServiceUnavailable, "Package storage is not configured")
		return
	}

	update, err := h.Repository.GetUpdateByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to get update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload package")
		return
	}

	fileHeader, err := ctx.FormFile("package")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Package file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.Errorf("failed to open uploaded file: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload package")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		logrus.Errorf("failed to read uploaded file: %v", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload package")
		return
	}

	objectName, size, err := h.MinIOClient.UploadPackage(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Errorf("failed to upload package for update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload package")
		return
	}

	// Прежний пакет больше не нужен
	if strings.HasPrefix(update.DownloadURL, "update_") {
		if err := h.MinIOClient.DeletePackage(update.DownloadURL); err != nil {
			logrus.Warnf("failed to delete old package %s: %v", update.DownloadURL, err)
		}
	}

	updated, err := h.Repository.UpdateUpdate(id, ds.UpdateUpdate{
		Size:        &size,
		DownloadURL: &objectName,
	})
	if err != nil {
		logrus.Errorf("failed to save package info for update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload package")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdateResponse(updated))
}

// DownloadUpdatePackage отдает временную ссылку на скачивание пакета
// @Summary Скачать пакет обновления
// @Description Перенаправляет на временный (24 часа) URL пакета в объектном хранилище
// @Tags Updates
// @Param id path int true "ID обновления"
// @Success 302
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/updates/{id}/package [get]
func (h *APIHandler) DownloadUpdatePackage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid ID format")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(ctx, http.StatusServiceUnavailable, "Package storage is not configured")
		return
	}

	update, err := h.Repository.GetUpdateByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Update not found")
			return
		}
		logrus.Errorf("failed to get update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get package")
		return
	}

	if !strings.HasPrefix(update.DownloadURL, "update_") {
		h.errorResponse(ctx, http.StatusNotFound, "Package not uploaded")
		return
	}

	url, err := h.MinIOClient.PackageURL(update.DownloadURL)
	if err != nil {
		logrus.Errorf("failed to presign package URL for update %d: %v", id, err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to get package")
		return
	}

	ctx.Redirect(http.StatusFound, url)
}
