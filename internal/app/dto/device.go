package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Устройства (Devices) ============

type DeviceResponse struct {
	ID             uint      `json:"id"`
	ClientID       uint      `json:"client_id"`
	LicenseID      uint      `json:"license_id"`
	InstID         string    `json:"inst_id"`
	OSVersion      string    `json:"os_version,omitempty"`
	LocalID        string    `json:"local_id,omitempty"`
	Status         string    `json:"status"`
	RegisteredDate time.Time `json:"registeredDate"`
}

type CreateDeviceRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	LicenseID uint   `json:"license_id" binding:"required"`
	InstID    string `json:"inst_id" binding:"required"`
	OSVersion string `json:"os_version"`
	LocalID   string `json:"local_id"`
	Status    string `json:"status" binding:"omitempty,oneof=not_configured initialization ready sync_error"`
}

type UpdateDeviceRequest struct {
	ClientID  *uint   `json:"client_id"`
	LicenseID *uint   `json:"license_id"`
	InstID    *string `json:"inst_id"`
	OSVersion *string `json:"os_version"`
	LocalID   *string `json:"local_id"`
	Status    *string `json:"status" binding:"omitempty,oneof=not_configured initialization ready sync_error"`
}

func NewDeviceResponse(d *ds.Device) DeviceResponse {
	return DeviceResponse{
		ID:             d.ID,
		ClientID:       d.ClientID,
		LicenseID:      d.LicenseID,
		InstID:         d.InstID,
		OSVersion:      d.OSVersion,
		LocalID:        d.LocalID,
		Status:         d.Status,
		RegisteredDate: d.RegisteredDate,
	}
}

func (r *UpdateDeviceRequest) ToUpdate() ds.DeviceUpdate {
	return ds.DeviceUpdate{
		ClientID:  r.ClientID,
		LicenseID: r.LicenseID,
		InstID:    r.InstID,
		OSVersion: r.OSVersion,
		LocalID:   r.LocalID,
		Status:    r.Status,
	}
}
