package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Лицензии (Licenses) ============

type LicenseResponse struct {
	ID         uint      `json:"id"`
	ClientID   uint      `json:"client_id"`
	LicenseKey string    `json:"license_key"`
	Status     string    `json:"status"`
	IssuedDate time.Time `json:"issuedDate"`
}

type CreateLicenseRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	LicenseKey string `json:"license_key" binding:"required,min=6"`
	Status     string `json:"status" binding:"omitempty,oneof=AVAIL USED BLOCKED"`
}

type UpdateLicenseRequest struct {
	ClientID   *uint   `json:"client_id"`
	LicenseKey *string `json:"license_key" binding:"omitempty,min=6"`
	Status     *string `json:"status" binding:"omitempty,oneof=AVAIL USED BLOCKED"`
}

func NewLicenseResponse(l *ds.License) LicenseResponse {
	return LicenseResponse{
		ID:         l.ID,
		ClientID:   l.ClientID,
		LicenseKey: l.LicenseKey,
		Status:     l.Status,
		IssuedDate: l.IssuedDate,
	}
}

func (r *UpdateLicenseRequest) ToUpdate() ds.LicenseUpdate {
	return ds.LicenseUpdate{
		ClientID:   r.ClientID,
		LicenseKey: r.LicenseKey,
		Status:     r.Status,
	}
}
