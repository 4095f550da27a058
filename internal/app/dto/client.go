package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Клиенты (Clients) ============

type ClientResponse struct {
	ID        uint      `json:"id"`
	PartnerID uint      `json:"partner_id"`
	Name      string    `json:"name"`
	INN       string    `json:"inn,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateClientRequest struct {
	PartnerID uint   `json:"partner_id" binding:"required"`
	Name      string `json:"name" binding:"required,min=2"`
	INN       string `json:"inn" binding:"omitempty,min=10"`
	Type      string `json:"type" binding:"required,oneof=COMPANY REGISTRY"`
}

type UpdateClientRequest struct {
	PartnerID *uint   `json:"partner_id"`
	Name      *string `json:"name" binding:"omitempty,min=2"`
	INN       *string `json:"inn" binding:"omitempty,min=10"`
	Type      *string `json:"type" binding:"omitempty,oneof=COMPANY REGISTRY"`
}

func NewClientResponse(c *ds.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		PartnerID: c.PartnerID,
		Name:      c.Name,
		INN:       c.INN,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}

func (r *UpdateClientRequest) ToUpdate() ds.ClientUpdate {
	return ds.ClientUpdate{
		PartnerID: r.PartnerID,
		Name:      r.Name,
		INN:       r.INN,
		Type:      r.Type,
	}
}
