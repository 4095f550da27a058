package dto

import "backend/internal/app/ds"

// ============ Партнёры (Partners) ============

type PartnerResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	INN      string `json:"inn"`
	KPP      string `json:"kpp,omitempty"`
	OGRN     string `json:"ogrn,omitempty"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	APIToken string `json:"api_token,omitempty"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

type CreatePartnerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	INN      string `json:"inn" binding:"required,min=10"`
	KPP      string `json:"kpp" binding:"omitempty,min=9"`
	OGRN     string `json:"ogrn" binding:"omitempty,min=13"`
	Address  string `json:"address"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	APIToken string `json:"api_token"`
	Type     string `json:"type" binding:"required,oneof=provider distributor reseller"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

type UpdatePartnerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	INN      *string `json:"inn" binding:"omitempty,min=10"`
	KPP      *string `json:"kpp" binding:"omitempty,min=9"`
	OGRN     *string `json:"ogrn" binding:"omitempty,min=13"`
	Address  *string `json:"address"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	APIToken *string `json:"api_token"`
	Type     *string `json:"type" binding:"omitempty,oneof=provider distributor reseller"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

func NewPartnerResponse(p *ds.Partner) PartnerResponse {
	return PartnerResponse{
		ID:       p.ID,
		Name:     p.Name,
		INN:      p.INN,
		KPP:      p.KPP,
		OGRN:     p.OGRN,
		Address:  p.Address,
		Email:    p.Email,
		Phone:    p.Phone,
		APIToken: p.APIToken,
		Type:     p.Type,
		Status:   p.Status,
	}
}

func (r *UpdatePartnerRequest) ToUpdate() ds.PartnerUpdate {
	return ds.PartnerUpdate{
		Name:     r.Name,
		INN:      r.INN,
		KPP:      r.KPP,
		OGRN:     r.OGRN,
		Address:  r.Address,
		Email:    r.Email,
		Phone:    r.Phone,
		APIToken: r.APIToken,
		Type:     r.Type,
		Status:   r.Status,
	}
}
