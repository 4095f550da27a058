package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Пользователи (Users) ============

// Поле password намеренно отсутствует — пароль не возвращается никогда
type UserResponse struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name,omitempty"`
	Status        string     `json:"status"`
	Role          string     `json:"role"`
	PartnerID     *uint      `json:"partner_id,omitempty"`
	ClientID      *uint      `json:"client_id,omitempty"`
	LastLogonTime *time.Time `json:"last_logon_time,omitempty"`
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FullName  string `json:"full_name"`
	Status    string `json:"status" binding:"omitempty,oneof=ACTIVE CREATED CONFIRMED"`
	Role      string `json:"role" binding:"omitempty,oneof=admin user"`
	PartnerID *uint  `json:"partner_id"`
	ClientID  *uint  `json:"client_id"`
}

type UpdateUserRequest struct {
	Email         *string    `json:"email" binding:"omitempty,email"`
	Password      *string    `json:"password" binding:"omitempty,min=6"`
	FullName      *string    `json:"full_name"`
	Status        *string    `json:"status" binding:"omitempty,oneof=ACTIVE CREATED CONFIRMED"`
	Role          *string    `json:"role" binding:"omitempty,oneof=admin user"`
	PartnerID     *uint      `json:"partner_id"`
	ClientID      *uint      `json:"client_id"`
	LastLogonTime *time.Time `json:"last_logon_time"`
}

func NewUserResponse(u *ds.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Status:        u.Status,
		Role:          u.Role,
		PartnerID:     u.PartnerID,
		ClientID:      u.ClientID,
		LastLogonTime: u.LastLogonTime,
	}
}

func (r *UpdateUserRequest) ToUpdate() ds.UserUpdate {
	return ds.UserUpdate{
		Email:         r.Email,
		Password:      r.Password,
		FullName:      r.FullName,
		Status:        r.Status,
		Role:          r.Role,
		PartnerID:     r.PartnerID,
		ClientID:      r.ClientID,
		LastLogonTime: r.LastLogonTime,
	}
}
