package ds

import "time"

// 6. Таблица пользователей консоли
// Пароль хранится SHA-1 хешем и никогда не попадает в Response
type User struct {
	ID            uint       `gorm:"primaryKey"`
	Email         string     `gorm:"type:varchar(100);unique;not null"`
	Password      string     `gorm:"type:varchar(255);not null"`
	FullName      string     `gorm:"type:varchar(100)"`
	Status        string     `gorm:"type:varchar(20);default:'CREATED';not null"` // ACTIVE, CREATED, CONFIRMED
	Role          string     `gorm:"type:varchar(20);default:'user';not null"`    // admin, user
	PartnerID     *uint      `gorm:"default:null"`
	ClientID      *uint      `gorm:"default:null"`
	LastLogonTime *time.Time `gorm:"default:null"`
}

type UserUpdate struct {
	Email         *string
	Password      *string
	FullName      *string
	Status        *string
	Role          *string
	PartnerID     *uint
	ClientID      *uint
	LastLogonTime *time.Time
}
