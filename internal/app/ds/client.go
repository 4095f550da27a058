package ds

import "time"

// 2. Таблица клиентов (организации партнёра)
type Client struct {
	ID        uint      `gorm:"primaryKey"`
	PartnerID uint      `gorm:"not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	INN       string    `gorm:"type:varchar(12)"`
	Type      string    `gorm:"type:varchar(20);not null"` // COMPANY, REGISTRY
	CreatedAt time.Time `gorm:"not null"`                  // выставляется при создании, далее неизменно

	Partner Partner `gorm:"foreignKey:PartnerID"`
}

type ClientUpdate struct {
	PartnerID *uint
	Name      *string
	INN       *string
	Type      *string
}
