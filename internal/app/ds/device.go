package ds

import "time"

// 4. Таблица устройств
type Device struct {
	ID             uint      `gorm:"primaryKey"`
	ClientID       uint      `gorm:"not null"`
	LicenseID      uint      `gorm:"not null"`
	InstID         string    `gorm:"type:varchar(100);unique;not null"`
	OSVersion      string    `gorm:"type:varchar(100)"`
	LocalID        string    `gorm:"type:varchar(100)"`
	Status         string    `gorm:"type:varchar(20);default:'not_configured';not null"` // not_configured, initialization, ready, sync_error
	RegisteredDate time.Time `gorm:"not null"`

	Client  Client  `gorm:"foreignKey:ClientID"`
	License License `gorm:"foreignKey:LicenseID"`
}

type DeviceUpdate struct {
	ClientID  *uint
	LicenseID *uint
	InstID    *string
	OSVersion *string
	LocalID   *string
	Status    *string
}
