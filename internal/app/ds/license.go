package ds

import "time"

// 3. Таблица лицензий
type License struct {
	ID         uint      `gorm:"primaryKey"`
	ClientID   uint      `gorm:"not null"`
	LicenseKey string    `gorm:"type:varchar(100);unique;not null"`
	Status     string    `gorm:"type:varchar(20);default:'AVAIL';not null"` // AVAIL, USED, BLOCKED
	IssuedDate time.Time `gorm:"not null"`

	Client Client `gorm:"foreignKey:ClientID"`
}

type LicenseUpdate struct {
	ClientID   *uint
	LicenseKey *string
	Status     *string
}
