package ds

import "time"

// 5. Таблица обновлений ПО
type Update struct {
	ID           uint      `gorm:"primaryKey"`
	Version      string    `gorm:"type:varchar(50);not null"`
	Title        string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	ReleaseNotes string    `gorm:"type:text"`
	Size         int64     `gorm:"default:0"` // размер пакета в байтах, выставляется при загрузке
	DownloadURL  string    `gorm:"type:varchar(512)"`
	IsRequired   bool      `gorm:"default:false;not null"`
	ReleaseDate  time.Time `gorm:"not null"`
}

type UpdateUpdate struct {
	Version      *string
	Title        *string
	Description  *string
	ReleaseNotes *string
	Size         *int64
	DownloadURL  *string
	IsRequired   *bool
}
