package ds

// 1. Таблица партнёров
type Partner struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	INN      string `gorm:"type:varchar(12);not null"`
	KPP      string `gorm:"type:varchar(9)"`
	OGRN     string `gorm:"type:varchar(15)"`
	Address  string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(100);not null"`
	Phone    string `gorm:"type:varchar(20)"`
	APIToken string `gorm:"type:varchar(512)"`
	Type     string `gorm:"type:varchar(20);not null"`                 // provider, distributor, reseller
	Status   string `gorm:"type:varchar(20);default:'active';not null"` // active, inactive, suspended
}

// PartnerUpdate — частичное обновление: применяются только непустые поля
type PartnerUpdate struct {
	Name     *string
	INN      *string
	KPP      *string
	OGRN     *string
	Address  *string
	Email    *string
	Phone    *string
	APIToken *string
	Type     *string
	Status   *string
}
