package repository

import (
	"errors"

	"backend/internal/app/ds"
)

var (
	// ErrNotFound — записи с таким ID нет в хранилище
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate — нарушена уникальность поля (license_key, inst_id, email)
	ErrDuplicate = errors.New("duplicate value")
)

// Repository — контракт хранилища: по пять операций на каждую из шести
// сущностей. ID присваиваются монотонно; Update — мелкое слияние непустых
// полей; Delete безусловен. Реализации: memory (go-memdb) и postgres (gorm).
type Repository interface {
	// Партнёры
	GetAllPartners() ([]ds.Partner, error)
	GetPartnerByID(id uint) (*ds.Partner, error)
	CreatePartner(p *ds.Partner) error
	UpdatePartner(id uint, upd ds.PartnerUpdate) (*ds.Partner, error)
	DeletePartner(id uint) error

	// Клиенты
	GetAllClients() ([]ds.Client, error)
	GetClientByID(id uint) (*ds.Client, error)
	CreateClient(c *ds.Client) error
	UpdateClient(id uint, upd ds.ClientUpdate) (*ds.Client, error)
	DeleteClient(id uint) error

	// Лицензии
	GetAllLicenses() ([]ds.License, error)
	GetLicenseByID(id uint) (*ds.License, error)
	CreateLicense(l *ds.License) error
	UpdateLicense(id uint, upd ds.LicenseUpdate) (*ds.License, error)
	DeleteLicense(id uint) error

	// Устройства
	GetAllDevices() ([]ds.Device, error)
	GetDeviceByID(id uint) (*ds.Device, error)
	CreateDevice(d *ds.Device) error
	UpdateDevice(id uint, upd ds.DeviceUpdate) (*ds.Device, error)
	DeleteDevice(id uint) error

	// Обновления ПО
	GetAllUpdates() ([]ds.Update, error)
	GetUpdateByID(id uint) (*ds.Update, error)
	CreateUpdate(u *ds.Update) error
	UpdateUpdate(id uint, upd ds.UpdateUpdate) (*ds.Update, error)
	DeleteUpdate(id uint) error

	// Пользователи
	GetAllUsers() ([]ds.User, error)
	GetUserByID(id uint) (*ds.User, error)
	CreateUser(u *ds.User) error
	UpdateUser(id uint, upd ds.UserUpdate) (*ds.User, error)
	DeleteUser(id uint) error
}
