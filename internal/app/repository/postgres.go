package repository

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresRepository — то же хранилище поверх Postgres (gorm).
// Включается конфигом storage.mode = "postgres"
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(dsnStr string) (*PostgresRepository, error) {
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.Partner{},
		&ds.Client{},
		&ds.License{},
		&ds.Device{},
		&ds.Update{},
		&ds.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// ============ Партнёры ============

func (r *PostgresRepository) GetAllPartners() ([]ds.Partner, error) {
	partners := []ds.Partner{}
	err := r.db.Order("id").Find(&partners).Error
	return partners, err
}

func (r *PostgresRepository) GetPartnerByID(id uint) (*ds.Partner, error) {
	var p ds.Partner
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PostgresRepository) CreatePartner(p *ds.Partner) error {
	return translateError(r.db.Create(p).Error)
}

func (r *PostgresRepository) UpdatePartner(id uint, upd ds.PartnerUpdate) (*ds.Partner, error) {
	p, err := r.GetPartnerByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.INN != nil {
		p.INN = *upd.INN
	}
	if upd.KPP != nil {
		p.KPP = *upd.KPP
	}
	if upd.OGRN != nil {
		p.OGRN = *upd.OGRN
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.APIToken != nil {
		p.APIToken = *upd.APIToken
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}

	if err := r.db.Save(p).Error; err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *PostgresRepository) DeletePartner(id uint) error {
	return r.deleteByID(&ds.Partner{}, id)
}

// ============ Клиенты ============

func (r *PostgresRepository) GetAllClients() ([]ds.Client, error) {
	clients := []ds.Client{}
	err := r.db.Order("id").Find(&clients).Error
	return clients, err
}

func (r *PostgresRepository) GetClientByID(id uint) (*ds.Client, error) {
	var c ds.Client
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateClient(c *ds.Client) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return translateError(r.db.Create(c).Error)
}

func (r *PostgresRepository) UpdateClient(id uint, upd ds.ClientUpdate) (*ds.Client, error) {
	c, err := r.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	if upd.PartnerID != nil {
		c.PartnerID = *upd.PartnerID
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.INN != nil {
		c.INN = *upd.INN
	}
	if upd.Type != nil {
		c.Type = *upd.Type
	}

	if err := r.db.Save(c).Error; err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (r *PostgresRepository) DeleteClient(id uint) error {
	return r.deleteByID(&ds.Client{}, id)
}

// ============ Лицензии ============

func (r *PostgresRepository) GetAllLicenses() ([]ds.License, error) {
	licenses := []ds.License{}
	err := r.db.Order("id").Find(&licenses).Error
	return licenses, err
}

func (r *PostgresRepository) GetLicenseByID(id uint) (*ds.License, error) {
	var l ds.License
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &l, nil
}

func (r *PostgresRepository) CreateLicense(l *ds.License) error {
	dup, err := r.exists(&ds.License{}, "license_key = ?", l.LicenseKey)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicate
	}

	if l.IssuedDate.IsZero() {
		l.IssuedDate = time.Now()
	}
	return translateError(r.db.Create(l).Error)
}

func (r *PostgresRepository) UpdateLicense(id uint, upd ds.LicenseUpdate) (*ds.License, error) {
	l, err := r.GetLicenseByID(id)
	if err != nil {
		return nil, err
	}

	if upd.LicenseKey != nil && *upd.LicenseKey != l.LicenseKey {
		dup, err := r.exists(&ds.License{}, "license_key = ? AND id <> ?", *upd.LicenseKey, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrDuplicate
		}
		l.LicenseKey = *upd.LicenseKey
	}
	if upd.ClientID != nil {
		l.ClientID = *upd.ClientID
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}

	if err := r.db.Save(l).Error; err != nil {
		return nil, translateError(err)
	}
	return l, nil
}

func (r *PostgresRepository) DeleteLicense(id uint) error {
	return r.deleteByID(&ds.License{}, id)
}

// ============ Устройства ============

func (r *PostgresRepository) GetAllDevices() ([]ds.Device, error) {
	devices := []ds.Device{}
	err := r.db.Order("id").Find(&devices).Error
	return devices, err
}

func (r *PostgresRepository) GetDeviceByID(id uint) (*ds.Device, error) {
	var d ds.Device
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *PostgresRepository) CreateDevice(d *ds.Device) error {
	dup, err := r.exists(&ds.Device{}, "inst_id = ?", d.InstID)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicate
	}

	if d.RegisteredDate.IsZero() {
		d.RegisteredDate = time.Now()
	}
	return translateError(r.db.Create(d).Error)
}

func (r *PostgresRepository) UpdateDevice(id uint, upd ds.DeviceUpdate) (*ds.Device, error) {
	d, err := r.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	if upd.InstID != nil && *upd.InstID != d.InstID {
		dup, err := r.exists(&ds.Device{}, "inst_id = ? AND id <> ?", *upd.InstID, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrDuplicate
		}
		d.InstID = *upd.InstID
	}
	if upd.ClientID != nil {
		d.ClientID = *upd.ClientID
	}
	if upd.LicenseID != nil {
		d.LicenseID = *upd.LicenseID
	}
	if upd.OSVersion != nil {
		d.OSVersion = *upd.OSVersion
	}
	if upd.LocalID != nil {
		d.LocalID = *upd.LocalID
	}
	if upd.Status != nil {
		d.Status = *upd.Status
	}

	if err := r.db.Save(d).Error; err != nil {
		return nil, translateError(err)
	}
	return d, nil
}

func (r *PostgresRepository) DeleteDevice(id uint) error {
	return r.deleteByID(&ds.Device{}, id)
}

// ============ Обновления ПО ============

func (r *PostgresRepository) GetAllUpdates() ([]ds.Update, error) {
	updates := []ds.Update{}
	err := r.db.Order("id").Find(&updates).Error
	return updates, err
}

func (r *PostgresRepository) GetUpdateByID(id uint) (*ds.Update, error) {
	var u ds.Update
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUpdate(u *ds.Update) error {
	if u.ReleaseDate.IsZero() {
		u.ReleaseDate = time.Now()
	}
	return translateError(r.db.Create(u).Error)
}

func (r *PostgresRepository) UpdateUpdate(id uint, upd ds.UpdateUpdate) (*ds.Update, error) {
	u, err := r.GetUpdateByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Version != nil {
		u.Version = *upd.Version
	}
	if upd.Title != nil {
		u.Title = *upd.Title
	}
	if upd.Description != nil {
		u.Description = *upd.Description
	}
	if upd.ReleaseNotes != nil {
		u.ReleaseNotes = *upd.ReleaseNotes
	}
	if upd.Size != nil {
		u.Size = *upd.Size
	}
	if upd.DownloadURL != nil {
		u.DownloadURL = *upd.DownloadURL
	}
	if upd.IsRequired != nil {
		u.IsRequired = *upd.IsRequired
	}

	if err := r.db.Save(u).Error; err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (r *PostgresRepository) DeleteUpdate(id uint) error {
	return r.deleteByID(&ds.Update{}, id)
}

// ============ Пользователи ============

func (r *PostgresRepository) GetAllUsers() ([]ds.User, error) {
	users := []ds.User{}
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *PostgresRepository) GetUserByID(id uint) (*ds.User, error) {
	var u ds.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(u *ds.User) error {
	dup, err := r.exists(&ds.User{}, "email = ?", u.Email)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicate
	}
	return translateError(r.db.Create(u).Error)
}

func (r *PostgresRepository) UpdateUser(id uint, upd ds.UserUpdate) (*ds.User, error) {
	u, err := r.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil && *upd.Email != u.Email {
		dup, err := r.exists(&ds.User{}, "email = ? AND id <> ?", *upd.Email, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrDuplicate
		}
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.PartnerID != nil {
		u.PartnerID = upd.PartnerID
	}
	if upd.ClientID != nil {
		u.ClientID = upd.ClientID
	}
	if upd.LastLogonTime != nil {
		u.LastLogonTime = upd.LastLogonTime
	}

	if err := r.db.Save(u).Error; err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (r *PostgresRepository) DeleteUser(id uint) error {
	return r.deleteByID(&ds.User{}, id)
}

// ============ Вспомогательные ============

func (r *PostgresRepository) exists(model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	err := r.db.Model(model).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) deleteByID(model interface{}, id uint) error {
	res := r.db.Delete(model, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
