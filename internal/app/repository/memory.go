package repository

import (
	"sync"
	"time"

	"backend/internal/app/ds"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	tablePartners = "partners"
	tableClients  = "clients"
	tableLicenses = "licenses"
	tableDevices  = "devices"
	tableUpdates  = "updates"
	tableUsers    = "users"
)

// Схема in-memory БД: uint-индекс id везде, уникальные индексы
// по license_key, inst_id и email
func memSchema() *memdb.DBSchema {
	idIndex := func() map[string]*memdb.IndexSchema {
		return map[string]*memdb.IndexSchema{
			"id": {Name: "id", Unique: true, Indexer: &memdb.UintFieldIndex{Field: "ID"}},
		}
	}

	licenseIndexes := idIndex()
	licenseIndexes["key"] = &memdb.IndexSchema{
		Name: "key", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "LicenseKey"},
	}

	deviceIndexes := idIndex()
	deviceIndexes["inst_id"] = &memdb.IndexSchema{
		Name: "inst_id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "InstID"},
	}

	userIndexes := idIndex()
	userIndexes["email"] = &memdb.IndexSchema{
		Name: "email", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Email"},
	}

	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tablePartners: {Name: tablePartners, Indexes: idIndex()},
			tableClients:  {Name: tableClients, Indexes: idIndex()},
			tableLicenses: {Name: tableLicenses, Indexes: licenseIndexes},
			tableDevices:  {Name: tableDevices, Indexes: deviceIndexes},
			tableUpdates:  {Name: tableUpdates, Indexes: idIndex()},
			tableUsers:    {Name: tableUsers, Indexes: userIndexes},
		},
	}
}

// MemoryRepository — хранилище на go-memdb, время жизни = время жизни процесса.
// Счётчики ID монотонны и не переиспользуются после удаления
type MemoryRepository struct {
	db *memdb.MemDB

	mu  sync.Mutex
	seq map[string]uint
}

func NewMemory() (*MemoryRepository, error) {
	db, err := memdb.NewMemDB(memSchema())
	if err != nil {
		return nil, err
	}
	return &MemoryRepository{
		db:  db,
		seq: make(map[string]uint),
	}, nil
}

func (r *MemoryRepository) nextID(table string) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq[table]++
	return r.seq[table]
}

// ============ Партнёры ============

func (r *MemoryRepository) GetAllPartners() ([]ds.Partner, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tablePartners, "id")
	if err != nil {
		return nil, err
	}

	partners := []ds.Partner{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		partners = append(partners, *obj.(*ds.Partner))
	}
	return partners, nil
}

func (r *MemoryRepository) GetPartnerByID(id uint) (*ds.Partner, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tablePartners, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	p := *obj.(*ds.Partner)
	return &p, nil
}

func (r *MemoryRepository) CreatePartner(p *ds.Partner) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	p.ID = r.nextID(tablePartners)
	stored := *p
	if err := txn.Insert(tablePartners, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdatePartner(id uint, upd ds.PartnerUpdate) (*ds.Partner, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tablePartners, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	p := *obj.(*ds.Partner)
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

	if err := txn.Insert(tablePartners, &p); err != nil {
		return nil, err
	}
	txn.Commit()
	result := p
	return &result, nil
}

func (r *MemoryRepository) DeletePartner(id uint) error {
	return r.deleteByID(tablePartners, id)
}

// ============ Клиенты ============

func (r *MemoryRepository) GetAllClients() ([]ds.Client, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableClients, "id")
	if err != nil {
		return nil, err
	}

	clients := []ds.Client{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		clients = append(clients, *obj.(*ds.Client))
	}
	return clients, nil
}

func (r *MemoryRepository) GetClientByID(id uint) (*ds.Client, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableClients, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	c := *obj.(*ds.Client)
	return &c, nil
}

func (r *MemoryRepository) CreateClient(c *ds.Client) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	c.ID = r.nextID(tableClients)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	stored := *c
	if err := txn.Insert(tableClients, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdateClient(id uint, upd ds.ClientUpdate) (*ds.Client, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableClients, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	// created_at не трогаем — поле неизменно после создания
	c := *obj.(*ds.Client)
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

	if err := txn.Insert(tableClients, &c); err != nil {
		return nil, err
	}
	txn.Commit()
	result := c
	return &result, nil
}

func (r *MemoryRepository) DeleteClient(id uint) error {
	return r.deleteByID(tableClients, id)
}

// ============ Лицензии ============

func (r *MemoryRepository) GetAllLicenses() ([]ds.License, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableLicenses, "id")
	if err != nil {
		return nil, err
	}

	licenses := []ds.License{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		licenses = append(licenses, *obj.(*ds.License))
	}
	return licenses, nil
}

func (r *MemoryRepository) GetLicenseByID(id uint) (*ds.License, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableLicenses, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	l := *obj.(*ds.License)
	return &l, nil
}

func (r *MemoryRepository) CreateLicense(l *ds.License) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	// Ключ лицензии уникален
	existing, err := txn.First(tableLicenses, "key", l.LicenseKey)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}

	l.ID = r.nextID(tableLicenses)
	if l.IssuedDate.IsZero() {
		l.IssuedDate = time.Now()
	}
	stored := *l
	if err := txn.Insert(tableLicenses, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdateLicense(id uint, upd ds.LicenseUpdate) (*ds.License, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableLicenses, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	l := *obj.(*ds.License)
	if upd.LicenseKey != nil && *upd.LicenseKey != l.LicenseKey {
		existing, err := txn.First(tableLicenses, "key", *upd.LicenseKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
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

	if err := txn.Insert(tableLicenses, &l); err != nil {
		return nil, err
	}
	txn.Commit()
	result := l
	return &result, nil
}

func (r *MemoryRepository) DeleteLicense(id uint) error {
	return r.deleteByID(tableLicenses, id)
}

// ============ Устройства ============

func (r *MemoryRepository) GetAllDevices() ([]ds.Device, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableDevices, "id")
	if err != nil {
		return nil, err
	}

	devices := []ds.Device{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		devices = append(devices, *obj.(*ds.Device))
	}
	return devices, nil
}

func (r *MemoryRepository) GetDeviceByID(id uint) (*ds.Device, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableDevices, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	d := *obj.(*ds.Device)
	return &d, nil
}

func (r *MemoryRepository) CreateDevice(d *ds.Device) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableDevices, "inst_id", d.InstID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}

	d.ID = r.nextID(tableDevices)
	if d.RegisteredDate.IsZero() {
		d.RegisteredDate = time.Now()
	}
	stored := *d
	if err := txn.Insert(tableDevices, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdateDevice(id uint, upd ds.DeviceUpdate) (*ds.Device, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableDevices, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	d := *obj.(*ds.Device)
	if upd.InstID != nil && *upd.InstID != d.InstID {
		existing, err := txn.First(tableDevices, "inst_id", *upd.InstID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
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

	if err := txn.Insert(tableDevices, &d); err != nil {
		return nil, err
	}
	txn.Commit()
	result := d
	return &result, nil
}

func (r *MemoryRepository) DeleteDevice(id uint) error {
	return r.deleteByID(tableDevices, id)
}

// ============ Обновления ПО ============

func (r *MemoryRepository) GetAllUpdates() ([]ds.Update, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUpdates, "id")
	if err != nil {
		return nil, err
	}

	updates := []ds.Update{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		updates = append(updates, *obj.(*ds.Update))
	}
	return updates, nil
}

func (r *MemoryRepository) GetUpdateByID(id uint) (*ds.Update, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableUpdates, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	u := *obj.(*ds.Update)
	return &u, nil
}

func (r *MemoryRepository) CreateUpdate(u *ds.Update) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	u.ID = r.nextID(tableUpdates)
	if u.ReleaseDate.IsZero() {
		u.ReleaseDate = time.Now()
	}
	stored := *u
	if err := txn.Insert(tableUpdates, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdateUpdate(id uint, upd ds.UpdateUpdate) (*ds.Update, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableUpdates, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	u := *obj.(*ds.Update)
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

	if err := txn.Insert(tableUpdates, &u); err != nil {
		return nil, err
	}
	txn.Commit()
	result := u
	return &result, nil
}

func (r *MemoryRepository) DeleteUpdate(id uint) error {
	return r.deleteByID(tableUpdates, id)
}

// ============ Пользователи ============

func (r *MemoryRepository) GetAllUsers() ([]ds.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUsers, "id")
	if err != nil {
		return nil, err
	}

	users := []ds.User{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		users = append(users, *obj.(*ds.User))
	}
	return users, nil
}

func (r *MemoryRepository) GetUserByID(id uint) (*ds.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableUsers, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}
	u := *obj.(*ds.User)
	return &u, nil
}

func (r *MemoryRepository) CreateUser(u *ds.User) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableUsers, "email", u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}

	u.ID = r.nextID(tableUsers)
	stored := *u
	if err := txn.Insert(tableUsers, &stored); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) UpdateUser(id uint, upd ds.UserUpdate) (*ds.User, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tableUsers, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotFound
	}

	u := *obj.(*ds.User)
	if upd.Email != nil && *upd.Email != u.Email {
		existing, err := txn.First(tableUsers, "email", *upd.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
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

	if err := txn.Insert(tableUsers, &u); err != nil {
		return nil, err
	}
	txn.Commit()
	result := u
	return &result, nil
}

func (r *MemoryRepository) DeleteUser(id uint) error {
	return r.deleteByID(tableUsers, id)
}

// Общее удаление по ID для всех таблиц
func (r *MemoryRepository) deleteByID(table string, id uint) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(table, "id", id)
	if err != nil {
		return err
	}
	if obj == nil {
		return ErrNotFound
	}

	if err := txn.Delete(table, obj); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
