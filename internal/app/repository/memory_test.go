package repository

import (
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	repo, err := NewMemory()
	require.NoError(t, err)
	return repo
}

func strPtr(s string) *string { return &s }

func TestPartnerCRUD(t *testing.T) {
	repo := newTestRepo(t)

	partner := ds.Partner{
		Name:   "ООО Вектор",
		INN:    "7701234567",
		Email:  "info@vector.ru",
		Type:   ds.PartnerTypeProvider,
		Status: ds.PartnerStatusActive,
	}
	require.NoError(t, repo.CreatePartner(&partner))
	assert.Equal(t, uint(1), partner.ID)

	got, err := repo.GetPartnerByID(1)
	require.NoError(t, err)
	assert.Equal(t, "ООО Вектор", got.Name)

	updated, err := repo.UpdatePartner(1, ds.PartnerUpdate{Status: strPtr(ds.PartnerStatusSuspended)})
	require.NoError(t, err)
	assert.Equal(t, ds.PartnerStatusSuspended, updated.Status)
	// Остальные поля не тронуты
	assert.Equal(t, "ООО Вектор", updated.Name)
	assert.Equal(t, "7701234567", updated.INN)

	require.NoError(t, repo.DeletePartner(1))
	_, err = repo.GetPartnerByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMonotonicIDs(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 3; i++ {
		p := ds.Partner{Name: "Партнёр", INN: "7701234567", Email: "p@p.ru", Type: ds.PartnerTypeReseller}
		require.NoError(t, repo.CreatePartner(&p))
	}

	// После удаления ID не переиспользуются
	require.NoError(t, repo.DeletePartner(3))
	p := ds.Partner{Name: "Новый", INN: "7701234567", Email: "n@n.ru", Type: ds.PartnerTypeReseller}
	require.NoError(t, repo.CreatePartner(&p))
	assert.Equal(t, uint(4), p.ID)
}

func TestGetAllEmpty(t *testing.T) {
	repo := newTestRepo(t)

	partners, err := repo.GetAllPartners()
	require.NoError(t, err)
	assert.NotNil(t, partners)
	assert.Empty(t, partners)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdatePartner(99, ds.PartnerUpdate{Name: strPtr("Призрак")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeletePartner(99), ErrNotFound)
}

func TestLicenseKeyUnique(t *testing.T) {
	repo := newTestRepo(t)

	first := ds.License{ClientID: 1, LicenseKey: "KEY-001", Status: ds.LicenseStatusAvail}
	require.NoError(t, repo.CreateLicense(&first))

	dup := ds.License{ClientID: 2, LicenseKey: "KEY-001", Status: ds.LicenseStatusAvail}
	assert.ErrorIs(t, repo.CreateLicense(&dup), ErrDuplicate)

	// Смена ключа на уже занятый тоже отклоняется
	second := ds.License{ClientID: 1, LicenseKey: "KEY-002", Status: ds.LicenseStatusAvail}
	require.NoError(t, repo.CreateLicense(&second))
	_, err := repo.UpdateLicense(second.ID, ds.LicenseUpdate{LicenseKey: strPtr("KEY-001")})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Обновление без смены ключа проходит
	_, err = repo.UpdateLicense(second.ID, ds.LicenseUpdate{Status: strPtr(ds.LicenseStatusUsed)})
	assert.NoError(t, err)
}

func TestDeviceInstIDUnique(t *testing.T) {
	repo := newTestRepo(t)

	first := ds.Device{ClientID: 1, LicenseID: 1, InstID: "inst-abc", Status: ds.DeviceStatusReady}
	require.NoError(t, repo.CreateDevice(&first))

	dup := ds.Device{ClientID: 1, LicenseID: 2, InstID: "inst-abc", Status: ds.DeviceStatusReady}
	assert.ErrorIs(t, repo.CreateDevice(&dup), ErrDuplicate)
}

func TestUserEmailUnique(t *testing.T) {
	repo := newTestRepo(t)

	first := ds.User{Email: "admin@console.ru", Password: "hash", Status: ds.UserStatusActive, Role: ds.UserRoleAdmin}
	require.NoError(t, repo.CreateUser(&first))

	dup := ds.User{Email: "admin@console.ru", Password: "hash2", Status: ds.UserStatusCreated, Role: ds.UserRoleUser}
	assert.ErrorIs(t, repo.CreateUser(&dup), ErrDuplicate)
}

func TestServerSetDates(t *testing.T) {
	repo := newTestRepo(t)
	before := time.Now()

	license := ds.License{ClientID: 1, LicenseKey: "KEY-100", Status: ds.LicenseStatusAvail}
	require.NoError(t, repo.CreateLicense(&license))
	assert.False(t, license.IssuedDate.Before(before))

	device := ds.Device{ClientID: 1, LicenseID: 1, InstID: "inst-1", Status: ds.DeviceStatusNotConfigured}
	require.NoError(t, repo.CreateDevice(&device))
	assert.False(t, device.RegisteredDate.Before(before))

	client := ds.Client{PartnerID: 1, Name: "Клиент", Type: ds.ClientTypeCompany}
	require.NoError(t, repo.CreateClient(&client))
	assert.False(t, client.CreatedAt.Before(before))

	update := ds.Update{Version: "1.0.0", Title: "Первый релиз"}
	require.NoError(t, repo.CreateUpdate(&update))
	assert.False(t, update.ReleaseDate.Before(before))
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepo(t)

	device := ds.Device{
		ClientID:  1,
		LicenseID: 2,
		InstID:    "inst-7",
		OSVersion: "Astra Linux 1.7",
		Status:    ds.DeviceStatusInitialization,
	}
	require.NoError(t, repo.CreateDevice(&device))

	updated, err := repo.UpdateDevice(device.ID, ds.DeviceUpdate{Status: strPtr(ds.DeviceStatusReady)})
	require.NoError(t, err)
	assert.Equal(t, ds.DeviceStatusReady, updated.Status)
	assert.Equal(t, "inst-7", updated.InstID)
	assert.Equal(t, "Astra Linux 1.7", updated.OSVersion)
	assert.Equal(t, uint(2), updated.LicenseID)
}
