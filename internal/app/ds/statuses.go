package ds

// Статусы и типы доменных сущностей
const (
	PartnerTypeProvider    = "provider"
	PartnerTypeDistributor = "distributor"
	PartnerTypeReseller    = "reseller"

	PartnerStatusActive    = "active"
	PartnerStatusInactive  = "inactive"
	PartnerStatusSuspended = "suspended"

	ClientTypeCompany  = "COMPANY"
	ClientTypeRegistry = "REGISTRY"

	LicenseStatusAvail   = "AVAIL"
	LicenseStatusUsed    = "USED"
	LicenseStatusBlocked = "BLOCKED"

	DeviceStatusNotConfigured  = "not_configured"
	DeviceStatusInitialization = "initialization"
	DeviceStatusReady          = "ready"
	DeviceStatusSyncError      = "sync_error"

	UserStatusActive    = "ACTIVE"
	UserStatusCreated   = "CREATED"
	UserStatusConfirmed = "CONFIRMED"

	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)
