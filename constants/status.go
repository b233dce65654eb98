package constants

// User roles
const (
	RoleAdmin = 1
	RoleStaff = 2
)

// Reservation status
const (
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
)

// Room status
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Invoice status
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
)

// Service status
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// Date and timestamp formats used at the API boundary
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Setting keys
const (
	SettingTaxRate = "tax_rate"
)
