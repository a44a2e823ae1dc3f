package entities

import "time"

type UserRole string

const (
	RoleSender  UserRole = "SENDER"
	RoleCourier UserRole = "COURIER"
	RoleAdmin   UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

type VehicleType string

const (
	VehicleMoto VehicleType = "MOTO"
	VehicleCar  VehicleType = "VOITURE"
	VehicleVan  VehicleType = "FOURGONNETTE"
)

func (v VehicleType) String() string {
	return string(v)
}

type CourierType string

const (
	CourierStandard    CourierType = "STANDARD"
	CourierIndependent CourierType = "INDEPENDENT"
)

func (c CourierType) String() string {
	return string(c)
}

type CourierDetails struct {
	CourierType   CourierType
	VehicleType   VehicleType
	VehiclePlate  string
	OperatingCity string
	IDCardNumber  string
	LicenseNumber string
	PhotoURL      string
	Address       string
	IsAvailable   bool
}

type User struct {
	ID           string
	Name         string
	Phone        string
	Email        *string
	PasswordHash string
	Role         UserRole
	Courier      *CourierDetails

	// Couriers only. WalletBalance is the deposit commission is drawn from,
	// EarningsBalance the net pay from non-cash deliveries.
	WalletBalance   int64
	EarningsBalance int64

	IsBlocked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModify struct {
	ID          *string
	Name        *string
	Email       *string
	IsBlocked   *bool
	IsAvailable *bool
}

type Registration struct {
	Name     string
	Phone    string
	Email    *string
	Password string
	Role     UserRole
	Courier  *CourierDetails
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
