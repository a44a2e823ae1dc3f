package user

import "time"

type UserDB struct {
	ID           string
	Name         string
	Phone        string
	Email        *string
	PasswordHash string
	Role         string

	CourierType   *string
	VehicleType   *string
	VehiclePlate  *string
	OperatingCity *string
	IDCardNumber  *string
	LicenseNumber *string
	PhotoURL      *string
	Address       *string
	IsAvailable   bool

	WalletBalance   int64
	EarningsBalance int64

	IsBlocked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModifyDB struct {
	ID          *string
	Name        *string
	Email       *string
	IsBlocked   *bool
	IsAvailable *bool
}
