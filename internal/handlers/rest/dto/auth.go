package dto

import (
	"time"

	"marketplace/internal/entities"
)

type CourierDetails struct {
	CourierType   string `json:"courierType"`
	VehicleType   string `json:"vehicleType"`
	VehiclePlate  string `json:"vehiclePlate"`
	OperatingCity string `json:"operatingCity"`
	IDCardNumber  string `json:"idCardNumber"`
	LicenseNumber string `json:"licenseNumber"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	Address       string `json:"address,omitempty"`
	IsAvailable   bool   `json:"isAvailable"`
}

type RegisterRequest struct {
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Email    *string         `json:"email,omitempty"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	Courier  *CourierDetails `json:"courier,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           *string         `json:"email,omitempty"`
	Role            string          `json:"role"`
	Courier         *CourierDetails `json:"courier,omitempty"`
	WalletBalance   int64           `json:"walletBalance"`
	EarningsBalance int64           `json:"earningsBalance"`
	IsBlocked       bool            `json:"isBlocked"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type BlockedRequest struct {
	Blocked *bool `json:"blocked"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

func (r RegisterRequest) ToDomain() entities.Registration {
	reg := entities.Registration{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Password: r.Password,
		Role:     entities.UserRole(r.Role),
	}
	if r.Courier != nil {
		reg.Courier = &entities.CourierDetails{
			CourierType:   entities.CourierType(r.Courier.CourierType),
			VehicleType:   entities.VehicleType(r.Courier.VehicleType),
			VehiclePlate:  r.Courier.VehiclePlate,
			OperatingCity: r.Courier.OperatingCity,
			IDCardNumber:  r.Courier.IDCardNumber,
			LicenseNumber: r.Courier.LicenseNumber,
			PhotoURL:      r.Courier.PhotoURL,
			Address:       r.Courier.Address,
			IsAvailable:   r.Courier.IsAvailable,
		}
	}
	return reg
}

// FromUser never exposes the password hash.
func FromUser(u *entities.User) User {
	out := User{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		Role:            u.Role.String(),
		WalletBalance:   u.WalletBalance,
		EarningsBalance: u.EarningsBalance,
		IsBlocked:       u.IsBlocked,
		CreatedAt:       u.CreatedAt,
	}
	if c := u.Courier; c != nil {
		out.Courier = &CourierDetails{
			CourierType:   c.CourierType.String(),
			VehicleType:   c.VehicleType.String(),
			VehiclePlate:  c.VehiclePlate,
			OperatingCity: c.OperatingCity,
			IDCardNumber:  c.IDCardNumber,
			LicenseNumber: c.LicenseNumber,
			PhotoURL:      c.PhotoURL,
			Address:       c.Address,
			IsAvailable:   c.IsAvailable,
		}
	}
	return out
}

func FromUsers(users []entities.User) []User {
	out := make([]User, len(users))
	for i := range users {
		out[i] = FromUser(&users[i])
	}
	return out
}
