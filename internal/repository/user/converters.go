package user

import (
	"marketplace/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	user := &entities.User{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Role:            entities.UserRole(u.Role),
		WalletBalance:   u.WalletBalance,
		EarningsBalance: u.EarningsBalance,
		IsBlocked:       u.IsBlocked,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}

	if user.Role == entities.RoleCourier {
		user.Courier = &entities.CourierDetails{
			CourierType:   entities.CourierType(deref(u.CourierType)),
			VehicleType:   entities.VehicleType(deref(u.VehicleType)),
			VehiclePlate:  deref(u.VehiclePlate),
			OperatingCity: deref(u.OperatingCity),
			IDCardNumber:  deref(u.IDCardNumber),
			LicenseNumber: deref(u.LicenseNumber),
			PhotoURL:      deref(u.PhotoURL),
			Address:       deref(u.Address),
			IsAvailable:   u.IsAvailable,
		}
	}

	return user
}

func FromDomain(u *entities.User) *UserDB {
	if u == nil {
		return nil
	}

	model := &UserDB{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Role:            u.Role.String(),
		WalletBalance:   u.WalletBalance,
		EarningsBalance: u.EarningsBalance,
		IsBlocked:       u.IsBlocked,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}

	if c := u.Courier; c != nil {
		courierType := c.CourierType.String()
		vehicleType := c.VehicleType.String()
		model.CourierType = &courierType
		model.VehicleType = &vehicleType
		model.VehiclePlate = &c.VehiclePlate
		model.OperatingCity = &c.OperatingCity
		model.IDCardNumber = &c.IDCardNumber
		model.LicenseNumber = &c.LicenseNumber
		model.PhotoURL = &c.PhotoURL
		model.Address = &c.Address
		model.IsAvailable = c.IsAvailable
	}

	return model
}

func FromDomainModify(m *entities.UserModify) *UserModifyDB {
	if m == nil {
		return nil
	}
	return &UserModifyDB{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		IsBlocked:   m.IsBlocked,
		IsAvailable: m.IsAvailable,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
