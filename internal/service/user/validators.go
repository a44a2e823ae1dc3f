package user

import (
	"net/mail"
	"regexp"
	"strings"

	"marketplace/internal/entities"
)

const minPasswordLength = 6

var ivorianMobile = regexp.MustCompile(`^(01|05|07)\d{8}$`)

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return ivorianMobile.MatchString(phone)
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidVehicle(v entities.VehicleType) bool {
	switch v {
	case entities.VehicleMoto, entities.VehicleCar, entities.VehicleVan:
		return true
	default:
		return false
	}
}

func isValidCourierType(c entities.CourierType) bool {
	switch c {
	case entities.CourierStandard, entities.CourierIndependent:
		return true
	default:
		return false
	}
}

func isValidCity(city string) bool {
	switch strings.TrimSpace(city) {
	case "Abidjan", "Korhogo":
		return true
	default:
		return false
	}
}

func validateRegistration(reg entities.Registration) error {
	if !isValidName(reg.Name) {
		return ErrInvalidName
	}
	if !isValidPhone(reg.Phone) {
		return ErrInvalidPhone
	}
	if reg.Email != nil && !isValidEmail(*reg.Email) {
		return ErrInvalidEmail
	}
	if len(reg.Password) < minPasswordLength {
		return ErrWeakPassword
	}

	switch reg.Role {
	case entities.RoleSender:
		return nil
	case entities.RoleCourier:
		return validateCourier(reg.Courier)
	default:
		return ErrInvalidRole
	}
}

func validateCourier(details *entities.CourierDetails) error {
	if details == nil {
		return ErrMissingRequiredFields
	}
	if !isValidCourierType(details.CourierType) {
		return ErrInvalidCourierType
	}
	if !isValidVehicle(details.VehicleType) {
		return ErrInvalidVehicle
	}
	if !isValidCity(details.OperatingCity) {
		return ErrInvalidCity
	}
	if strings.TrimSpace(details.IDCardNumber) == "" || strings.TrimSpace(details.LicenseNumber) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
