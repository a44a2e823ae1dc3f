package settlement

import (
	"regexp"
	"strings"

	"marketplace/internal/entities"
)

var ivorianMobile = regexp.MustCompile(`^(01|05|07)\d{8}$`)

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func isValidPhone(phone string) bool {
	return ivorianMobile.MatchString(phone)
}

func isValidOperator(operator entities.PaymentOperator) bool {
	switch operator {
	case entities.OperatorWave, entities.OperatorOrange, entities.OperatorMTN, entities.OperatorMoov:
		return true
	default:
		return false
	}
}

func validateMovement(courierID string, amount int64) error {
	if strings.TrimSpace(courierID) == "" {
		return ErrInvalidCourierID
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
