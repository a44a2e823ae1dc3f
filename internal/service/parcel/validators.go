package parcel

import (
	"regexp"
	"strings"

	"marketplace/internal/entities"
)

var ivorianMobile = regexp.MustCompile(`^(01|05|07)\d{8}$`)

// NormalizePhone strips the spaces people type between digit groups.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func IsValidPhone(phone string) bool {
	return ivorianMobile.MatchString(NormalizePhone(phone))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidPaymentMethod(method entities.PaymentMethod) bool {
	switch method {
	case entities.PaymentWave, entities.PaymentMobileMoney, entities.PaymentCash:
		return true
	default:
		return false
	}
}

func isValidOperator(operator entities.PaymentOperator) bool {
	switch operator {
	case entities.OperatorWave, entities.OperatorOrange, entities.OperatorMTN, entities.OperatorMoov:
		return true
	default:
		return false
	}
}

// NormalizeTrackingNumber accepts user input like " ec-123456 ".
func NormalizeTrackingNumber(trackingNumber string) string {
	return strings.ToUpper(strings.TrimSpace(trackingNumber))
}

func validateDraft(draft entities.PackageDraft) error {
	switch {
	case isBlank(draft.SenderName), isBlank(draft.RecipientName):
		return ErrInvalidName
	case !IsValidPhone(draft.SenderPhone), !IsValidPhone(draft.RecipientPhone):
		return ErrInvalidPhone
	case isBlank(draft.OriginAddress), isBlank(draft.DestinationAddress):
		return ErrInvalidAddress
	case isBlank(draft.Description):
		return ErrInvalidDescription
	case !isValidPaymentMethod(draft.PaymentMethod):
		return ErrInvalidPaymentMethod
	}
	return nil
}
