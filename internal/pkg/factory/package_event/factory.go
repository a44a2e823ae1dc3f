package package_event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
	"marketplace/internal/service/dispatch"
)

type StatusHandlerFactory struct {
	sms             dispatch.SMSSender
	trackingBaseURL string
}

func NewStatusHandlerFactory(sms dispatch.SMSSender, trackingBaseURL string) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		sms:             sms,
		trackingBaseURL: strings.TrimRight(trackingBaseURL, "/"),
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PackageStatus) (dispatch.ExecuteFn, error) {
	switch status {
	case entities.PackagePending:
		return f.createdHandler, nil
	case entities.PackageDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", dispatch.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) TrackingURL(trackingNumber string) string {
	return f.trackingBaseURL + "/" + trackingNumber
}

func (f *StatusHandlerFactory) createdHandler(ctx context.Context, pkg entities.Package) error {
	link := f.TrackingURL(pkg.TrackingNumber)

	// both parties get a link; one failed SMS must not hide the other
	errSender := f.sms.Send(ctx, pkg.SenderPhone, fmt.Sprintf(
		"Votre colis %s pour %s est enregistré. Suivi: %s",
		pkg.TrackingNumber, pkg.RecipientName, link,
	))
	errRecipient := f.sms.Send(ctx, pkg.RecipientPhone, fmt.Sprintf(
		"%s vous envoie un colis (%s). Suivi: %s",
		pkg.SenderName, pkg.TrackingNumber, link,
	))

	if err := errors.Join(errSender, errRecipient); err != nil {
		return fmt.Errorf("send tracking sms for package %s: %w", pkg.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, pkg entities.Package) error {
	signer := pkg.RecipientName
	if pkg.DeliverySignature != nil {
		signer = pkg.DeliverySignature.SignerName
	}

	err := f.sms.Send(ctx, pkg.SenderPhone, fmt.Sprintf(
		"Votre colis %s a été livré. Reçu par %s.",
		pkg.TrackingNumber, signer,
	))
	if err != nil {
		return fmt.Errorf("send delivery sms for package %s: %w", pkg.ID, err)
	}
	return nil
}
