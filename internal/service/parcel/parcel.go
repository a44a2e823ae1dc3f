package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"marketplace/internal/entities"
)

const createAttempts = 5

type Config struct {
	MinDeposit int64
}

type Service struct {
	cfg           Config
	repository    Repository
	users         UserService
	pricing       PricingService
	settlement    SettlementService
	notifications NotificationService
	payments      PaymentGateway
	events        EventPublisher
	changes       ChangePublisher
	ids           IDGenerator
	txManager     TxManager

	marketplace singleflight.Group
}

func New(
	cfg Config,
	repository Repository,
	users UserService,
	pricing PricingService,
	settlement SettlementService,
	notifications NotificationService,
	payments PaymentGateway,
	events EventPublisher,
	changes ChangePublisher,
	ids IDGenerator,
	txManager TxManager,
) *Service {
	return &Service{
		cfg:           cfg,
		repository:    repository,
		users:         users,
		pricing:       pricing,
		settlement:    settlement,
		notifications: notifications,
		payments:      payments,
		events:        events,
		changes:       changes,
		ids:           ids,
		txManager:     txManager,
	}
}

// Create prices the draft, charges the sender for non-cash methods and only
// then stores the package as PENDING. A declined payment stores nothing.
func (s *Service) Create(
	ctx context.Context,
	actor entities.Actor,
	draft entities.PackageDraft,
	operator entities.PaymentOperator,
) (*entities.Package, error) {
	if actor.Role != entities.RoleSender {
		return nil, ErrForbidden
	}
	draft.SenderPhone = NormalizePhone(draft.SenderPhone)
	draft.RecipientPhone = NormalizePhone(draft.RecipientPhone)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if !draft.PaymentMethod.IsCash() && !isValidOperator(operator) {
		return nil, ErrInvalidOperator
	}

	quote, err := s.pricing.Quote(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("quote package: %w", err)
	}

	var transactionID string
	if !draft.PaymentMethod.IsCash() {
		transactionID, err = s.charge(ctx, quote.Price, draft.SenderPhone, operator)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	pkg := newPackage(actor.UserID, draft, quote, now)
	pkg.ID = s.ids.NewID()

	var created *entities.Package
	for attempt := 1; ; attempt++ {
		pkg.TrackingNumber = s.ids.NewTrackingNumber()

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			stored, err := s.repository.Create(ctx, pkg)
			if err != nil {
				return fmt.Errorf("create package: %w", err)
			}
			created = stored
			return s.notifySender(ctx, stored, "Package registered",
				fmt.Sprintf("Your package %s is registered and waiting for a courier.", stored.TrackingNumber))
		})
		if errors.Is(err, ErrTrackingNumberTaken) && attempt < createAttempts {
			continue
		}
		if err != nil {
			if transactionID != "" {
				UnappliedChargesTotal.Inc()
				return nil, fmt.Errorf("%w: transaction %s, %d via %s: %w",
					ErrChargeNotApplied, transactionID, quote.Price, operator, err)
			}
			return nil, err
		}
		break
	}

	TransitionsTotal.WithLabelValues(created.Status.String()).Inc()
	s.announce(ctx, created)
	return created, nil
}

// charge returns the processor transaction id of a successful payment.
func (s *Service) charge(ctx context.Context, amount int64, phone string, operator entities.PaymentOperator) (string, error) {
	result, err := s.payments.InitiatePayment(ctx, entities.PaymentRequest{
		Amount:   amount,
		Phone:    phone,
		Operator: operator,
	})
	if err != nil {
		return "", fmt.Errorf("initiate payment: %w", err)
	}
	if result.Status != entities.PaymentSucceeded {
		return "", ErrPaymentDeclined
	}
	return result.TransactionID, nil
}

func newPackage(senderID string, draft entities.PackageDraft, quote entities.Quote, now time.Time) entities.Package {
	pkg := entities.Package{
		SenderID:           senderID,
		SenderName:         strings.TrimSpace(draft.SenderName),
		SenderPhone:        draft.SenderPhone,
		RecipientName:      strings.TrimSpace(draft.RecipientName),
		RecipientPhone:     draft.RecipientPhone,
		Description:        strings.TrimSpace(draft.Description),
		PackageType:        draft.PackageType,
		PackageCount:       max(1, draft.PackageCount),
		WeightKg:           draft.WeightKg,
		Dimensions:         draft.Dimensions,
		PackageValue:       draft.PackageValue,
		HighValue:          draft.HighValue,
		OriginCity:         strings.TrimSpace(draft.OriginCity),
		DestinationCity:    strings.TrimSpace(draft.DestinationCity),
		OriginCommune:      strings.TrimSpace(draft.OriginCommune),
		DestinationCommune: strings.TrimSpace(draft.DestinationCommune),
		OriginAddress:      strings.TrimSpace(draft.OriginAddress),
		DestinationAddress: strings.TrimSpace(draft.DestinationAddress),
		ServiceLevel:       draft.ServiceLevel,
		DistanceKm:         draft.DistanceKm,

		Price:                 quote.Price,
		PaymentMethod:         draft.PaymentMethod,
		EstimatedDeliveryTime: quote.ETALabel,

		Status: entities.PackagePending,
		StatusHistory: []entities.StatusEntry{{
			Status:    entities.PackagePending,
			Timestamp: now,
			Notes:     "Registered on the platform",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pkg.DistanceKm == nil && quote.DistanceKm > 0 {
		d := quote.DistanceKm
		pkg.DistanceKm = &d
	}
	return pkg
}

func (s *Service) Get(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error) {
	if isBlank(id) {
		return nil, ErrInvalidPackageID
	}

	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if !canView(actor, pkg) {
		return nil, ErrForbidden
	}
	return pkg, nil
}

// Track is the public lookup by tracking number.
func (s *Service) Track(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	trackingNumber = NormalizeTrackingNumber(trackingNumber)
	if !strings.HasPrefix(trackingNumber, "EC-") {
		return nil, ErrInvalidTrackingNumber
	}

	pkg, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("track package: %w", err)
	}
	return pkg, nil
}

// ListMarketplace returns the PENDING packages couriers can claim. Concurrent
// refreshes for the same city share one query.
func (s *Service) ListMarketplace(ctx context.Context, city *string) ([]entities.Package, error) {
	key := "*"
	if city != nil {
		key = strings.TrimSpace(*city)
	}

	// the shared query must not die with whichever caller started it
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := s.marketplace.Do(key, func() (interface{}, error) {
		status := entities.PackagePending
		filter := entities.PackageFilter{Status: &status}
		if key != "*" {
			filter.City = &key
		}
		return s.repository.List(sharedCtx, filter)
	})
	if err != nil {
		return nil, fmt.Errorf("list marketplace: %w", err)
	}

	pkgs := v.([]entities.Package)
	out := make([]entities.Package, len(pkgs))
	copy(out, pkgs)
	return out, nil
}

func (s *Service) ListForSender(ctx context.Context, actor entities.Actor, senderID string) ([]entities.Package, error) {
	if !actor.IsAdmin() && actor.UserID != senderID {
		return nil, ErrForbidden
	}

	pkgs, err := s.repository.List(ctx, entities.PackageFilter{SenderID: &senderID})
	if err != nil {
		return nil, fmt.Errorf("list sender packages: %w", err)
	}
	return pkgs, nil
}

func (s *Service) ListForCourier(ctx context.Context, actor entities.Actor, courierID string) ([]entities.Package, error) {
	if !actor.IsAdmin() && actor.UserID != courierID {
		return nil, ErrForbidden
	}

	pkgs, err := s.repository.List(ctx, entities.PackageFilter{CourierID: &courierID})
	if err != nil {
		return nil, fmt.Errorf("list courier packages: %w", err)
	}
	return pkgs, nil
}

func canView(actor entities.Actor, pkg *entities.Package) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.UserID == pkg.SenderID:
		return true
	case pkg.IsAssignedTo(actor.UserID):
		return true
	case actor.Role == entities.RoleCourier && pkg.Status == entities.PackagePending:
		return true
	default:
		return false
	}
}

func (s *Service) notifySender(ctx context.Context, pkg *entities.Package, title, message string) error {
	pkgID := pkg.ID
	_, err := s.notifications.Notify(ctx, entities.Notification{
		UserID:           pkg.SenderID,
		Title:            title,
		Message:          message,
		RelatedPackageID: &pkgID,
	})
	if err != nil {
		return fmt.Errorf("notify sender: %w", err)
	}
	return nil
}

// announce runs after commit: the Kafka event feeds the worker, the change
// signal tells open sessions to re-fetch.
func (s *Service) announce(ctx context.Context, pkg *entities.Package) {
	at := pkg.UpdatedAt
	s.events.PublishPackageEvent(ctx, entities.PackageEvent{
		PackageID:      pkg.ID,
		TrackingNumber: pkg.TrackingNumber,
		Status:         pkg.Status,
		SenderID:       pkg.SenderID,
		CourierID:      pkg.CourierID,
		OccurredAt:     at,
	})

	var recipients []string
	if !changesMarketplace(pkg.Status) {
		recipients = []string{pkg.SenderID}
		if pkg.CourierID != nil {
			recipients = append(recipients, *pkg.CourierID)
		}
	}
	s.changes.Publish(entities.ChangeSignal{
		Type:      entities.ChangePackage,
		UserIDs:   recipients,
		PackageID: pkg.ID,
		Status:    pkg.Status,
		Timestamp: at,
	})
}

// changesMarketplace reports whether every courier's marketplace view is affected.
func changesMarketplace(status entities.PackageStatus) bool {
	return status == entities.PackagePending || status == entities.PackageAccepted || status == entities.PackageCancelled
}
