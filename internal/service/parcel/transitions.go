package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/tx"
)

type step struct {
	next entities.PackageStatus
	// authorize sees the package as read inside the transaction.
	authorize func(ctx context.Context, pkg *entities.Package) error
	prepare   func(pkg *entities.Package, at time.Time)
	note      func(pkg *entities.Package) string
	title     string
	message   func(pkg *entities.Package) string
}

// Accept claims a PENDING package for the calling courier. Of two couriers
// racing for the same package exactly one wins; the other gets ErrAlreadyAccepted.
func (s *Service) Accept(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error) {
	if actor.Role != entities.RoleCourier {
		return nil, ErrForbidden
	}

	var courierName string
	pkg, err := s.transition(ctx, id, step{
		next: entities.PackageAccepted,
		authorize: func(ctx context.Context, pkg *entities.Package) error {
			if pkg.Status != entities.PackagePending && pkg.CourierID != nil {
				return ErrAlreadyAccepted
			}
			courier, err := s.users.GetUser(ctx, actor.UserID)
			if err != nil {
				return fmt.Errorf("get courier: %w", err)
			}
			if courier.IsBlocked {
				return ErrCourierBlocked
			}
			if courier.WalletBalance < s.cfg.MinDeposit {
				return fmt.Errorf("%w: balance %d, required %d", ErrInsufficientDeposit, courier.WalletBalance, s.cfg.MinDeposit)
			}
			courierName = courier.Name
			return nil
		},
		prepare: func(pkg *entities.Package, _ time.Time) {
			courierID := actor.UserID
			pkg.CourierID = &courierID
		},
		note:  func(*entities.Package) string { return "Accepted by " + courierName },
		title: "Courier found",
		message: func(pkg *entities.Package) string {
			return fmt.Sprintf("%s accepted your package %s.", courierName, pkg.TrackingNumber)
		},
	})
	if errors.Is(err, ErrStatusConflict) && !errors.Is(err, ErrAlreadyAccepted) {
		return nil, fmt.Errorf("%w: %w", ErrAlreadyAccepted, err)
	}
	return pkg, err
}

func (s *Service) PickUp(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error) {
	return s.transition(ctx, id, step{
		next:      entities.PackagePickedUp,
		authorize: assignedCourierOnly(actor),
		note:      func(*entities.Package) string { return "Picked up" },
		title:     "Package picked up",
		message: func(pkg *entities.Package) string {
			return fmt.Sprintf("The courier has picked up your package %s.", pkg.TrackingNumber)
		},
	})
}

func (s *Service) Depart(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error) {
	return s.transition(ctx, id, step{
		next:      entities.PackageInTransit,
		authorize: assignedCourierOnly(actor),
		note:      func(*entities.Package) string { return "On the way" },
		title:     "Package on the way",
		message: func(pkg *entities.Package) string {
			return fmt.Sprintf("Your package %s is on its way to %s.", pkg.TrackingNumber, pkg.RecipientName)
		},
	})
}

// Deliver closes the job and settles it in the same transaction.
func (s *Service) Deliver(ctx context.Context, actor entities.Actor, id, signerName string) (*entities.Package, error) {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return nil, ErrMissingSignerName
	}

	return s.transition(ctx, id, step{
		next:      entities.PackageDelivered,
		authorize: assignedCourierOnly(actor),
		prepare: func(pkg *entities.Package, at time.Time) {
			pkg.DeliverySignature = &entities.DeliverySignature{
				SignerName: signerName,
				SignedAt:   at,
			}
		},
		note:  func(*entities.Package) string { return "Delivered to " + signerName },
		title: "Package delivered",
		message: func(pkg *entities.Package) string {
			return fmt.Sprintf("Your package %s was delivered to %s.", pkg.TrackingNumber, signerName)
		},
	})
}

func (s *Service) Cancel(ctx context.Context, actor entities.Actor, id, reason string) (*entities.Package, error) {
	reason = strings.TrimSpace(reason)

	return s.transition(ctx, id, step{
		next: entities.PackageCancelled,
		authorize: func(_ context.Context, pkg *entities.Package) error {
			if actor.IsAdmin() || (actor.Role == entities.RoleSender && actor.UserID == pkg.SenderID) {
				return nil
			}
			return ErrForbidden
		},
		note: func(*entities.Package) string {
			who := "sender"
			if actor.IsAdmin() {
				who = "administrator"
			}
			if reason == "" {
				return "Cancelled by " + who
			}
			return fmt.Sprintf("Cancelled by %s: %s", who, reason)
		},
		title: "Package cancelled",
		message: func(pkg *entities.Package) string {
			return fmt.Sprintf("Your package %s was cancelled.", pkg.TrackingNumber)
		},
	})
}

func assignedCourierOnly(actor entities.Actor) func(context.Context, *entities.Package) error {
	return func(_ context.Context, pkg *entities.Package) error {
		if actor.Role != entities.RoleCourier || !pkg.IsAssignedTo(actor.UserID) {
			return ErrForbidden
		}
		return nil
	}
}

func (s *Service) transition(ctx context.Context, id string, st step) (*entities.Package, error) {
	if isBlank(id) {
		return nil, ErrInvalidPackageID
	}

	var result *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		if err := st.authorize(ctx, pkg); err != nil {
			return err
		}

		now := time.Now().UTC()
		if st.prepare != nil {
			st.prepare(pkg, now)
		}

		change, err := pkg.Transition(st.next, now, st.note(pkg))
		if err != nil {
			return err
		}
		if err := s.repository.ApplyTransition(ctx, change); err != nil {
			return fmt.Errorf("apply transition: %w", err)
		}

		if st.next == entities.PackageDelivered {
			if err := s.settle(ctx, pkg); err != nil {
				return err
			}
		}

		if err := s.notifySender(ctx, pkg, st.title, st.message(pkg)); err != nil {
			return err
		}

		result = pkg
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %w", ErrStatusConflict, err)
		}
		return nil, err
	}

	TransitionsTotal.WithLabelValues(result.Status.String()).Inc()
	s.announce(ctx, result)
	return result, nil
}

func (s *Service) settle(ctx context.Context, pkg *entities.Package) error {
	cfg, err := s.pricing.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("get commission rate: %w", err)
	}
	if _, err := s.settlement.Settle(ctx, *pkg, cfg.CommissionRate); err != nil {
		return fmt.Errorf("settle package: %w", err)
	}
	return nil
}
