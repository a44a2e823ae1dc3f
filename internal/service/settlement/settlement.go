package settlement

import (
	"context"
	"fmt"
	"math"
	"time"

	"marketplace/internal/entities"
)

const ceilEpsilon = 1e-9

type Service struct {
	repository    Repository
	balances      BalanceRepository
	users         UserService
	notifications NotificationService
	payments      PaymentGateway
	changes       ChangePublisher
	txManager     TxManager
}

func New(
	repository Repository,
	balances BalanceRepository,
	users UserService,
	notifications NotificationService,
	payments PaymentGateway,
	changes ChangePublisher,
	txManager TxManager,
) *Service {
	return &Service{
		repository:    repository,
		balances:      balances,
		users:         users,
		notifications: notifications,
		payments:      payments,
		changes:       changes,
		txManager:     txManager,
	}
}

// Commission is the platform fee on a delivered package, rounded up.
func Commission(price int64, rate float64) int64 {
	return int64(math.Ceil(float64(price)*rate - ceilEpsilon))
}

// Settle runs once per delivered package: the commission always comes out of
// the deposit, net earnings are credited only when the platform collected the money.
func (s *Service) Settle(ctx context.Context, pkg entities.Package, commissionRate float64) (*entities.Settlement, error) {
	if pkg.Status != entities.PackageDelivered || pkg.CourierID == nil {
		return nil, ErrNotSettleable
	}
	if commissionRate < 0 || commissionRate >= 1 {
		return nil, ErrInvalidRate
	}

	commission := Commission(pkg.Price, commissionRate)
	record := entities.Settlement{
		PackageID:        pkg.ID,
		CourierID:        *pkg.CourierID,
		Price:            pkg.Price,
		Commission:       commission,
		NetEarnings:      pkg.Price - commission,
		PaymentMethod:    pkg.PaymentMethod,
		EarningsCredited: !pkg.PaymentMethod.IsCash(),
		SettledAt:        time.Now().UTC(),
	}

	var settled *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		settled, err = s.repository.Record(ctx, record)
		if err != nil {
			return fmt.Errorf("record settlement: %w", err)
		}

		if commission > 0 {
			if _, err := s.DebitCommission(ctx, record.CourierID, commission); err != nil {
				return err
			}
		}
		if record.EarningsCredited && record.NetEarnings > 0 {
			if _, err := s.CreditEarnings(ctx, record.CourierID, record.NetEarnings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	SettlementsTotal.WithLabelValues(pkg.PaymentMethod.String()).Inc()
	CommissionCollected.Add(float64(commission))
	return settled, nil
}

// DebitCommission takes the platform fee from the deposit. The balance may go
// negative; the courier then cannot accept jobs until it is topped up.
func (s *Service) DebitCommission(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	if err := validateMovement(courierID, amount); err != nil {
		return nil, err
	}

	balances, err := s.balances.DebitWallet(ctx, courierID, amount)
	if err != nil {
		return nil, fmt.Errorf("debit commission: %w", err)
	}
	return balances, nil
}

func (s *Service) CreditDeposit(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	if err := validateMovement(courierID, amount); err != nil {
		return nil, err
	}

	balances, err := s.balances.CreditWallet(ctx, courierID, amount)
	if err != nil {
		return nil, fmt.Errorf("credit deposit: %w", err)
	}
	return balances, nil
}

func (s *Service) CreditEarnings(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	if err := validateMovement(courierID, amount); err != nil {
		return nil, err
	}

	balances, err := s.balances.CreditEarnings(ctx, courierID, amount)
	if err != nil {
		return nil, fmt.Errorf("credit earnings: %w", err)
	}
	return balances, nil
}

// Recharge tops up a courier's deposit. The payment is awaited before any
// balance moves; a declined payment leaves balances untouched.
func (s *Service) Recharge(ctx context.Context, actor entities.Actor, recharge entities.Recharge) (*entities.Balances, error) {
	if actor.Role != entities.RoleCourier || actor.UserID != recharge.CourierID {
		return nil, ErrForbidden
	}
	if err := validateMovement(recharge.CourierID, recharge.Amount); err != nil {
		return nil, err
	}
	if !isValidOperator(recharge.Operator) {
		return nil, ErrInvalidOperator
	}

	courier, err := s.users.GetUser(ctx, recharge.CourierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if courier.Role != entities.RoleCourier {
		return nil, ErrNotCourier
	}

	phone := normalizePhone(recharge.Phone)
	if phone == "" {
		phone = courier.Phone
	}
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	result, err := s.payments.InitiatePayment(ctx, entities.PaymentRequest{
		Amount:   recharge.Amount,
		Phone:    phone,
		Operator: recharge.Operator,
	})
	if err != nil {
		RechargesTotal.WithLabelValues(recharge.Operator.String(), "error").Inc()
		return nil, fmt.Errorf("initiate payment: %w", err)
	}
	if result.Status != entities.PaymentSucceeded {
		RechargesTotal.WithLabelValues(recharge.Operator.String(), "declined").Inc()
		return nil, ErrPaymentDeclined
	}

	var balances *entities.Balances
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		balances, err = s.CreditDeposit(ctx, recharge.CourierID, recharge.Amount)
		if err != nil {
			return err
		}

		_, err = s.notifications.Notify(ctx, entities.Notification{
			UserID:  recharge.CourierID,
			Title:   "Deposit recharged",
			Message: fmt.Sprintf("%d F added to your deposit (transaction %s).", recharge.Amount, result.TransactionID),
		})
		if err != nil {
			return fmt.Errorf("notify courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	RechargesTotal.WithLabelValues(recharge.Operator.String(), "credited").Inc()
	s.changes.Publish(entities.ChangeSignal{
		Type:      entities.ChangeBalance,
		UserIDs:   []string{recharge.CourierID},
		Timestamp: time.Now().UTC(),
	})
	return balances, nil
}
