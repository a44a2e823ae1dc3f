package entities

import "time"

type Settlement struct {
	PackageID        string
	CourierID        string
	Price            int64
	Commission       int64
	NetEarnings      int64
	PaymentMethod    PaymentMethod
	EarningsCredited bool
	SettledAt        time.Time
}

type Balances struct {
	CourierID       string
	WalletBalance   int64
	EarningsBalance int64
}

type PaymentOperator string

const (
	OperatorWave   PaymentOperator = "WAVE"
	OperatorOrange PaymentOperator = "ORANGE"
	OperatorMTN    PaymentOperator = "MTN"
	OperatorMoov   PaymentOperator = "MOOV"
)

func (o PaymentOperator) String() string {
	return string(o)
}

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
)

type PaymentRequest struct {
	Amount   int64
	Phone    string
	Operator PaymentOperator
}

type PaymentResult struct {
	Status        PaymentStatus
	TransactionID string
}

type Recharge struct {
	CourierID string
	Amount    int64
	Phone     string
	Operator  PaymentOperator
}
