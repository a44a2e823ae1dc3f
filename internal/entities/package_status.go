package entities

import (
	"errors"
	"fmt"
	"time"
)

type PackageStatus string

const (
	PackagePending   PackageStatus = "PENDING"
	PackageAccepted  PackageStatus = "ACCEPTED"
	PackagePickedUp  PackageStatus = "PICKED_UP"
	PackageInTransit PackageStatus = "IN_TRANSIT"
	PackageDelivered PackageStatus = "DELIVERED"
	PackageCancelled PackageStatus = "CANCELLED"
)

var ErrIllegalTransition = errors.New("illegal package status transition")

// transitions is the complete lifecycle; anything not listed is rejected.
var transitions = map[PackageStatus][]PackageStatus{
	PackagePending:   {PackageAccepted, PackageCancelled},
	PackageAccepted:  {PackagePickedUp, PackageCancelled},
	PackagePickedUp:  {PackageInTransit, PackageCancelled},
	PackageInTransit: {PackageDelivered, PackageCancelled},
}

// ActiveStatuses are the ones where a courier is carrying the job.
var ActiveStatuses = []PackageStatus{PackageAccepted, PackagePickedUp, PackageInTransit}

func AllPackageStatuses() []PackageStatus {
	return []PackageStatus{
		PackagePending,
		PackageAccepted,
		PackagePickedUp,
		PackageInTransit,
		PackageDelivered,
		PackageCancelled,
	}
}

func (s PackageStatus) String() string {
	return string(s)
}

func (s PackageStatus) IsValid() bool {
	switch s {
	case PackagePending, PackageAccepted, PackagePickedUp, PackageInTransit, PackageDelivered, PackageCancelled:
		return true
	default:
		return false
	}
}

func (s PackageStatus) IsTerminal() bool {
	return s == PackageDelivered || s == PackageCancelled
}

func (s PackageStatus) CanTransitionTo(next PackageStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition is the only way a package changes status. It appends exactly one
// history entry and bumps UpdatedAt; prior entries are never touched.
func (p *Package) Transition(next PackageStatus, at time.Time, notes string) (PackageTransition, error) {
	from := p.Status
	if !from.CanTransitionTo(next) {
		return PackageTransition{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, next)
	}

	entry := StatusEntry{
		Status:    next,
		Timestamp: at,
		Notes:     notes,
	}
	p.Status = next
	p.StatusHistory = append(p.StatusHistory, entry)
	p.UpdatedAt = at

	change := PackageTransition{
		PackageID: p.ID,
		From:      from,
		Entry:     entry,
		Signature: p.DeliverySignature,
	}
	// The courier is bound once, when the package leaves PENDING for ACCEPTED.
	if from == PackagePending && next == PackageAccepted {
		change.CourierID = p.CourierID
	}
	return change, nil
}
