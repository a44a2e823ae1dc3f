package identity

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

const trackingPrefix = "EC-"

// Generator hands out opaque ids and human-facing tracking numbers. Tracking
// numbers are short on purpose and can collide; the registry rejects a
// duplicate and the caller draws again.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewID() string {
	return uuid.NewString()
}

func (g *Generator) NewTrackingNumber() string {
	return fmt.Sprintf("%s%06d", trackingPrefix, rand.IntN(1_000_000))
}
