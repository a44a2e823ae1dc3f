package changes

import (
	"context"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/internal/entities"
)

const defaultBuffer = 16

var (
	SubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "changes_subscribers",
		Help: "Number of open change subscriptions",
	})

	DroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "changes_dropped_total",
			Help: "Signals dropped because a subscriber was not reading",
		},
		[]string{"type"},
	)
)

type subscriber struct {
	userID string
	ch     chan entities.ChangeSignal
}

// Broker fans change signals out to in-process subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the signal, which is safe
// because a signal only means "re-fetch" and the next one carries the same
// meaning.
type Broker struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
	closed bool
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Broker{
		subs:   make(map[*subscriber]struct{}),
		buffer: buffer,
	}
}

// Publish delivers to the listed users, or to everyone when UserIDs is empty.
func (b *Broker) Publish(signal entities.ChangeSignal) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if len(signal.UserIDs) > 0 && !slices.Contains(signal.UserIDs, sub.userID) {
			continue
		}
		select {
		case sub.ch <- signal:
		default:
			DroppedTotal.WithLabelValues(string(signal.Type)).Inc()
		}
	}
}

// Subscribe returns a channel of signals visible to userID. The channel is
// closed after cancel is called, ctx is done or the broker is closed.
func (b *Broker) Subscribe(ctx context.Context, userID string) (<-chan entities.ChangeSignal, func()) {
	sub := &subscriber{
		userID: userID,
		ch:     make(chan entities.ChangeSignal, b.buffer),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	SubscribersGauge.Inc()

	ctx, stop := context.WithCancel(ctx)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stop()
			b.remove(sub)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return sub.ch, cancel
}

func (b *Broker) remove(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
	SubscribersGauge.Dec()
}

// Close ends every subscription; later subscriptions get a closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
		SubscribersGauge.Dec()
	}
}
