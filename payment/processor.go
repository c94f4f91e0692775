package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -source=processor.go -destination=mocks/mock_processor.go -package=mocks

// Processor settles the paid remainder of a booking price. There is no real
// gateway behind this app: the only implementation simulates one with a
// fixed delay and a configurable random failure rate.
type Processor interface {
	Process(ctx context.Context, amount float64, paymentMethodID string) error
}

type MockProcessor struct {
	delay       time.Duration
	failureRate float64

	mu   sync.Mutex
	rand *rand.Rand
}

func NewMockProcessor(delay time.Duration, failureRate float64, seed uint64) *MockProcessor {
	return &MockProcessor{
		delay:       delay,
		failureRate: failureRate,
		rand:        rand.New(rand.NewSource(int64(seed))),
	}
}

func (p *MockProcessor) Process(ctx context.Context, amount float64, paymentMethodID string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
	}

	p.mu.Lock()
	failed := p.rand.Float64() < p.failureRate
	p.mu.Unlock()

	if failed {
		return ErrPaymentFailed
	}

	return nil
}
