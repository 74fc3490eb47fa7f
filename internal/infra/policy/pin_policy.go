// Package policy holds in-memory delivery policy guards.
package policy

import (
	"sync"
	"time"

	"reflourish/config"
	"reflourish/internal/domain/service"

	"github.com/google/uuid"
)

type attemptKey struct {
	packageID uuid.UUID
	actorID   uuid.UUID
}

type attemptRecord struct {
	failures int
	first    time.Time
}

// memoryPINPolicy caps failed PIN entries per (package, actor) pair within
// a sliding window. With maxAttempts == 0 the policy allows everything,
// which keeps handoff verification behavior identical to running without a
// policy at all.
type memoryPINPolicy struct {
	mu          sync.Mutex
	records     map[attemptKey]*attemptRecord
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewPINAttemptPolicy builds the policy from delivery configuration.
func NewPINAttemptPolicy(cfg *config.Config) service.PINAttemptPolicy {
	return &memoryPINPolicy{
		records:     make(map[attemptKey]*attemptRecord),
		maxAttempts: cfg.Delivery.MaxPINAttempts,
		window:      cfg.Delivery.PINAttemptWindow,
		now:         time.Now,
	}
}

// Allow reports whether the actor may attempt a PIN entry for the package.
func (p *memoryPINPolicy) Allow(packageID, actorID uuid.UUID) bool {
	if p.maxAttempts <= 0 {
		return true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := attemptKey{packageID: packageID, actorID: actorID}
	record, ok := p.records[key]
	if !ok {
		return true
	}
	if p.expired(record) {
		delete(p.records, key)

		return true
	}

	return record.failures < p.maxAttempts
}

// RecordFailure notes a failed PIN entry for the package/actor pair.
func (p *memoryPINPolicy) RecordFailure(packageID, actorID uuid.UUID) {
	if p.maxAttempts <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := attemptKey{packageID: packageID, actorID: actorID}
	record, ok := p.records[key]
	if !ok || p.expired(record) {
		p.records[key] = &attemptRecord{failures: 1, first: p.now()}

		return
	}

	record.failures++
}

// Reset clears recorded failures after a successful verification.
func (p *memoryPINPolicy) Reset(packageID, actorID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.records, attemptKey{packageID: packageID, actorID: actorID})
}

func (p *memoryPINPolicy) expired(record *attemptRecord) bool {
	return p.window > 0 && p.now().Sub(record.first) > p.window
}
