package policy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"reflourish/config"
)

func newTestPolicy(maxAttempts int, window time.Duration) *memoryPINPolicy {
	cfg := &config.Config{}
	cfg.Delivery = &config.DeliveryConfig{
		MaxPINAttempts:   maxAttempts,
		PINAttemptWindow: window,
	}

	return NewPINAttemptPolicy(cfg).(*memoryPINPolicy)
}

func TestPINPolicy_DisabledAllowsEverything(t *testing.T) {
	policy := newTestPolicy(0, time.Minute)
	pkgID, actorID := uuid.New(), uuid.New()

	for range 100 {
		policy.RecordFailure(pkgID, actorID)
		assert.True(t, policy.Allow(pkgID, actorID))
	}
}

func TestPINPolicy_BlocksAfterMaxFailures(t *testing.T) {
	policy := newTestPolicy(3, time.Minute)
	pkgID, actorID := uuid.New(), uuid.New()

	for range 3 {
		assert.True(t, policy.Allow(pkgID, actorID))
		policy.RecordFailure(pkgID, actorID)
	}

	assert.False(t, policy.Allow(pkgID, actorID))
}

func TestPINPolicy_ScopedPerPackageAndActor(t *testing.T) {
	policy := newTestPolicy(1, time.Minute)
	pkgID, actorID := uuid.New(), uuid.New()

	policy.RecordFailure(pkgID, actorID)
	assert.False(t, policy.Allow(pkgID, actorID))

	// Other actors and other packages are unaffected.
	assert.True(t, policy.Allow(pkgID, uuid.New()))
	assert.True(t, policy.Allow(uuid.New(), actorID))
}

func TestPINPolicy_ResetClearsFailures(t *testing.T) {
	policy := newTestPolicy(1, time.Minute)
	pkgID, actorID := uuid.New(), uuid.New()

	policy.RecordFailure(pkgID, actorID)
	assert.False(t, policy.Allow(pkgID, actorID))

	policy.Reset(pkgID, actorID)
	assert.True(t, policy.Allow(pkgID, actorID))
}

func TestPINPolicy_WindowExpiry(t *testing.T) {
	policy := newTestPolicy(1, time.Minute)
	pkgID, actorID := uuid.New(), uuid.New()

	current := time.Now()
	policy.now = func() time.Time { return current }

	policy.RecordFailure(pkgID, actorID)
	assert.False(t, policy.Allow(pkgID, actorID))

	current = current.Add(2 * time.Minute)
	assert.True(t, policy.Allow(pkgID, actorID))
}
