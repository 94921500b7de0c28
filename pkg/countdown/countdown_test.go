package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingAtCreation(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, CancelCooldown, Cooldown(created, created))
	assert.Equal(t, OrderLifetime, Expiry(created, created))
}

func TestRemainingStrictlyDecreasesThenFloors(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name     string
		fn       func(time.Time, time.Time) time.Duration
		duration time.Duration
	}{
		{name: "Cooldown", fn: Cooldown, duration: CancelCooldown},
		{name: "Expiry", fn: Expiry, duration: OrderLifetime},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := tc.fn(created, created)
			for step := time.Second; step <= tc.duration; step += time.Second {
				cur := tc.fn(created, created.Add(step))
				assert.Less(t, cur, prev, "at +%s", step)
				prev = cur
			}
			assert.Zero(t, prev)
			assert.Zero(t, tc.fn(created, created.Add(tc.duration+time.Hour)))
		})
	}
}

func TestAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected Timers
	}{
		{
			name:     "Cancel attempted after one minute",
			elapsed:  time.Minute,
			expected: Timers{CooldownSeconds: 180, ExpirySeconds: 1140},
		},
		{
			name:     "Cooldown over",
			elapsed:  4 * time.Minute,
			expected: Timers{CooldownSeconds: 0, ExpirySeconds: 960, CanCancel: true},
		},
		{
			name:     "Partial second rounds up",
			elapsed:  3*time.Minute + 59*time.Second + 500*time.Millisecond,
			expected: Timers{CooldownSeconds: 1, ExpirySeconds: 961},
		},
		{
			name:     "Expired",
			elapsed:  25 * time.Minute,
			expected: Timers{CanCancel: true, Expired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, At(created, created.Add(tt.elapsed)))
		})
	}
}

func TestRemainingClockSkew(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, CancelCooldown, Cooldown(created, created.Add(-time.Minute)))
}
