// Package countdown derives order timers purely from the creation time and the current tick.
package countdown

import "time"

const (
	// CancelCooldown is how long an order must exist before it may be canceled.
	CancelCooldown = 4 * time.Minute
	// OrderLifetime is how long an order waits for an OTP before it counts as expired.
	OrderLifetime = 20 * time.Minute
)

// Remaining returns duration - (now - createdAt), floored at zero.
func Remaining(createdAt, now time.Time, duration time.Duration) time.Duration {
	left := duration - now.Sub(createdAt)
	if left < 0 {
		return 0
	}
	if left > duration {
		return duration
	}
	return left
}

func Cooldown(createdAt, now time.Time) time.Duration {
	return Remaining(createdAt, now, CancelCooldown)
}

func Expiry(createdAt, now time.Time) time.Duration {
	return Remaining(createdAt, now, OrderLifetime)
}

// Timers is the view of both countdowns at one tick.
type Timers struct {
	CooldownSeconds int  `json:"cooldown_seconds"`
	ExpirySeconds   int  `json:"expiry_seconds"`
	CanCancel       bool `json:"can_cancel"`
	Expired         bool `json:"expired"`
}

func At(createdAt, now time.Time) Timers {
	cd := Cooldown(createdAt, now)
	ex := Expiry(createdAt, now)
	return Timers{
		CooldownSeconds: seconds(cd),
		ExpirySeconds:   seconds(ex),
		CanCancel:       cd == 0,
		Expired:         ex == 0,
	}
}

// seconds rounds up so a countdown shows 1 until it really reaches zero.
func seconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
