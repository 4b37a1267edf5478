package services

import "time"

// CooldownDecision is the outcome of evaluating the cooldown window for
// one scan. The zero value means the scan may proceed.
type CooldownDecision struct {
	Blocked   bool
	Remaining time.Duration
}

// RemainingMinutes reports the wait rounded half-up to whole minutes.
// While any time remains it never reports less than 1, so operators are
// never told to wait zero minutes.
func (d CooldownDecision) RemainingMinutes() int {
	if !d.Blocked || d.Remaining <= 0 {
		return 0
	}
	mins := int(d.Remaining.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	return mins
}

// CooldownPolicy decides whether a participant's most recent redemption
// is still too fresh for another one. It is pure: no clock, no store.
type CooldownPolicy struct{}

func NewCooldownPolicy() *CooldownPolicy {
	return &CooldownPolicy{}
}

// Evaluate blocks the scan when the time elapsed since lastRedeemedAt is
// shorter than cooldown. A nil lastRedeemedAt (participant has never
// redeemed) or a zero cooldown always allows.
func (p *CooldownPolicy) Evaluate(lastRedeemedAt *time.Time, now time.Time, cooldown time.Duration) CooldownDecision {
	if cooldown <= 0 || lastRedeemedAt == nil {
		return CooldownDecision{}
	}

	elapsed := now.Sub(*lastRedeemedAt)
	if elapsed >= cooldown {
		return CooldownDecision{}
	}

	return CooldownDecision{Blocked: true, Remaining: cooldown - elapsed}
}
