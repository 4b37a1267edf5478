package services

import (
	"errors"
	"sync"
	"time"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"gorm.io/gorm"
)

type RedemptionOutcome string

const (
	OutcomeCommitted           RedemptionOutcome = "committed"
	OutcomeParticipantNotFound RedemptionOutcome = "participant_not_found"
	OutcomeCooldownBlocked     RedemptionOutcome = "cooldown_blocked"
	OutcomeInsufficientBalance RedemptionOutcome = "insufficient_balance"
)

// RedemptionResult is the decided outcome of a single scan. Rejections
// are results, not errors; an error return means the store failed and
// nothing was committed.
type RedemptionResult struct {
	Outcome          RedemptionOutcome `json:"outcome"`
	ParticipantName  string            `json:"participant_name,omitempty"`
	RemainingBalance int               `json:"remaining_balance"`
	WaitMinutes      int               `json:"wait_minutes,omitempty"`
}

type RedemptionService struct {
	db       *gorm.DB
	config   *EventConfigService
	cooldown *CooldownPolicy
	clock    Clock

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewRedemptionService(db *gorm.DB, config *EventConfigService, cooldown *CooldownPolicy, clock Clock) *RedemptionService {
	return &RedemptionService{
		db:       db,
		config:   config,
		cooldown: cooldown,
		clock:    clock,
		locks:    make(map[uint]*sync.Mutex),
	}
}

// participantLock returns the mutex that serializes redemptions for one
// participant. Scans for different participants proceed concurrently.
func (s *RedemptionService) participantLock(participantID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[participantID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[participantID] = lock
	}
	return lock
}

// Redeem runs one scan through the decision chain: unknown participant,
// cooldown window, exhausted balance, then commit. The per-participant
// lock is held across the whole read-decide-write sequence, so two
// simultaneous scans of the same badge can never both observe the same
// balance. The cooldown check deliberately precedes the balance check:
// an exhausted participant who was also served recently gets the
// cooldown message.
func (s *RedemptionService) Redeem(participantID, operatorID uint) (*RedemptionResult, error) {
	lock := s.participantLock(participantID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()

	var participant models.Participant
	if err := s.db.First(&participant, participantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RedemptionResult{Outcome: OutcomeParticipantNotFound}, nil
		}
		return nil, err
	}

	cooldown, err := s.config.CooldownDuration()
	if err != nil {
		return nil, err
	}

	lastAt, err := s.LastRedeemedAt(participantID)
	if err != nil {
		return nil, err
	}

	if decision := s.cooldown.Evaluate(lastAt, now, cooldown); decision.Blocked {
		return &RedemptionResult{
			Outcome:          OutcomeCooldownBlocked,
			ParticipantName:  participant.Name,
			RemainingBalance: participant.MealBalance,
			WaitMinutes:      decision.RemainingMinutes(),
		}, nil
	}

	if participant.MealBalance <= 0 {
		return &RedemptionResult{
			Outcome:         OutcomeInsufficientBalance,
			ParticipantName: participant.Name,
		}, nil
	}

	// Decrement and ledger insert commit together or not at all. The
	// guarded update is a second line of defense against a balance that
	// changed outside the participant lock (e.g. an admin reset).
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Participant{}).
			Where("id = ? AND meal_balance > 0", participantID).
			UpdateColumn("meal_balance", gorm.Expr("meal_balance - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("balance changed concurrently")
		}
		return tx.Create(&models.Redemption{
			ParticipantID: participantID,
			OperatorID:    operatorID,
			RedeemedAt:    now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &RedemptionResult{
		Outcome:          OutcomeCommitted,
		ParticipantName:  participant.Name,
		RemainingBalance: participant.MealBalance - 1,
	}, nil
}

// LastRedeemedAt returns the timestamp of the participant's most recent
// ledger entry, or nil if they have never redeemed.
func (s *RedemptionService) LastRedeemedAt(participantID uint) (*time.Time, error) {
	var event models.Redemption
	err := s.db.Where("participant_id = ?", participantID).
		Order("redeemed_at DESC").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event.RedeemedAt, nil
}
