package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"game-event-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// evaluationTimeout bounds one background eligibility check. Hitting it is an
// evaluation failure (request stays PENDING), never an implicit rejection.
const evaluationTimeout = 10 * time.Second

// RewardRequestService owns the PENDING → APPROVED/REJECTED transition. The
// submission path is synchronous up to and including the PENDING insert; the
// eligibility check runs detached from the caller's request.
type RewardRequestService struct {
	DB       *gorm.DB
	Events   *EventService
	Checkers *CheckerRegistry
}

func NewRewardRequestService(db *gorm.DB, events *EventService, checkers *CheckerRegistry) *RewardRequestService {
	return &RewardRequestService{DB: db, Events: events, Checkers: checkers}
}

// Submit creates a PENDING request and schedules its evaluation. The caller
// gets the PENDING record back immediately and polls for the terminal state.
func (s *RewardRequestService) Submit(userID, eventID, rewardID string) (*models.RewardRequest, error) {
	event, err := s.Events.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	request := &models.RewardRequest{
		ID:       uuid.NewString(),
		UserID:   userID,
		EventID:  eventID,
		RewardID: rewardID,
		Status:   models.RewardRequestStatusPending,
	}
	// The (user_id, event_id) unique index is the duplicate guard. An
	// application-level lookup first would race between concurrent submits;
	// the insert either wins or collides atomically.
	if err := s.DB.Create(request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRewardRequest
		}
		return nil, err
	}

	go s.evaluate(event, userID, request.ID)

	return request, nil
}

// evaluate resolves the checker and writes the terminal status. Runs on its
// own goroutine; the submitting request has already returned, so every
// failure here is logged and the request is left PENDING.
func (s *RewardRequestService) evaluate(event *models.Event, userID, requestID string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [REWARD_EVAL] panic evaluating request %s: %v", requestID, r)
		}
	}()

	checker, err := s.Checkers.Resolve(event)
	if err != nil {
		log.Printf("❌ [REWARD_EVAL] request %s: %v", requestID, err)
		return
	}

	satisfied, err := s.runChecker(checker, event, userID)
	if err != nil {
		log.Printf("❌ [REWARD_EVAL] request %s: condition check failed: %v", requestID, err)
		return
	}

	status := models.RewardRequestStatusRejected
	if satisfied {
		status = models.RewardRequestStatusApproved
	}

	// Single atomic update, guarded on PENDING. Terminal states never move
	// again even if this invariant is ever relaxed elsewhere.
	res := s.DB.Model(&models.RewardRequest{}).
		Where("id = ? AND status = ?", requestID, models.RewardRequestStatusPending).
		Update("status", status)
	if res.Error != nil {
		log.Printf("❌ [REWARD_EVAL] request %s: status update failed: %v", requestID, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		log.Printf("⚠️ [REWARD_EVAL] request %s already left PENDING, skipping %s", requestID, status)
		return
	}
	log.Printf("✅ [REWARD_EVAL] request %s → %s (event %s, user %s)", requestID, status, event.ID, userID)
}

// runChecker bounds the check so a wedged store cannot pin the goroutine
// forever. A timeout surfaces as an error, not a rejection.
func (s *RewardRequestService) runChecker(checker ConditionChecker, event *models.Event, userID string) (bool, error) {
	type result struct {
		ok  bool
		err error
	}
	done := make(chan result, 1)
	go func() {
		ok, err := checker.IsSatisfied(event, userID)
		done <- result{ok, err}
	}()

	select {
	case r := <-done:
		return r.ok, r.err
	case <-time.After(evaluationTimeout):
		return false, fmt.Errorf("condition check timed out after %s", evaluationTimeout)
	}
}

// FindByID loads one live request.
func (s *RewardRequestService) FindByID(id string) (*models.RewardRequest, error) {
	var request models.RewardRequest
	if err := s.DB.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAll returns a page of requests, newest first. The only supported filter
// is filterType=STATUS with target set to a status value, matching the
// upstream operator API; anything else is ignored. Page bounds beyond
// non-negativity are the API layer's problem.
func (s *RewardRequestService) FindAll(page, size int, filterType, target string) ([]models.RewardRequest, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 20
	}

	query := s.DB.Model(&models.RewardRequest{})
	if filterType == "STATUS" && target != "" {
		query = query.Where("status = ?", target)
	}

	var requests []models.RewardRequest
	err := query.
		Order("created_at DESC").
		Limit(size).Offset(page * size).
		Find(&requests).Error
	return requests, err
}

// FindByUser lists the caller's own requests, newest first.
func (s *RewardRequestService) FindByUser(userID string) ([]models.RewardRequest, error) {
	var requests []models.RewardRequest
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
