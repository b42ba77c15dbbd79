package services

import (
	"errors"
	"fmt"
	"time"

	"game-event-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// MaxLoginStreakDays bounds the configurable streak target for STREAK events.
const MaxLoginStreakDays = 7

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

type CreateEventInput struct {
	Name          string                 `json:"name"`
	UserID        string                 `json:"user_id"`
	Type          models.EventType       `json:"type"`
	RequiredCount int                    `json:"required_count"`
	Metadata      map[string]interface{} `json:"metadata"`
	EndDate       time.Time              `json:"end_date"`
}

// Create validates and persists a new event. Validation is creation-time
// only — checkers assume events in the store are already well-formed.
func (s *EventService) Create(input CreateEventInput) (*models.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if input.RequiredCount < 1 {
		return nil, fmt.Errorf("required_count must be positive")
	}
	if input.Metadata == nil {
		input.Metadata = map[string]interface{}{}
	}
	if err := validateEventMetadata(input.Type, input.Metadata); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Slug:          slug.Make(input.Name),
		UserID:        input.UserID,
		Type:          input.Type,
		RequiredCount: input.RequiredCount,
		Metadata:      input.Metadata,
		EndDate:       input.EndDate,
	}
	if err := s.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// validateEventMetadata applies the per-type structural rules. Only STREAK
// and HUNT carry rules; INVITE has none beyond the common fields.
func validateEventMetadata(eventType models.EventType, metadata map[string]interface{}) error {
	switch eventType {
	case models.EventTypeStreak:
		if streakTarget(metadata) > MaxLoginStreakDays {
			return ErrLoginStreakExceeded
		}
	case models.EventTypeHunt:
		if v, _ := metadata[models.MetaMonsterID].(string); v == "" {
			return ErrMonsterIDRequired
		}
	case models.EventTypeInvite:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEventType, eventType)
	}
	return nil
}

// streakTarget reads metadata["streak"], tolerating the numeric types JSON
// decoding can hand us.
func streakTarget(metadata map[string]interface{}) int {
	switch v := metadata["streak"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

// FindAll returns a page of live events, newest first.
func (s *EventService) FindAll(page, size int) ([]models.Event, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 20
	}
	var events []models.Event
	err := s.DB.
		Order("created_at DESC").
		Limit(size).Offset(page * size).
		Find(&events).Error
	return events, err
}

// FindByID loads one live event.
func (s *EventService) FindByID(id string) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// SetBannerURL records the uploaded banner location on the event.
func (s *EventService) SetBannerURL(id, url string) error {
	res := s.DB.Model(&models.Event{}).Where("id = ?", id).Update("banner_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Remove tombstones an event. Requests referencing it keep working; default
// reads stop returning it.
func (s *EventService) Remove(id string) error {
	res := s.DB.Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
