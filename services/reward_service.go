package services

import (
	"errors"
	"fmt"

	"game-event-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardService struct {
	DB *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{DB: db}
}

type CreateRewardInput struct {
	Name    string            `json:"name"`
	Type    models.RewardType `json:"type"`
	Amount  int64             `json:"amount"`
	EventID string            `json:"event_id"`
}

// Create attaches a reward to an existing event.
func (s *RewardService) Create(input CreateRewardInput) (*models.Reward, error) {
	switch input.Type {
	case models.RewardTypePoint, models.RewardTypeItem, models.RewardTypeCoupon:
	default:
		return nil, fmt.Errorf("unknown reward type: %q", input.Type)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("reward amount must be positive")
	}

	var event models.Event
	if err := s.DB.First(&event, "id = ?", input.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	reward := &models.Reward{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Type:    input.Type,
		Amount:  input.Amount,
		EventID: input.EventID,
	}
	if err := s.DB.Create(reward).Error; err != nil {
		return nil, err
	}
	return reward, nil
}

// FindByID loads one live reward.
func (s *RewardService) FindByID(id string) (*models.Reward, error) {
	var reward models.Reward
	if err := s.DB.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

// FindByEvent lists the rewards configured for one event.
func (s *RewardService) FindByEvent(eventID string) ([]models.Reward, error) {
	var rewards []models.Reward
	err := s.DB.Where("event_id = ?", eventID).Order("created_at ASC").Find(&rewards).Error
	return rewards, err
}
