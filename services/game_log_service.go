package services

import (
	"errors"
	"fmt"
	"time"

	"game-event-system/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GameLogService struct {
	DB *gorm.DB
}

func NewGameLogService(db *gorm.DB) *GameLogService {
	return &GameLogService{DB: db}
}

// CreateLogInput carries a single activity record from the game client.
type CreateLogInput struct {
	UserID   string                 `json:"user_id"`
	Type     models.GameLogType     `json:"type"`
	Metadata map[string]interface{} `json:"metadata"`
}

// CreateLog appends one activity entry. Per-type metadata requirements are
// checked here because logs are never fixed up after the fact.
func (s *GameLogService) CreateLog(input CreateLogInput) (*models.GameLog, error) {
	switch input.Type {
	case models.GameLogTypeLogin, models.GameLogTypeHunt, models.GameLogTypeInvite:
	default:
		return nil, fmt.Errorf("unknown game log type: %q", input.Type)
	}

	if input.Type == models.GameLogTypeHunt {
		if v, _ := input.Metadata[models.MetaMonsterID].(string); v == "" {
			return nil, ErrMonsterIDRequired
		}
	}
	if input.Type == models.GameLogTypeInvite {
		if v, _ := input.Metadata[models.MetaInvitedUserID].(string); v == "" {
			return nil, fmt.Errorf("invite logs require %s metadata", models.MetaInvitedUserID)
		}
	}

	entry := &models.GameLog{
		ID:       uuid.NewString(),
		UserID:   input.UserID,
		Type:     input.Type,
		Metadata: input.Metadata,
	}
	if entry.Metadata == nil {
		entry.Metadata = map[string]interface{}{}
	}
	if err := s.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// FindAll returns a page of logs, newest first. Page is zero-based like the
// rest of the list endpoints.
func (s *GameLogService) FindAll(page, size int) ([]models.GameLog, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 20
	}
	var logs []models.GameLog
	err := s.DB.
		Order("created_at DESC").
		Limit(size).Offset(page * size).
		Find(&logs).Error
	return logs, err
}

// --- Eligibility query shapes ---
//
// These three are the only reads the condition checkers perform. They are
// deliberately narrow so checkers stay pure over stored history.

// FindLoginDates returns the login timestamps for a user within the look-back
// window. The caller truncates them to calendar days; raw dedup here would
// lose the timezone decision.
func (s *GameLogService) FindLoginDates(userID string, withinDays int) ([]time.Time, error) {
	since := time.Now().UTC().AddDate(0, 0, -withinDays)

	var logs []models.GameLog
	err := s.DB.
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, models.GameLogTypeLogin, since).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(logs))
	for i := range logs {
		dates = append(dates, logs[i].LoginTime())
	}
	return dates, nil
}

// CountMonsterHunts counts hunt entries for the user against one monster.
func (s *GameLogService) CountMonsterHunts(userID, monsterID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.GameLog{}).
		Where("user_id = ? AND type = ?", userID, models.GameLogTypeHunt).
		Where(datatypes.JSONQuery("metadata").Equals(monsterID, models.MetaMonsterID)).
		Count(&count).Error
	return count, err
}

// HasInviteeLogin reports whether any user invited by userID has logged in at
// least once. Two sequential queries instead of a join: collect the invited
// ids from this user's INVITE entries, then probe for any LOGIN by them.
func (s *GameLogService) HasInviteeLogin(userID string) (bool, error) {
	var invites []models.GameLog
	err := s.DB.
		Where("user_id = ? AND type = ?", userID, models.GameLogTypeInvite).
		Find(&invites).Error
	if err != nil {
		return false, err
	}

	var inviteeIDs []string
	for i := range invites {
		if id := invites[i].InvitedUserID(); id != "" {
			inviteeIDs = append(inviteeIDs, id)
		}
	}
	if len(inviteeIDs) == 0 {
		return false, nil
	}

	var probe models.GameLog
	err = s.DB.
		Where("user_id IN ? AND type = ?", inviteeIDs, models.GameLogTypeLogin).
		First(&probe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
