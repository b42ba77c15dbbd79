package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventType enumerates the supported completion-condition families
type EventType string

const (
	EventTypeHunt   EventType = "HUNT"
	EventTypeInvite EventType = "INVITE"
	EventTypeStreak EventType = "STREAK"
)

// Event is a configured objective users complete to become reward-eligible.
// Immutable once created; removal is soft-delete only because reward requests
// keep referencing it.
type Event struct {
	ID            string            `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string            `gorm:"not null" json:"name"`
	Slug          string            `gorm:"index" json:"slug"`
	UserID        string            `gorm:"index;not null" json:"user_id"` // operator who created it
	Type          EventType         `gorm:"not null" json:"type"`
	RequiredCount int               `gorm:"not null" json:"required_count"`
	Metadata      datatypes.JSONMap `json:"metadata"`
	BannerURL     string            `gorm:"type:text" json:"banner_url,omitempty"`
	EndDate       time.Time         `gorm:"index;not null" json:"end_date"`

	Timestamps
}

// MonsterID returns metadata["monsterId"] as a string, empty when absent.
func (e *Event) MonsterID() string {
	v, ok := e.Metadata[MetaMonsterID].(string)
	if !ok {
		return ""
	}
	return v
}
