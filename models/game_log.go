package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameLogType enumerates the recorded player actions
type GameLogType string

const (
	GameLogTypeHunt   GameLogType = "HUNT"
	GameLogTypeInvite GameLogType = "INVITE"
	GameLogTypeLogin  GameLogType = "LOGIN"
)

// Metadata keys per log type:
//
//	LOGIN  → loginTime (RFC3339)
//	HUNT   → monsterId, monsterName, monsterLevel, monsterType
//	INVITE → invitedUserId, invitedUserName
const (
	MetaLoginTime     = "loginTime"
	MetaMonsterID     = "monsterId"
	MetaInvitedUserID = "invitedUserId"
)

// GameLog is an append-only record of a single user action. The eligibility
// engine only ever reads these; nothing mutates them after creation.
type GameLog struct {
	ID       string            `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string            `gorm:"not null;index:idx_game_logs_user_type" json:"user_id"`
	Type     GameLogType       `gorm:"not null;index:idx_game_logs_user_type" json:"type"`
	Metadata datatypes.JSONMap `json:"metadata"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// LoginTime parses metadata["loginTime"]; falls back to CreatedAt so older
// rows without the field still count.
func (g *GameLog) LoginTime() time.Time {
	if raw, ok := g.Metadata[MetaLoginTime].(string); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return g.CreatedAt
}

// InvitedUserID returns metadata["invitedUserId"], empty when absent.
func (g *GameLog) InvitedUserID() string {
	v, _ := g.Metadata[MetaInvitedUserID].(string)
	return v
}
