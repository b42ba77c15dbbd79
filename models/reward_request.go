package models

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// RewardRequestStatus is the claim lifecycle state. PENDING is initial;
// APPROVED and REJECTED are terminal.
type RewardRequestStatus string

const (
	RewardRequestStatusPending  RewardRequestStatus = "PENDING"
	RewardRequestStatusApproved RewardRequestStatus = "APPROVED"
	RewardRequestStatusRejected RewardRequestStatus = "REJECTED"
)

// RewardRequest tracks one user's claim against one event. A user may hold at
// most one live request per event; the composite unique index enforces that at
// the store level, which is why DeletedAt here is the unix-flag variant (0 for
// live rows) instead of the nullable timestamp the other models use — NULLs
// never collide in a unique index, a zero flag does.
type RewardRequest struct {
	ID       string              `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string              `gorm:"not null;uniqueIndex:idx_reward_requests_user_event" json:"user_id"`
	EventID  string              `gorm:"not null;uniqueIndex:idx_reward_requests_user_event" json:"event_id"`
	RewardID string              `gorm:"not null" json:"reward_id"`
	Status   RewardRequestStatus `gorm:"not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time             `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time             `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt soft_delete.DeletedAt `json:"-" gorm:"uniqueIndex:idx_reward_requests_user_event"`
}
