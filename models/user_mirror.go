package models

import "time"

// UserMirror is a read-only replica of auth-server user profiles, kept fresh
// by the sync worker so list endpoints can resolve names without a network
// hop per row.
type UserMirror struct {
	ID             string `gorm:"primaryKey;type:uuid" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex;not null" json:"external_user_id"`
	Username       string `gorm:"index" json:"username"`
	Email          string `json:"email"`
	Roles          string `json:"roles"` // comma-separated, as forwarded by the gateway
	AccountStatus  string `json:"account_status"`

	SourceUpdatedAt time.Time `json:"source_updated_at"` // UpdatedAt on the auth server

	Timestamps
}
