package models

// RewardType indicates what the user actually receives
type RewardType string

const (
	RewardTypePoint  RewardType = "POINT"
	RewardTypeItem   RewardType = "ITEM"
	RewardTypeCoupon RewardType = "COUPON"
)

// Reward is attached to a single event and describes the payout for
// completing it.
type Reward struct {
	ID      string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string     `gorm:"not null" json:"name"`
	Type    RewardType `gorm:"not null" json:"type"`
	Amount  int64      `gorm:"not null" json:"amount"`
	EventID string     `gorm:"index;not null" json:"event_id"`

	Timestamps
}
