package model

import "time"

// PasswordReset is a one-shot reset token. Expired rows are purged by the
// scheduler; used rows stay until then for auditability.
type PasswordReset struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired reports whether the token can no longer be redeemed.
func (p *PasswordReset) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}
