package models

import "time"

// User represents an authenticated school account. The primary key is the
// stable account id supplied by the identity provider, not a generated UUID,
// so rows can be upserted idempotently on first contact.
type User struct {
	ID        string    `json:"id" gorm:"primary_key;size:64"`
	Name      string    `json:"name" gorm:"not null;size:200"`
	Email     string    `json:"email" gorm:"size:255;index"`
	AvatarURL string    `json:"avatar_url" gorm:"size:500"`
	UserType  string    `json:"user_type" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Memberships []ClubMember `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
	Roles       []UserRole   `json:"roles,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
