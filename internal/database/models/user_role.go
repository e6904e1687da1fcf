package models

// UserRole grants a school-wide role such as coordinator. Club-scoped roles
// live on club_members; this table is for roles independent of any club.
type UserRole struct {
	BaseModel
	UserID string     `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_user_roles_user_role"`
	Role   SchoolRole `json:"role" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_user_role"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
