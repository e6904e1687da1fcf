package models

// Club represents a school club. A club starts unclaimed; claiming installs
// the first president and sets PresidentID. PresidentID names the primary
// president of record; co-presidents exist only as club_members rows.
type Club struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null;size:200;index"`
	Description string  `json:"description" gorm:"size:2000"`
	Category    string  `json:"category" gorm:"size:100"`
	MeetingTime string  `json:"meeting_time" gorm:"size:200"`
	Location    string  `json:"location" gorm:"size:200"`
	ImageURL    string  `json:"image_url" gorm:"size:500"`
	IsClaimed   bool    `json:"is_claimed" gorm:"not null;default:false"`
	PresidentID *string `json:"president_id,omitempty" gorm:"size:64;index"`

	// Relationships
	Members   []ClubMember  `json:"members,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Sponsors  []ClubSponsor `json:"sponsors,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	President *User         `json:"president,omitempty" gorm:"foreignKey:PresidentID"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
