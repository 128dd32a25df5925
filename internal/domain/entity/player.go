package entity

import "time"

// GuestPassword is the placeholder credential stored for guest accounts
const GuestPassword = "guest"

// Player represents a named participant
type Player struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(64);not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Player) TableName() string {
	return "users"
}

// NewGuestPlayer creates a player with the guest placeholder credential
func NewGuestPlayer(username string) *Player {
	return &Player{
		Username: username,
		Password: GuestPassword,
	}
}
