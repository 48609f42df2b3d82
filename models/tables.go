package models

import "time"

type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PostID    string    `gorm:"uniqueIndex;not null" json:"post_id"`
	Count     int       `gorm:"not null;default:0" json:"count"` // clamped at zero by the decrement statement
	UpdatedAt time.Time `json:"updated_at"`
}

type Sign struct {
	ID        string    `gorm:"primary_key" json:"id"` // generated uuid
	PostID    string    `gorm:"not null;index" json:"post_id"`
	SvgText   string    `gorm:"type:text;not null" json:"svg_text"` // stored verbatim, embedded raw by the front end
	CreatedAt time.Time `json:"created_at"`
}
