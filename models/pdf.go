package models

import (
	"time"
)

// PDF is a published document record. The owner is immutable after
// creation; UpvoteCount and DownvoteCount are denormalized aggregates of
// the votes table and are only ever updated in the same transaction as
// the vote row itself.
type PDF struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	User          User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title         string    `json:"title" gorm:"size:200;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Link          string    `json:"link"`
	Author        string    `json:"author" gorm:"size:100"`
	Institution   string    `json:"institution" gorm:"size:100"`
	Topic         string    `json:"topic" gorm:"size:100;default:'NULL'"`
	UpvoteCount   int       `json:"upvote_count" gorm:"not null;default:0"`
	DownvoteCount int       `json:"downvote_count" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
}

// Score is the ranking value used by the top-documents query.
func (p *PDF) Score() int {
	return p.UpvoteCount - p.DownvoteCount
}
