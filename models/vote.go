package models

import (
	"time"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

// Vote records a single user's vote on a single PDF. The composite
// unique index guarantees at most one row per (user, pdf) pair, so a
// user can never hold an upvote and a downvote at the same time.
type Vote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_pdf"`
	PDFID     uint      `json:"pdf_id" gorm:"column:pdf_id;not null;uniqueIndex:idx_user_pdf"`
	PDF       PDF       `json:"-" gorm:"foreignKey:PDFID;constraint:OnDelete:CASCADE"`
	Value     int       `json:"value" gorm:"not null"` // VoteUp or VoteDown
	CreatedAt time.Time `json:"created_at"`
}
