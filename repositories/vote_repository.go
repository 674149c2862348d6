package repositories

import (
	"errors"

	"pdfshare-api/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	// CastVote toggles the user's vote on a PDF towards the given
	// polarity and returns whether the vote is active afterwards.
	CastVote(userID, pdfID uint, value int) (bool, error)
	GetByUserAndPDF(userID, pdfID uint) (*models.Vote, error)
	CountForPDF(pdfID uint, value int) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// CastVote runs the whole read-modify-write as one transaction so the
// vote row and the denormalized counters on the PDF can never diverge.
//
// Same polarity again  -> vote removed, counter decremented, false.
// Opposite polarity    -> old row swapped for new, both counters moved, true.
// No existing vote     -> row created, counter incremented, true.
// PDF does not exist   -> no-op, false.
func (r *voteRepository) CastVote(userID, pdfID uint, value int) (bool, error) {
	active := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pdf models.PDF
		if err := tx.First(&pdf, pdfID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND pdf_id = ?", userID, pdfID).First(&existing).Error

		switch {
		case err == nil && existing.Value == value:
			// Voting the same way again retracts the vote.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return adjustCounter(tx, pdfID, value, -1)

		case err == nil:
			// Switching polarity: drop the old vote before recording
			// the new one so the unique index is never violated.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := adjustCounter(tx, pdfID, existing.Value, -1); err != nil {
				return err
			}
			vote := models.Vote{UserID: userID, PDFID: pdfID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			if err := adjustCounter(tx, pdfID, value, 1); err != nil {
				return err
			}
			active = true
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{UserID: userID, PDFID: pdfID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			if err := adjustCounter(tx, pdfID, value, 1); err != nil {
				return err
			}
			active = true
			return nil

		default:
			return err
		}
	})

	return active, err
}

func (r *voteRepository) GetByUserAndPDF(userID, pdfID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("user_id = ? AND pdf_id = ?", userID, pdfID).First(&vote).Error
	return &vote, err
}

func (r *voteRepository) CountForPDF(pdfID uint, value int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("pdf_id = ? AND value = ?", pdfID, value).
		Count(&count).Error
	return count, err
}

func adjustCounter(tx *gorm.DB, pdfID uint, value, delta int) error {
	column := "upvote_count"
	if value == models.VoteDown {
		column = "downvote_count"
	}
	return tx.Model(&models.PDF{}).Where("id = ?", pdfID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
