package repositories

import (
	"strings"

	"pdfshare-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PDFRepository interface {
	Create(pdf *models.PDF) error
	GetByID(id uint) (*models.PDF, error)
	GetByUser(userID uint) ([]models.PDF, error)
	Search(query string) ([]models.PDF, error)
	GetTop(limit int) ([]models.PDF, error)
	Update(pdf *models.PDF) error
	Delete(id uint) error
}

type pdfRepository struct {
	db *gorm.DB
}

func NewPDFRepository(db *gorm.DB) PDFRepository {
	return &pdfRepository{db: db}
}

func (r *pdfRepository) Create(pdf *models.PDF) error {
	return r.db.Create(pdf).Error
}

func (r *pdfRepository) GetByID(id uint) (*models.PDF, error) {
	var pdf models.PDF
	err := r.db.Preload("User").First(&pdf, id).Error
	return &pdf, err
}

func (r *pdfRepository) GetByUser(userID uint) ([]models.PDF, error) {
	var pdfs []models.PDF
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&pdfs).Error
	return pdfs, err
}

// Search returns every PDF when the query is empty, otherwise every PDF
// where the query is a case-insensitive substring of any descriptive
// field. LOWER/LIKE instead of ILIKE so the same statement runs on both
// postgres and sqlite.
func (r *pdfRepository) Search(query string) ([]models.PDF, error) {
	var pdfs []models.PDF

	if query == "" {
		err := r.db.Preload("User").Find(&pdfs).Error
		return pdfs, err
	}

	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Preload("User").
		Where(`LOWER(title) LIKE ? OR LOWER(topic) LIKE ? OR LOWER(author) LIKE ?
			OR LOWER(description) LIKE ? OR LOWER(institution) LIKE ? OR LOWER(link) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern).
		Find(&pdfs).Error
	return pdfs, err
}

// GetTop returns up to limit PDFs with a positive vote score, highest
// score first. The all-or-nothing threshold lives in the service layer.
func (r *pdfRepository) GetTop(limit int) ([]models.PDF, error) {
	var pdfs []models.PDF
	err := r.db.Preload("User").
		Where("upvote_count - downvote_count > 0").
		Order("upvote_count - downvote_count desc").
		Limit(limit).
		Find(&pdfs).Error
	return pdfs, err
}

func (r *pdfRepository) Update(pdf *models.PDF) error {
	// The owner association may be preloaded on the struct; never write
	// it back alongside the document row.
	return r.db.Omit(clause.Associations).Save(pdf).Error
}

// Delete removes the document together with its vote rows so no
// orphaned votes survive on stores without cascading constraints.
func (r *pdfRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pdf_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PDF{}, id).Error
	})
}
