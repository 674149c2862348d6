package services

import (
	"errors"

	"pdfshare-api/models"
	"pdfshare-api/repositories"

	"gorm.io/gorm"
)

// PDFService owns the document catalog rules: ownership-checked
// mutation, partial edits and substring search. Not-found and not-owner
// both come back as a nil document or a false flag rather than an
// error, matching the upstream API contract.
type PDFService interface {
	Search(query string) ([]models.PDF, error)
	ListByOwner(userID uint) ([]models.PDF, error)
	GetByID(id uint) (*models.PDF, error)
	Create(userID uint, req models.CreatePDFRequest) (*models.PDF, error)
	Edit(userID, id uint, req models.EditPDFRequest) (*models.PDF, error)
	Delete(userID, id uint) (bool, error)
}

type pdfService struct {
	pdfRepo repositories.PDFRepository
}

func NewPDFService(pdfRepo repositories.PDFRepository) PDFService {
	return &pdfService{pdfRepo: pdfRepo}
}

func (s *pdfService) Search(query string) ([]models.PDF, error) {
	return s.pdfRepo.Search(query)
}

func (s *pdfService) ListByOwner(userID uint) ([]models.PDF, error) {
	pdfs, err := s.pdfRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if pdfs == nil {
		pdfs = []models.PDF{}
	}
	return pdfs, nil
}

func (s *pdfService) GetByID(id uint) (*models.PDF, error) {
	pdf, err := s.pdfRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pdf, nil
}

func (s *pdfService) Create(userID uint, req models.CreatePDFRequest) (*models.PDF, error) {
	topic := req.Topic
	if topic == "" {
		topic = "NULL"
	}

	pdf := &models.PDF{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Author:      req.Author,
		Institution: req.Institution,
		Topic:       topic,
	}

	if err := s.pdfRepo.Create(pdf); err != nil {
		return nil, err
	}

	return s.pdfRepo.GetByID(pdf.ID)
}

// Edit applies a partial update: only non-empty fields overwrite the
// stored values. A missing document or a non-owner caller yields a nil
// document, never an error.
func (s *pdfService) Edit(userID, id uint, req models.EditPDFRequest) (*models.PDF, error) {
	pdf, err := s.pdfRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if pdf.UserID != userID {
		return nil, nil
	}

	if req.Title != "" {
		pdf.Title = req.Title
	}
	if req.Description != "" {
		pdf.Description = req.Description
	}
	if req.Link != "" {
		pdf.Link = req.Link
	}
	if req.Author != "" {
		pdf.Author = req.Author
	}
	if req.Institution != "" {
		pdf.Institution = req.Institution
	}
	if req.Topic != "" {
		pdf.Topic = req.Topic
	}

	if err := s.pdfRepo.Update(pdf); err != nil {
		return nil, err
	}

	return pdf, nil
}

// Delete removes the document and reports whether anything was deleted.
// Missing documents and non-owner callers both report false.
func (s *pdfService) Delete(userID, id uint) (bool, error) {
	pdf, err := s.pdfRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if pdf.UserID != userID {
		return false, nil
	}

	if err := s.pdfRepo.Delete(id); err != nil {
		return false, err
	}

	return true, nil
}
