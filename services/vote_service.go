package services

import (
	"pdfshare-api/models"
	"pdfshare-api/repositories"
)

// topPDFCount is the exact number of documents the top listing returns.
// Fewer qualifying documents means an empty result, not a partial list.
const topPDFCount = 10

type VoteService interface {
	Upvote(userID, pdfID uint) (bool, error)
	Downvote(userID, pdfID uint) (bool, error)
	TopPDFs() ([]models.PDF, error)
}

type voteService struct {
	voteRepo repositories.VoteRepository
	pdfRepo  repositories.PDFRepository
}

func NewVoteService(voteRepo repositories.VoteRepository, pdfRepo repositories.PDFRepository) VoteService {
	return &voteService{voteRepo: voteRepo, pdfRepo: pdfRepo}
}

// Upvote toggles the caller's upvote. True means the upvote is active
// afterwards; false means it was retracted or the PDF does not exist.
func (s *voteService) Upvote(userID, pdfID uint) (bool, error) {
	return s.voteRepo.CastVote(userID, pdfID, models.VoteUp)
}

// Downvote is the mirror of Upvote.
func (s *voteService) Downvote(userID, pdfID uint) (bool, error) {
	return s.voteRepo.CastVote(userID, pdfID, models.VoteDown)
}

// TopPDFs returns the ten highest-scoring documents, or nothing at all
// when fewer than ten have a positive score.
func (s *voteService) TopPDFs() ([]models.PDF, error) {
	pdfs, err := s.pdfRepo.GetTop(topPDFCount)
	if err != nil {
		return nil, err
	}
	if len(pdfs) < topPDFCount {
		return []models.PDF{}, nil
	}
	return pdfs, nil
}
