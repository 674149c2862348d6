package services

import (
	"fmt"
	"testing"

	"pdfshare-api/config"
	"pdfshare-api/models"
	"pdfshare-api/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled in-memory sqlite gives every connection its own empty
	// database; pin the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPDF(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.PDF {
	pdf := &models.PDF{
		UserID:      owner.ID,
		Title:       title,
		Description: "description of " + title,
		Link:        "https://example.com/" + title + ".pdf",
		Author:      "Some Author",
		Institution: "Some Institution",
		Topic:       "General",
	}
	require.NoError(t, db.Create(pdf).Error)
	return pdf
}

func newVoteService(db *gorm.DB) (VoteService, repositories.VoteRepository, repositories.PDFRepository) {
	voteRepo := repositories.NewVoteRepository(db)
	pdfRepo := repositories.NewPDFRepository(db)
	return NewVoteService(voteRepo, pdfRepo), voteRepo, pdfRepo
}

func TestUpvoteToggleIdempotence(t *testing.T) {
	db := setupTestDB(t)
	svc, voteRepo, pdfRepo := newVoteService(db)

	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	pdf := createTestPDF(t, db, owner, "toggle-target")

	// First upvote activates the vote.
	active, err := svc.Upvote(voter.ID, pdf.ID)
	require.NoError(t, err)
	assert.True(t, active)

	reloaded, err := pdfRepo.GetByID(pdf.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UpvoteCount)

	// Second upvote retracts it and restores the counter.
	active, err = svc.Upvote(voter.ID, pdf.ID)
	require.NoError(t, err)
	assert.False(t, active)

	reloaded, err = pdfRepo.GetByID(pdf.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.UpvoteCount)

	_, err = voteRepo.GetByUserAndPDF(voter.ID, pdf.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVoteMutualExclusion(t *testing.T) {
	db := setupTestDB(t)
	svc, voteRepo, pdfRepo := newVoteService(db)

	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	pdf := createTestPDF(t, db, owner, "switch-target")

	active, err := svc.Upvote(voter.ID, pdf.ID)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = svc.Downvote(voter.ID, pdf.ID)
	require.NoError(t, err)
	assert.True(t, active)

	vote, err := voteRepo.GetByUserAndPDF(voter.ID, pdf.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoteDown, vote.Value)

	reloaded, err := pdfRepo.GetByID(pdf.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.UpvoteCount)
	assert.Equal(t, 1, reloaded.DownvoteCount)

	// Exactly one vote row for the pair, never two.
	var rows int64
	require.NoError(t, db.Model(&models.Vote{}).
		Where("user_id = ? AND pdf_id = ?", voter.ID, pdf.ID).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestVoteMissingPDFIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newVoteService(db)

	voter := createTestUser(t, db, "voter")

	active, err := svc.Upvote(voter.ID, 9999)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.Downvote(voter.ID, 9999)
	require.NoError(t, err)
	assert.False(t, active)

	var rows int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&rows).Error)
	assert.EqualValues(t, 0, rows)
}

func TestCountRelationConsistency(t *testing.T) {
	db := setupTestDB(t)
	svc, voteRepo, pdfRepo := newVoteService(db)

	owner := createTestUser(t, db, "owner")
	pdf := createTestPDF(t, db, owner, "consistency-target")

	voters := make([]*models.User, 5)
	for i := range voters {
		voters[i] = createTestUser(t, db, fmt.Sprintf("voter%d", i))
	}

	// A mixed sequence with toggles and polarity switches.
	_, err := svc.Upvote(voters[0].ID, pdf.ID)
	require.NoError(t, err)
	_, err = svc.Upvote(voters[1].ID, pdf.ID)
	require.NoError(t, err)
	_, err = svc.Downvote(voters[1].ID, pdf.ID) // switch
	require.NoError(t, err)
	_, err = svc.Upvote(voters[2].ID, pdf.ID)
	require.NoError(t, err)
	_, err = svc.Upvote(voters[2].ID, pdf.ID) // retract
	require.NoError(t, err)
	_, err = svc.Downvote(voters[3].ID, pdf.ID)
	require.NoError(t, err)
	_, err = svc.Upvote(voters[4].ID, pdf.ID)
	require.NoError(t, err)

	reloaded, err := pdfRepo.GetByID(pdf.ID)
	require.NoError(t, err)

	upRows, err := voteRepo.CountForPDF(pdf.ID, models.VoteUp)
	require.NoError(t, err)
	downRows, err := voteRepo.CountForPDF(pdf.ID, models.VoteDown)
	require.NoError(t, err)

	assert.EqualValues(t, upRows, reloaded.UpvoteCount)
	assert.EqualValues(t, downRows, reloaded.DownvoteCount)
	assert.Equal(t, 2, reloaded.UpvoteCount)
	assert.Equal(t, 2, reloaded.DownvoteCount)
}

func TestTopPDFsThreshold(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newVoteService(db)

	owner := createTestUser(t, db, "owner")

	// Nine documents with positive score and one with score zero: the
	// listing stays empty until ten qualify.
	for i := 0; i < 9; i++ {
		pdf := createTestPDF(t, db, owner, fmt.Sprintf("doc%d", i))
		require.NoError(t, db.Model(pdf).UpdateColumn("upvote_count", i+1).Error)
	}
	createTestPDF(t, db, owner, "score-zero")

	top, err := svc.TopPDFs()
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopPDFsReturnsTenSortedByScore(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newVoteService(db)

	owner := createTestUser(t, db, "owner")

	scores := []int{5, 4, 4, 3, 3, 2, 2, 1, 1, 1}
	for i, score := range scores {
		pdf := createTestPDF(t, db, owner, fmt.Sprintf("ranked%d", i))
		require.NoError(t, db.Model(pdf).UpdateColumn("upvote_count", score+2).Error)
		require.NoError(t, db.Model(pdf).UpdateColumn("downvote_count", 2).Error)
	}
	// A negative-score document must never appear.
	loser := createTestPDF(t, db, owner, "downvoted")
	require.NoError(t, db.Model(loser).UpdateColumn("downvote_count", 3).Error)

	top, err := svc.TopPDFs()
	require.NoError(t, err)
	require.Len(t, top, 10)

	got := make([]int, len(top))
	for i, pdf := range top {
		got[i] = pdf.Score()
	}
	assert.Equal(t, scores, got)
}
