package handlers

import (
	"net/http"
	"strconv"

	"pdfshare-api/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService services.VoteService
}

func NewVoteHandler(voteService services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Upvote toggles the caller's upvote. The success flag is true exactly
// when the vote is active afterwards; false covers both a retracted
// vote and a missing document.
func (h *VoteHandler) Upvote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF ID"})
		return
	}

	success, err := h.voteService.Upvote(userID.(uint), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

func (h *VoteHandler) Downvote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF ID"})
		return
	}

	success, err := h.voteService.Downvote(userID.(uint), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// TopPDFs returns exactly ten documents sorted by score, or an empty
// list when fewer than ten have a positive score.
func (h *VoteHandler) TopPDFs(c *gin.Context) {
	pdfs, err := h.voteService.TopPDFs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdfs": pdfs})
}
