package handlers

import (
	"net/http"
	"strconv"

	"pdfshare-api/models"
	"pdfshare-api/services"

	"github.com/gin-gonic/gin"
)

type PDFHandler struct {
	pdfService services.PDFService
}

func NewPDFHandler(pdfService services.PDFService) *PDFHandler {
	return &PDFHandler{pdfService: pdfService}
}

// SearchPDFs returns all documents, or the case-insensitive substring
// matches when a query parameter is present.
func (h *PDFHandler) SearchPDFs(c *gin.Context) {
	query := c.Query("query")

	pdfs, err := h.pdfService.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdfs": pdfs})
}

func (h *PDFHandler) GetMyPDFs(c *gin.Context) {
	userID, _ := c.Get("user_id")

	pdfs, err := h.pdfService.ListByOwner(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdfs": pdfs})
}

// GetPDF returns the document, or a null body with 404 when the id does
// not exist. A missing document is an empty result here, not a fault.
func (h *PDFHandler) GetPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF ID"})
		return
	}

	pdf, err := h.pdfService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pdf == nil {
		c.JSON(http.StatusNotFound, gin.H{"pdf": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdf": pdf})
}

func (h *PDFHandler) CreatePDF(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.pdfService.Create(userID.(uint), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pdf": pdf})
}

// EditPDF applies a partial update. Not-found and not-owner both come
// back as a null document with 404, mirroring the upstream contract.
func (h *PDFHandler) EditPDF(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF ID"})
		return
	}

	var req models.EditPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.pdfService.Edit(userID.(uint), uint(id), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pdf == nil {
		c.JSON(http.StatusNotFound, gin.H{"pdf": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdf": pdf})
}

func (h *PDFHandler) DeletePDF(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF ID"})
		return
	}

	deleted, err := h.pdfService.Delete(userID.(uint), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
