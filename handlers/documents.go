package handlers

import (
	"net/http"

	"statutesync/models"
	"statutesync/services/library"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	Library library.LibraryService
}

func NewDocumentHandler(lib library.LibraryService) *DocumentHandler {
	return &DocumentHandler{Library: lib}
}

// ListDocumentsHandler handles GET /api/documents?q=.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	docs, err := h.Library.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "Failed to load documents", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) GetDocumentHandler(c *gin.Context) {
	doc, err := h.Library.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Document not available", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) AddDocumentHandler(c *gin.Context) {
	var req models.NewDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid document", err.Error())
		return
	}

	doc, err := h.Library.AddDocument(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to add document", err)
		return
	}
	utils.GetLogger().Info("Document added", zap.String("id", doc.ID), zap.String("title", doc.Title))
	c.JSON(http.StatusCreated, doc)
}

// RemoveDocumentHandler handles DELETE /api/documents/:id. Unknown ids succeed.
func (h *DocumentHandler) RemoveDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Library.RemoveDocument(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to remove document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document removed", "id": id})
}
