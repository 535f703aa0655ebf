package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"statutesync/database/repository"
	"statutesync/services/verification"
	"statutesync/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// verificationFailedMessage is shown to the user whenever the verifier cannot produce a verdict.
const verificationFailedMessage = "Verification failed. Please try again."

const verificationConflictMessage = "Verification history changed while saving. Please try again."

// multipartOverhead is the allowance for boundaries and part headers on top of the file itself.
const multipartOverhead = 64 << 10

type VerificationHandler struct {
	Verification   verification.VerificationService
	MaxUploadBytes int64
}

func NewVerificationHandler(svc verification.VerificationService, maxUploadBytes int64) *VerificationHandler {
	return &VerificationHandler{Verification: svc, MaxUploadBytes: maxUploadBytes}
}

// VerifyFileHandler handles POST /api/verifications with a multipart "file" field.
func (h *VerificationHandler) VerifyFileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.MaxUploadBytes > 0 {
		limit := h.MaxUploadBytes + multipartOverhead
		if c.Request.ContentLength > limit {
			h.tooLarge(c, c.Request.ContentLength)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.tooLarge(c, maxErr.Limit+1)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}
	if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
		h.tooLarge(c, fileHeader.Size)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable file", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable file", err.Error())
		return
	}

	mimeType := detectMIME(data, fileHeader.Header.Get("Content-Type"))
	logger.Debug("Verification upload received",
		zap.String("file", fileHeader.Filename), zap.String("mime", mimeType), zap.Int("bytes", len(data)))

	result, err := h.Verification.VerifyFile(c.Request.Context(), verification.Upload{
		FileName: fileHeader.Filename,
		MIMEType: mimeType,
		Data:     data,
	})
	if err != nil {
		status := statusFor(err)
		switch {
		case status >= http.StatusInternalServerError:
			utils.JSONError(c, status, verificationFailedMessage, err.Error())
		case errors.Is(err, repository.ErrConflict):
			utils.JSONError(c, status, verificationConflictMessage, err.Error())
		default:
			respondError(c, "Invalid upload", err)
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *VerificationHandler) tooLarge(c *gin.Context, size int64) {
	utils.JSONError(c, http.StatusRequestEntityTooLarge, "File too large",
		fmt.Sprintf("%d bytes exceeds the %d byte limit", size, h.MaxUploadBytes))
}

// detectMIME sniffs the content and falls back to the client's declared type when sniffing is inconclusive.
func detectMIME(data []byte, declared string) string {
	detected := mimetype.Detect(data)
	if detected.Is("application/octet-stream") && declared != "" {
		return declared
	}
	return detected.String()
}

func (h *VerificationHandler) ListVerificationsHandler(c *gin.Context) {
	results, err := h.Verification.ListResults(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load verifications", err)
		return
	}
	c.JSON(http.StatusOK, results)
}
