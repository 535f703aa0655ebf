package handlers

import (
	"errors"
	"net/http"

	"statutesync/services/assistant"
	"statutesync/services/user"
	"statutesync/services/verification"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, user.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidProfile),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, verification.ErrEmptyFile):
		return http.StatusBadRequest
	case errors.Is(err, verification.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	default:
		return utils.StatusFor(err)
	}
}

// respondError logs and writes err using the status its kind maps to.
func respondError(c *gin.Context, message string, err error) {
	utils.JSONError(c, statusFor(err), message, err.Error())
}
