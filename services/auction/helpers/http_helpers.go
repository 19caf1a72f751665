package helpers

import (
	"errors"
	"net/http"

	"auction-backend/internal/auctionerrors"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends the standard 400 detail body for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONDetail(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/store errors to HTTP status code and detail message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "Auction not found"
	case errors.Is(err, auctionerrors.ErrTeamNotFound):
		return http.StatusNotFound, "Team not found"
	case errors.Is(err, auctionerrors.ErrMalformedID):
		return http.StatusBadRequest, "malformed id"
	case errors.Is(err, auctionerrors.ErrStoreUnavailable):
		return http.StatusInternalServerError, "document store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
