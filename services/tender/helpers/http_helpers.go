package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

const (
	// BidderHeader carries the authenticated company name of the caller.
	BidderHeader = "X-Company-Name"
	// BidderContextKey is where the identity middleware stores the bidder.
	BidderContextKey = "bidder"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrInvalidTender):
		return http.StatusBadRequest, "validation error"
	case errors.Is(err, biddingerrors.ErrNoTenderSelected):
		return http.StatusBadRequest, "please select a tender"
	case errors.Is(err, biddingerrors.ErrEmptyAmount):
		return http.StatusBadRequest, "please enter a bid amount"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "bid amount must be a non-negative number"
	case errors.Is(err, biddingerrors.ErrInvalidDate):
		return http.StatusBadRequest, "date must be in YYYY-MM-DD format"
	case errors.Is(err, biddingerrors.ErrMissingBidder):
		return http.StatusUnauthorized, "bidder identity required"
	case errors.Is(err, biddingerrors.ErrTenderNotFound):
		return http.StatusNotFound, "tender not found"
	case errors.Is(err, biddingerrors.ErrStore):
		return http.StatusBadGateway, "store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, sends it to the client and logs it with fields
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// BidderFromContext returns the identity set by the bidder middleware
func BidderFromContext(c *gin.Context) string {
	return c.GetString(BidderContextKey)
}

// ToBidResponse renders a bid for clients
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:             bid.BidID,
		TenderID:          bid.TenderID,
		CompanyName:       bid.CompanyName,
		BidCost:           bid.BidCost,
		BidTime:           bid.BidTime.Format(model.BidTimeLayout),
		IsLastFiveMinutes: bid.IsLastFiveMinutes,
	}
}

// ToBidResponses renders a list of bids, never returning nil
func ToBidResponses(bids []model.Bid) []BidResponse {
	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, ToBidResponse(b))
	}
	return resp
}
