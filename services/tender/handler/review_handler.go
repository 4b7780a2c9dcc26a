package handler

import (
	"context"
	"errors"
	"net/http"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/services/tender/helpers"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

type ReviewServiceInterface interface {
	ListBids(ctx context.Context) ([]model.Bid, error)
	FilterByTender(tenderID string) []model.Bid
	DeleteBid(ctx context.Context, id string) ([]model.Bid, error)
}

type ReviewHandler struct {
	service ReviewServiceInterface
}

func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListBidsHandler handles GET /review/bids
func (h *ReviewHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.ListBids(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListBidsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{"count": len(bids)})
}

// FilterBidsHandler handles GET /review/bids/filter?tender_id=
// It filters the list from the last GET /review/bids without querying the store.
func (h *ReviewHandler) FilterBidsHandler(c *gin.Context) {
	tenderID := c.Query("tender_id")
	bids := h.service.FilterByTender(tenderID)

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids filtered successfully")
}

// DeleteBidHandler handles DELETE /review/bids/:bid_id and returns the refreshed list
func (h *ReviewHandler) DeleteBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	bids, err := h.service.DeleteBid(c.Request.Context(), bidID)
	if errors.Is(err, biddingerrors.ErrBidListStale) {
		// the delete happened; only the refreshed list is missing
		utils.JSONResponse(c, http.StatusOK, nil, "Bid has been removed. The bid list could not be refreshed.")
		utils.Warn("DeleteBidHandler: bid list not refreshed", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}
	if err != nil {
		helpers.RespondError(c, "DeleteBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "Bid has been removed.")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted", map[string]any{"bid_id": bidID, "remaining": len(bids)})
}
