package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/services/tender/helpers"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

type LedgerServiceInterface interface {
	ListTenders(ctx context.Context, bidder, today string) ([]model.TenderView, []string, error)
	Notifications(ctx context.Context) ([]string, error)
	SubmitBid(ctx context.Context, bidder, tenderID, amount string) (model.Bid, error)
}

type LedgerHandler struct {
	service LedgerServiceInterface
	now     func() time.Time
}

func NewLedgerHandler(service LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{service: service, now: time.Now}
}

// ListTendersHandler handles GET /ledger/tenders?today=YYYY-MM-DD
func (h *LedgerHandler) ListTendersHandler(c *gin.Context) {
	bidder := helpers.BidderFromContext(c)

	today := c.Query("today")
	if today == "" {
		today = h.now().Format(model.PublishDateLayout)
	} else if _, err := time.Parse(model.PublishDateLayout, today); err != nil {
		helpers.RespondError(c, "LedgerListTendersHandler", fmt.Errorf("%w: %q", biddingerrors.ErrInvalidDate, today), nil)
		return
	}

	tenders, notifications, err := h.service.ListTenders(c.Request.Context(), bidder, today)
	var notificationErr string
	if errors.Is(err, biddingerrors.ErrNotificationsNotSaved) {
		notificationErr = err.Error()
		utils.Warn("LedgerListTendersHandler: notifications not saved", map[string]any{"bidder": bidder, "error": notificationErr})
		err = nil
	}
	if err != nil {
		helpers.RespondError(c, "LedgerListTendersHandler", err, map[string]any{"bidder": bidder})
		return
	}

	if tenders == nil {
		tenders = []model.TenderView{}
	}
	if notifications == nil {
		notifications = []string{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LedgerTendersResponse{
		Tenders:           tenders,
		Notifications:     notifications,
		NotificationError: notificationErr,
	}, "tenders retrieved successfully")
	helpers.LogSuccess("LedgerListTendersHandler", "tenders retrieved successfully", map[string]any{
		"bidder":        bidder,
		"today":         today,
		"count":         len(tenders),
		"notifications": len(notifications),
	})
}

// NotificationsHandler handles GET /ledger/notifications
func (h *LedgerHandler) NotificationsHandler(c *gin.Context) {
	notifications, err := h.service.Notifications(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "NotificationsHandler", err, nil)
		return
	}

	if notifications == nil {
		notifications = []string{}
	}

	utils.JSONResponse(c, http.StatusOK, notifications, "notifications retrieved successfully")
}

// SubmitBidHandler handles POST /ledger/bids. bidAmount may be a JSON string or number.
func (h *LedgerHandler) SubmitBidHandler(c *gin.Context) {
	bidder := helpers.BidderFromContext(c)

	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(c.Request.Context(), bidder, req.TenderID, string(req.BidAmount))
	if err != nil {
		helpers.RespondError(c, "SubmitBidHandler", err, map[string]any{
			"bidder":    bidder,
			"tender_id": req.TenderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "Bid Submitted Successfully!")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted", map[string]any{
		"bid_id":    bid.BidID,
		"tender_id": bid.TenderID,
		"bidder":    bidder,
		"amount":    bid.BidCost,
	})
}
