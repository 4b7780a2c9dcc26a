package ledger

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/internal/repository"
	"tender-board/utils"
)

// NotificationPrefix starts every new-tender notification message.
const NotificationPrefix = "New Tender Available: "

// LedgerService is the bidder-facing side: tender listing, new-tender
// notifications and bid submission.
type LedgerService struct {
	tenders       repository.TenderStore
	bids          repository.BidStore
	notifications repository.NotificationStore
	now           func() time.Time

	// bidder -> tender IDs bid on since the process started; never persisted
	mu        sync.RWMutex
	submitted map[string]map[string]struct{}
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(tenders repository.TenderStore, bids repository.BidStore, notifications repository.NotificationStore) *LedgerService {
	return &LedgerService{
		tenders:       tenders,
		bids:          bids,
		notifications: notifications,
		now:           time.Now,
		submitted:     make(map[string]map[string]struct{}),
	}
}

// ListTenders fetches the catalog, marks the tenders bidder already bid on in
// this session, and refreshes notifications for tenders published today.
// Only the tender fetch can fail the call. When the notifications cannot be
// stored the views and messages are still returned, together with an error
// wrapping ErrNotificationsNotSaved.
func (s *LedgerService) ListTenders(ctx context.Context, bidder, today string) ([]model.TenderView, []string, error) {
	tenders, err := s.tenders.ListTenders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to list tenders: %w", err)
	}

	views := make([]model.TenderView, 0, len(tenders))
	for _, t := range tenders {
		views = append(views, model.TenderView{Tender: t, AlreadyBid: s.HasBid(bidder, t.ID)})
	}

	messages, err := s.DetectNewTenders(ctx, tenders, today)
	if err != nil {
		utils.Warn("new tender notifications not saved", map[string]any{"today": today, "error": err.Error()})
		return views, detected(tenders, today), fmt.Errorf("%w: %w", biddingerrors.ErrNotificationsNotSaved, err)
	}
	return views, messages, nil
}

// DetectNewTenders returns one message per tender whose publish date equals
// today exactly. A non-empty result replaces the stored notifications; an
// empty one leaves them untouched.
func (s *LedgerService) DetectNewTenders(ctx context.Context, tenders []model.Tender, today string) ([]string, error) {
	messages := detected(tenders, today)
	if len(messages) == 0 {
		return messages, nil
	}

	if err := s.notifications.SaveNotifications(ctx, messages); err != nil {
		return nil, fmt.Errorf("service: failed to store notifications: %w", err)
	}
	utils.Debug("new tenders detected", map[string]any{"today": today, "count": len(messages)})
	return messages, nil
}

func detected(tenders []model.Tender, today string) []string {
	messages := []string{}
	for _, t := range tenders {
		if t.PublishDate == today {
			messages = append(messages, NotificationPrefix+t.Name)
		}
	}
	return messages
}

// Notifications returns the last stored notification list
func (s *LedgerService) Notifications(ctx context.Context) ([]string, error) {
	messages, err := s.notifications.LoadNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load notifications: %w", err)
	}
	return messages, nil
}

// SubmitBid validates and records bidder's offer against a tender
func (s *LedgerService) SubmitBid(ctx context.Context, bidder, tenderID, amount string) (model.Bid, error) {
	cost, err := validateBid(bidder, tenderID, amount)
	if err != nil {
		return model.Bid{}, err
	}

	bid, err := s.bids.CreateBid(ctx, model.Bid{
		TenderID:    tenderID,
		CompanyName: bidder,
		BidCost:     cost,
		BidTime:     s.now(),
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for tender %s by %s: %w", tenderID, bidder, err)
	}

	s.markSubmitted(bidder, tenderID)
	return bid, nil
}

// HasBid reports whether bidder submitted a bid for tenderID since the process started
func (s *LedgerService) HasBid(bidder, tenderID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.submitted[bidder][tenderID]
	return ok
}

func (s *LedgerService) markSubmitted(bidder, tenderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitted[bidder] == nil {
		s.submitted[bidder] = make(map[string]struct{})
	}
	s.submitted[bidder][tenderID] = struct{}{}
}

// validateBid checks the submission and parses the amount
func validateBid(bidder, tenderID, amount string) (float64, error) {
	if bidder == "" {
		return 0, fmt.Errorf("service: %w", biddingerrors.ErrMissingBidder)
	}
	if tenderID == "" {
		return 0, fmt.Errorf("service: %w", biddingerrors.ErrNoTenderSelected)
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("service: %w", biddingerrors.ErrEmptyAmount)
	}

	cost, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("service: %w - %q is not a number", biddingerrors.ErrInvalidAmount, amount)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, fmt.Errorf("service: %w - %q is not a finite number", biddingerrors.ErrInvalidAmount, amount)
	}
	if cost < 0 {
		return 0, fmt.Errorf("service: %w - negative bid amount", biddingerrors.ErrInvalidAmount)
	}
	return cost, nil
}
