package review

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/internal/repository"
)

// ReviewService is the management view over bids. It owns the snapshot from
// the last fetch; filtering works on that snapshot, never on the store.
type ReviewService struct {
	bids repository.BidStore

	mu       sync.RWMutex
	snapshot []model.Bid
}

// NewReviewService creates a new ReviewService instance
func NewReviewService(bids repository.BidStore) *ReviewService {
	return &ReviewService{bids: bids}
}

// ListBids fetches every bid, sorts by cost ascending and replaces the snapshot.
// Equal costs keep their fetch order.
func (s *ReviewService) ListBids(ctx context.Context) ([]model.Bid, error) {
	bids, err := s.bids.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}

	sorted := SortByCost(bids)

	s.mu.Lock()
	s.snapshot = sorted
	s.mu.Unlock()

	return slices.Clone(sorted), nil
}

// FilterByTender returns the bids of the last ListBids for tenderID, or all of
// them when tenderID is empty
func (s *ReviewService) FilterByTender(tenderID string) []model.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tenderID == "" {
		return append([]model.Bid{}, s.snapshot...)
	}

	filtered := []model.Bid{}
	for _, b := range s.snapshot {
		if b.TenderID == tenderID {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// DeleteBid removes a bid and re-fetches the full list. A failed re-fetch after
// a successful delete is reported as ErrBidListStale.
func (s *ReviewService) DeleteBid(ctx context.Context, id string) ([]model.Bid, error) {
	if err := s.bids.DeleteBid(ctx, id); err != nil {
		return nil, fmt.Errorf("service: failed to delete bid %s: %w", id, err)
	}

	bids, err := s.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: bid %s: %w: %w", id, biddingerrors.ErrBidListStale, err)
	}
	return bids, nil
}

// SortByCost returns a copy of bids stably sorted by ascending cost
func SortByCost(bids []model.Bid) []model.Bid {
	sorted := append([]model.Bid{}, bids...)
	slices.SortStableFunc(sorted, func(a, b model.Bid) int {
		return cmp.Compare(a.BidCost, b.BidCost)
	})
	return sorted
}
