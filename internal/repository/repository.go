package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/utils"
)

// TenderStore is the tenders collection: list-all, create, full replace and delete by id.
type TenderStore interface {
	ListTenders(ctx context.Context) ([]model.Tender, error)
	CreateTender(ctx context.Context, fields model.TenderFields) (model.Tender, error)
	UpdateTender(ctx context.Context, id string, fields model.TenderFields) (model.Tender, error)
	DeleteTender(ctx context.Context, id string) error
}

// BidStore is the bids collection. Bids are never updated.
type BidStore interface {
	ListBids(ctx context.Context) ([]model.Bid, error)
	CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	DeleteBid(ctx context.Context, id string) error
}

// NotificationStore persists the single list of notification messages.
type NotificationStore interface {
	LoadNotifications(ctx context.Context) ([]string, error)
	SaveNotifications(ctx context.Context, messages []string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of TenderStore and BidStore.
// Both collections keep insertion order, which is their natural list order.
type MemoryRepo struct {
	mu      sync.RWMutex
	tenders []model.Tender
	bids    []model.Bid
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// ListTenders returns all tenders in insertion order
func (r *MemoryRepo) ListTenders(_ context.Context) ([]model.Tender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.tenders), nil
}

// CreateTender stores a new tender under a freshly assigned id
func (r *MemoryRepo) CreateTender(_ context.Context, fields model.TenderFields) (model.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tender := model.Tender{ID: utils.GenerateID(), TenderFields: fields}
	r.tenders = append(r.tenders, tender)
	return tender, nil
}

// UpdateTender replaces every field of an existing tender
func (r *MemoryRepo) UpdateTender(_ context.Context, id string, fields model.TenderFields) (model.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.tenders, func(t model.Tender) bool { return t.ID == id })
	if i < 0 {
		return model.Tender{}, fmt.Errorf("update tender %s: %w", id, biddingerrors.ErrTenderNotFound)
	}
	r.tenders[i].TenderFields = fields
	return r.tenders[i], nil
}

// DeleteTender removes a tender; deleting an unknown id is a no-op
func (r *MemoryRepo) DeleteTender(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tenders = slices.DeleteFunc(r.tenders, func(t model.Tender) bool { return t.ID == id })
	return nil
}

// ListBids returns all bids in insertion order
func (r *MemoryRepo) ListBids(_ context.Context) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.bids), nil
}

// CreateBid records a bid under a freshly assigned id. The referenced tender is not checked.
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid.BidID = utils.GenerateID()
	r.bids = append(r.bids, bid)
	return bid, nil
}

// DeleteBid removes a bid; deleting an unknown id is a no-op
func (r *MemoryRepo) DeleteBid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bids = slices.DeleteFunc(r.bids, func(b model.Bid) bool { return b.BidID == id })
	return nil
}
