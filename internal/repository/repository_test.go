package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create tender fields
func newFields(name, publishDate string) model.TenderFields {
	return model.TenderFields{
		Name:           name,
		Description:    fmt.Sprintf("%s description", name),
		PublishDate:    publishDate,
		ContractPeriod: "12 months",
		Turnover:       "500000",
		Experience:     "3 years",
		TenderValue:    "250000",
		State:          "Karnataka",
	}
}

// Helper to create a new Bid
func newBid(tenderID, company string, cost float64, bidTime time.Time) model.Bid {
	return model.Bid{
		TenderID:    tenderID,
		CompanyName: company,
		BidCost:     cost,
		BidTime:     bidTime,
	}
}

func TestMemoryRepo_CreateAndListTenders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	tenders, err := repo.ListTenders(ctx)
	require.NoError(t, err)
	require.Empty(t, tenders)

	names := []string{"Road", "Bridge", "School"}
	for _, name := range names {
		created, err := repo.CreateTender(ctx, newFields(name, "2024-05-01"))
		require.NoError(t, err)
		_, parseErr := uuid.Parse(created.ID)
		require.NoError(t, parseErr, "tender ID should be a valid UUID")
		require.Equal(t, name, created.Name)
	}

	tenders, err = repo.ListTenders(ctx)
	require.NoError(t, err)
	require.Len(t, tenders, 3)
	for i, name := range names {
		require.Equal(t, name, tenders[i].Name, "insertion order must be preserved")
	}
}

func TestMemoryRepo_ListTendersReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	_, err := repo.CreateTender(ctx, newFields("Road", "2024-05-01"))
	require.NoError(t, err)

	tenders, err := repo.ListTenders(ctx)
	require.NoError(t, err)
	tenders[0].Name = "mutated"

	again, err := repo.ListTenders(ctx)
	require.NoError(t, err)
	require.Equal(t, "Road", again[0].Name)
}

func TestMemoryRepo_UpdateTender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	created, err := repo.CreateTender(ctx, newFields("Road", "2024-05-01"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		fields  model.TenderFields
		wantErr error
	}{
		{name: "replace_all_fields", id: created.ID, fields: newFields("Highway", "2024-06-01")},
		{name: "unknown_id", id: "missing", fields: newFields("Ghost", "2024-06-01"), wantErr: biddingerrors.ErrTenderNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := repo.UpdateTender(ctx, tc.id, tc.fields)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.id, updated.ID)
			require.Equal(t, tc.fields, updated.TenderFields)

			tenders, err := repo.ListTenders(ctx)
			require.NoError(t, err)
			require.Equal(t, []model.Tender{updated}, tenders)
		})
	}
}

func TestMemoryRepo_DeleteTenderIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	first, err := repo.CreateTender(ctx, newFields("Road", "2024-05-01"))
	require.NoError(t, err)
	second, err := repo.CreateTender(ctx, newFields("Bridge", "2024-05-01"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTender(ctx, first.ID))
	require.NoError(t, repo.DeleteTender(ctx, first.ID))
	require.NoError(t, repo.DeleteTender(ctx, "never-existed"))

	tenders, err := repo.ListTenders(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Tender{second}, tenders)
}

func TestMemoryRepo_Bids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	// tender references are not checked
	first, err := repo.CreateBid(ctx, newBid("tender-a", "Acme", 500, now))
	require.NoError(t, err)
	second, err := repo.CreateBid(ctx, newBid("no-such-tender", "Globex", 100, now))
	require.NoError(t, err)
	require.NotEqual(t, first.BidID, second.BidID)

	bids, err := repo.ListBids(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Bid{first, second}, bids, "bids are listed in insertion order")

	require.NoError(t, repo.DeleteBid(ctx, first.BidID))
	require.NoError(t, repo.DeleteBid(ctx, first.BidID))

	bids, err = repo.ListBids(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Bid{second}, bids)
}

func TestMemoryRepo_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.CreateBid(ctx, newBid("tender-a", fmt.Sprintf("company-%d", i), float64(i), time.Now()))
			assert.NoError(t, err)
			_, err = repo.CreateTender(ctx, newFields(fmt.Sprintf("tender-%d", i), "2024-05-01"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	bids, err := repo.ListBids(ctx)
	require.NoError(t, err)
	require.Len(t, bids, 50)

	tenders, err := repo.ListTenders(ctx)
	require.NoError(t, err)
	require.Len(t, tenders, 50)
}

func TestMemoryNotificationStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryNotificationStore()

	messages, err := store.LoadNotifications(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{}, messages)

	require.NoError(t, store.SaveNotifications(ctx, []string{"New Tender Available: Road", "New Tender Available: Bridge"}))
	require.NoError(t, store.SaveNotifications(ctx, []string{"New Tender Available: School"}))

	messages, err = store.LoadNotifications(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"New Tender Available: School"}, messages, "save overwrites, never appends")
}

func TestDecodeNotifications_Corrupt(t *testing.T) {
	t.Parallel()

	_, err := decodeNotifications([]byte("{not json"))
	require.Error(t, err)
	require.False(t, errors.Is(err, biddingerrors.ErrStore))
}
