package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newReviewRouter(service ReviewServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(service)

	router := gin.New()
	router.GET("/review/bids", h.ListBidsHandler)
	router.GET("/review/bids/filter", h.FilterBidsHandler)
	router.DELETE("/review/bids/:bid_id", h.DeleteBidHandler)
	return router
}

func dataIDs(t *testing.T, resp map[string]any) []string {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "data must be a JSON array")
	out := make([]string, 0, len(data))
	for _, d := range data {
		out = append(out, d.(map[string]any)["id"].(string))
	}
	return out
}

func TestListBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockReviewServiceInterface(ctrl)
	router := newReviewRouter(mockService)

	lastFive := true
	mockService.EXPECT().ListBids(gomock.Any()).Return([]model.Bid{
		{BidID: "b100", TenderID: "A", BidCost: 100, BidTime: time.Now(), IsLastFiveMinutes: &lastFive},
		{BidID: "b500", TenderID: "A", BidCost: 500, BidTime: time.Now()},
	}, nil)

	w, resp := performRequest(t, router, http.MethodGet, "/review/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"b100", "b500"}, dataIDs(t, resp))

	first := resp["data"].([]any)[0].(map[string]any)
	require.Equal(t, true, first["isLastFiveMinutes"], "pass-through flag is rendered when present")

	mockService.EXPECT().ListBids(gomock.Any()).Return(nil, biddingerrors.ErrStore)
	w, _ = performRequest(t, router, http.MethodGet, "/review/bids", nil, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestFilterBidsHandler(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		tenderID string
		returned []model.Bid
		wantIDs  []string
	}{
		{name: "all_tenders", url: "/review/bids/filter", tenderID: "", returned: []model.Bid{{BidID: "x"}, {BidID: "y"}}, wantIDs: []string{"x", "y"}},
		{name: "one_tender", url: "/review/bids/filter?tender_id=A", tenderID: "A", returned: []model.Bid{{BidID: "x", TenderID: "A"}}, wantIDs: []string{"x"}},
		{name: "no_match", url: "/review/bids/filter?tender_id=Z", tenderID: "Z", returned: nil, wantIDs: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockReviewServiceInterface(ctrl)
			mockService.EXPECT().FilterByTender(tc.tenderID).Return(tc.returned)

			w, resp := performRequest(t, newReviewRouter(mockService), http.MethodGet, tc.url, nil, nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tc.wantIDs, dataIDs(t, resp))
		})
	}
}

func TestDeleteBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockReviewServiceInterface(ctrl)
	router := newReviewRouter(mockService)

	mockService.EXPECT().DeleteBid(gomock.Any(), "b1").Return([]model.Bid{{BidID: "b2", BidCost: 20}}, nil)
	w, resp := performRequest(t, router, http.MethodDelete, "/review/bids/b1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Bid has been removed.", resp["message"])
	require.Equal(t, []string{"b2"}, dataIDs(t, resp))

	stale := fmt.Errorf("service: bid b3: %w: %w", biddingerrors.ErrBidListStale, biddingerrors.ErrStore)
	mockService.EXPECT().DeleteBid(gomock.Any(), "b3").Return(nil, stale)
	w, resp = performRequest(t, router, http.MethodDelete, "/review/bids/b3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, "the delete itself succeeded")
	require.Equal(t, "Bid has been removed. The bid list could not be refreshed.", resp["message"])
	require.Nil(t, resp["data"])

	mockService.EXPECT().DeleteBid(gomock.Any(), "b9").Return(nil, biddingerrors.ErrStore)
	w, resp = performRequest(t, router, http.MethodDelete, "/review/bids/b9", nil, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "store unavailable", resp["message"])
}
