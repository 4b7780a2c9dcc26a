package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	catalog "tender-board/internal/catalogService"
	ledger "tender-board/internal/ledgerService"
	model "tender-board/internal/models"
	"tender-board/internal/repository"
	review "tender-board/internal/reviewService"
	"tender-board/internal/server"
	"tender-board/services/tender/helpers"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router over in-memory stores for integration testing.
func SetupTestRouter() *gin.Engine {
	router, _ := SetupTestRouterWithTenders()
	return router
}

// SetupTestRouterWithTenders initializes the router and seeds the catalog.
// It returns the seeded tenders with their assigned IDs.
func SetupTestRouterWithTenders(fields ...model.TenderFields) (*gin.Engine, []model.Tender) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	notifications := repository.NewMemoryNotificationStore()

	catalogSvc := catalog.NewCatalogService(repo)
	ledgerSvc := ledger.NewLedgerService(repo, repo, notifications)
	reviewSvc := review.NewReviewService(repo)

	seeded := make([]model.Tender, 0, len(fields))
	for _, f := range fields {
		t, err := catalogSvc.CreateTender(context.Background(), f)
		if err != nil {
			panic(err)
		}
		seeded = append(seeded, t)
	}

	return server.SetupRouter(catalogSvc, ledgerSvc, reviewSvc), seeded
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the envelope.
// bidder, when non-empty, is sent as the identity header.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, bidder string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if bidder != "" {
		req.Header.Set(helpers.BidderHeader, bidder)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

func tenderFields(name, publishDate string) model.TenderFields {
	return model.TenderFields{
		Name:           name,
		Description:    name + " works",
		PublishDate:    publishDate,
		ContractPeriod: "12 months",
		Turnover:       "1000000",
		Experience:     "3 years",
		TenderValue:    "250000",
		State:          "Kerala",
	}
}
