package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"

	model "tender-board/internal/models"
)

// Request/Response DTOs

// TenderRequest carries all replaceable tender fields. Presence is checked by
// the catalog service so that the first missing field can be named.
type TenderRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PublishDate    string `json:"publishDate"`
	ContractPeriod string `json:"contractPeriod"`
	Turnover       string `json:"turnover"`
	Experience     string `json:"experience"`
	TenderValue    string `json:"tenderValue"`
	State          string `json:"state"`
}

// Fields converts the request to the domain type
func (r TenderRequest) Fields() model.TenderFields {
	return model.TenderFields{
		Name:           r.Name,
		Description:    r.Description,
		PublishDate:    r.PublishDate,
		ContractPeriod: r.ContractPeriod,
		Turnover:       r.Turnover,
		Experience:     r.Experience,
		TenderValue:    r.TenderValue,
		State:          r.State,
	}
}

// SubmitBidRequest is the bidder's form: the selected tender and the amount as typed.
type SubmitBidRequest struct {
	TenderID  string    `json:"tenderId"`
	BidAmount BidAmount `json:"bidAmount"`
}

// BidAmount is the amount text. It decodes from a JSON string or a JSON number,
// keeping the number's literal; parsing is left to the ledger service.
type BidAmount string

func (a *BidAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = BidAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("bidAmount must be a string or a number: %w", err)
	}
	*a = BidAmount(n.String())
	return nil
}

type BidResponse struct {
	BidID             string  `json:"id"`
	TenderID          string  `json:"tenderId"`
	CompanyName       string  `json:"companyName"`
	BidCost           float64 `json:"bidCost"`
	BidTime           string  `json:"bidTime"`
	IsLastFiveMinutes *bool   `json:"isLastFiveMinutes,omitempty"`
}

type LedgerTendersResponse struct {
	Tenders       []model.TenderView `json:"tenders"`
	Notifications []string           `json:"notifications"`
	// NotificationError is set when the detected notifications could not be stored
	NotificationError string `json:"notificationError,omitempty"`
}
