package models

import "time"

const (
	// PublishDateLayout is the ISO calendar date used for tender publish dates.
	PublishDateLayout = "2006-01-02"
	// BidTimeLayout is how a bid's submission time is rendered to clients.
	BidTimeLayout = "2006-01-02 15:04:05"
)

// TenderFields holds every replaceable field of a tender.
// Field order matters: validation reports the first failing field in this order.
type TenderFields struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	PublishDate    string `json:"publishDate" validate:"required,datetime=2006-01-02"`
	ContractPeriod string `json:"contractPeriod" validate:"required"`
	Turnover       string `json:"turnover" validate:"required"`
	Experience     string `json:"experience" validate:"required"`
	TenderValue    string `json:"tenderValue" validate:"required"`
	State          string `json:"state" validate:"required"`
}

// Tender represents a published procurement opportunity
type Tender struct {
	ID string `json:"id"`
	TenderFields
}

// TenderView is a tender as seen by one bidder in the current session
type TenderView struct {
	Tender
	AlreadyBid bool `json:"alreadyBid"`
}

// Bid represents a cost offer submitted by a company against a tender
type Bid struct {
	BidID       string    `json:"id"`
	TenderID    string    `json:"tenderId"`
	CompanyName string    `json:"companyName"`
	BidCost     float64   `json:"bidCost"`
	BidTime     time.Time `json:"bidTime"`
	// IsLastFiveMinutes is carried through from the store as-is; nothing computes it.
	IsLastFiveMinutes *bool `json:"isLastFiveMinutes,omitempty"`
}
