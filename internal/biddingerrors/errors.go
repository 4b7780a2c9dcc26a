package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrTenderNotFound = errors.New("tender not found")
	ErrStore          = errors.New("store operation failed")
)

// business logic errors
var (
	ErrInvalidTender    = errors.New("invalid tender")
	ErrNoTenderSelected = errors.New("no tender selected")
	ErrEmptyAmount      = errors.New("bid amount is required")
	ErrInvalidAmount    = errors.New("invalid bid amount")
	ErrMissingBidder    = errors.New("bidder identity is required")
	ErrInvalidDate      = errors.New("invalid date")
)

// partial-success errors: the main operation completed, a follow-up step did not
var (
	ErrNotificationsNotSaved = errors.New("notifications not saved")
	ErrBidListStale          = errors.New("bid deleted but list not refreshed")
)
