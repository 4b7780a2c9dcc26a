package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new store identifier for tenders and bids
func GenerateID() string {
	return uuid.New().String()
}
