package domain

import "time"

// Provider is a record of the provider directory.
// Slug is the human-facing identifier used in links; ID is the internal key.
type Provider struct {
	ID          string
	Slug        string
	DisplayName string
	CreatedAt   time.Time
}
