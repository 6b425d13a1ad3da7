package mq

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutingKeyDonationCreated   = "donation.created"
	RoutingKeyDonationProcessed = "donation.processed"
)

// DonationCreatedPayload is published when a donor records a donation.
type DonationCreatedPayload struct {
	DonationID   int             `json:"donation_id"`
	CompanyID    *int            `json:"company_id,omitempty"`
	DonationType string          `json:"donation_type"`
	Amount       decimal.Decimal `json:"amount"`
	DonorEmail   string          `json:"donor_email"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DonationProcessedPayload is published when an admin marks a donation processed.
type DonationProcessedPayload struct {
	DonationID  int       `json:"donation_id"`
	ProcessedAt time.Time `json:"processed_at"`
}
