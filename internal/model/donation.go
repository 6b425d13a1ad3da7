package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Donation struct {
	DonationID     int             `json:"donation_id"`
	CompanyID      *int            `json:"company_id,omitempty"`
	DonationDate   time.Time       `json:"donation_date"`
	DonationType   string          `json:"donation_type"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	DonorName      string          `json:"donor_name"`
	DonorIDNumber  string          `json:"donor_id_number"`
	DonorTaxNumber string          `json:"donor_tax_number"`
	DonorEmail     string          `json:"donor_email"`
	DonorPhone     string          `json:"donor_phone"`
	Document       []byte          `json:"document,omitempty"`
	PaymentStatus  string          `json:"payment_status"`
}

// DonationWithCompany is the admin list view; CompanyName is nil for
// undirected donations.
type DonationWithCompany struct {
	Donation
	CompanyName *string `json:"company_name,omitempty"`
}

// DonationSummary is the per-donor history row.
type DonationSummary struct {
	DonationID     int             `json:"donation_id"`
	DonationDate   time.Time       `json:"donation_date"`
	DonationType   string          `json:"donation_type"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	DonorName      string          `json:"donor_name"`
}

// DonationDocument carries the stored proof-of-payment blob and the
// display fields used to synthesize a download file name.
type DonationDocument struct {
	DonorName    string
	DonationDate time.Time
	Content      []byte
}
