package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FundingRequest struct {
	RequestID          int             `json:"request_id"`
	CompanyID          int             `json:"company_id"`
	ProjectDescription string          `json:"project_description"`
	RequestedAmount    decimal.Decimal `json:"requested_amount"`
	ProjectImpact      string          `json:"project_impact"`
	Status             string          `json:"status"`
	SubmittedAt        time.Time       `json:"submitted_at"`
	AdminMessage       *string         `json:"admin_message,omitempty"`
}

// FundingRequestWithCompany joins in the company name for admin, donor
// and search views.
type FundingRequestWithCompany struct {
	FundingRequest
	CompanyName string `json:"company_name"`
}

type Attachment struct {
	AttachmentID int    `json:"attachment_id"`
	FileName     string `json:"file_name"`
}

// FundingRequestConfirmation is a submitted request plus its attachments.
type FundingRequestConfirmation struct {
	FundingRequest
	Attachments []Attachment `json:"attachments"`
}
