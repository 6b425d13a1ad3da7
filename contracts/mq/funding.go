package mq

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutingKeyFundingRequestSubmitted = "fundingrequest.submitted"
)

// FundingRequestSubmittedPayload is published when a company applies for funding.
type FundingRequestSubmittedPayload struct {
	RequestID       int             `json:"request_id"`
	CompanyID       int             `json:"company_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	SubmittedAt     time.Time       `json:"submitted_at"`
}
