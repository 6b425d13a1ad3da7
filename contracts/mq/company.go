package mq

import "time"

const (
	RoutingKeyCompanyStatusChanged = "company.status_changed"
)

// CompanyStatusChangedPayload is published when an admin approves or rejects a company.
type CompanyStatusChangedPayload struct {
	CompanyID int       `json:"company_id"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}
