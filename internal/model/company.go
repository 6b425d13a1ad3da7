package model

import "time"

type Company struct {
	CompanyID       int       `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    string    `json:"contact_phone"`
	Description     string    `json:"description"`
	DateJoined      time.Time `json:"date_joined"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason"`
}

// CompanyInfo is the owner-scoped view returned to a company's own user.
type CompanyInfo struct {
	CompanyID       int       `json:"company_id"`
	CompanyName     string    `json:"company_name"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    string    `json:"contact_phone"`
	DateJoined      time.Time `json:"date_joined"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
}
