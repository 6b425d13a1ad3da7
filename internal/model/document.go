package model

import "time"

// Document is a company-uploaded file bound to a funding request. It is
// a separate data path from FundingRequest attachments and is kept that
// way on purpose.
type Document struct {
	DocumentID   int       `json:"document_id"`
	DocumentName string    `json:"document_name"`
	DocumentType string    `json:"document_type"`
	UploadDate   time.Time `json:"upload_date"`
	Status       string    `json:"status"`
	CompanyID    int       `json:"company_id"`
	FileContent  []byte    `json:"-"`
	RequestID    int       `json:"request_id"`
}
