package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create stores an uploaded file for a funding request. Documents are a
// separate table from FundingRequestAttachments.
func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) error {
	defer observe(time.Now(), "insert", "Documents")

	query := `
        INSERT INTO Documents (DocumentName, DocumentType, UploadDate, Status,
                               CompanyID, FileContent, RequestID)
        VALUES ($1, $2, NOW(), 'Pending', $3, $4, $5)
        RETURNING DocumentID
    `
	return r.db.QueryRow(ctx, query,
		doc.DocumentName, doc.DocumentType, doc.CompanyID, doc.FileContent, doc.RequestID,
	).Scan(&doc.DocumentID)
}
