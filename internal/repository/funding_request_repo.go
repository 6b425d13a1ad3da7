package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type FundingRequestRepository struct {
	db *pgxpool.Pool
}

func NewFundingRequestRepository(db *pgxpool.Pool) *FundingRequestRepository {
	return &FundingRequestRepository{db: db}
}

// Create inserts a funding request as Pending with a server-side
// submission timestamp and returns the generated id.
func (r *FundingRequestRepository) Create(ctx context.Context, fr *model.FundingRequest) (int, error) {
	defer observe(time.Now(), "insert", "FundingRequests")

	query := `
        INSERT INTO FundingRequests (CompanyID, ProjectDescription, RequestedAmount,
                                     ProjectImpact, Status, SubmittedAt)
        VALUES ($1, $2, $3, $4, 'Pending', NOW())
        RETURNING RequestID
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount, fr.ProjectImpact,
	).Scan(&id)
	return id, err
}

// ListWithCompany returns every funding request for the admin view,
// joined with the applying company's name.
func (r *FundingRequestRepository) ListWithCompany(ctx context.Context) ([]model.FundingRequestWithCompany, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT fr.RequestID, fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount,
               fr.ProjectImpact, fr.Status, fr.SubmittedAt, fr.AdminMessage, c.CompanyName
        FROM FundingRequests fr
        INNER JOIN Companies c ON fr.CompanyID = c.CompanyID
        ORDER BY fr.SubmittedAt DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestsWithCompany(rows)
}

// FindWithCompanyByID returns one funding request with its company name.
func (r *FundingRequestRepository) FindWithCompanyByID(ctx context.Context, id int) (*model.FundingRequestWithCompany, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT fr.RequestID, fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount,
               fr.ProjectImpact, fr.Status, fr.SubmittedAt, fr.AdminMessage, c.CompanyName
        FROM FundingRequests fr
        INNER JOIN Companies c ON fr.CompanyID = c.CompanyID
        WHERE fr.RequestID = $1
    `
	var fr model.FundingRequestWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fr.RequestID, &fr.CompanyID, &fr.ProjectDescription, &fr.RequestedAmount,
		&fr.ProjectImpact, &fr.Status, &fr.SubmittedAt, &fr.AdminMessage, &fr.CompanyName,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &fr, nil
}

// Approve sets a request's status to Approved and stores the admin
// message, NULL when none was given.
func (r *FundingRequestRepository) Approve(ctx context.Context, id int, message *string) error {
	defer observe(time.Now(), "update", "FundingRequests")

	query := `
        UPDATE FundingRequests
        SET Status = 'Approved', AdminMessage = $2
        WHERE RequestID = $1
    `
	tag, err := r.db.Exec(ctx, query, id, message)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reject sets a request's status to Rejected. Any stored admin message
// is left untouched.
func (r *FundingRequestRepository) Reject(ctx context.Context, id int) error {
	defer observe(time.Now(), "update", "FundingRequests")

	query := `
        UPDATE FundingRequests
        SET Status = 'Rejected'
        WHERE RequestID = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByCompany returns a company's request history, newest first.
func (r *FundingRequestRepository) ListByCompany(ctx context.Context, companyID int) ([]model.FundingRequest, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT RequestID, CompanyID, ProjectDescription, RequestedAmount,
               ProjectImpact, Status, SubmittedAt, AdminMessage
        FROM FundingRequests
        WHERE CompanyID = $1
        ORDER BY SubmittedAt DESC
    `
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.FundingRequest{}
	for rows.Next() {
		var fr model.FundingRequest
		err := rows.Scan(
			&fr.RequestID, &fr.CompanyID, &fr.ProjectDescription, &fr.RequestedAmount,
			&fr.ProjectImpact, &fr.Status, &fr.SubmittedAt, &fr.AdminMessage,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, fr)
	}
	return requests, rows.Err()
}

// Search matches the term as a case-insensitive substring of the company
// name or project description, restricted to requests still moving
// through review. An empty term matches every row in that status set.
func (r *FundingRequestRepository) Search(ctx context.Context, term string) ([]model.FundingRequestWithCompany, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT fr.RequestID, fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount,
               fr.ProjectImpact, fr.Status, fr.SubmittedAt, fr.AdminMessage, c.CompanyName
        FROM FundingRequests fr
        INNER JOIN Companies c ON fr.CompanyID = c.CompanyID
        WHERE fr.Status IN ('Pending', 'Approved', 'Rejected')
          AND (c.CompanyName ILIKE $1 OR fr.ProjectDescription ILIKE $1)
        ORDER BY fr.SubmittedAt DESC
    `
	rows, err := r.db.Query(ctx, query, SearchPattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestsWithCompany(rows)
}

// ListForDonors returns the donor-facing browse list: approved or closed
// requests with their company names.
func (r *FundingRequestRepository) ListForDonors(ctx context.Context) ([]model.FundingRequestWithCompany, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT fr.RequestID, fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount,
               fr.ProjectImpact, fr.Status, fr.SubmittedAt, fr.AdminMessage,
               COALESCE(c.CompanyName, '')
        FROM FundingRequests fr
        LEFT JOIN Companies c ON fr.CompanyID = c.CompanyID
        WHERE fr.Status IN ('Approved', 'Closed')
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestsWithCompany(rows)
}

// FindConfirmation returns a request plus its attachments in one query.
func (r *FundingRequestRepository) FindConfirmation(ctx context.Context, id int) (*model.FundingRequestConfirmation, error) {
	defer observe(time.Now(), "select", "FundingRequests")

	query := `
        SELECT fr.RequestID, fr.CompanyID, fr.ProjectDescription, fr.RequestedAmount,
               fr.ProjectImpact, fr.Status, fr.SubmittedAt, fr.AdminMessage,
               fra.AttachmentID, fra.FileName
        FROM FundingRequests fr
        LEFT JOIN FundingRequestAttachments fra ON fr.RequestID = fra.RequestID
        WHERE fr.RequestID = $1
    `
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var confirmation *model.FundingRequestConfirmation
	for rows.Next() {
		var fr model.FundingRequest
		var attachmentID *int
		var fileName *string
		err := rows.Scan(
			&fr.RequestID, &fr.CompanyID, &fr.ProjectDescription, &fr.RequestedAmount,
			&fr.ProjectImpact, &fr.Status, &fr.SubmittedAt, &fr.AdminMessage,
			&attachmentID, &fileName,
		)
		if err != nil {
			return nil, err
		}
		if confirmation == nil {
			confirmation = &model.FundingRequestConfirmation{
				FundingRequest: fr,
				Attachments:    []model.Attachment{},
			}
		}
		if attachmentID != nil && fileName != nil {
			confirmation.Attachments = append(confirmation.Attachments, model.Attachment{
				AttachmentID: *attachmentID,
				FileName:     *fileName,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, ErrNotFound
	}
	return confirmation, nil
}

// SearchPattern wraps a search term for a substring ILIKE match.
func SearchPattern(term string) string {
	return "%" + term + "%"
}

func scanRequestsWithCompany(rows pgx.Rows) ([]model.FundingRequestWithCompany, error) {
	requests := []model.FundingRequestWithCompany{}
	for rows.Next() {
		var fr model.FundingRequestWithCompany
		err := rows.Scan(
			&fr.RequestID, &fr.CompanyID, &fr.ProjectDescription, &fr.RequestedAmount,
			&fr.ProjectImpact, &fr.Status, &fr.SubmittedAt, &fr.AdminMessage, &fr.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, fr)
	}
	return requests, rows.Err()
}
