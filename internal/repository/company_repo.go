package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns every registered company.
func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	defer observe(time.Now(), "select", "Companies")

	query := `
        SELECT CompanyID, CompanyName, ContactEmail, ContactPhone, Description,
               DateJoined, Status, COALESCE(RejectionReason, '')
        FROM Companies
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		var c model.Company
		err := rows.Scan(
			&c.CompanyID, &c.CompanyName, &c.ContactEmail, &c.ContactPhone,
			&c.Description, &c.DateJoined, &c.Status, &c.RejectionReason,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// FindByID returns full company details.
func (r *CompanyRepository) FindByID(ctx context.Context, id int) (*model.Company, error) {
	defer observe(time.Now(), "select", "Companies")

	query := `
        SELECT CompanyID, CompanyName, ContactEmail, ContactPhone, Description,
               DateJoined, Status, COALESCE(RejectionReason, '')
        FROM Companies
        WHERE CompanyID = $1
    `
	var c model.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.CompanyID, &c.CompanyName, &c.ContactEmail, &c.ContactPhone,
		&c.Description, &c.DateJoined, &c.Status, &c.RejectionReason,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// FindForUser returns a company only when the (company, owner) pair matches.
// An ownership mismatch is indistinguishable from a missing row.
func (r *CompanyRepository) FindForUser(ctx context.Context, companyID, userID int) (*model.CompanyInfo, error) {
	defer observe(time.Now(), "select", "Companies")

	query := `
        SELECT CompanyID, CompanyName, ContactEmail, ContactPhone,
               DateJoined, Status, RejectionReason
        FROM Companies
        WHERE CompanyID = $1 AND UserID = $2
    `
	var c model.CompanyInfo
	err := r.db.QueryRow(ctx, query, companyID, userID).Scan(
		&c.CompanyID, &c.CompanyName, &c.ContactEmail, &c.ContactPhone,
		&c.DateJoined, &c.Status, &c.RejectionReason,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// FindCompanyIDForUser resolves the company owned by a user, if any.
func (r *CompanyRepository) FindCompanyIDForUser(ctx context.Context, userID int) (*int, error) {
	defer observe(time.Now(), "select", "Companies")

	query := `
        SELECT CompanyID
        FROM Companies
        WHERE UserID = $1
    `
	var companyID int
	err := r.db.QueryRow(ctx, query, userID).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &companyID, nil
}

// Approve sets a company's status to Approved. A previously stored
// rejection reason is left in place.
func (r *CompanyRepository) Approve(ctx context.Context, id int) error {
	defer observe(time.Now(), "update", "Companies")

	query := `
        UPDATE Companies
        SET Status = 'Approved'
        WHERE CompanyID = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// Reject sets a company's status to Rejected and stores the reason verbatim.
func (r *CompanyRepository) Reject(ctx context.Context, id int, reason string) error {
	defer observe(time.Now(), "update", "Companies")

	query := `
        UPDATE Companies
        SET Status = 'Rejected', RejectionReason = $2
        WHERE CompanyID = $1
    `
	_, err := r.db.Exec(ctx, query, id, reason)
	return err
}
