package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type DonationRepository struct {
	db *pgxpool.Pool
}

func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{db: db}
}

// ListWithCompany returns every donation, joined with the receiving
// company's name when the donation is directed.
func (r *DonationRepository) ListWithCompany(ctx context.Context) ([]model.DonationWithCompany, error) {
	defer observe(time.Now(), "select", "Donations")

	query := `
        SELECT d.DonationID, d.CompanyID, d.DonationDate, d.DonationType, d.DonationAmount,
               d.DonorName, d.DonorIDNumber, d.DonorTaxNumber, d.DonorEmail, d.DonorPhone,
               d.PaymentStatus, c.CompanyName
        FROM Donations d
        LEFT JOIN Companies c ON d.CompanyID = c.CompanyID
        ORDER BY d.DonationDate DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []model.DonationWithCompany{}
	for rows.Next() {
		var d model.DonationWithCompany
		err := rows.Scan(
			&d.DonationID, &d.CompanyID, &d.DonationDate, &d.DonationType, &d.DonationAmount,
			&d.DonorName, &d.DonorIDNumber, &d.DonorTaxNumber, &d.DonorEmail, &d.DonorPhone,
			&d.PaymentStatus, &d.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

// FindByID returns full donor detail for one donation.
func (r *DonationRepository) FindByID(ctx context.Context, id int) (*model.Donation, error) {
	defer observe(time.Now(), "select", "Donations")

	query := `
        SELECT DonationID, CompanyID, DonationDate, DonationType, DonationAmount,
               DonorName, DonorIDNumber, DonorTaxNumber, DonorEmail, DonorPhone,
               DocumentPath, PaymentStatus
        FROM Donations
        WHERE DonationID = $1
    `
	var d model.Donation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.DonationID, &d.CompanyID, &d.DonationDate, &d.DonationType, &d.DonationAmount,
		&d.DonorName, &d.DonorIDNumber, &d.DonorTaxNumber, &d.DonorEmail, &d.DonorPhone,
		&d.Document, &d.PaymentStatus,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// Create inserts a donation. Status always starts as Pending and the
// donation date is set server-side.
func (r *DonationRepository) Create(ctx context.Context, d *model.Donation) (int, error) {
	defer observe(time.Now(), "insert", "Donations")

	query := `
        INSERT INTO Donations (CompanyID, DonationDate, DonationType, DonationAmount,
                               DonorName, DonorIDNumber, DonorTaxNumber, DonorEmail,
                               DonorPhone, DocumentPath, PaymentStatus)
        VALUES ($1, NOW(), $2, $3, $4, $5, $6, $7, $8, $9, 'Pending')
        RETURNING DonationID
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		d.CompanyID, d.DonationType, d.DonationAmount,
		d.DonorName, d.DonorIDNumber, d.DonorTaxNumber, d.DonorEmail,
		d.DonorPhone, d.Document,
	).Scan(&id)
	return id, err
}

// MarkProcessed flips a donation's payment status. Returns ErrNotFound
// when the id does not exist, without touching anything else.
func (r *DonationRepository) MarkProcessed(ctx context.Context, id int) error {
	defer observe(time.Now(), "update", "Donations")

	query := `
        UPDATE Donations
        SET PaymentStatus = 'Processed'
        WHERE DonationID = $1
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

// FindDocument reads the stored proof-of-payment blob and the display
// fields used to build a download file name. Content is nil when no
// document was attached.
func (r *DonationRepository) FindDocument(ctx context.Context, id int) (*model.DonationDocument, error) {
	defer observe(time.Now(), "select", "Donations")

	query := `
        SELECT DonorName, DonationDate, DocumentPath
        FROM Donations
        WHERE DonationID = $1
    `
	var doc model.DonationDocument
	err := r.db.QueryRow(ctx, query, id).Scan(&doc.DonorName, &doc.DonationDate, &doc.Content)
	if err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

// ListByDonorEmail returns a donor's history, newest first.
func (r *DonationRepository) ListByDonorEmail(ctx context.Context, email string) ([]model.DonationSummary, error) {
	defer observe(time.Now(), "select", "Donations")

	query := `
        SELECT DonationID, DonationDate, DonationType, DonationAmount, DonorName
        FROM Donations
        WHERE DonorEmail = $1
        ORDER BY DonationDate DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := []model.DonationSummary{}
	for rows.Next() {
		var d model.DonationSummary
		err := rows.Scan(&d.DonationID, &d.DonationDate, &d.DonationType, &d.DonationAmount, &d.DonorName)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
