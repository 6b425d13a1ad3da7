package donation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	mqcontracts "bumblebee-api/contracts/mq"
	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/filetype"
	"bumblebee-api/pkg/metrics"
	"bumblebee-api/pkg/mq"
)

type Service struct {
	donationRepo *repository.DonationRepository
	publisher    *mq.Publisher
	logger       *zap.Logger
}

func NewService(donationRepo *repository.DonationRepository, publisher *mq.Publisher, logger *zap.Logger) *Service {
	return &Service{
		donationRepo: donationRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create records a donation and publishes `donation.created`. The event
// is best-effort; a broker failure never fails the donation.
func (s *Service) Create(ctx context.Context, d *model.Donation) (int, error) {
	id, err := s.donationRepo.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	metrics.IncrementDonation("created")

	payload := mqcontracts.DonationCreatedPayload{
		DonationID:   id,
		CompanyID:    d.CompanyID,
		DonationType: d.DonationType,
		Amount:       d.DonationAmount,
		DonorEmail:   d.DonorEmail,
		CreatedAt:    time.Now(),
	}
	if err := s.publisher.Publish(mqcontracts.RoutingKeyDonationCreated, payload); err != nil {
		s.logger.Warn("failed to publish donation.created",
			zap.Int("donation_id", id),
			zap.Error(err),
		)
	}

	return id, nil
}

// Approve marks a donation processed and returns the re-read record.
// The update and the re-read are two independent statements.
func (s *Service) Approve(ctx context.Context, id int) (*model.Donation, error) {
	if err := s.donationRepo.MarkProcessed(ctx, id); err != nil {
		return nil, err
	}
	metrics.IncrementDonation("processed")

	payload := mqcontracts.DonationProcessedPayload{
		DonationID:  id,
		ProcessedAt: time.Now(),
	}
	if err := s.publisher.Publish(mqcontracts.RoutingKeyDonationProcessed, payload); err != nil {
		s.logger.Warn("failed to publish donation.processed",
			zap.Int("donation_id", id),
			zap.Error(err),
		)
	}

	return s.donationRepo.FindByID(ctx, id)
}

// Download is a donation's proof document ready to serve.
type Download struct {
	FileName    string
	ContentType string
	Content     []byte
}

// GetDocument reads the stored blob, sniffs its type and synthesizes a
// download file name. Returns ErrNotFound when the donation is missing
// or carries no document.
func (s *Service) GetDocument(ctx context.Context, id int) (*Download, error) {
	doc, err := s.donationRepo.FindDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, repository.ErrNotFound
	}

	ft := filetype.Detect(doc.Content)
	return &Download{
		FileName:    DocumentFileName(doc.DonorName, doc.DonationDate, ft.Extension),
		ContentType: ft.ContentType,
		Content:     doc.Content,
	}, nil
}

// DocumentFileName builds the download name Donation_{donor}_{yyyyMMdd}{ext}.
func DocumentFileName(donorName string, date time.Time, ext string) string {
	return fmt.Sprintf("Donation_%s_%s%s", donorName, date.Format("20060102"), ext)
}
