package funding

import (
	"context"
	"time"

	"go.uber.org/zap"

	mqcontracts "bumblebee-api/contracts/mq"
	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
	"bumblebee-api/pkg/metrics"
	"bumblebee-api/pkg/mq"
)

type Service struct {
	requestRepo  *repository.FundingRequestRepository
	documentRepo *repository.DocumentRepository
	publisher    *mq.Publisher
	logger       *zap.Logger
}

func NewService(requestRepo *repository.FundingRequestRepository, documentRepo *repository.DocumentRepository, publisher *mq.Publisher, logger *zap.Logger) *Service {
	return &Service{
		requestRepo:  requestRepo,
		documentRepo: documentRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Submit stores a funding request and publishes `fundingrequest.submitted`.
func (s *Service) Submit(ctx context.Context, fr *model.FundingRequest) (int, error) {
	id, err := s.requestRepo.Create(ctx, fr)
	if err != nil {
		return 0, err
	}
	metrics.IncrementFundingRequest("submitted")

	payload := mqcontracts.FundingRequestSubmittedPayload{
		RequestID:       id,
		CompanyID:       fr.CompanyID,
		RequestedAmount: fr.RequestedAmount,
		SubmittedAt:     time.Now(),
	}
	if err := s.publisher.Publish(mqcontracts.RoutingKeyFundingRequestSubmitted, payload); err != nil {
		s.logger.Warn("failed to publish fundingrequest.submitted",
			zap.Int("request_id", id),
			zap.Error(err),
		)
	}

	return id, nil
}

// Approve sets the request to Approved with the admin's message.
func (s *Service) Approve(ctx context.Context, id int, message *string) error {
	if err := s.requestRepo.Approve(ctx, id, message); err != nil {
		return err
	}
	metrics.IncrementFundingRequest("approved")
	return nil
}

// Reject sets the request to Rejected.
func (s *Service) Reject(ctx context.Context, id int) error {
	if err := s.requestRepo.Reject(ctx, id); err != nil {
		return err
	}
	metrics.IncrementFundingRequest("rejected")
	return nil
}

// AttachDocument binds an uploaded file to a request on behalf of the
// session's company. The new document always starts as Pending.
func (s *Service) AttachDocument(ctx context.Context, doc *model.Document) error {
	return s.documentRepo.Create(ctx, doc)
}
