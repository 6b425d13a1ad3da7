package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/donation"
)

type DonorHandler struct {
	requestRepo     *repository.FundingRequestRepository
	donationRepo    *repository.DonationRepository
	donationService *donation.Service
	logger          *zap.Logger
}

func NewDonorHandler(
	requestRepo *repository.FundingRequestRepository,
	donationRepo *repository.DonationRepository,
	donationService *donation.Service,
	logger *zap.Logger,
) *DonorHandler {
	return &DonorHandler{
		requestRepo:     requestRepo,
		donationRepo:    donationRepo,
		donationService: donationService,
		logger:          logger,
	}
}

// ListFundingRequests handles GET /api/donor/FundingRequests
// Donors only see approved or closed requests.
func (h *DonorHandler) ListFundingRequests(c *gin.Context) {
	requests, err := h.requestRepo.ListForDonors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch funding requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Donate handles POST /api/donor/Donate
func (h *DonorHandler) Donate(c *gin.Context) {
	var req struct {
		CompanyID      *int            `json:"company_id"`
		DonationType   string          `json:"donation_type" binding:"required"`
		DonationAmount decimal.Decimal `json:"donation_amount" binding:"required"`
		DonorName      string          `json:"donor_name" binding:"required"`
		DonorIDNumber  string          `json:"donor_id_number" binding:"required"`
		DonorTaxNumber string          `json:"donor_tax_number" binding:"required"`
		DonorEmail     string          `json:"donor_email" binding:"required"`
		DonorPhone     string          `json:"donor_phone" binding:"required"`
		Document       []byte          `json:"document"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donationID, err := h.donationService.Create(c.Request.Context(), &model.Donation{
		CompanyID:      req.CompanyID,
		DonationType:   req.DonationType,
		DonationAmount: req.DonationAmount,
		DonorName:      req.DonorName,
		DonorIDNumber:  req.DonorIDNumber,
		DonorTaxNumber: req.DonorTaxNumber,
		DonorEmail:     req.DonorEmail,
		DonorPhone:     req.DonorPhone,
		Document:       req.Document,
	})
	if err != nil {
		h.logger.Error("failed to create donation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while recording the donation."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"donation_id": donationID})
}

// GetDonation handles GET /api/donor/Donation/:id
func (h *DonorHandler) GetDonation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	d, err := h.donationRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}
		h.logger.Error("failed to fetch donation", zap.Int("donation_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving the donation."})
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetDonationsForUser handles GET /api/donor/Donations/User/:email
func (h *DonorHandler) GetDonationsForUser(c *gin.Context) {
	email := c.Param("email")

	donations, err := h.donationRepo.ListByDonorEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("failed to fetch donations", zap.String("donor_email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving donations."})
		return
	}
	c.JSON(http.StatusOK, donations)
}

// SearchFundingRequests handles GET /api/donor/SearchFundingRequests?term=
func (h *DonorHandler) SearchFundingRequests(c *gin.Context) {
	term := c.Query("term")

	requests, err := h.requestRepo.Search(c.Request.Context(), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search funding requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}
