package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/donation"
)

// DonationAdminHandler serves the admin side of the donation ledger.
// These endpoints log database failures before answering with a generic
// 500 so a failed ledger read is always traceable.
type DonationAdminHandler struct {
	donationRepo    *repository.DonationRepository
	donationService *donation.Service
	logger          *zap.Logger
}

func NewDonationAdminHandler(donationRepo *repository.DonationRepository, donationService *donation.Service, logger *zap.Logger) *DonationAdminHandler {
	return &DonationAdminHandler{
		donationRepo:    donationRepo,
		donationService: donationService,
		logger:          logger,
	}
}

// ListDonations handles GET /api/admin/donations
func (h *DonationAdminHandler) ListDonations(c *gin.Context) {
	donations, err := h.donationRepo.ListWithCompany(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list donations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving donations."})
		return
	}
	c.JSON(http.StatusOK, donations)
}

// GetDonation handles GET /api/admin/donations/:id
func (h *DonationAdminHandler) GetDonation(c *gin.Context) {
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

// ApproveDonation handles PUT /api/admin/donations/:id/approve
func (h *DonationAdminHandler) ApproveDonation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	d, err := h.donationService.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}
		h.logger.Error("failed to approve donation", zap.Int("donation_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while approving the donation."})
		return
	}
	c.JSON(http.StatusOK, d)
}

// DownloadDocument handles GET /api/admin/donations/:id/document
func (h *DonationAdminHandler) DownloadDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	download, err := h.donationService.GetDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		h.logger.Error("failed to download donation document", zap.Int("donation_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving the document."})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+download.FileName+`"`)
	c.Data(http.StatusOK, download.ContentType, download.Content)
}
