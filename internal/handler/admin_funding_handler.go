package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/funding"
)

// FundingAdminHandler is the admin review workflow over funding requests.
type FundingAdminHandler struct {
	requestRepo    *repository.FundingRequestRepository
	fundingService *funding.Service
}

func NewFundingAdminHandler(requestRepo *repository.FundingRequestRepository, fundingService *funding.Service) *FundingAdminHandler {
	return &FundingAdminHandler{
		requestRepo:    requestRepo,
		fundingService: fundingService,
	}
}

// ListFundingRequests handles GET /api/admin/FundingRequestManagement
func (h *FundingAdminHandler) ListFundingRequests(c *gin.Context) {
	requests, err := h.requestRepo.ListWithCompany(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch funding requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetFundingRequest handles GET /api/admin/FundingRequestDetails/:id
func (h *FundingAdminHandler) GetFundingRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	request, err := h.requestRepo.FindWithCompanyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "funding request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch funding request"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// ApproveFundingRequest handles POST /api/admin/ApproveFundingRequest
func (h *FundingAdminHandler) ApproveFundingRequest(c *gin.Context) {
	var req struct {
		RequestID    int     `json:"request_id" binding:"required"`
		AdminMessage *string `json:"admin_message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.fundingService.Approve(c.Request.Context(), req.RequestID, req.AdminMessage)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "funding request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve funding request"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RejectFundingRequest handles POST /api/admin/RejectFundingRequest
func (h *FundingAdminHandler) RejectFundingRequest(c *gin.Context) {
	var req struct {
		RequestID int `json:"request_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.fundingService.Reject(c.Request.Context(), req.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "funding request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject funding request"})
		return
	}
	c.Status(http.StatusNoContent)
}
