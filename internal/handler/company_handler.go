package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/funding"
)

type CompanyHandler struct {
	companyRepo    *repository.CompanyRepository
	requestRepo    *repository.FundingRequestRepository
	fundingService *funding.Service
}

func NewCompanyHandler(companyRepo *repository.CompanyRepository, requestRepo *repository.FundingRequestRepository, fundingService *funding.Service) *CompanyHandler {
	return &CompanyHandler{
		companyRepo:    companyRepo,
		requestRepo:    requestRepo,
		fundingService: fundingService,
	}
}

// GetCompanyInfo handles GET /api/company/:companyId?userId=
// The row must belong to the given user; a mismatch reads as not found.
func (h *CompanyHandler) GetCompanyInfo(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	info, err := h.companyRepo.FindForUser(c.Request.Context(), companyID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch company"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// RequestFunding handles POST /api/company/RequestFunding
func (h *CompanyHandler) RequestFunding(c *gin.Context) {
	var req struct {
		CompanyID          int             `json:"company_id" binding:"required"`
		ProjectDescription string          `json:"project_description" binding:"required"`
		RequestedAmount    decimal.Decimal `json:"requested_amount" binding:"required"`
		ProjectImpact      string          `json:"project_impact" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := h.fundingService.Submit(c.Request.Context(), &model.FundingRequest{
		CompanyID:          req.CompanyID,
		ProjectDescription: req.ProjectDescription,
		RequestedAmount:    req.RequestedAmount,
		ProjectImpact:      req.ProjectImpact,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit funding request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request_id": requestID})
}

// FundingRequestConfirmation handles GET /api/company/FundingRequestConfirmation/:id
func (h *CompanyHandler) FundingRequestConfirmation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	confirmation, err := h.requestRepo.FindConfirmation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "funding request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch funding request"})
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// UploadDocument handles POST /api/company/upload-document
// A missing file is a bad request; a session without a company is
// unauthorized, and the two are reported distinctly.
func (h *CompanyHandler) UploadDocument(c *gin.Context) {
	companyID, ok := sessionCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "CompanyID not found."})
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil || fileHeader.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}

	requestID, err := strconv.Atoi(c.PostForm("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	doc := model.Document{
		DocumentName: fileHeader.Filename,
		DocumentType: fileHeader.Header.Get("Content-Type"),
		CompanyID:    companyID,
		FileContent:  content,
		RequestID:    requestID,
	}
	if err := h.fundingService.AttachDocument(c.Request.Context(), &doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document uploaded successfully."})
}

// FundingRequestHistory handles GET /api/company/FundingRequestHistory/:companyId
func (h *CompanyHandler) FundingRequestHistory(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	requests, err := h.requestRepo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch funding requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// sessionCompanyID reads the company claim placed by the auth middleware.
func sessionCompanyID(c *gin.Context) (int, bool) {
	v, exists := c.Get("company_id")
	if !exists {
		return 0, false
	}
	companyID, ok := v.(int)
	return companyID, ok
}
