package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mqcontracts "bumblebee-api/contracts/mq"
	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/stats"
	"bumblebee-api/pkg/mq"
)

type AdminHandler struct {
	statsService *stats.Service
	userRepo     *repository.UserRepository
	companyRepo  *repository.CompanyRepository
	publisher    *mq.Publisher
	logger       *zap.Logger
}

func NewAdminHandler(
	statsService *stats.Service,
	userRepo *repository.UserRepository,
	companyRepo *repository.CompanyRepository,
	publisher *mq.Publisher,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		Role      string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	}
	if err := h.userRepo.Create(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req struct {
		UserID    int    `json:"user_id" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Role      string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if id != req.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id mismatch"})
		return
	}

	user := model.User{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := h.userRepo.Update(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/admin/users/:id
// The delete is unconditional; a missing id still succeeds.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.userRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCompanies handles GET /api/admin/companies
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch companies"})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /api/admin/companies/:id
func (h *AdminHandler) GetCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.companyRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch company"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// ApproveCompany handles POST /api/admin/companies/approve/:id
func (h *AdminHandler) ApproveCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	if err := h.companyRepo.Approve(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve company"})
		return
	}
	h.publishStatusChange(id, "Approved", "")

	c.JSON(http.StatusOK, gin.H{"message": "Company approved successfully."})
}

// RejectCompany handles POST /api/admin/companies/reject/:id
func (h *AdminHandler) RejectCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	// The reason is optional; absence is stored as an empty string.
	var req struct {
		RejectionReason string `json:"rejection_reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.companyRepo.Reject(c.Request.Context(), id, req.RejectionReason); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject company"})
		return
	}
	h.publishStatusChange(id, "Rejected", req.RejectionReason)

	c.JSON(http.StatusOK, gin.H{"message": "Company rejected with reason: " + req.RejectionReason})
}

func (h *AdminHandler) publishStatusChange(companyID int, status, reason string) {
	payload := mqcontracts.CompanyStatusChangedPayload{
		CompanyID: companyID,
		Status:    status,
		Reason:    reason,
		ChangedAt: time.Now(),
	}
	if err := h.publisher.Publish(mqcontracts.RoutingKeyCompanyStatusChanged, payload); err != nil {
		h.logger.Warn("failed to publish company.status_changed",
			zap.Int("company_id", companyID),
			zap.String("status", status),
			zap.Error(err),
		)
	}
}
