package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bumblebee-api/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	donationAdminHandler *handler.DonationAdminHandler,
	fundingAdminHandler *handler.FundingAdminHandler,
	companyHandler *handler.CompanyHandler,
	donorHandler *handler.DonorHandler,
	jwtSecret string,
	db *pgxpool.Pool,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	admin := api.Group("/admin")
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.POST("/users", adminHandler.CreateUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)

		admin.GET("/companies", adminHandler.ListCompanies)
		admin.GET("/companies/:id", adminHandler.GetCompany)
		admin.POST("/companies/approve/:id", adminHandler.ApproveCompany)
		admin.POST("/companies/reject/:id", adminHandler.RejectCompany)

		admin.GET("/donations", donationAdminHandler.ListDonations)
		admin.GET("/donations/:id", donationAdminHandler.GetDonation)
		admin.PUT("/donations/:id/approve", donationAdminHandler.ApproveDonation)
		admin.GET("/donations/:id/document", donationAdminHandler.DownloadDocument)

		admin.GET("/FundingRequestManagement", fundingAdminHandler.ListFundingRequests)
		admin.GET("/FundingRequestDetails/:id", fundingAdminHandler.GetFundingRequest)
		admin.POST("/ApproveFundingRequest", fundingAdminHandler.ApproveFundingRequest)
		admin.POST("/RejectFundingRequest", fundingAdminHandler.RejectFundingRequest)
	}

	company := api.Group("/company")
	{
		company.POST("/RequestFunding", companyHandler.RequestFunding)
		company.GET("/FundingRequestConfirmation/:id", companyHandler.FundingRequestConfirmation)
		company.GET("/FundingRequestHistory/:companyId", companyHandler.FundingRequestHistory)
		// Upload needs the caller's company resolved from the session.
		company.POST("/upload-document", AuthMiddleware(jwtSecret), companyHandler.UploadDocument)
		company.GET("/:companyId", companyHandler.GetCompanyInfo)
	}

	donor := api.Group("/donor")
	{
		donor.GET("/FundingRequests", donorHandler.ListFundingRequests)
		donor.POST("/Donate", donorHandler.Donate)
		donor.GET("/Donation/:id", donorHandler.GetDonation)
		donor.GET("/Donations/User/:email", donorHandler.GetDonationsForUser)
		donor.GET("/SearchFundingRequests", donorHandler.SearchFundingRequests)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
