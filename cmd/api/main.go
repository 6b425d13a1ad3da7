package main

import (
	"bumblebee-api/config"
	"bumblebee-api/internal/handler"
	"bumblebee-api/internal/httpserver"
	"bumblebee-api/internal/repository"
	"bumblebee-api/internal/service/auth"
	"bumblebee-api/internal/service/donation"
	"bumblebee-api/internal/service/funding"
	"bumblebee-api/internal/service/stats"
	"bumblebee-api/pkg/db"
	"bumblebee-api/pkg/logger"
	"bumblebee-api/pkg/mq"
	redisclient "bumblebee-api/pkg/redis"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	userRepo := repository.NewUserRepository(dbConn)
	companyRepo := repository.NewCompanyRepository(dbConn)
	donationRepo := repository.NewDonationRepository(dbConn)
	requestRepo := repository.NewFundingRequestRepository(dbConn)
	documentRepo := repository.NewDocumentRepository(dbConn)
	statsRepo := repository.NewStatsRepository(dbConn)

	// Services
	authService := auth.NewService(userRepo, companyRepo, cfg.JWT.Secret)
	donationService := donation.NewService(donationRepo, publisher, log)
	fundingService := funding.NewService(requestRepo, documentRepo, publisher, log)
	statsService := stats.NewService(statsRepo, rdb, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(statsService, userRepo, companyRepo, publisher, log)
	donationAdminHandler := handler.NewDonationAdminHandler(donationRepo, donationService, log)
	fundingAdminHandler := handler.NewFundingAdminHandler(requestRepo, fundingService)
	companyHandler := handler.NewCompanyHandler(companyRepo, requestRepo, fundingService)
	donorHandler := handler.NewDonorHandler(requestRepo, donationRepo, donationService, log)

	router := httpserver.NewRouter(
		authHandler,
		adminHandler,
		donationAdminHandler,
		fundingAdminHandler,
		companyHandler,
		donorHandler,
		cfg.JWT.Secret,
		dbConn,
	)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
