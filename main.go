package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"akplaw/config"
	"akplaw/cron"
	"akplaw/database"
	clientdocRepoPkg "akplaw/database/repository/clientdoc"
	contentRepoPkg "akplaw/database/repository/content"
	inquiryRepoPkg "akplaw/database/repository/inquiry"
	recruitmentRepoPkg "akplaw/database/repository/recruitment"
	userRepoPkg "akplaw/database/repository/user"
	"akplaw/handlers"
	"akplaw/routes"
	"akplaw/services/billing"
	"akplaw/services/content"
	"akplaw/services/inquiry"
	ai "akplaw/services/intelligence"
	"akplaw/services/mailer"
	"akplaw/services/recruitment"
	"akplaw/services/user"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	inquiryRepo := inquiryRepoPkg.NewMongoInquiryRepo()
	recruitmentRepo := recruitmentRepoPkg.NewMongoRecruitmentRepo()
	clientdocRepo := clientdocRepoPkg.NewMongoClientDocRepo()

	// Mail queue client and mailer.
	mailQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueue,
	})
	mailerSvc := mailer.NewProviderMailer(
		config.AppConfig.MailAPIURL,
		config.AppConfig.MailAPIKey,
		config.AppConfig.MailFrom,
		mailQueue,
	)

	// AI classification and extraction.
	var aiSvc ai.AIService
	if config.AppConfig.GeminiAPIKey != "" {
		aiSvc, err = ai.NewGeminiAIService(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: AI service unavailable, continuing without it: %v", err)
			aiSvc = nil
		}
	} else {
		logger.Sugar().Warn("main: no Gemini API key configured, AI features disabled")
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Mailer: mailerSvc,
	}
	contentService := &content.DefaultContentService{
		Repo: contentRepo,
	}
	inquiryService := &inquiry.DefaultInquiryService{
		Repo:       inquiryRepo,
		AI:         aiSvc,
		Mailer:     mailerSvc,
		AdminEmail: config.AppConfig.AdminEmail,
	}
	recruitmentService := &recruitment.DefaultRecruitmentService{
		Repo:   recruitmentRepo,
		AI:     aiSvc,
		Mailer: mailerSvc,
	}
	billingService := &billing.DefaultBillingService{
		Repo:   clientdocRepo,
		Users:  userRepo,
		Mailer: mailerSvc,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Content:     &handlers.ContentHandler{ContentSvc: contentService},
		User:        &handlers.UserHandler{UserService: userService},
		Admin:       &handlers.AdminHandler{UserService: userService},
		Inquiry:     &handlers.InquiryHandler{InquirySvc: inquiryService},
		Recruitment: &handlers.RecruitmentHandler{RecruitmentSvc: recruitmentService, StorageSvc: cloudinaryStorageService},
		Billing:     &handlers.BillingHandler{BillingSvc: billingService},
		Storage:     &handlers.StorageHandler{StorageSvc: cloudinaryStorageService},
		Mail:        &handlers.MailHandler{Mailer: mailerSvc},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitMailWorker(mailerSvc)
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), 30*time.Second)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	mailQueue.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
