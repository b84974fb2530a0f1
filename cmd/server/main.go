package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/api"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/config"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/cache"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/mailer"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/messagequeue"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	// --- 4. Initialize Redis (session cursors, leaderboard cache) ---
	redisCache, err := cache.NewRedisCache(cache.NewRedisCacheConfig{
		Address:  appConfig.RedisAddr,
		Password: appConfig.RedisPassword,
		DB:       appConfig.RedisDB,
	})
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
	}
	sessionTTL := time.Duration(appConfig.SessionTTLMinutes) * time.Minute
	sessionStore := db.NewRedisSessionStore(redisCache, sessionTTL)
	zapLogger.Info("Redis cache and session store initialized successfully.",
		zap.Duration("sessionTTL", sessionTTL))

	// --- 5. Optional infrastructure: message queue and mailer ---
	var mq messagequeue.MessageQueue
	if appConfig.RabbitMQURL != "" {
		mq, err = messagequeue.NewRabbitMQService(messagequeue.NewRabbitMQServiceConfig{URL: appConfig.RabbitMQURL})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mq.Close()
		zapLogger.Info("RabbitMQ connection established.")
	} else {
		zapLogger.Warn("RABBITMQ_URL not configured; domain events will not be published.")
	}

	var contactMailer mailer.Mailer
	if appConfig.SMTPHost != "" {
		smtpMailer, err := mailer.NewSMTPMailer(mailer.NewSMTPMailerConfig{
			Host:     appConfig.SMTPHost,
			Port:     appConfig.SMTPPort,
			Username: appConfig.SMTPUser,
			Password: appConfig.SMTPPassword,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to configure SMTP mailer", zap.Error(err))
		}
		contactMailer = smtpMailer
		zapLogger.Info("SMTP mailer configured.")
	} else {
		zapLogger.Warn("SMTP_HOST not configured; contact notifications will not be emailed.")
	}

	// --- 6. Initialize Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	interviewRepo := db.NewFirestoreInterviewRepository(firestoreClient)
	reportRepo := db.NewFirestoreReportRepository(firestoreClient)
	mockRepo := db.NewFirestoreMockInterviewRepository(firestoreClient)
	communityRepo := db.NewFirestoreCommunityRepository(firestoreClient)
	contactRepo := db.NewFirestoreContactRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 7. Initialize Core Services ---
	userService := core.NewUserService(userRepo, firebaseAuthClient, redisCache)
	interviewService := core.NewInterviewService(interviewRepo, reportRepo, sessionStore, userService, mq)
	reportService := core.NewReportService(reportRepo)
	mockService := core.NewMockInterviewService(mockRepo)
	communityService := core.NewCommunityService(communityRepo)
	contactService := core.NewContactService(contactRepo, contactMailer, mq, appConfig.ContactSender, appConfig.ContactRecipient)
	resourceService := core.NewResourceService(core.DefaultCatalog)
	zapLogger.Info("Core services initialized successfully.")

	// --- 8. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 9. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 10. Setup API Routes ---
	api.SetupRoutes(router, zapLogger, firebaseAuthClient, api.Services{
		User:      userService,
		Interview: interviewService,
		Report:    reportService,
		Mock:      mockService,
		Community: communityService,
		Contact:   contactService,
		Resource:  resourceService,
	})

	// --- 11. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 12. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
