package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/farhadzaidi/medassist/internal/config"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/handlers"
	"github.com/farhadzaidi/medassist/internal/middleware"
	"github.com/farhadzaidi/medassist/internal/ratelimit"
	"github.com/farhadzaidi/medassist/internal/repository/chathistory"
	"github.com/farhadzaidi/medassist/internal/repository/report"
	"github.com/farhadzaidi/medassist/internal/repository/user"
	"github.com/farhadzaidi/medassist/internal/services"
	"github.com/farhadzaidi/medassist/internal/services/ai"
	"github.com/farhadzaidi/medassist/internal/services/ocr"
	"github.com/farhadzaidi/medassist/internal/session"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.ChatHistory{}, &domain.SavedReport{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	logger := services.NewLogger("medassist")

	// --- Repositories ---
	userRepo := user.NewGormUserRepository(db)
	historyRepo := chathistory.NewGormChatHistoryRepository(db)
	reportRepo := report.NewGormReportRepository(db)

	// --- AI provider ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.AIAPIKey
	aiConfig.BaseURL = cfg.AIBaseURL
	aiConfig.Model = cfg.ChatModel
	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	// --- Session registries ---
	// Chat and interview sessions live in separate registries so a flood of
	// anonymous chats cannot evict in-progress interviews.
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	chatSessions := session.New[[]ai.Message](cfg.SessionCapacity, sessionTTL)
	defer chatSessions.Close()
	interviewSessions := session.New[[]ai.Message](cfg.SessionCapacity, sessionTTL)
	defer interviewSessions.Close()

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey, logger)
	chatService := services.NewChatService(provider, chatSessions, historyRepo, logger)
	interviewService := services.NewInterviewService(provider, interviewSessions, logger)
	documentService := services.NewDocumentService(
		ocr.NewTesseractEngine(),
		ocr.NewPopplerRasterizer(cfg.PdftoppmPath),
		provider,
		cfg.UploadDir,
		logger,
	)
	reportService := services.NewReportService(reportRepo, logger)

	// --- Handlers ---
	referenceHandler := handlers.NewReferenceHandler()
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	soapHandler := handlers.NewSoapHandler(interviewService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// --- Rate limiting for credential endpoints ---
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer authLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	// --- Public Routes ---
	r.HandleFunc("/api/symptoms", referenceHandler.GetSymptoms).Methods("GET")
	r.HandleFunc("/api/medications", referenceHandler.GetMedications).Methods("GET")
	r.HandleFunc("/api/check-conditions", referenceHandler.CheckConditions).Methods("POST")
	r.HandleFunc("/api/check-interactions", referenceHandler.CheckInteractions).Methods("POST")

	r.HandleFunc("/api/soap/start", soapHandler.Start).Methods("POST")
	r.HandleFunc("/api/soap/answer", soapHandler.Answer).Methods("POST")
	r.HandleFunc("/api/soap/generate", soapHandler.Generate).Methods("POST")

	r.HandleFunc("/api/documents/process", documentHandler.Process).Methods("POST")

	// --- Credential Routes (rate limited) ---
	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.Use(middleware.RateLimit(authLimiter))
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Chat (anonymous allowed, identity attached when present) ---
	chat := r.PathPrefix("/api/chat").Subrouter()
	chat.Use(middleware.OptionalAuth(authService))
	chat.HandleFunc("", chatHandler.SendMessage).Methods("POST")

	// --- Protected Routes ---
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.RequireAuth(authService))
	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/chat/history", chatHandler.GetHistory).Methods("GET")
	protected.HandleFunc("/chat/history", chatHandler.SaveMessage).Methods("POST")
	protected.HandleFunc("/chat/history", chatHandler.DeleteHistory).Methods("DELETE")
	protected.HandleFunc("/reports/save", reportHandler.Save).Methods("POST")
	protected.HandleFunc("/reports", reportHandler.List).Methods("GET")
	protected.HandleFunc("/reports/{id:[0-9]+}", reportHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/reports/{id:[0-9]+}/html", reportHandler.ExportHTML).Methods("GET")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	logger.Info("server starting", "port", cfg.ServerPort, "environment", cfg.Environment)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
