package main

import (
	"fmt"
	"log"

	"contractiq/internal/analyzer"
	"contractiq/internal/analyzer/groq"
	"contractiq/internal/analyzer/openai"
	"contractiq/internal/config"
	"contractiq/internal/contract"
	"contractiq/internal/email/noop"
	"contractiq/internal/email/ses"
	"contractiq/internal/handler"
	"contractiq/internal/port"
	"contractiq/internal/render"
	"contractiq/internal/repository/postgres"
	"contractiq/internal/router"
	"contractiq/internal/service"
	s3storage "contractiq/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	fileRepo := postgres.NewContractFileRepo(db)
	analysisRepo := postgres.NewAnalysisRepo(db)
	chatRepo := postgres.NewChatRepo(db)
	auditRepo := postgres.NewAuditRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewClient(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize LLM analyzer chain
	analyzer.RegisterProvider("openai", func(pc *config.AnalyzerProviderConfig) (port.ContractAnalyzer, error) {
		return openai.NewAnalyzer(pc), nil
	})
	analyzer.RegisterProvider("groq", func(pc *config.AnalyzerProviderConfig) (port.ContractAnalyzer, error) {
		return groq.NewAnalyzer(pc), nil
	})
	contractAnalyzer, err := analyzer.NewFromConfig(&cfg.Analyzer)
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Template machinery
	registry := contract.NewRegistry()
	matrix := contract.NewMatrix()
	populator := contract.NewPopulator(registry)
	renderer := render.NewDocxRenderer(registry, populator)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	contractSvc := service.NewContractService(fileRepo, analysisRepo, chatRepo, auditRepo, s3Client, &cfg.S3)
	analysisSvc := service.NewAnalysisService(fileRepo, analysisRepo, chatRepo, auditRepo, userRepo, s3Client, contractAnalyzer, emailSender)
	templateSvc := service.NewTemplateService(analysisRepo, auditRepo, registry, matrix, populator, renderer)
	chatSvc := service.NewChatService(analysisRepo, chatRepo, analysisSvc, contractAnalyzer)
	reportSvc := service.NewReportService(fileRepo, analysisRepo, auditRepo)
	auditSvc := service.NewAuditService(auditRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	contractH := handler.NewContractHandler(contractSvc)
	analysisH := handler.NewAnalysisHandler(analysisSvc, auditSvc)
	templateH := handler.NewTemplateHandler(templateSvc)
	chatH := handler.NewChatHandler(chatSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, contractH, analysisH, templateH, chatH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
