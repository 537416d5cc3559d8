package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"prospecta/cmd/internal/domain/database"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/http/handler"
	"prospecta/cmd/internal/http/middleware"
	"prospecta/cmd/internal/infrastructure/aws/storage"
	"prospecta/cmd/internal/infrastructure/brasilapi"
	"prospecta/cmd/internal/service"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/uid"
	"prospecta/cmd/internal/validators"
)

const envVarsPrefix = "/prospecta/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	if err := utils.InitTokenSigning(); err != nil {
		panic(err)
	}
	uid.Init(machineID())

	db, err := database.Init()
	if err != nil {
		panic(err)
	}

	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}
	registry := brasilapi.NewClient()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	negocioRepo := repository.NewNegocioRepository(db)
	propostaRepo := repository.NewPropostaRepository(db)
	atividadeRepo := repository.NewAtividadeRepository(db)
	lembreteRepo := repository.NewLembreteRepository(db)
	contatoRepo := repository.NewContatoRepository(db)
	configRepo := repository.NewConfiguracaoRepository(db)

	guard := policy.NewOwnershipGuard()

	// Services
	userService := service.NewUserService(userRepo, validate)
	leadService := service.NewLeadService(leadRepo, validate)
	enrichmentService := service.NewEnrichmentService(db, guard, empresaRepo, leadRepo, registry)
	pipelineService := service.NewPipelineService(db, guard, leadRepo, negocioRepo, validate)
	propostaService := service.NewPropostaService(db, guard, configRepo, propostaRepo, pipelineService, s3Client, validate)
	agendaService := service.NewAgendaService(db, guard, atividadeRepo, lembreteRepo, validate)
	contatoService := service.NewContatoService(db, guard, contatoRepo, validate)
	configService := service.NewConfigService(configRepo, s3Client, validate)
	metricsService := service.NewMetricsService(leadRepo, negocioRepo)

	// Handlers
	userRoutes := handler.NewUserDefault(userService, userRepo)
	leadRoutes := handler.NewLeadDefault(leadService, enrichmentService)
	pipelineRoutes := handler.NewPipelineDefault(pipelineService)
	propostaRoutes := handler.NewPropostaDefault(propostaService)
	agendaRoutes := handler.NewAgendaDefault(agendaService)
	contatoRoutes := handler.NewContatoDefault(contatoService)
	configRoutes := handler.NewConfigDefault(configService)
	metricsRoutes := handler.NewMetricsDefault(metricsService)
	utilRoutes := handler.NewUtilDefault()

	authRequired := middleware.NewAuthMiddleware(&middleware.AuthMiddlewareConfig{
		UserRepo: userRepo,
	})

	e := echo.New()
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("15M"))

	// Users
	e.POST("/api/users", userRoutes.Register)
	e.POST("/api/users/login", userRoutes.Login)
	e.GET("/api/users/me", userRoutes.Me, authRequired)

	// Leads
	e.GET("/api/leads", leadRoutes.SearchLeads, authRequired)
	e.POST("/api/leads", leadRoutes.CreateLead, authRequired)
	e.GET("/api/leads/export", leadRoutes.ExportLeads, authRequired)
	e.GET("/api/leads/locations", leadRoutes.GetLocations, authRequired)
	e.POST("/api/leads/import", leadRoutes.ImportLeads, authRequired)
	e.GET("/api/leads/:id", leadRoutes.GetLead, authRequired)
	e.PATCH("/api/leads/:id", pipelineRoutes.UpdateLeadStatus, authRequired)
	e.POST("/api/leads/:id/verify", leadRoutes.VerifyLead, authRequired)
	e.POST("/api/leads/:id/negocio", pipelineRoutes.EnsureNegocio, authRequired)

	// Deals
	e.PATCH("/api/negocios/:id", pipelineRoutes.UpdateNegocio, authRequired)

	// Proposals
	e.POST("/api/propostas/generate", propostaRoutes.GenerateProposta, authRequired)
	e.POST("/api/propostas/upload", propostaRoutes.UploadProposta, authRequired)
	e.GET("/api/propostas", propostaRoutes.ListPropostas, authRequired)
	e.DELETE("/api/propostas/:id", propostaRoutes.DeleteProposta, authRequired)

	// Activities and reminders
	e.POST("/api/atividades", agendaRoutes.CreateAtividade, authRequired)
	e.POST("/api/lembretes", agendaRoutes.CreateLembrete, authRequired)
	e.GET("/api/lembretes/upcoming", agendaRoutes.UpcomingLembretes, authRequired)
	e.PATCH("/api/lembretes/:id", agendaRoutes.UpdateLembrete, authRequired)
	e.DELETE("/api/lembretes/:id", agendaRoutes.DeleteLembrete, authRequired)

	// Contacts
	e.POST("/api/contatos", contatoRoutes.CreateContato, authRequired)
	e.PATCH("/api/contatos/:id", contatoRoutes.UpdateContato, authRequired)
	e.DELETE("/api/contatos/:id", contatoRoutes.DeleteContato, authRequired)

	// Tenant settings
	e.GET("/api/config", configRoutes.GetConfig, authRequired)
	e.PUT("/api/config", configRoutes.UpdateConfig, authRequired)
	e.POST("/api/config/logo", configRoutes.UploadLogo, authRequired)

	// Metrics
	e.GET("/api/metrics", metricsRoutes.GetMetrics, authRequired)

	// Docker Compose healthcheck
	e.GET("/health", utilRoutes.Health)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("strongpwd", validators.StrongPassword)
	_ = validate.RegisterValidation("cnpj", validators.CNPJ)
}

func machineID() int64 {
	id, err := strconv.ParseInt(os.Getenv("MACHINE_ID"), 10, 64)
	if err != nil {
		return 1
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}
