package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"claimsportal/internal/config"
	"claimsportal/internal/database"
	"claimsportal/internal/domain"
	"claimsportal/internal/middleware"
	"claimsportal/internal/modules/auth"
	"claimsportal/internal/modules/campaign"
	"claimsportal/internal/modules/diag"
	"claimsportal/internal/modules/intake"
	"claimsportal/internal/modules/lead"
	jwtsvc "claimsportal/internal/pkg/jwt"
	"claimsportal/internal/repository"
	"claimsportal/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Employee{},
		&domain.Lead{},
		&domain.Kredit{},
		&domain.EnergyDocument{},
		&domain.OperatingCostDocument{},
		&domain.CasinoDocument{},
		&domain.CampaignLead{},
	); err != nil {
		log.Fatal(err)
	}

	var store storage.Store
	if cfg.StorageDriver == "supabase" {
		store = storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	} else {
		store = storage.NewLocal(cfg.UploadDir, cfg.PublicAppURL+"/static/uploads")
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(employeeRepo, j)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(leadRepo, documentRepo, store)
	leadHandler := lead.NewHandler(leadService)

	intakeService := intake.NewService(documentRepo, store, cfg.PublicAppURL)
	intakeHandler := intake.NewHandler(intakeService)

	campaignService := campaign.NewService(campaignRepo)
	campaignHandler := campaign.NewHandler(campaignService, cfg.CampaignAdminID)

	diagHandler := diag.NewHandler()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	if cfg.StorageDriver == "local" {
		r.Static("/static/uploads", cfg.UploadDir)
	}

	api := r.Group("/api")
	{
		// public funnel endpoints
		authHandler.RegisterRoutes(api)
		intakeHandler.RegisterRoutes(api)
		campaignHandler.RegisterRoutes(api)
		diagHandler.RegisterRoutes(api)

		// protected (employee lead endpoints)
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			leadHandler.RegisterRoutes(protected)
			authHandler.RegisterProtectedRoutes(protected)
			campaignHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Printf("listening on %s (env=%s storage=%s)", cfg.Addr, cfg.AppEnv, cfg.StorageDriver)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
