package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/mwhart/portfoliobackend/config"
	"github.com/mwhart/portfoliobackend/database"
	"github.com/mwhart/portfoliobackend/handlers"
	"github.com/mwhart/portfoliobackend/media"
	"github.com/mwhart/portfoliobackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	storagePaths := []string{cfg.ImagesPath, cfg.ThumbnailsPath, filepath.Dir(cfg.DatabasePath)}
	for _, p := range storagePaths {
		if err := os.MkdirAll(p, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create storage directory %s: %v", p, err)
		}
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("FATAL: Failed to seed database: %v", err)
	}

	mediaSubDirs := map[media.AssetType]string{
		media.AssetTypeImage:     filepath.Base(cfg.ImagesPath),
		media.AssetTypeThumbnail: filepath.Base(cfg.ThumbnailsPath),
	}
	mediaStore, err := media.NewLocalStorage(cfg.MediaStoragePath, mediaSubDirs)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media store: %v", err)
	}

	projectRepo := repository.NewProjectRepository(db)
	employmentRepo := repository.NewEmploymentRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	projectHandler := handlers.NewProjectHandler(projectRepo)
	employmentHandler := handlers.NewEmploymentHandler(employmentRepo)
	skillHandler := handlers.NewSkillHandler(skillRepo)
	settingHandler := handlers.NewSettingHandler(settingRepo)
	contactHandler := handlers.NewContactHandler(contactRepo)
	authHandler := handlers.NewAuthHandler(cfg)

	adminProjectHandler := handlers.NewAdminProjectHandler(projectRepo)
	adminEmploymentHandler := handlers.NewAdminEmploymentHandler(employmentRepo)
	adminSkillHandler := handlers.NewAdminSkillHandler(skillRepo)
	adminSettingHandler := handlers.NewAdminSettingHandler(settingRepo)
	adminContactHandler := handlers.NewAdminContactHandler(contactRepo)
	projectImageHandler := handlers.NewProjectImageHandler(projectRepo, mediaStore, cfg)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.ListProjects)
			r.Get("/{project_id}", projectHandler.GetProject)
		})

		r.Get("/employment", employmentHandler.ListEmployment)
		r.Get("/skills", skillHandler.ListSkills)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingHandler.ListSettings)
			r.Get("/category/{category}", settingHandler.ListSettingsByCategory)
			r.Get("/{setting_id}", settingHandler.GetSetting)
		})

		r.Post("/contact", contactHandler.SubmitContact)
		r.Post("/auth/login", authHandler.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.RequireAdmin(cfg))

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", adminProjectHandler.ListProjects)
				r.Post("/", adminProjectHandler.CreateProject)
				r.Route("/{project_id}", func(r chi.Router) {
					r.Get("/", adminProjectHandler.GetProject)
					r.Put("/", adminProjectHandler.UpdateProject)
					r.Delete("/", adminProjectHandler.DeleteProject)
					r.Post("/images", projectImageHandler.UploadImage)
				})
			})

			r.Route("/employment", func(r chi.Router) {
				r.Get("/", adminEmploymentHandler.ListEmployment)
				r.Post("/", adminEmploymentHandler.CreateEmployment)
				r.Route("/{employment_id}", func(r chi.Router) {
					r.Get("/", adminEmploymentHandler.GetEmployment)
					r.Put("/", adminEmploymentHandler.UpdateEmployment)
					r.Delete("/", adminEmploymentHandler.DeleteEmployment)
				})
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", adminSkillHandler.ListSkills)
				r.Post("/", adminSkillHandler.CreateSkill)
				r.Route("/{skill_id}", func(r chi.Router) {
					r.Get("/", adminSkillHandler.GetSkill)
					r.Put("/", adminSkillHandler.UpdateSkill)
					r.Delete("/", adminSkillHandler.DeleteSkill)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", adminSettingHandler.ListSettings)
				r.Post("/", adminSettingHandler.CreateSetting)
				r.Put("/{setting_id}", adminSettingHandler.UpdateSetting)
				r.Delete("/{setting_id}", adminSettingHandler.DeleteSetting)
			})

			r.Route("/contact", func(r chi.Router) {
				r.Get("/", adminContactHandler.ListSubmissions)
				r.Put("/{submission_id}/read", adminContactHandler.MarkRead)
				r.Delete("/{submission_id}", adminContactHandler.DeleteSubmission)
			})
		})

		imagesSubDir := filepath.Base(cfg.ImagesPath)
		r.Get("/"+imagesSubDir+"/*", handlers.AssetServer("/api/"+imagesSubDir+"/", cfg.MediaStoragePath, imagesSubDir))

		thumbsSubDir := filepath.Base(cfg.ThumbnailsPath)
		r.Get("/"+thumbsSubDir+"/*", handlers.AssetServer("/api/"+thumbsSubDir+"/", cfg.MediaStoragePath, thumbsSubDir))
	})

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalf("FATAL: Server error: %v", err)
	}
}
