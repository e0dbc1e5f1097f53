package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/carelink/homecare-backend-go/internal/config"
	appHTTP "github.com/carelink/homecare-backend-go/internal/handler/http"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/carelink/homecare-backend-go/internal/pkg/jwt"
	"github.com/carelink/homecare-backend-go/internal/pkg/storage"
	"github.com/carelink/homecare-backend-go/internal/repository/postgresql"
	assignmentService "github.com/carelink/homecare-backend-go/internal/service/assignment"
	authService "github.com/carelink/homecare-backend-go/internal/service/auth"
	clientService "github.com/carelink/homecare-backend-go/internal/service/client"
	holidayService "github.com/carelink/homecare-backend-go/internal/service/holiday"
	reportService "github.com/carelink/homecare-backend-go/internal/service/report"
	visitService "github.com/carelink/homecare-backend-go/internal/service/visit"
	workerService "github.com/carelink/homecare-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewRefreshTokenRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewService(db, userRepo, workerRepo, tokenRepo, jwtService)
	workerSvc := workerService.NewService(db, workerRepo, userRepo)
	clientSvc := clientService.NewService(clientRepo)
	assignmentSvc := assignmentService.NewService(db, assignmentRepo, workerRepo, clientRepo)
	holidaySvc := holidayService.NewService(holidayRepo)
	visitSvc := visitService.NewService(visitRepo, assignmentRepo)
	reportSvc := reportService.NewService(assignmentRepo, clientRepo, holidayRepo, reportRepo, fileStorage)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Assignment: appHTTP.NewAssignmentHandler(assignmentSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Visit:      appHTTP.NewVisitHandler(visitSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
