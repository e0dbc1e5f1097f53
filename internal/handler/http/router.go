package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/carelink/homecare-backend-go/internal/config"
	"github.com/carelink/homecare-backend-go/internal/handler/http/middleware"
	"github.com/carelink/homecare-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Client     ClientHandler
	Assignment AssignmentHandler
	Holiday    HolidayHandler
	Visit      VisitHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "carelink-homecare"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Exported report files
	r.Handle("/files/*", http.StripPrefix("/files/",
		http.FileServer(http.Dir(cfg.Storage.BasePath))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Post("/worker-code", h.Auth.LoginWithWorkerCode)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			// Worker-facing routes
			r.Route("/my", func(r chi.Router) {
				r.Get("/schedule", h.Assignment.MySchedule)
				r.Get("/visits", h.Visit.MyVisits)
			})
			r.Route("/visits", func(r chi.Router) {
				r.Post("/check-in", h.Visit.CheckIn)
				r.Post("/{id}/check-out", h.Visit.CheckOut)
				r.Put("/{id}/note", h.Visit.UpdateNote)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Visit.List)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/workers", func(r chi.Router) {
					r.Post("/", h.Worker.Create)
					r.Get("/", h.Worker.List)
					r.Get("/{id}", h.Worker.GetByID)
					r.Put("/{id}", h.Worker.Update)
					r.Delete("/{id}", h.Worker.Delete)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Post("/", h.Client.Create)
					r.Get("/", h.Client.List)
					r.Get("/{id}", h.Client.GetByID)
					r.Put("/{id}", h.Client.Update)
					r.Delete("/{id}", h.Client.Delete)
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Post("/", h.Assignment.Create)
					r.Get("/", h.Assignment.List)
					r.Get("/{id}", h.Assignment.GetByID)
					r.Put("/{id}", h.Assignment.Update)
					r.Delete("/{id}", h.Assignment.Deactivate)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", h.Holiday.Upsert)
					r.Get("/", h.Holiday.List)
					r.Delete("/{id}", h.Holiday.Delete)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/monthly", h.Report.Monthly)
					r.Post("/monthly/export", h.Report.ExportCSV)
					r.Get("/", h.Report.ListByPeriod)
				})
			})
		})
	})

	return r
}
