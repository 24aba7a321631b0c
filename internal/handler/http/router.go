package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Leave      LeaveHandler
	Transfer   TransferHandler
	Grievance  GrievanceHandler
	Attendance AttendanceHandler
	Task       TaskHandler
	File       FileHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, corsOrigins []string, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/me", h.User.GetMe)

			r.Route("/users", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Auth.CreateUser)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/{id}", h.User.GetByID)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.ListMine)
				r.Get("/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR, user.RoleDepartmentHead))
					r.Get("/", h.Leave.List)
					r.Patch("/{id}/decision", h.Leave.Decide)
				})
			})

			r.Route("/transfers", func(r chi.Router) {
				r.Post("/", h.Transfer.Request)
				r.Get("/my", h.Transfer.ListMine)
				r.Get("/{id}", h.Transfer.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/", h.Transfer.List)
					r.Patch("/{id}/decision", h.Transfer.Decide)
				})
			})

			r.Route("/grievances", func(r chi.Router) {
				r.Post("/", h.Grievance.Create)
				r.Get("/my", h.Grievance.ListMine)
				r.Get("/{id}", h.Grievance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/", h.Grievance.List)
					r.Patch("/{id}/response", h.Grievance.Respond)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/my", h.Attendance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Create)
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}", h.Task.Update)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/files", func(r chi.Router) {
				r.Get("/access", h.File.Access)
				r.Get("/my", h.File.ListMine)
			})
		})
	})
	return r
}
