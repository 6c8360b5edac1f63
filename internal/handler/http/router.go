package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/handler/http/middleware"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	worksheetHandler WorksheetHandler,
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/worksheets", func(r chi.Router) {
				r.Post("/", worksheetHandler.Create)
				r.Get("/", worksheetHandler.List)
				r.Get("/summary", worksheetHandler.Summary)
				r.Get("/date/{date}", worksheetHandler.GetByDate)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", worksheetHandler.Get)
					r.Put("/", worksheetHandler.Update)
					r.Delete("/", worksheetHandler.Delete)
					r.Post("/submit", worksheetHandler.Submit)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", shiftHandler.GetMyConfig)
				r.Get("/default", shiftHandler.GetDefault)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/default", shiftHandler.UpsertDefault)
					r.Get("/employees/{employeeID}", shiftHandler.GetEffective)
					r.Put("/employees/{employeeID}", shiftHandler.UpsertEmployee)
				})
			})
		})
	})

	return r
}
