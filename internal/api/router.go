package api

import (
	"github.com/St1cky1/taskboard/internal/api/handlers"
	"github.com/St1cky1/taskboard/internal/infrastructure/auth"
	"github.com/St1cky1/taskboard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(
	taskService *usecase.TaskService,
	statsService *usecase.StatsService,
	calendarService *usecase.CalendarService,
	authService *usecase.AuthService,
	jwtManager *auth.JWTManager,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.AllowAll().Handler)

	taskHandler := handlers.NewTaskHandler(taskService)
	statsHandler := handlers.NewStatsHandler(statsService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	authHandler := handlers.NewAuthHandler(authService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Все, что ниже, требует валидного access token
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(jwtManager))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.ListTasks)
				r.Post("/", taskHandler.CreateTask)
				r.Get("/board", taskHandler.Board)
				r.Get("/notifications", taskHandler.Notifications)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", taskHandler.GetTask)
					r.Put("/", taskHandler.UpdateTask)
					r.Delete("/", taskHandler.DeleteTask)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/month/{year}/{month}", calendarHandler.MonthTasks)
				r.Get("/date/{year}/{month}/{day}", calendarHandler.DayTasks)
				r.Put("/{id}/due-date", calendarHandler.UpdateDueDate)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/overview", statsHandler.Overview)
				r.Get("/by-status", statsHandler.ByStatus)
				r.Get("/by-priority", statsHandler.ByPriority)
				r.Get("/by-label", statsHandler.ByLabel)
				r.Get("/weekly-trends", statsHandler.WeeklyTrend)
			})
		})
	})

	return r
}
