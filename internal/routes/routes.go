package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lucasmonteiro/portfolio-api/internal/audit"
	"github.com/lucasmonteiro/portfolio-api/internal/config"
	"github.com/lucasmonteiro/portfolio-api/internal/handlers"
	infraRepo "github.com/lucasmonteiro/portfolio-api/internal/infra/repository"
	"github.com/lucasmonteiro/portfolio-api/internal/mailer"
	"github.com/lucasmonteiro/portfolio-api/internal/media"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	ucSchedule "github.com/lucasmonteiro/portfolio-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	mail := mailer.New(cfg, log)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	createBookingUC := ucSchedule.NewCreateBooking(
		scheduleRepo,
		mail,
		auditDispatcher,
		cfg.SiteTimezone,
	)

	dayAvailabilityUC := ucSchedule.NewGetDayAvailability(
		scheduleRepo,
		cfg.SiteTimezone,
	)

	monthAvailabilityUC := ucSchedule.NewGetMonthAvailability(
		scheduleRepo,
		cfg.SiteTimezone,
	)

	confirmAppointmentUC := ucSchedule.NewConfirmAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.SiteTimezone,
	)

	cancelAppointmentUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.SiteTimezone,
	)

	completeAppointmentUC := ucSchedule.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
		cfg.SiteTimezone,
	)

	deleteAppointmentUC := ucSchedule.NewDeleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	listByDateUC := ucSchedule.NewListAppointmentsByDate(
		scheduleRepo,
		cfg.SiteTimezone,
	)

	listByMonthUC := ucSchedule.NewListAppointmentsByMonth(
		scheduleRepo,
		cfg.SiteTimezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	projectHandler := handlers.NewProjectHandler(db, uploader, auditDispatcher)
	experienceHandler := handlers.NewExperienceHandler(db, auditDispatcher)
	engagementHandler := handlers.NewEngagementHandler(db, auditDispatcher)
	technologyHandler := handlers.NewTechnologyHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		dayAvailabilityUC,
		monthAvailabilityUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		deleteAppointmentUC,
		listByDateUC,
		listByMonthUC,
	)

	contactHandler := handlers.NewContactHandler(db, mail, log)
	messageHandler := handlers.NewMessageHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/projects", projectHandler.List)
			publicAPI.GET("/projects/:slug", projectHandler.GetBySlug)
			publicAPI.GET("/experiences", experienceHandler.List)
			publicAPI.GET("/engagements", engagementHandler.List)
			publicAPI.GET("/technologies", technologyHandler.List)

			publicAPI.POST("/contact",
				middleware.RateLimit(rdb, cfg.ContactRateLimit, time.Minute, "contact", log),
				contactHandler.Create,
			)

			scheduleAPI := publicAPI.Group("/schedule")
			scheduleAPI.Use(middleware.Maintenance(cfg))
			{
				scheduleAPI.GET("/slots", bookingHandler.ListSlots)
				scheduleAPI.GET("/month", bookingHandler.MonthAvailability)
				scheduleAPI.GET("/day", bookingHandler.DayAvailability)
				scheduleAPI.POST("/appointments",
					middleware.RateLimit(rdb, cfg.BookingRateLimit, time.Minute, "booking", log),
					bookingHandler.Create,
				)
			}
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)

			secured.POST("/projects", projectHandler.Create)
			secured.PATCH("/projects/:id", projectHandler.Update)
			secured.DELETE("/projects/:id", projectHandler.Delete)
			secured.POST("/projects/:id/cover", projectHandler.UploadCover)

			secured.POST("/experiences", experienceHandler.Create)
			secured.PUT("/experiences/:id", experienceHandler.Update)
			secured.DELETE("/experiences/:id", experienceHandler.Delete)

			secured.POST("/engagements", engagementHandler.Create)
			secured.PUT("/engagements/:id", engagementHandler.Update)
			secured.DELETE("/engagements/:id", engagementHandler.Delete)

			secured.POST("/technologies", technologyHandler.Create)
			secured.PUT("/technologies/:id", technologyHandler.Update)
			secured.DELETE("/technologies/:id", technologyHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/messages", messageHandler.List)
			secured.PATCH("/messages/:id/read", messageHandler.MarkRead)
			secured.DELETE("/messages/:id", messageHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
