package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/audit"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/cache"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/config"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/domain/schedule"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/handlers"
	infraRepo "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/infra/repository"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/middleware"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/storage"
	ucAppointment "github.com/DataSyncDynamics/peachy-pooches-sub000/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	engine := schedule.NewEngine(appointmentRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	catalog := cache.NewCatalog(rdb)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		engine,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		engine,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	cancelByCodeUC := ucAppointment.NewCancelByCode(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, catalog)
	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db, uploader)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		markNoShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		getAvailabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		catalog,
		getAvailabilityUC,
		createAppointmentUC,
		cancelByCodeUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)

			publicAPI.GET("/:slug/appointments/:code", publicHandler.GetAppointmentByCode)
			publicAPI.PATCH("/:slug/appointments/:code/cancel", publicHandler.CancelByCode)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/pets", petHandler.List)
			secured.POST("/me/pets", petHandler.Create)
			secured.POST("/me/pets/:id/photo", petHandler.UploadPhoto)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/business-hours", businessHoursHandler.Get)
			secured.PUT("/me/business-hours", businessHoursHandler.Update)

			secured.GET("/me/blocked-times", blockedTimeHandler.List)
			secured.POST("/me/blocked-times", blockedTimeHandler.Create)
			secured.DELETE("/me/blocked-times/:id", blockedTimeHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.GetAvailability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
