package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbearia-app/barbearia-api/internal/audit"
	"github.com/barbearia-app/barbearia-api/internal/cache"
	"github.com/barbearia-app/barbearia-api/internal/config"
	"github.com/barbearia-app/barbearia-api/internal/handlers"
	infraRepo "github.com/barbearia-app/barbearia-api/internal/infra/repository"
	"github.com/barbearia-app/barbearia-api/internal/media"
	"github.com/barbearia-app/barbearia-api/internal/middleware"
	"github.com/barbearia-app/barbearia-api/internal/models"
	"github.com/barbearia-app/barbearia-api/internal/notification"
	ucAppointment "github.com/barbearia-app/barbearia-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	mirror *cache.Mirror,
	notifier *notification.Notifier,
	images *media.ImageStore,
	loc *time.Location,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	ucOpts := ucAppointment.Options{
		Location:          loc,
		MinAdvanceMinutes: cfg.MinAdvanceMinutes,
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		ucOpts,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		ucOpts,
	)

	rateAppointmentUC := ucAppointment.NewRateAppointment(
		appointmentRepo,
		auditDispatcher,
		ucOpts,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
		loc,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
		loc,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db, mirror)
	serviceHandler := handlers.NewServiceHandler(db, mirror)
	productHandler := handlers.NewProductHandler(db, mirror, images)
	barberHandler := handlers.NewBarberHandler(db, mirror, images, availabilityUC, loc)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		rateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		mirror,
		loc,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, loc)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogHandler := handlers.NewAuditLogHandler(db)
	syncHandler := handlers.NewSyncHandler(mirror)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 📦 SYNC (snapshot do espelho)
		// ------------------------------
		api.GET("/sync/:collection", syncHandler.Snapshot)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/notifications", notificationHandler.List)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// PRODUCTS
			// ------------------------------
			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)
			secured.POST("/products/:id/photo", productHandler.UploadPhoto)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)
			secured.POST("/barbers/:id/photo", barberHandler.UploadPhoto)
			secured.GET("/barbers/:id/availability", barberHandler.Availability)
			secured.GET("/barbers/:id/working-hours", workingHoursHandler.Get)
			secured.PUT("/barbers/:id/working-hours", workingHoursHandler.Put)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.POST("/appointments/:id/rating", appointmentHandler.Rate)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// 📊 VISÃO DO BARBEIRO
			// ------------------------------
			barberOnly := secured.Group("/me")
			barberOnly.Use(middleware.RequireRole(models.RoleBarber))
			{
				barberOnly.GET("/dashboard", dashboardHandler.Metrics)
				barberOnly.GET("/reports/revenue", dashboardHandler.Revenue)
				barberOnly.GET("/audit-logs", auditLogHandler.List)
			}
		}
	}
}
