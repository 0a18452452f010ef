// File: brightsmile/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightsmile/config"
	"brightsmile/cron"
	"brightsmile/database"
	adminRepoPkg "brightsmile/database/repository/admin"
	appointmentRepo "brightsmile/database/repository/appointment"
	blogRepo "brightsmile/database/repository/blog"
	doctorRepo "brightsmile/database/repository/doctor"
	patientRepo "brightsmile/database/repository/patient"
	serviceRepo "brightsmile/database/repository/service"
	slotRepo "brightsmile/database/repository/slot"
	testimonialRepo "brightsmile/database/repository/testimonial"
	vacationRepo "brightsmile/database/repository/vacation"
	"brightsmile/handlers"
	"brightsmile/routes"
	adminSvc "brightsmile/services/admin"
	"brightsmile/services/appointment"
	"brightsmile/services/availability"
	"brightsmile/services/booking"
	"brightsmile/services/catalog"
	"brightsmile/services/content"
	"brightsmile/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	ctx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	if err := slotRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}
	cancelInit()

	// Media storage is optional; the site runs without it.
	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: media storage disabled: %v", err)
		storageSvc = nil
	}

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	vacRepo := vacationRepo.NewMongoVacationRepo()
	slots := slotRepo.NewMongoSlotRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	blgRepo := blogRepo.NewMongoBlogRepo()
	tstRepo := testimonialRepo.NewMongoTestimonialRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	admRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Slots:        slots,
		Vacations:    vacRepo,
		Appointments: apptRepo,
	}

	bookingSvc := &booking.DefaultBookingSessionService{
		Store:        booking.NewRedisSessionStore(utils.GetBookingCacheClient()),
		Availability: availabilitySvc,
		Services:     svcRepo,
		Doctors:      docRepo,
		Appointments: apptRepo,
		Patients:     patRepo,
	}

	catalogSvc := &catalog.DefaultCatalogService{
		Services: svcRepo,
		Doctors:  docRepo,
	}

	appointmentSvc := &appointment.DefaultAppointmentService{
		Repo:     apptRepo,
		Services: svcRepo,
		Doctors:  docRepo,
		Patients: patRepo,
	}

	contentSvc := &content.DefaultContentService{
		Posts:        blgRepo,
		Testimonials: tstRepo,
	}

	authSvc := &adminSvc.DefaultAuthService{
		Repo:   admRepo,
		Tokens: &adminSvc.RedisTokenStore{Client: utils.GetAuthCacheClient()},
	}
	if err := authSvc.EnsureBootstrapAdmin(config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure bootstrap admin: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingSvc),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Catalog:      handlers.NewCatalogHandler(catalogSvc),
		Appointments: handlers.NewAppointmentHandler(appointmentSvc),
		Content:      handlers.NewContentHandler(contentSvc),
		Auth:         handlers.NewAuthHandler(authSvc),
		Storage:      handlers.NewStorageHandler(storageSvc),
		AuthSvc:      authSvc,
	}

	router := routes.SetupRouter(handlerBundle)

	maintenance := cron.StartMaintenanceWorker(slots)
	defer maintenance.Stop()

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetBookingCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
