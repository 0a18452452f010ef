package routes

import (
	"net/http"
	"time"

	"brightsmile/handlers"
	"brightsmile/middleware"
	"brightsmile/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with CORS, rate limiting and all routes.
func SetupRouter(hb *handlers.HandlerBundle) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)

	return r
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BrightSmile"})
	})
}

// RegisterPublicRoutes registers the endpoints the public site reads.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListPublicServices)
		api.GET("/doctors", hb.Catalog.ListPublicDoctors)
		api.GET("/blog", hb.Content.ListPublicPosts)
		api.GET("/blog/:slug", hb.Content.GetPostBySlug)
		api.GET("/testimonials", hb.Content.ListPublicTestimonials)
		api.GET("/availability/day", hb.Availability.DayGrid)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/service", hb.Booking.SelectService)
		bookingGroup.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.PUT("/session/:sessionID/time", hb.Booking.SelectTime)
		bookingGroup.PUT("/session/:sessionID/details", hb.Booking.SetDetails)
		bookingGroup.POST("/session/:sessionID/next", hb.Booking.Next)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.Back)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.Submit)
		bookingGroup.POST("/session/:sessionID/reset", hb.Booking.Reset)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterAuthRoutes sets up admin sign-in and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signin", hb.Auth.SignIn)

		protected := authGroup.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AuthSvc))
		protected.GET("/me", hb.Auth.Me)
		protected.POST("/signout", hb.Auth.SignOut)
	}
}

// RegisterAdminRoutes sets up the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware(hb.AuthSvc))
	{
		adminGroup.GET("/stats", hb.Appointments.DashboardStats)

		adminGroup.GET("/services", hb.Catalog.ListServices)
		adminGroup.GET("/services/:id", hb.Catalog.GetService)
		adminGroup.POST("/services", hb.Catalog.CreateService)
		adminGroup.PATCH("/services/:id", hb.Catalog.UpdateService)
		adminGroup.DELETE("/services/:id", hb.Catalog.DeleteService)

		adminGroup.GET("/doctors", hb.Catalog.ListDoctors)
		adminGroup.GET("/doctors/:id", hb.Catalog.GetDoctor)
		adminGroup.POST("/doctors", hb.Catalog.CreateDoctor)
		adminGroup.PATCH("/doctors/:id", hb.Catalog.UpdateDoctor)
		adminGroup.DELETE("/doctors/:id", hb.Catalog.DeleteDoctor)

		adminGroup.GET("/appointments", hb.Appointments.ListAppointments)
		adminGroup.GET("/appointments/:id", hb.Appointments.GetAppointment)
		adminGroup.PATCH("/appointments/:id/status", hb.Appointments.UpdateAppointmentStatus)
		adminGroup.GET("/patients", hb.Appointments.ListPatients)

		adminGroup.GET("/availability/slots", hb.Availability.ListSlots)
		adminGroup.POST("/availability/toggle", hb.Availability.ToggleSlot)
		adminGroup.GET("/vacations", hb.Availability.ListVacations)
		adminGroup.POST("/vacations", hb.Availability.AddVacation)
		adminGroup.POST("/vacations/:id/cascade", hb.Availability.ApplyVacationCascade)
		adminGroup.DELETE("/vacations/:id", hb.Availability.DeleteVacation)

		adminGroup.GET("/blog", hb.Content.ListPosts)
		adminGroup.POST("/blog", hb.Content.CreatePost)
		adminGroup.PATCH("/blog/:id", hb.Content.UpdatePost)
		adminGroup.DELETE("/blog/:id", hb.Content.DeletePost)

		adminGroup.GET("/testimonials", hb.Content.ListTestimonials)
		adminGroup.POST("/testimonials", hb.Content.CreateTestimonial)
		adminGroup.PATCH("/testimonials/:id", hb.Content.UpdateTestimonial)
		adminGroup.DELETE("/testimonials/:id", hb.Content.DeleteTestimonial)

		adminGroup.POST("/storage/:bucket", hb.Storage.UploadFileHandler)
		adminGroup.GET("/storage/:bucket/:filename", hb.Storage.GetDownloadURLHandler)
		adminGroup.DELETE("/storage", hb.Storage.DeleteFileHandler)
	}
}
