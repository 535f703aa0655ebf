package routes

import (
	"time"

	"statutesync/handlers"
	"statutesync/middleware"
	"statutesync/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/status", hb.AuthStatusHandler)
	}

	profile := r.Group("/api/profile")
	{
		profile.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		profile.GET("", hb.GetProfileHandler)
		profile.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterLibraryRoutes registers the document library. Mutations are admin only.
func RegisterLibraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.ListDocumentsHandler)
		api.GET("/:id", hb.GetDocumentHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.AddDocumentHandler)
		admin.DELETE("/:id", hb.RemoveDocumentHandler)
	}
}

// RegisterMarketplaceRoutes registers professionals and bookings.
func RegisterMarketplaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.ListProfessionalsHandler)
		api.GET("/:id", hb.GetProfessionalHandler)
		api.POST("/:id/book", hb.BookProfessionalHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.AddProfessionalHandler)
		admin.DELETE("/:id", hb.RemoveProfessionalHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		bookings.GET("", hb.ListBookingsHandler)
	}
}

// RegisterVerificationRoutes registers forensic verification and the activity history.
func RegisterVerificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("/verifications", hb.VerifyFileHandler)
		api.GET("/verifications", hb.ListVerificationsHandler)
		api.GET("/history", hb.HistoryHandler)
	}
}

// RegisterAssistantRoutes registers the chat assistant.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("/chat", hb.ChatHandler)
		api.GET("/chat", hb.ChatTranscriptHandler)
		api.DELETE("/chat", hb.ClearChatHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.SessionAuthMiddleware(hb.Sessions), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/stats", hb.AdminStatsHandler)
		adminGroup.POST("/reset/:family", hb.ResetFamilyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterLibraryRoutes(r, hb)
	RegisterMarketplaceRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
