package handlers

import (
	"statutesync/services/admin"
	"statutesync/services/assistant"
	"statutesync/services/library"
	"statutesync/services/marketplace"
	"statutesync/services/user"
	"statutesync/services/verification"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions user.SessionService

	// Health
	HealthHandler gin.HandlerFunc

	// Session endpoints
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	AuthStatusHandler    gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Document library
	ListDocumentsHandler  gin.HandlerFunc
	GetDocumentHandler    gin.HandlerFunc
	AddDocumentHandler    gin.HandlerFunc
	RemoveDocumentHandler gin.HandlerFunc

	// Marketplace
	ListProfessionalsHandler  gin.HandlerFunc
	GetProfessionalHandler    gin.HandlerFunc
	AddProfessionalHandler    gin.HandlerFunc
	RemoveProfessionalHandler gin.HandlerFunc
	BookProfessionalHandler   gin.HandlerFunc
	ListBookingsHandler       gin.HandlerFunc

	// Verification
	VerifyFileHandler        gin.HandlerFunc
	ListVerificationsHandler gin.HandlerFunc
	HistoryHandler           gin.HandlerFunc

	// Assistant
	ChatHandler           gin.HandlerFunc
	ChatTranscriptHandler gin.HandlerFunc
	ClearChatHandler      gin.HandlerFunc

	// Admin
	AdminStatsHandler  gin.HandlerFunc
	ResetFamilyHandler gin.HandlerFunc
}

// Services are the dependencies NewHandlerBundle wires into handlers.
type Services struct {
	Sessions       user.SessionService
	Library        library.LibraryService
	Marketplace    marketplace.MarketplaceService
	Verification   verification.VerificationService
	Assistant      assistant.AssistantService
	Admin          admin.AdminService
	Health         *utils.HealthMonitor
	MaxUploadBytes int64
}

// NewHandlerBundle assembles every handler from svcs.
func NewHandlerBundle(svcs Services) *HandlerBundle {
	userHandler := NewUserHandler(svcs.Sessions)
	documentHandler := NewDocumentHandler(svcs.Library)
	marketplaceHandler := NewMarketplaceHandler(svcs.Marketplace)
	verificationHandler := NewVerificationHandler(svcs.Verification, svcs.MaxUploadBytes)
	assistantHandler := NewAssistantHandler(svcs.Assistant)
	adminHandler := NewAdminHandler(svcs.Admin)

	return &HandlerBundle{
		Sessions: svcs.Sessions,

		HealthHandler: NewHealthHandler(svcs.Health),

		LoginHandler:         userHandler.LoginHandler,
		LogoutHandler:        userHandler.LogoutHandler,
		AuthStatusHandler:    userHandler.AuthStatusHandler,
		GetProfileHandler:    userHandler.GetProfileHandler,
		UpdateProfileHandler: userHandler.UpdateProfileHandler,

		ListDocumentsHandler:  documentHandler.ListDocumentsHandler,
		GetDocumentHandler:    documentHandler.GetDocumentHandler,
		AddDocumentHandler:    documentHandler.AddDocumentHandler,
		RemoveDocumentHandler: documentHandler.RemoveDocumentHandler,

		ListProfessionalsHandler:  marketplaceHandler.ListProfessionalsHandler,
		GetProfessionalHandler:    marketplaceHandler.GetProfessionalHandler,
		AddProfessionalHandler:    marketplaceHandler.AddProfessionalHandler,
		RemoveProfessionalHandler: marketplaceHandler.RemoveProfessionalHandler,
		BookProfessionalHandler:   marketplaceHandler.BookProfessionalHandler,
		ListBookingsHandler:       marketplaceHandler.ListBookingsHandler,

		VerifyFileHandler:        verificationHandler.VerifyFileHandler,
		ListVerificationsHandler: verificationHandler.ListVerificationsHandler,
		HistoryHandler:           adminHandler.HistoryHandler,

		ChatHandler:           assistantHandler.ChatHandler,
		ChatTranscriptHandler: assistantHandler.ChatTranscriptHandler,
		ClearChatHandler:      assistantHandler.ClearChatHandler,

		AdminStatsHandler:  adminHandler.AdminStatsHandler,
		ResetFamilyHandler: adminHandler.ResetFamilyHandler,
	}
}
