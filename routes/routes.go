package routes

import (
	"net/http"
	"time"

	"akplaw/handlers"
	"akplaw/middleware"
	"akplaw/models"
	"akplaw/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the public site content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/hero", hb.Content.GetHeroHandler)
		api.GET("/insights", hb.Content.ListInsightsHandler)
		api.GET("/insights/:id", hb.Content.GetInsightHandler)
		api.GET("/authors", hb.Content.ListAuthorsHandler)
		api.GET("/authors/:id", hb.Content.GetAuthorHandler)
		api.GET("/offices", hb.Content.ListOfficesHandler)
	}
}

// RegisterAuthRoutes registers registration, login, and password recovery.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)
		api.POST("/federated", hb.User.FederatedSignInHandler)
		api.POST("/password-reset/request", hb.User.RequestPasswordResetHandler)
		api.POST("/password-reset/confirm", hb.User.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/signout", hb.User.SignOutHandler)
	}
}

// RegisterAccountRoutes registers the signed-in user's self-service endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/account")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/profile", hb.User.GetProfileHandler)
		api.PUT("/profile", hb.User.UpdateProfileHandler)
		api.PUT("/password", hb.User.UpdatePasswordHandler)
		api.GET("/applications", hb.Recruitment.MyApplicationsHandler)
	}
}

// RegisterInquiryRoutes registers the public intake endpoints.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.Inquiry.SubmitInquiryHandler)
		api.GET("/reference/:ref", hb.Inquiry.LookupInquiryHandler)
	}
}

// RegisterCareersRoutes registers the public careers endpoints. Applying
// requires a signed-in applicant account.
func RegisterCareersRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/careers")
	{
		api.GET("/jobs", hb.Recruitment.ListJobsHandler)
		api.GET("/jobs/:id", hb.Recruitment.GetJobHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/jobs/:id/apply", hb.Recruitment.SubmitApplicationHandler)
		protected.POST("/resume/extract", hb.Recruitment.ExtractResumeHandler)
	}
}

// RegisterVaultRoutes registers the client portal document vault. Every
// endpoint requires authentication; documents are scoped to their owner.
func RegisterVaultRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vault")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/documents", hb.Billing.MyDocumentsHandler)
		api.GET("/documents/:id", hb.Billing.GetMyDocumentHandler)
		api.POST("/invoices/:id/sign", hb.Billing.SignInvoiceHandler)
		api.POST("/invoices/:id/pay", hb.Billing.PayInvoiceHandler)
		api.GET("/invoices/:id/pdf", hb.Billing.DownloadInvoicePDFHandler)
	}
}

// RegisterAdminRoutes registers the back office. Everything behind this
// group requires an authenticated account holding the admin role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	admin.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
	{
		// Content management.
		admin.PUT("/content/hero", hb.Content.SetHeroHandler)
		admin.POST("/content/insights", hb.Content.CreateInsightHandler)
		admin.PUT("/content/insights/:id", hb.Content.UpdateInsightHandler)
		admin.DELETE("/content/insights/:id", hb.Content.DeleteInsightHandler)
		admin.POST("/content/authors", hb.Content.CreateAuthorHandler)
		admin.PUT("/content/authors/:id", hb.Content.UpdateAuthorHandler)
		admin.DELETE("/content/authors/:id", hb.Content.DeleteAuthorHandler)
		admin.POST("/content/offices", hb.Content.CreateOfficeHandler)
		admin.PUT("/content/offices/:id", hb.Content.UpdateOfficeHandler)
		admin.DELETE("/content/offices/:id", hb.Content.DeleteOfficeHandler)

		// Inquiry triage.
		admin.GET("/inquiries", hb.Inquiry.ListInquiriesHandler)
		admin.GET("/inquiries/:id", hb.Inquiry.GetInquiryHandler)
		admin.PUT("/inquiries/:id/status", hb.Inquiry.UpdateInquiryStatusHandler)
		admin.DELETE("/inquiries/:id", hb.Inquiry.DeleteInquiryHandler)

		// Recruitment.
		admin.GET("/careers/jobs", hb.Recruitment.ListAllJobsHandler)
		admin.POST("/careers/jobs", hb.Recruitment.CreateJobHandler)
		admin.PUT("/careers/jobs/:id", hb.Recruitment.UpdateJobHandler)
		admin.PUT("/careers/jobs/:id/close", hb.Recruitment.CloseJobHandler)
		admin.DELETE("/careers/jobs/:id", hb.Recruitment.DeleteJobHandler)
		admin.GET("/careers/applications", hb.Recruitment.ListApplicationsHandler)
		admin.GET("/careers/applications/:id", hb.Recruitment.GetApplicationHandler)
		admin.PUT("/careers/applications/:id/status", hb.Recruitment.AdvanceApplicationHandler)
		admin.DELETE("/careers/applications/:id", hb.Recruitment.DeleteApplicationHandler)

		// Accounts.
		admin.GET("/users", hb.Admin.ListUsersHandler)
		admin.GET("/users/:id", hb.Admin.GetUserHandler)
		admin.PUT("/users/:id/role", hb.Admin.ChangeRoleHandler)
		admin.PUT("/users/:id/advocate", hb.Admin.AssignAdvocateHandler)
		admin.DELETE("/users/:id/advocate", hb.Admin.ClearAdvocateHandler)
		admin.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		// Vault and billing.
		admin.GET("/vault/documents", hb.Billing.ListAllDocumentsHandler)
		admin.GET("/vault/clients/:id/documents", hb.Billing.ClientDocumentsHandler)
		admin.POST("/vault/documents", hb.Billing.CreateDocumentHandler)
		admin.POST("/vault/invoices", hb.Billing.CreateInvoiceHandler)
		admin.PUT("/vault/invoices/:id/revoke", hb.Billing.RevokeInvoiceHandler)
		admin.GET("/vault/invoices/:id/pdf", hb.Billing.AdminInvoicePDFHandler)
		admin.DELETE("/vault/documents/:id", hb.Billing.DeleteDocumentHandler)

		// File storage.
		admin.POST("/storage/:bucket", hb.Storage.UploadFileHandler)
		admin.GET("/storage/:bucket/url", hb.Storage.GetDownloadURLHandler)
		admin.DELETE("/storage/:bucket", hb.Storage.DeleteFileHandler)
	}
}

// RegisterMailRoutes registers the standalone send endpoint.
func RegisterMailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/send", hb.Mail.SendMailHandler)
}

// RegisterHealthRoute registers a health-check endpoint reporting backing
// service status.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Send-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterContentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterCareersRoutes(r, hb)
	RegisterVaultRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterMailRoutes(r, hb)
	RegisterHealthRoute(r)
}
