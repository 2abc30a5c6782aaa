package routes

import (
	"net/http"
	"time"

	"podio/handlers"
	"podio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session and event lookup endpoints.
// Opening a session needs no token; everything else on the flow does.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/session", hb.Flow.StartSession)
		api.GET("/events/:id", hb.Flow.GetEvent)

		authed := api.Group("")
		authed.Use(middleware.SessionMiddleware())
		authed.GET("/session/state", hb.Flow.GetSessionState)
		authed.PUT("/step", hb.Flow.SetStep)
	}
}

// RegisterFlowRoutes registers the per-store endpoints. Each group sits
// behind the step gate with the step index its page belongs to:
// registration-type selection on the event-detail step, the info forms on
// the shared info step, payment and submission on the payment step.
func RegisterFlowRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())

	detail := api.Group("")
	detail.Use(middleware.StepGate(hb.SessionRepo, 1))
	detail.PUT("/registration-type", hb.Flow.SetRegistrationType)

	info := api.Group("")
	info.Use(middleware.StepGate(hb.SessionRepo, 2))
	{
		info.PUT("/personal-info", hb.Flow.UpdatePersonalInfo)
		info.PUT("/personal-info/validate-field", hb.Flow.ValidatePersonalField)
		info.POST("/personal-info/validate", hb.Flow.ValidatePersonalForm)

		info.PUT("/group-info", hb.Flow.UpdateGroupInfo)
		info.POST("/group-info/members", hb.Flow.AddTeamMember)
		info.PUT("/group-info/members/:index", hb.Flow.UpdateTeamMember)
		info.DELETE("/group-info/members/:index", hb.Flow.RemoveTeamMember)
		info.PUT("/group-info/members/:index/validate-field", hb.Flow.ValidateMemberField)
		info.POST("/group-info/validate", hb.Flow.ValidateGroupForm)

		info.PUT("/spectator-info", hb.Flow.UpdateSpectatorInfo)
		info.PUT("/spectator-info/validate-field", hb.Flow.ValidateSpectatorField)
		info.POST("/spectator-info/validate", hb.Flow.ValidateSpectatorForm)
	}

	payment := api.Group("")
	payment.Use(middleware.StepGate(hb.SessionRepo, 3))
	{
		payment.PUT("/payment-info", hb.Flow.UpdatePaymentInfo)
		payment.PUT("/payment-info/validate-field", hb.Flow.ValidatePaymentField)
		payment.POST("/payment-info/validate", hb.Flow.ValidatePaymentForm)
		payment.POST("/submit", hb.Flow.Submit)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterFlowRoutes(r, hb)
	RegisterHealthRoute(r)
}
