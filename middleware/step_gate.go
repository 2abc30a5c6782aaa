package middleware

import (
	"fmt"
	"net/http"

	"podio/services/flow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextSession carries the loaded flow session past the gate so handlers
// do not reload it.
const ContextSession = "flowSession"

// stepRoutes maps a step index to the client route a blocked visitor is
// sent back to. Personal-info and group-info share step 2; the individual
// route is the canonical redirect target.
var stepRoutes = map[int]string{
	0: "/event/%d",
	1: "/event/%d/event-detail",
	2: "/event/%d/personal-info",
	3: "/event/%d/payment",
}

// StepRoute returns the client route for a step index and event.
func StepRoute(step, eventID int) string {
	path, ok := stepRoutes[step]
	if !ok {
		path = stepRoutes[0]
	}
	return fmt.Sprintf(path, eventID)
}

// StepGate loads the session and rejects requests whose required step lies
// beyond the visitor's persisted progress. Allowed requests continue with
// the session stashed in the context; blocked ones get the route to return
// to. The check is synchronous against persisted state, no upstream call.
func StepGate(repo *flow.SessionRepo, requiredStep int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(ContextSessionID)
		eventID := c.GetInt(ContextEventID)

		session, err := repo.Load(c.Request.Context(), sessionID, eventID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "flow session not found or expired"})
			return
		}

		current := session.Registration.CurrentStepIndex
		if requiredStep > current {
			zap.L().Debug("step gate blocked request",
				zap.String("sessionID", sessionID),
				zap.Int("requiredStep", requiredStep),
				zap.Int("currentStep", current))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "step not reached yet",
				"redirect": StepRoute(current, eventID),
			})
			return
		}

		c.Set(ContextSession, session)
		c.Next()
	}
}
