package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podio/services/flow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStepRoute(t *testing.T) {
	assert.Equal(t, "/event/42", StepRoute(0, 42))
	assert.Equal(t, "/event/42/event-detail", StepRoute(1, 42))
	assert.Equal(t, "/event/42/personal-info", StepRoute(2, 42))
	assert.Equal(t, "/event/42/payment", StepRoute(3, 42))
	assert.Equal(t, "/event/42", StepRoute(9, 42))
}

func newGateRouter(t *testing.T, currentStep, requiredStep int) (*gin.Engine, *flow.Session) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := flow.NewSessionRepo(client, 30*time.Minute)

	session, err := repo.Create(context.Background(), 42)
	require.NoError(t, err)
	session.Registration.SetCurrentStep(currentStep)
	require.NoError(t, repo.SaveRegistration(context.Background(), session))

	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			c.Set(ContextSessionID, session.ID)
			c.Set(ContextEventID, session.EventID)
		},
		StepGate(repo, requiredStep),
		func(c *gin.Context) {
			loaded := c.MustGet(ContextSession).(*flow.Session)
			c.JSON(http.StatusOK, gin.H{"sessionID": loaded.ID})
		})
	return r, session
}

func TestStepGate_AllowsReachedStep(t *testing.T) {
	tests := []struct {
		name         string
		currentStep  int
		requiredStep int
	}{
		{name: "exactly at step", currentStep: 2, requiredStep: 2},
		{name: "past the step", currentStep: 3, requiredStep: 1},
		{name: "step zero always reachable", currentStep: 0, requiredStep: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, session := newGateRouter(t, tt.currentStep, tt.requiredStep)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, session.ID, body["sessionID"])
		})
	}
}

func TestStepGate_BlocksSkippedStep(t *testing.T) {
	r, _ := newGateRouter(t, 1, 3)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/event/42/event-detail", body["redirect"])
}

func TestStepGate_UnknownSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := flow.NewSessionRepo(client, 30*time.Minute)

	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			c.Set(ContextSessionID, "ghost")
			c.Set(ContextEventID, 42)
		},
		StepGate(repo, 1),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
