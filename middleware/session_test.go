package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podio/utils"
)

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", SessionMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sessionID": c.GetString(ContextSessionID),
			"eventID":   c.GetInt(ContextEventID),
		})
	})
	return r
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateSessionToken("sess-1", 42, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newSessionRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sess-1")
	assert.Contains(t, w.Body.String(), "42")
}

func TestSessionMiddleware_Rejections(t *testing.T) {
	expired, err := utils.GenerateSessionToken("sess-1", 42, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Token abc"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newSessionRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
