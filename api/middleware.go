package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal_id"

// requireToken guards routes behind a bearer token. Missing token is 401;
// an invalid or expired one is 403, with nothing to tell the two apart.
func (s *Server) requireToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	c.Set(principalKey, claims.ID)
	c.Next()
}

// checkAPIKey enforces the shared-secret gate. The failure response is the
// same generic one used for bad credentials, so callers cannot probe which
// part of a login attempt was wrong.
func (s *Server) checkAPIKey(c *gin.Context, apiKey string) bool {
	if apiKey != s.cfg.APIKey {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		return false
	}
	return true
}
