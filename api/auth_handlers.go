package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/service"
)

type driverLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	APIKey   string `json:"api_key"`
}

func (s *Server) driverLogin(c *gin.Context) {
	var req driverLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	session, err := s.svc.Auth().DriverLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		s.log.Error("driver login failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	c.JSON(http.StatusOK, session)
}

type divisionLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	APIKey   string `json:"api_key"`
}

func (s *Server) divisionLogin(c *gin.Context) {
	var req divisionLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	dashboard, err := s.svc.Auth().DivisionLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		s.log.Error("division login failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (s *Server) driverSignup(c *gin.Context) {
	var req models.DriverSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	err := s.svc.Auth().DriverSignup(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.String(http.StatusOK, "Driver registered successfully.")
	case errors.Is(err, service.ErrLicenseMismatch):
		c.String(http.StatusNotFound, "License number and NIC do not match.")
	case errors.Is(err, service.ErrIncompleteRecord):
		c.String(http.StatusBadRequest, "Missing essential driver information.")
	case errors.Is(err, service.ErrAlreadyRegistered):
		c.String(http.StatusBadRequest, "Driver already registered.")
	case errors.Is(err, service.ErrDivisionNotFound):
		c.String(http.StatusNotFound, "Division not found.")
	default:
		s.log.Error("driver signup failed", logger.Error(err))
		c.String(http.StatusInternalServerError, "Server error.")
	}
}

type divisionSignupRequest struct {
	DivisionID   string `json:"division_id"`
	DivisionName string `json:"division_name"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	Password     string `json:"password"`
	APIKey       string `json:"api_key"`
}

func (s *Server) divisionSignup(c *gin.Context) {
	var req divisionSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	err := s.svc.Auth().DivisionSignup(c.Request.Context(), &models.Division{
		ID:       req.DivisionID,
		Name:     req.DivisionName,
		Email:    req.Email,
		Location: req.Location,
		Password: req.Password,
	})
	switch {
	case err == nil:
		c.String(http.StatusOK, "Police division registered successfully.")
	case errors.Is(err, service.ErrAlreadyRegistered):
		c.String(http.StatusBadRequest, "Police division already registered.")
	default:
		s.log.Error("division signup failed", logger.Error(err))
		c.String(http.StatusInternalServerError, "Server error.")
	}
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) verifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	if _, err := s.tokens.Validate(req.Token); err != nil {
		c.Status(http.StatusForbidden)
		return
	}
	c.Status(http.StatusOK)
}

type fcmTokenRequest struct {
	FCMToken string `json:"fcm_token"`
	APIKey   string `json:"api_key"`
}

func (s *Server) saveFCMToken(c *gin.Context) {
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FCMToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	driverID, err := strconv.ParseInt(c.GetString(principalKey), 10, 64)
	if err != nil {
		c.Status(http.StatusForbidden)
		return
	}

	if err := s.svc.Auth().SaveFCMToken(c.Request.Context(), driverID, req.FCMToken); err != nil {
		s.log.Error("failed to save fcm token", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": "Token updated."})
}

func (s *Server) protected(c *gin.Context) {
	c.String(http.StatusOK, "This is a protected route.")
}
