package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadfine/pkg/logger"
	"roadfine/service"
)

type driverFinesRequest struct {
	DriverID int64  `json:"driver_id"`
	APIKey   string `json:"api_key"`
}

func (s *Server) driverFines(c *gin.Context) {
	var req driverFinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	fines, err := s.svc.Fine().GetDriverFines(c.Request.Context(), req.DriverID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.String(http.StatusNotFound, "No fines found for the provided driver_id.")
			return
		}
		s.log.Error("failed to get driver fines", logger.Error(err))
		c.String(http.StatusInternalServerError, "Server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fines": fines})
}

func (s *Server) driverFinesHistory(c *gin.Context) {
	var req driverFinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	history, err := s.svc.Fine().GetHistory(c.Request.Context(), req.DriverID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.String(http.StatusNotFound, "No fines found for this driver.")
			return
		}
		s.log.Error("failed to get fines history", logger.Error(err))
		c.String(http.StatusInternalServerError, "Server error.")
		return
	}

	c.JSON(http.StatusOK, history)
}
