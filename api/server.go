package api

import (
	"github.com/gin-gonic/gin"

	"roadfine/config"
	"roadfine/pkg/logger"
	"roadfine/pkg/token"
	"roadfine/service"
)

type Server struct {
	cfg    config.Config
	svc    service.IServiceManager
	tokens *token.Service
	log    logger.ILogger
}

func New(cfg config.Config, svc service.IServiceManager, tokens *token.Service, log logger.ILogger) *Server {
	return &Server{
		cfg:    cfg,
		svc:    svc,
		tokens: tokens,
		log:    log,
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Stripe-Signature")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.POST("/driver/login", s.driverLogin)
	r.POST("/division/login", s.divisionLogin)
	r.POST("/driver/signup", s.driverSignup)
	r.POST("/division/signup", s.divisionSignup)
	r.POST("/verify-token", s.verifyToken)
	r.POST("/driver/fines", s.driverFines)

	r.POST("/webhook", s.webhook)

	authed := r.Group("/", s.requireToken)
	authed.POST("/driver/fines-history", s.driverFinesHistory)
	authed.POST("/driver/create-checkout-session", s.createCheckoutSession)
	authed.PUT("/driver/fcm-token", s.saveFCMToken)
	authed.GET("/protected", s.protected)

	return r
}
