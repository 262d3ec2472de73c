package rest

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter configures the gin engine with all routes
func NewRouter(handler *Handler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/extractions", handler.ExtractSingle)
		v1.POST("/extractions/roundtrip", handler.ExtractRoundTrip)

		v1.POST("/messages", handler.ComposeMessage)
		v1.POST("/messages/send", handler.SendMessage)

		v1.GET("/history", handler.History)
		v1.DELETE("/history", handler.ClearHistory)

		v1.GET("/config", handler.GetConfig)
		v1.PUT("/config", handler.SaveConfig)

		agents := v1.Group("/agents")
		{
			agents.GET("", handler.ListAgents)
			agents.POST("", handler.CreateAgent)
			agents.PUT("/:id", handler.UpdateAgent)
			agents.DELETE("/:id", handler.DeleteAgent)
			agents.POST("/:id/activate", handler.ActivateAgent)
		}
	}

	return r
}
