package http

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.Use(RequestID())

	api := router.Group("/api/v1")
	{
		api.GET("/stocks", handler.ListStocks)
		api.GET("/stocks/:ticker/price", handler.GetPrice)
		api.POST("/buy", handler.BuyShares)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
