package routes

import (
	"net/http"

	"pixbridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPix      = "/pix"
	PathWithdraw = "/withdraw"
)

func addTransactionRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("", transactionHandler.CreatePix)
		pix.GET("/:id", transactionHandler.GetByID)
		pix.GET("/:id/events", transactionHandler.ListEvents)
	}

	withdraw := rg.Group(PathWithdraw)
	{
		withdraw.POST("", transactionHandler.CreateWithdraw)
		withdraw.GET("/:id", transactionHandler.GetByID)
		withdraw.GET("/:id/events", transactionHandler.ListEvents)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
