package routes

import (
	"pesapal_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathIPN    = "/ipn"
)

func addPaymentRoutes(rg *gin.RouterGroup, orderHandler *handlers.PaymentOrderHandler, notificationHandler *handlers.NotificationHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/status", orderHandler.RefreshStatus)
		orders.POST("/:id/refund", orderHandler.RequestRefund)
	}

	ipn := rg.Group(PathIPN)
	{
		// PesaPal calls this with GET or POST depending on how the url was registered.
		ipn.GET("", notificationHandler.ReceiveIPN)
		ipn.POST("", notificationHandler.ReceiveIPN)
		ipn.POST("/endpoints", notificationHandler.RegisterEndpoint)
		ipn.GET("/endpoints", notificationHandler.ListEndpoints)
	}
}
