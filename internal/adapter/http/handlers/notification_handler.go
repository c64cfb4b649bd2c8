package handlers

import (
	"log"
	"net/http"

	"pesapal_gateway/internal/adapter/http/dto/request"
	"pesapal_gateway/internal/adapter/http/dto/response"
	"pesapal_gateway/internal/usecase"
	"pesapal_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler manages IPN endpoints and receives the IPN calls
// PesaPal makes when a payment changes.

type NotificationHandler struct {
	notifications usecase.INotificationUseCase
	orders        usecase.IPaymentOrderUseCase
}

func NewNotificationHandler(notifications usecase.INotificationUseCase, orders usecase.IPaymentOrderUseCase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, orders: orders}
}

// RegisterEndpoint registers an IPN url with PesaPal.
//
// @Summary  Register an IPN url
// @Tags     ipn
// @Accept   json
// @Produce  json
// @Param    endpoint  body      request.RegisterIPNRequest  true  "IPN endpoint"
// @Success  201       {object}  response.NotificationEndpointResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  502       {object}  pkg.HTTPError
// @Router   /ipn/endpoints [post]
func (h *NotificationHandler) RegisterEndpoint(c *gin.Context) {
	var req request.RegisterIPNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ipn][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ep, err := h.notifications.RegisterEndpoint(c.Request.Context(), req.URL, req.NotificationType)
	if err != nil {
		log.Printf("[ipn][handler] register failed url=%s err=%v", req.URL, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ipn][handler] register success url=%s ipn_id=%s", ep.URL, ep.ID)

	c.JSON(http.StatusCreated, response.FromNotificationEndpoint(ep))
}

// ListEndpoints lists the IPN urls registered with PesaPal.
//
// @Summary  List IPN urls
// @Tags     ipn
// @Produce  json
// @Success  200  {array}   response.NotificationEndpointResponse
// @Failure  502  {object}  pkg.HTTPError
// @Router   /ipn/endpoints [get]
func (h *NotificationHandler) ListEndpoints(c *gin.Context) {
	eps, err := h.notifications.ListEndpoints(c.Request.Context())
	if err != nil {
		log.Printf("[ipn][handler] list failed err=%v", err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotificationEndpoints(eps))
}

// ReceiveIPN handles the call PesaPal makes to a registered IPN url. The
// answer always has HTTP 200; the ack status tells PesaPal whether to retry.
//
// @Summary  Receive an IPN call
// @Tags     ipn
// @Accept   json
// @Produce  json
// @Param    OrderTrackingId         query     string  false  "Tracking id (GET)"
// @Param    OrderNotificationType   query     string  false  "Notification type (GET)"
// @Param    OrderMerchantReference  query     string  false  "Merchant reference (GET)"
// @Success  200                     {object}  response.IPNAck
// @Router   /ipn [get]
// @Router   /ipn [post]
func (h *NotificationHandler) ReceiveIPN(c *gin.Context) {
	var cb request.IPNCallback
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&cb)
	} else {
		err = c.ShouldBindJSON(&cb)
	}

	ack := response.IPNAck{
		OrderNotificationType:  cb.OrderNotificationType,
		OrderTrackingID:        cb.OrderTrackingID,
		OrderMerchantReference: cb.OrderMerchantReference,
		Status:                 http.StatusOK,
	}
	if err != nil {
		log.Printf("[ipn][handler] invalid callback method=%s err=%v", c.Request.Method, err)
		ack.Status = http.StatusInternalServerError
		c.JSON(http.StatusOK, ack)
		return
	}
	log.Printf("[ipn][handler] callback start tracking_id=%s type=%s merchant_reference=%s", cb.OrderTrackingID, cb.OrderNotificationType, cb.OrderMerchantReference)

	o, err := h.orders.HandleNotification(c.Request.Context(), cb.ToNotification())
	if err != nil {
		log.Printf("[ipn][handler] callback failed tracking_id=%s err=%v", cb.OrderTrackingID, err)
		ack.Status = http.StatusInternalServerError
		c.JSON(http.StatusOK, ack)
		return
	}
	log.Printf("[ipn][handler] callback success id=%s status=%s", o.ID, o.Status)

	c.JSON(http.StatusOK, ack)
}
