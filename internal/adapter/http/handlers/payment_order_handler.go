package handlers

import (
	"errors"
	"log"
	"net/http"

	"pesapal_gateway/internal/adapter/http/dto/request"
	"pesapal_gateway/internal/adapter/http/dto/response"
	"pesapal_gateway/internal/usecase"
	"pesapal_gateway/internal/usecase/interfaces"
	"pesapal_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentOrderHandler handles HTTP requests for PesaPal payment orders.

type PaymentOrderHandler struct {
	usecase usecase.IPaymentOrderUseCase
}

func NewPaymentOrderHandler(uc usecase.IPaymentOrderUseCase) *PaymentOrderHandler {
	return &PaymentOrderHandler{usecase: uc}
}

// SubmitOrder submits an order to PesaPal and stores it as pending.
//
// @Summary  Submit a payment order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order  body      request.PaymentOrderRequest  true  "Order"
// @Success  201    {object}  response.PaymentOrderResponse
// @Failure  400    {object}  pkg.HTTPError
// @Failure  409    {object}  pkg.HTTPError
// @Failure  502    {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *PaymentOrderHandler) SubmitOrder(c *gin.Context) {
	var req request.PaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] submit start id=%q amount=%.2f", req.ID, req.Amount)

	created, err := h.usecase.SubmitOrder(c.Request.Context(), req.ToSubmission())
	if err != nil {
		log.Printf("[order][handler] submit failed id=%q err=%v", req.ID, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] submit success id=%s tracking_id=%s", created.ID, created.TrackingID)

	c.JSON(http.StatusCreated, response.FromPaymentOrder(created))
}

// GetOrder returns the stored order without calling the gateway.
//
// @Summary  Get a payment order
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  response.PaymentOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *PaymentOrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[order][handler] get start id=%s", id)

	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] get failed id=%s err=%v", id, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentOrder(o))
}

// RefreshStatus polls the gateway for the order status and stores it.
//
// @Summary  Refresh a payment order status
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  response.PaymentOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /orders/{id}/status [get]
func (h *PaymentOrderHandler) RefreshStatus(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[order][handler] refresh start id=%s", id)

	o, err := h.usecase.RefreshStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] refresh failed id=%s err=%v", id, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] refresh success id=%s status=%s", o.ID, o.Status)

	c.JSON(http.StatusOK, response.FromPaymentOrder(o))
}

// RequestRefund asks PesaPal to refund a completed order.
//
// @Summary  Request a refund
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Order id"
// @Param    refund  body      request.RefundRequest  true  "Refund"
// @Success  200     {object}  response.RefundResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  409     {object}  pkg.HTTPError
// @Router   /orders/{id}/refund [post]
func (h *PaymentOrderHandler) RequestRefund(c *gin.Context) {
	id := c.Param("id")
	var req request.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid refund payload id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] refund start id=%s amount=%.2f", id, req.Amount)

	o, outcome, err := h.usecase.RequestRefund(c.Request.Context(), id, req.ToSubmission())
	if err != nil {
		log.Printf("[order][handler] refund failed id=%s err=%v", id, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] refund success id=%s status=%s", o.ID, outcome.Status)

	c.JSON(http.StatusOK, response.FromRefund(o, outcome))
}

func mapPaymentOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentOrderID), errors.Is(err, usecase.ErrInvalidOrderAmount),
		errors.Is(err, usecase.ErrInvalidOrderDescription), errors.Is(err, usecase.ErrInvalidRefundRequest),
		errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNotificationURL), errors.Is(err, usecase.ErrInvalidNotificationType):
		return pkg.NewDomainErrorSimple("INVALID_IPN_ENDPOINT", "Invalid IPN url or notification type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_NOT_FOUND", "Payment order not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrPaymentOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_ALREADY_EXISTS", "Payment order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentOrderNotRefundable):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_NOT_REFUNDABLE", "Payment order is not refundable", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundAlreadyRequested):
		return pkg.NewDomainErrorSimple("REFUND_ALREADY_REQUESTED", "Refund already requested", http.StatusConflict)
	case errors.Is(err, interfaces.ErrNoNotificationEndpoint):
		return pkg.NewDomainErrorSimple("IPN_NOT_REGISTERED", "No IPN endpoint registered with the payment provider", http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayRejected):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotReady):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
