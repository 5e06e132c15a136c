package handler

import (
	"net/http"

	"stillform-backend/internal/domains/order/model"
	"stillform-backend/internal/domains/order/service"
	"stillform-backend/internal/shared/middleware"
	"stillform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// =====================================================
// ORDER HANDLER
// =====================================================
type OrderHandler struct {
	orderService service.ServiceInterface
}

func NewOrderHandler(orderService service.ServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.CreateOrder)       // POST /api/orders
		orders.GET("/:id", h.GetOrderDetail) // GET /api/orders/:id
	}

	router.GET("/me/orders", h.ListMyOrders)           // GET /api/me/orders
	router.GET("/creator/orders", h.ListCreatorOrders) // GET /api/creator/orders
}

// CreateOrder - POST /orders
// buyerAddress defaults to the caller's wallet
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation Error", map[string]string{
			"_": err.Error(),
		})
		return
	}

	if req.BuyerAddress == "" {
		req.BuyerAddress = middleware.WalletAddress(c)
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// GetOrderDetail - GET /orders/:id
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	detail, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, detail)
}

// ListMyOrders - GET /me/orders
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.orderService.ListForBuyer(c.Request.Context(), middleware.WalletAddress(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, orders)
}

// ListCreatorOrders - GET /creator/orders
func (h *OrderHandler) ListCreatorOrders(c *gin.Context) {
	orders, err := h.orderService.ListForCreator(c.Request.Context(), middleware.WalletAddress(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, orders)
}
