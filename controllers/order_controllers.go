package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voiceorder/menu-api/services"
	"github.com/voiceorder/menu-api/utils"
)

// Ids are not required by binding: a missing or zero id is resolved by the
// catalog and reported as 404 like any other unknown id.
type OrderOptionReq struct {
	OptionID uint `json:"option_id"`
	Quantity *int `json:"quantity" binding:"omitempty,min=1,max=999"`
}

type OrderItemReq struct {
	MenuItemID uint             `json:"menu_item_id"`
	Quantity   *int             `json:"quantity" binding:"omitempty,min=1,max=999"`
	Options    []OrderOptionReq `json:"options" binding:"omitempty,dive"`
}

type CreateOrderReq struct {
	Items []OrderItemReq `json:"items" binding:"required,min=1,dive"`
}

// toCartLines fills in the default quantity of 1.
func (r CreateOrderReq) toCartLines() []services.CartLine {
	lines := make([]services.CartLine, 0, len(r.Items))
	for _, item := range r.Items {
		line := services.CartLine{
			MenuItemID: item.MenuItemID,
			Quantity:   quantityOrDefault(item.Quantity),
			Options:    make([]services.CartOption, 0, len(item.Options)),
		}
		for _, opt := range item.Options {
			line.Options = append(line.Options, services.CartOption{
				OptionID: opt.OptionID,
				Quantity: quantityOrDefault(opt.Quantity),
			})
		}
		lines = append(lines, line)
	}
	return lines
}

func quantityOrDefault(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> POST /orders. Totals are always computed server side.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body CreateOrderReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	summary, err := oc.Orders.PlaceOrder(c.Request.Context(), body.toCartLines())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, summary)
}

// GetOrderByID -> GET /orders/:order_id with items and options
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, order)
}
