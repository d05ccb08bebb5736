package public

import (
	"errors"

	"github.com/platansad/storefront/internal/checkout"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/http/response"
	"github.com/platansad/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// AddressQueryRequest feeds the debounced city search.
type AddressQueryRequest struct {
	Query string `json:"query"`
}

// SelectCityRequest picks a city from the results.
type SelectCityRequest struct {
	City models.City `json:"city" binding:"required"`
}

// SelectWarehouseRequest picks a branch of the selected city.
type SelectWarehouseRequest struct {
	Warehouse models.Warehouse `json:"warehouse" binding:"required"`
}

// SubmitOrderRequest is the checkout form submission.
type SubmitOrderRequest struct {
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerEmail  string `json:"customerEmail"`
	DeliveryMethod string `json:"deliveryMethod"`
	PaymentMethod  string `json:"paymentMethod"`
	Notes          string `json:"notes"`
}

// SetAddressQuery records a keystroke; the lookup fires after the debounce
// window. The snapshot returned here reflects the pre-lookup state.
func (h *Handler) SetAddressQuery(c *gin.Context) {
	var req AddressQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	h.Resolver.SetQuery(req.Query)
	response.Success(c, h.Resolver.Snapshot())
}

// GetAddressState returns the resolver snapshot for polling UIs.
func (h *Handler) GetAddressState(c *gin.Context) {
	response.Success(c, h.Resolver.Snapshot())
}

// SelectCity stores the city and loads its warehouses.
func (h *Handler) SelectCity(c *gin.Context) {
	var req SelectCityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.City.Ref == "" {
		response.BadRequest(c, "invalid city")
		return
	}
	h.Resolver.SelectCity(c.Request.Context(), req.City)
	response.Success(c, h.Resolver.Snapshot())
}

// SelectWarehouse stores the branch and composes the delivery address.
func (h *Handler) SelectWarehouse(c *gin.Context) {
	var req SelectWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Warehouse.Ref == "" {
		response.BadRequest(c, "invalid warehouse")
		return
	}
	if !h.Resolver.SelectWarehouse(req.Warehouse) {
		response.BadRequest(c, "warehouse does not belong to the selected city")
		return
	}
	response.Success(c, h.Resolver.Snapshot())
}

// FilterWarehouses narrows the fetched branch list locally.
func (h *Handler) FilterWarehouses(c *gin.Context) {
	response.Success(c, gin.H{
		"warehouses": h.Resolver.FilterWarehouses(c.Query("q")),
	})
}

// SubmitOrder validates the form and places the order from the current cart.
func (h *Handler) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}

	form := checkout.NewForm()
	form.CustomerName = req.CustomerName
	form.CustomerPhone = req.CustomerPhone
	form.CustomerEmail = req.CustomerEmail
	form.Notes = req.Notes
	if req.PaymentMethod != "" {
		form.PaymentMethod = req.PaymentMethod
	}
	if req.DeliveryMethod != "" {
		form.SetDeliveryMethod(req.DeliveryMethod, h.Config.Checkout.PickupAddress)
	}
	if form.DeliveryMethod == constants.DeliveryMethodNovaPoshta {
		form.ApplyResolver(h.Resolver.SelectedCity(), h.Resolver.SelectedWarehouse(), h.Resolver.DeliveryAddress())
	}

	result, err := h.Submitter.Submit(c.Request.Context(), form)
	switch {
	case errors.Is(err, checkout.ErrFormInvalid):
		response.ErrorWithData(c, response.CodeBadRequest, "validation failed", gin.H{"errors": result.Errors})
	case errors.Is(err, checkout.ErrCartEmpty):
		response.BadRequest(c, "cart is empty")
	case err != nil:
		response.UpstreamError(c, "order submission failed")
	default:
		h.Resolver.Reset()
		response.Success(c, result)
	}
}
