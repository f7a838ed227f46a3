// internal/handlers/customer/customer_handler.go
package customer

import (
	"errors"
	"io"
	"net/http"

	"mockcrm-service/internal/domain/customer"
	xerrors "mockcrm-service/internal/pkg/errors"
	"mockcrm-service/internal/pkg/response"
	service "mockcrm-service/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers retrieves customers with the optional id and qty filters
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var filters customer.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result := h.customerService.List(c.Request.Context(), &filters)

	response.Success(c, http.StatusOK, "customers retrieved", result)
}

// GetCustomer retrieves a customer by ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.customerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "customer not found", err)
		return
	}

	response.Success(c, http.StatusOK, "customer retrieved", result)
}

// CreateCustomer creates a new customer from a partial payload. An empty
// body is a valid (all-defaults) payload; create never rejects field values.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customer.Payload
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.customerService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "failed to create customer", err)
		return
	}

	response.Success(c, http.StatusCreated, "customer created successfully", result)
}

// UpdateCustomer replaces the customer identified by the body payload's id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req customer.Payload
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			response.Error(c, http.StatusBadRequest, "failed to update customer", xerrors.ErrMissingInput)
			return
		}
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.customerService.Update(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "failed to update customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer updated successfully", result)
}

// DeleteCustomer removes the customer identified by the id query parameter
// and returns the deleted record's final materialized form
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	result, err := h.customerService.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		h.fail(c, "failed to delete customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer deleted successfully", result)
}

// fail maps service errors onto the two response classes: bad client input
// and not-found are client errors, everything else is a server error.
func (h *CustomerHandler) fail(c *gin.Context, message string, err error) {
	switch {
	case xerrors.Is(err, xerrors.ErrMissingInput):
		response.Error(c, http.StatusBadRequest, message, err)
	case xerrors.Is(err, xerrors.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
