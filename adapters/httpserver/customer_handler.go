package httpserver

import (
	"errors"

	"github.com/SeaCloudHub/customers/adapters/httpserver/model"
	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/SeaCloudHub/customers/pkg/apperror"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary Create customer
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 400 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	var address *customer.Address
	if req.Address != nil {
		addr := req.Address.ToDomain()
		address = &addr
	}

	cust, err := s.CustomerService.Create(ctx, req.ID, req.Name, address)
	if err != nil {
		return s.customerError(c, err)
	}

	return s.created(c, cust.Snapshot())
}

// ListCustomers godoc
// @Summary List customers
// @Tags customer
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=model.ListCustomersResponse}
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.CustomerService.List(c.Request().Context())
	if err != nil {
		return s.customerError(c, err)
	}

	resp := model.ListCustomersResponse{Customers: make([]customer.Snapshot, 0, len(customers))}
	for _, cust := range customers {
		resp.Customers = append(resp.Customers, cust.Snapshot())
	}

	return s.success(c, resp)
}

// GetCustomer godoc
// @Summary Get customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	cust, err := s.CustomerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

// CustomerSummary godoc
// @Summary Customer summary
// @Tags customer
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=customer.Summary}
// @Router /customers/summary [get]
func (s *Server) CustomerSummary(c echo.Context) error {
	summary, err := s.CustomerService.Summary(c.Request().Context())
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, summary)
}

// RenameCustomer godoc
// @Summary Rename customer
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.RenameCustomerRequest true "Rename request"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/name [put]
func (s *Server) RenameCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.RenameCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerService.Rename(ctx, req.ID, req.Name)
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

// ChangeCustomerAddress godoc
// @Summary Change customer address
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.AddressRequest true "New address"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerService.ChangeAddress(ctx, req.ID, req.AddressRequest.ToDomain())
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

// ActivateCustomer godoc
// @Summary Activate customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /customers/{id}/activate [post]
func (s *Server) ActivateCustomer(c echo.Context) error {
	cust, err := s.CustomerService.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

// DeactivateCustomer godoc
// @Summary Deactivate customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/deactivate [post]
func (s *Server) DeactivateCustomer(c echo.Context) error {
	cust, err := s.CustomerService.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

// AddRewardPoints godoc
// @Summary Add reward points
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.AddRewardPointsRequest true "Points to add"
// @Success 200 {object} model.SuccessResponse{data=customer.Snapshot}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/reward-points [post]
func (s *Server) AddRewardPoints(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.AddRewardPointsRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerService.AddRewardPoints(ctx, req.ID, req.Points)
	if err != nil {
		return s.customerError(c, err)
	}

	return s.success(c, cust.Snapshot())
}

func (s *Server) customerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customer.ErrValidation):
		return s.error(c, apperror.ErrInvalidParam(err))
	case errors.Is(err, customer.ErrCustomerNotFound):
		return s.error(c, apperror.ErrEntityNotFound(err))
	case errors.Is(err, customer.ErrInvariantViolation), errors.Is(err, customer.ErrCustomerAlreadyExists):
		return s.error(c, apperror.ErrConflict(err))
	default:
		return s.error(c, apperror.ErrInternalServer(err))
	}
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/summary", s.CustomerSummary)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/name", s.RenameCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
	router.POST("/:id/activate", s.ActivateCustomer)
	router.POST("/:id/deactivate", s.DeactivateCustomer)
	router.POST("/:id/reward-points", s.AddRewardPoints)
}
