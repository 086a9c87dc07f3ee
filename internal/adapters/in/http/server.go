// Package http exposes the shipment API over echo. The server binds request
// bodies into hand-written DTOs, delegates to the application command and
// query handlers, and maps every typed error to a status code that identifies
// which stage failed.
package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/adapters/out/oca"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler        commands.CreateShipmentCommandHandler
	createCarrierShipmentHandler commands.CreateCarrierShipmentCommandHandler
	transitionShipmentHandler    commands.TransitionShipmentCommandHandler
	deleteShipmentHandler        commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentQueryHandler
	trackShipmentHandler queries.TrackShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	createCarrierShipmentHandler commands.CreateCarrierShipmentCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:        createShipmentHandler,
		createCarrierShipmentHandler: createCarrierShipmentHandler,
		transitionShipmentHandler:    transitionShipmentHandler,
		deleteShipmentHandler:        deleteShipmentHandler,
		getShipmentHandler:           getShipmentHandler,
		trackShipmentHandler:         trackShipmentHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.POST("/carrier-shipments", s.CreateCarrierShipment)
	api.PATCH("/shipments/:id/status", s.TransitionShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.GET("/shipments/:id", s.GetShipment)
	api.GET("/tracking", s.TrackShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := buildCreateCommand(shipmentID, req)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}
	created, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ID:         shipmentID.String(),
		TrackingID: created.TrackingID,
	})
}

// CreateCarrierShipment handles POST /api/v1/carrier-shipments - registers a
// shipment with the external carrier and persists it under the
// carrier-assigned tracking number.
func (s *Server) CreateCarrierShipment(ctx echo.Context) error {
	var req CreateCarrierShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	creation, err := buildCreateCommand(shipmentID, req.CreateShipmentRequest)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	cmd, err := commands.NewCreateCarrierShipmentCommand(
		creation, req.ConfirmRetrieval, req.CompanyInitiated, req.RemitNumber)
	if err != nil {
		return badRequest(ctx, "Invalid carrier shipment data: "+err.Error())
	}

	order, err := s.createCarrierShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCarrierShipmentResponse{
		ID:             shipmentID.String(),
		TrackingNumber: order.TrackingNumber,
	})
}

// TransitionShipment handles PATCH /api/v1/shipments/:id/status.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req TransitionShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewTransitionShipmentCommand(shipmentID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromQuery(resp))
}

// TrackShipment handles GET /api/v1/tracking?tracking_id=X.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.QueryParam("tracking_id"))
	if err != nil {
		return badRequest(ctx, "Missing tracking_id")
	}

	resp, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingID:  resp.TrackingID,
		Status:      resp.Status,
		StatusDate:  resp.StatusDate,
		TrackingURL: resp.TrackingURL,
		Timeline:    logItemsFromQuery(resp.Timeline),
	})
}

// buildCreateCommand converts the request body into domain value objects and
// the guarded creation command.
func buildCreateCommand(
	shipmentID kernel.UUID,
	req CreateShipmentRequest,
) (commands.CreateShipmentCommand, error) {
	sender, err := kernel.NewParty(req.Sender.Name, req.Sender.NationalID,
		req.Sender.Phone, req.Sender.Email)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	receiver, err := kernel.NewParty(req.Receiver.Name, req.Receiver.NationalID,
		req.Receiver.Phone, req.Receiver.Email)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	origin, err := addressFromDTO(req.Origin)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	destination, err := addressFromDTO(req.Destination)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	packages := make([]commands.PackageSpec, 0, len(req.Packages))
	for _, pkg := range req.Packages {
		spec := commands.PackageSpec{
			Weight: pkg.Weight,
			Type:   shipment.PackageType(pkg.Type),
		}
		if pkg.Height != nil && pkg.Width != nil && pkg.Length != nil {
			spec.Dimensions = &shipment.Dimensions{
				Height: *pkg.Height,
				Width:  *pkg.Width,
				Length: *pkg.Length,
			}
		}
		packages = append(packages, spec)
	}

	return commands.NewCreateShipmentCommand(
		shipmentID, sender, receiver, origin, destination, packages)
}

func addressFromDTO(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.Number, dto.Floor, dto.Apartment,
		dto.City, dto.State, dto.ZipCode)
}

func shipmentResponseFromQuery(resp queries.GetShipmentQueryResponse) ShipmentResponse {
	packages := make([]PackageItem, 0, len(resp.Packages))
	for _, pkg := range resp.Packages {
		packages = append(packages, PackageItem{
			ID:     pkg.ID.String(),
			Weight: pkg.Weight,
			Type:   pkg.Type,
		})
	}

	return ShipmentResponse{
		ID:           resp.ID.String(),
		TrackingID:   resp.TrackingID,
		Status:       resp.Status,
		StatusDate:   resp.StatusDate,
		CreatedAt:    resp.CreatedAt,
		Payment:      resp.Payment,
		SenderName:   resp.SenderName,
		ReceiverName: resp.ReceiverName,
		OriginCity:   resp.OriginCity,
		DestCity:     resp.DestCity,
		Version:      resp.Version,
		Packages:     packages,
		Logs:         logItemsFromQuery(resp.Logs),
	}
}

func logItemsFromQuery(entries []queries.LogResponse) []LogItem {
	items := make([]LogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, LogItem{
			Action: entry.Action,
			Status: entry.Status,
			From:   entry.From,
			To:     entry.To,
			Date:   entry.Date,
		})
	}
	return items
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps typed application errors to status codes. The message keeps
// the stage-identifying error text so callers can tell a carrier fault from a
// local one.
func writeError(ctx echo.Context, err error) error {
	var (
		notFoundErr  *errs.ObjectNotFoundError
		versionErr   *errs.VersionIsInvalidError
		transportErr *oca.TransportError
		vendorErr    *oca.VendorError
		parseErr     *oca.ParseError
		requiredErr  *errs.ValueIsRequiredError
		invalidErr   *errs.ValueIsInvalidError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return respondError(ctx, http.StatusNotFound, err)
	case errors.Is(err, shipment.ErrInvalidTransition):
		return respondError(ctx, http.StatusConflict, err)
	case errors.As(err, &versionErr):
		return respondError(ctx, http.StatusConflict, err)
	case errors.As(err, &transportErr), errors.As(err, &vendorErr), errors.As(err, &parseErr):
		return respondError(ctx, http.StatusBadGateway, err)
	case errors.As(err, &requiredErr), errors.As(err, &invalidErr):
		return respondError(ctx, http.StatusBadRequest, err)
	default:
		return respondError(ctx, http.StatusInternalServerError, err)
	}
}

func respondError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
