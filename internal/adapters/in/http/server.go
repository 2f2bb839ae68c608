// Package http exposes the back-office workflows over a REST API.
// Handlers translate JSON requests into commands and queries, dispatch them,
// and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/seller"
	"backoffice/internal/core/domain/model/withdrawal"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	validateOrderHandler           commands.ValidateOrderCommandHandler
	shipOrderHandler               commands.ShipOrderCommandHandler
	deliverOrderHandler            commands.DeliverOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	refundOrderHandler             commands.RefundOrderCommandHandler
	flagOrderHandler               commands.FlagOrderCommandHandler
	unfreezeSellerHandler          commands.UnfreezeSellerCommandHandler
	markSettlementPaidHandler      commands.MarkSettlementPaidCommandHandler
	createWithdrawalHandler        commands.CreateWithdrawalCommandHandler
	decideWithdrawalHandler        commands.DecideWithdrawalCommandHandler
	markWithdrawalProcessedHandler commands.MarkWithdrawalProcessedCommandHandler

	getSellerBalanceHandler      queries.GetSellerBalanceQueryHandler
	getPendingWithdrawalsHandler queries.GetPendingWithdrawalsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	validateOrderHandler commands.ValidateOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	flagOrderHandler commands.FlagOrderCommandHandler,
	unfreezeSellerHandler commands.UnfreezeSellerCommandHandler,
	markSettlementPaidHandler commands.MarkSettlementPaidCommandHandler,
	createWithdrawalHandler commands.CreateWithdrawalCommandHandler,
	decideWithdrawalHandler commands.DecideWithdrawalCommandHandler,
	markWithdrawalProcessedHandler commands.MarkWithdrawalProcessedCommandHandler,
	getSellerBalanceHandler queries.GetSellerBalanceQueryHandler,
	getPendingWithdrawalsHandler queries.GetPendingWithdrawalsQueryHandler,
) *Server {
	return &Server{
		validateOrderHandler:           validateOrderHandler,
		shipOrderHandler:               shipOrderHandler,
		deliverOrderHandler:            deliverOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		refundOrderHandler:             refundOrderHandler,
		flagOrderHandler:               flagOrderHandler,
		unfreezeSellerHandler:          unfreezeSellerHandler,
		markSettlementPaidHandler:      markSettlementPaidHandler,
		createWithdrawalHandler:        createWithdrawalHandler,
		decideWithdrawalHandler:        decideWithdrawalHandler,
		markWithdrawalProcessedHandler: markWithdrawalProcessedHandler,
		getSellerBalanceHandler:        getSellerBalanceHandler,
		getPendingWithdrawalsHandler:   getPendingWithdrawalsHandler,
	}
}

// RegisterRoutes attaches every back-office route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/validate", s.ValidateOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/refund", s.RefundOrder)
	api.POST("/orders/:id/flag", s.FlagOrder)

	api.POST("/sellers/:id/unfreeze", s.UnfreezeSeller)
	api.POST("/sellers/:id/settlement-paid", s.MarkSettlementPaid)
	api.POST("/sellers/:id/withdrawals", s.CreateWithdrawal)
	api.GET("/sellers/:id/balance", s.GetSellerBalance)

	api.POST("/withdrawals/:id/decision", s.DecideWithdrawal)
	api.POST("/withdrawals/:id/processed", s.MarkWithdrawalProcessed)
	api.GET("/withdrawals/pending", s.GetPendingWithdrawals)

	e.GET("/health", s.Health)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ValidateOrder handles POST /api/v1/orders/:id/validate.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Priority string `json:"priority"`
		Notes    string `json:"notes"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewValidateOrderCommand(orderID, body.Priority, body.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.validateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Carrier          string `json:"carrier"`
		TrackingNumber   string `json:"tracking_number"`
		DeliveryEstimate string `json:"delivery_estimate"`
		Notes            string `json:"notes"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(
		orderID, body.Carrier, body.TrackingNumber, body.DeliveryEstimate, body.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		RestockItems bool `json:"restock_items"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.RestockItems)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Kind           string `json:"kind"`
		Amount         string `json:"amount"`
		Reason         string `json:"reason"`
		RestockItems   bool   `json:"restock_items"`
		NotifyCustomer bool   `json:"notify_customer"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	// Full refunds derive the amount server-side; the field is required
	// only for partial refunds.
	amount := kernel.ZeroMoney()
	if body.Amount != "" {
		amount, err = kernel.NewMoneyFromString(body.Amount)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	cmd, err := commands.NewRefundOrderCommand(
		orderID, commands.RefundKind(body.Kind), amount,
		body.Reason, body.RestockItems, body.NotifyCustomer)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FlagOrder handles POST /api/v1/orders/:id/flag.
func (s *Server) FlagOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Severity    string `json:"severity"`
		Reason      string `json:"reason"`
		FreezeFunds bool   `json:"freeze_funds"`
		NotifyTeam  bool   `json:"notify_team"`
		Escalate    bool   `json:"escalate"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	severity, err := order.SeverityFromString(body.Severity)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewFlagOrderCommand(
		orderID, severity, body.Reason, body.FreezeFunds, body.NotifyTeam, body.Escalate)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.flagOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UnfreezeSeller handles POST /api/v1/sellers/:id/unfreeze.
func (s *Server) UnfreezeSeller(ctx echo.Context) error {
	sellerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUnfreezeSellerCommand(sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.unfreezeSellerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkSettlementPaid handles POST /api/v1/sellers/:id/settlement-paid.
func (s *Server) MarkSettlementPaid(ctx echo.Context) error {
	sellerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkSettlementPaidCommand(sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.markSettlementPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateWithdrawal handles POST /api/v1/sellers/:id/withdrawals.
func (s *Server) CreateWithdrawal(ctx echo.Context) error {
	sellerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Amount            string `json:"amount"`
		BankName          string `json:"bank_name"`
		BankAccountNumber string `json:"bank_account_number"`
		BankHolderName    string `json:"bank_holder_name"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	amount, err := kernel.NewMoneyFromString(body.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	bankInfo, err := withdrawal.NewBankInfo(
		body.BankName, body.BankAccountNumber, body.BankHolderName)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateWithdrawalCommand(requestID, sellerID, amount, bankInfo)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createWithdrawalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": requestID.String()})
}

// GetSellerBalance handles GET /api/v1/sellers/:id/balance.
func (s *Server) GetSellerBalance(ctx echo.Context) error {
	sellerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetSellerBalanceQuery(sellerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	balance, err := s.getSellerBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"seller_id":       balance.SellerID.String(),
		"gross_revenue":   balance.GrossRevenue.String(),
		"commission_owed": balance.CommissionOwed.String(),
		"net_settled":     balance.NetSettled.String(),
		"committed":       balance.Committed.String(),
		"available":       balance.Available.String(),
		"held":            balance.Held,
		"settlement_paid": balance.SettlementPaid,
	})
}

// DecideWithdrawal handles POST /api/v1/withdrawals/:id/decision.
func (s *Server) DecideWithdrawal(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body struct {
		Decision string `json:"decision"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDecideWithdrawalCommand(requestID, commands.Decision(body.Decision))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.decideWithdrawalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkWithdrawalProcessed handles POST /api/v1/withdrawals/:id/processed.
func (s *Server) MarkWithdrawalProcessed(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkWithdrawalProcessedCommand(requestID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.markWithdrawalProcessedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingWithdrawals handles GET /api/v1/withdrawals/pending.
// An optional created_before query parameter (RFC 3339) restricts the list.
func (s *Server) GetPendingWithdrawals(ctx echo.Context) error {
	var createdBefore *time.Time
	if raw := ctx.QueryParam("created_before"); raw != "" {
		cutoff, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		createdBefore = &cutoff
	}

	query := queries.NewGetPendingWithdrawalsQuery(createdBefore)

	requests, err := s.getPendingWithdrawalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]map[string]any, 0, len(requests))
	for _, request := range requests {
		response = append(response, map[string]any{
			"id":         request.ID.String(),
			"seller_id":  request.SellerID.String(),
			"amount":     request.Amount.String(),
			"bank_name":  request.BankName,
			"created_at": request.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps use case failures onto HTTP status codes. Unknown objects
// are 404, state machine violations and balance conflicts are 409, rejected
// values are 422 and anything else is a 500.
func domainError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, withdrawal.ErrInvalidTransition),
		errors.Is(err, seller.ErrAccountHeld),
		errors.Is(err, withdrawal.ErrInsufficientFunds):
		code = http.StatusConflict
	case errors.Is(err, order.ErrMissingTrackingInfo),
		errors.Is(err, order.ErrInvalidRefundAmount):
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
