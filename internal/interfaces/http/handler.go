package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmanzanog/stock-sim/internal/application"
	"github.com/jmanzanog/stock-sim/internal/domain"
)

// TradingService defines the interface for trading operations
type TradingService interface {
	ListStocks(ctx context.Context) []application.StockListing
	GetPrice(ctx context.Context, ticker string) (*application.PriceQuote, error)
	Buy(ctx context.Context, ticker string, quantity int64) (*domain.PurchaseReceipt, error)
}

type Handler struct {
	tradingService TradingService
}

func NewHandler(tradingService TradingService) *Handler {
	return &Handler{
		tradingService: tradingService,
	}
}

type BuyRequest struct {
	Ticker string `json:"ticker" binding:"required"`
	// Quantity deliberately has no "required" binding: zero must reach the
	// service so it is rejected as an invalid quantity, not a missing field.
	Quantity int64 `json:"quantity"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps trading-rule violations to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTickerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientShares):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) ListStocks(c *gin.Context) {
	listings := h.tradingService.ListStocks(c.Request.Context())
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) GetPrice(c *gin.Context) {
	ticker := c.Param("ticker")

	quote, err := h.tradingService.GetPrice(c.Request.Context(), ticker)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Price query rejected", "ticker", ticker, "error", err)
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *Handler) BuyShares(c *gin.Context) {
	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.ErrorContext(c.Request.Context(), "Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	receipt, err := h.tradingService.Buy(c.Request.Context(), req.Ticker, req.Quantity)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Buy rejected", "ticker", req.Ticker, "quantity", req.Quantity, "error", err)
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
