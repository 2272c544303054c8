package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"StockDashboard/internal/model"
	"StockDashboard/internal/render"
)

// Handler defines HTTP route registration interface.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}

// DashboardService is what the stock routes need from the collector.
type DashboardService interface {
	Dashboard(ctx context.Context, symbol string, period model.Period) (*model.Dashboard, error)
	Series(ctx context.Context, symbol string, period model.Period) (*model.PriceSeries, error)
	Refresh(ctx context.Context) error
}

// StockHandler serves the dashboard API.
type StockHandler struct {
	svc           DashboardService
	watchlist     []string
	defaultPeriod model.Period
	version       string
	started       time.Time
}

// NewStockHandler creates a StockHandler. watchlist is the list offered by GET /api/stocks.
func NewStockHandler(svc DashboardService, watchlist []string, defaultPeriod model.Period, version string) *StockHandler {
	if defaultPeriod == "" {
		defaultPeriod = model.Period30d
	}
	return &StockHandler{
		svc:           svc,
		watchlist:     watchlist,
		defaultPeriod: defaultPeriod,
		version:       version,
		started:       time.Now(),
	}
}

func (h *StockHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/stocks", h.List)
	g.GET("/stocks/:symbol", h.Dashboard)
	g.GET("/stocks/:symbol/summary", h.Summary)
	g.GET("/stocks/:symbol/csv", h.CSV)
	g.POST("/refresh", h.Refresh)
}

func (h *StockHandler) Health(c echo.Context) error {
	return SuccessResponse(c, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.started).Truncate(time.Second).String(),
	})
}

func (h *StockHandler) List(c echo.Context) error {
	periods := make([]string, len(model.Periods))
	for i, p := range model.Periods {
		periods[i] = string(p)
	}
	return SuccessResponse(c, StockListResponse{
		Symbols:       h.watchlist,
		Periods:       periods,
		DefaultPeriod: string(h.defaultPeriod),
	})
}

func (h *StockHandler) Dashboard(c echo.Context) error {
	req := &StockRequest{}
	if verr := h.readStockRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}
	d, err := h.svc.Dashboard(c.Request().Context(), req.Symbol, model.Period(req.Period))
	if err != nil {
		return AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	return SuccessResponse(c, d)
}

func (h *StockHandler) Summary(c echo.Context) error {
	req := &StockRequest{}
	if verr := h.readStockRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}
	d, err := h.svc.Dashboard(c.Request().Context(), req.Symbol, model.Period(req.Period))
	if err != nil {
		return AppErrorResponse(c, err)
	}
	return c.String(http.StatusOK, render.Summary(d.Symbol, d.Snapshot))
}

func (h *StockHandler) CSV(c echo.Context) error {
	req := &StockRequest{}
	if verr := h.readStockRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}
	series, err := h.svc.Series(c.Request().Context(), req.Symbol, model.Period(req.Period))
	if err != nil {
		return AppErrorResponse(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", render.CSVFilename(series.Symbol)))
	res.WriteHeader(http.StatusOK)
	return render.WriteCSV(res, series)
}

func (h *StockHandler) Refresh(c echo.Context) error {
	if err := h.svc.Refresh(c.Request().Context()); err != nil {
		return AppErrorResponse(c, err)
	}
	return SuccessResponse(c, map[string]string{"result": "cache cleared"})
}

// readStockRequest binds a StockRequest, falling back to the configured default period.
func (h *StockHandler) readStockRequest(c echo.Context, req *StockRequest) interface{} {
	if c.QueryParam("period") == "" {
		req.Period = string(h.defaultPeriod)
	}
	return bindStockRequest(c, req)
}
