package server

// StockRequest addresses one symbol over a period.
type StockRequest struct {
	Symbol string `param:"symbol" validate:"required,max=12"`
	Period string `query:"period" default:"30d" validate:"oneof=30d 60d 90d all"`
}

// StockListResponse is returned by GET /api/stocks.
type StockListResponse struct {
	Symbols       []string `json:"symbols"`
	Periods       []string `json:"periods"`
	DefaultPeriod string   `json:"default_period"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
