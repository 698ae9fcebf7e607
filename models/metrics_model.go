package models

// MetricsSnapshot is a read-only copy of the dispatcher's running counters
type MetricsSnapshot struct {
	TotalQueries        int64   `json:"total_queries"`
	SuccessfulQueries   int64   `json:"successful_queries"`
	OrchestratorQueries int64   `json:"orchestrator_queries"`
	FallbackQueries     int64   `json:"fallback_queries"`
	ErrorCount          int64   `json:"error_count"`
	LastError           string  `json:"last_error,omitempty"`
	AverageResponseTime float64 `json:"average_response_time"` // seconds
	SuccessRate         float64 `json:"success_rate"`          // percent
}
