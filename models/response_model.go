package models

// Execution methods reported in a dispatch response
const (
	MethodOrchestrator = "orchestrator"
	MethodFallback     = "fallback"
)

// Response is the structured result of a dispatched query
type Response struct {
	Success       bool    `json:"success"`
	Response      string  `json:"response,omitempty"`
	Error         string  `json:"error,omitempty"`
	ErrorCode     string  `json:"error_code,omitempty"`
	Method        string  `json:"method,omitempty"`
	ExecutionTime float64 `json:"execution_time"` // seconds
}
