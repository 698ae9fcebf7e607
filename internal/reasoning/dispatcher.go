// Package reasoning is the public entry point of the engine. A dispatch
// validates the query, tries the orchestrator under retry-with-backoff, and
// degrades to a TTL-cached general agent under a hard timeout when the
// orchestrator's answer is missing or too thin. Every call terminates in a
// structured Response; an escaping panic or error is a defect, not an outcome.
package reasoning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/yourusername/jarvis-assistant/internal/activity"
	"github.com/yourusername/jarvis-assistant/internal/llm"
	"github.com/yourusername/jarvis-assistant/internal/metrics"
	"github.com/yourusername/jarvis-assistant/internal/tools"
	"github.com/yourusername/jarvis-assistant/models"
)

// QueryProcessor is the orchestrator-side contract the dispatcher drives
type QueryProcessor interface {
	Process(ctx context.Context, query string) (string, error)
}

// Dispatcher routes queries through the orchestrator with an agent fallback
type Dispatcher struct {
	processor QueryProcessor
	registry  *tools.Registry
	factory   llm.Factory
	activity  activity.Sink
	collector *metrics.Collector
	metrics   *Metrics
	logger    *zap.Logger

	cfgMu sync.RWMutex
	cfg   Config

	// cached fallback agent; agentMu makes the check-then-rebuild single-flight
	agentMu        sync.Mutex
	cachedAgent    llm.Agent
	agentCreatedAt time.Time
}

// NewDispatcher creates a dispatcher with default configuration
func NewDispatcher(processor QueryProcessor, registry *tools.Registry, factory llm.Factory, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		processor: processor,
		registry:  registry,
		factory:   factory,
		activity:  activity.NopSink{},
		metrics:   NewMetrics(),
		logger:    logger,
		cfg:       DefaultConfig(),
	}
}

// SetActivitySink routes state updates to the given sink
func (d *Dispatcher) SetActivitySink(sink activity.Sink) {
	if sink != nil {
		d.activity = sink
	}
}

// SetCollector enables Prometheus reporting for dispatch outcomes
func (d *Dispatcher) SetCollector(collector *metrics.Collector) {
	d.collector = collector
}

// RegisterTool adds or replaces a tool in the registry
func (d *Dispatcher) RegisterTool(meta models.ToolMetadata, impl tools.Tool) {
	d.registry.Register(meta, impl)
	d.logger.Info("Registered tool", zap.String("tool", meta.Name))
}

// GetMetrics returns a read-only snapshot of the performance counters
func (d *Dispatcher) GetMetrics() models.MetricsSnapshot {
	return d.metrics.Snapshot()
}

// ResetMetrics zeroes the performance counters
func (d *Dispatcher) ResetMetrics() {
	d.metrics.Reset()
	d.logger.Info("Performance metrics reset")
}

// UpdateConfig applies a partial configuration update. Unknown parameter names
// are logged and ignored.
func (d *Dispatcher) UpdateConfig(updates map[string]interface{}) {
	d.cfgMu.Lock()
	defer d.cfgMu.Unlock()
	d.cfg.apply(updates, d.logger)
}

// InvalidateAgent drops the cached fallback agent; the next request rebuilds it
func (d *Dispatcher) InvalidateAgent() {
	d.agentMu.Lock()
	defer d.agentMu.Unlock()
	d.cachedAgent = nil
}

func (d *Dispatcher) configSnapshot() Config {
	d.cfgMu.RLock()
	defer d.cfgMu.RUnlock()
	return d.cfg
}

// Dispatch processes one query end to end and always returns a structured
// result. Many dispatches may run concurrently.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) models.Response {
	start := time.Now()

	response, method, dispatchErr := d.dispatch(ctx, query)
	elapsed := time.Since(start).Seconds()

	if dispatchErr != nil {
		d.metrics.UpdateError(fmt.Sprintf("%s: %s", dispatchErr.Code, dispatchErr.Error()), elapsed)
		if d.collector != nil {
			d.collector.ObserveError(dispatchErr.Code, elapsed)
		}
		d.logger.Error("Dispatch failed",
			zap.String("code", dispatchErr.Code),
			zap.Error(dispatchErr))
		d.activity.SetState(activity.StateError, dispatchErr.Message)

		return models.Response{
			Success:       false,
			Error:         dispatchErr.Error(),
			ErrorCode:     dispatchErr.Code,
			ExecutionTime: elapsed,
		}
	}

	d.metrics.UpdateSuccess(elapsed, method)
	if d.collector != nil {
		d.collector.ObserveSuccess(method, elapsed)
	}
	d.activity.SetState(activity.StateIdle, "")

	return models.Response{
		Success:       true,
		Response:      response,
		Method:        method,
		ExecutionTime: elapsed,
	}
}

// dispatch implements the state machine: Validating -> TryOrchestrator ->
// TryFallback, with Success and Failed terminal. Panics anywhere below become
// an UNEXPECTED_ERROR result.
func (d *Dispatcher) dispatch(ctx context.Context, query string) (response string, method string, dispatchErr *Error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic during dispatch", zap.Any("panic", r))
			response, method = "", ""
			dispatchErr = NewError(CodeUnexpectedError,
				"an unexpected error occurred while processing your request")
		}
	}()

	cfg := d.configSnapshot()

	if err := validateQuery(query, cfg); err != nil {
		return "", "", err
	}
	query = strings.TrimSpace(query)

	d.logger.Info("Processing query", zap.String("query", truncate(query, 100)))

	// Primary path: orchestrator under retry-with-backoff
	result, primaryErr := retryWithBackoff(ctx, d.logger, cfg.MaxRetries, cfg.RetryBaseDelay, func() (string, error) {
		return d.processor.Process(ctx, query)
	})
	if primaryErr == nil && len(strings.TrimSpace(result)) > cfg.SufficiencyThreshold {
		d.logger.Info("Orchestrator handled the query")
		return strings.TrimSpace(result), models.MethodOrchestrator, nil
	}

	if !cfg.EnableFallback {
		if primaryErr != nil {
			return "", "", WrapError(CodeOrchestratorFailed,
				"orchestrator failed and fallback is disabled", primaryErr)
		}
		return "", "", NewError(CodeNoMethodAvailable,
			"no available execution method could handle the query")
	}

	if primaryErr != nil {
		d.logger.Warn("Orchestrator failed, trying fallback", zap.Error(primaryErr))
	} else {
		d.logger.Debug("Orchestrator response insufficient, trying fallback")
	}

	// Fallback path: cached general agent under a hard timeout
	answer, fallbackErr := d.tryFallback(ctx, query, cfg)
	if fallbackErr != nil {
		return "", "", fallbackErr
	}
	return answer, models.MethodFallback, nil
}

// validateQuery enforces the query contract. Validation failures are terminal
// and never retried.
func validateQuery(query string, cfg Config) *Error {
	if query == "" || !utf8.ValidString(query) {
		return NewError(CodeInvalidQuery, "query must be a non-empty string")
	}
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < cfg.MinQueryLength {
		return NewError(CodeQueryTooShort,
			fmt.Sprintf("query too short (minimum %d characters)", cfg.MinQueryLength))
	}
	if len(trimmed) > cfg.MaxQueryLength {
		return NewError(CodeQueryTooLong,
			fmt.Sprintf("query too long (maximum %d characters)", cfg.MaxQueryLength))
	}
	return nil
}

// tryFallback obtains the cached agent and invokes it under the configured
// timeout. A timeout abandons the underlying call.
func (d *Dispatcher) tryFallback(ctx context.Context, query string, cfg Config) (string, *Error) {
	agent, err := d.getAgent(ctx, cfg.CacheTTL)
	if err != nil {
		return "", WrapError(CodeAgentCreationFailed, "failed to create fallback agent", err)
	}

	invokeCtx, cancel := context.WithTimeout(ctx, cfg.FallbackTimeout)
	defer cancel()

	type agentResult struct {
		text string
		err  error
	}
	resultCh := make(chan agentResult, 1)
	go func() {
		text, invokeErr := agent.Invoke(invokeCtx, query)
		resultCh <- agentResult{text: text, err: invokeErr}
	}()

	select {
	case <-invokeCtx.Done():
		if errors.Is(invokeCtx.Err(), context.DeadlineExceeded) {
			return "", NewError(CodeExecutionTimeout,
				fmt.Sprintf("query execution timed out after %s", cfg.FallbackTimeout))
		}
		return "", WrapError(CodeNoMethodAvailable, "dispatch canceled", invokeCtx.Err())
	case result := <-resultCh:
		if result.err != nil {
			return "", WrapError(CodeNoMethodAvailable, "fallback agent failed", result.err)
		}
		answer := strings.TrimSpace(result.text)
		if answer == "" {
			return "", NewError(CodeEmptyResponse, "fallback agent returned an empty response")
		}
		d.logger.Info("Fallback agent handled the query")
		return answer, nil
	}
}

// getAgent returns the cached fallback agent, rebuilding it when absent or
// past its TTL. The lock is held across the rebuild so concurrent expirations
// trigger exactly one construction.
func (d *Dispatcher) getAgent(ctx context.Context, ttl time.Duration) (llm.Agent, error) {
	d.agentMu.Lock()
	defer d.agentMu.Unlock()

	if d.cachedAgent != nil && time.Since(d.agentCreatedAt) < ttl {
		d.logger.Debug("Using cached fallback agent")
		return d.cachedAgent, nil
	}

	d.logger.Info("Building fallback agent")
	agent, err := d.factory(ctx)
	if err != nil {
		return nil, err
	}
	d.cachedAgent = agent
	d.agentCreatedAt = time.Now()
	return agent, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
