// Package orchestrator turns a natural-language query into a scored tool
// shortlist, a conflict and category filtered selection, a dependency-resolved
// execution plan and an execution result. The orchestrator depends only on the
// tool registry and the intent classifier; everything it runs goes through the
// Tool contract.
package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/jarvis-assistant/internal/activity"
	"github.com/yourusername/jarvis-assistant/internal/intent"
	"github.com/yourusername/jarvis-assistant/internal/tools"
	"github.com/yourusername/jarvis-assistant/models"
)

const (
	// maxShortlist caps the ranked tool list kept after analysis
	maxShortlist = 5
	// maxSelected caps how many tools run for one request
	maxSelected = 3
	// noMatchResponse is returned when analysis finds no qualifying tool
	noMatchResponse = "I'm not sure how to help with that. Could you be more specific?"
	// noSelectionResponse is returned when selection filters everything out
	noSelectionResponse = "I couldn't find appropriate tools for your request."
)

// UsageRecorder receives per-tool invocation records. Implementations must not
// block; recording failures are the recorder's problem, never the caller's.
type UsageRecorder interface {
	RecordToolUse(tool, query string, success bool, duration time.Duration)
}

// MultiRecorder fans one invocation record out to several recorders
type MultiRecorder []UsageRecorder

func (m MultiRecorder) RecordToolUse(tool, query string, success bool, duration time.Duration) {
	for _, r := range m {
		r.RecordToolUse(tool, query, success, duration)
	}
}

// Orchestrator selects and executes tools for a query
type Orchestrator struct {
	registry   *tools.Registry
	classifier intent.Classifier
	activity   activity.Sink
	usage      UsageRecorder
	logger     *zap.Logger
}

// New creates an orchestrator over the given registry and classifier
func New(registry *tools.Registry, classifier intent.Classifier, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		registry:   registry,
		classifier: classifier,
		activity:   activity.NopSink{},
		logger:     logger,
	}
}

// SetActivitySink routes state updates to the given sink
func (o *Orchestrator) SetActivitySink(sink activity.Sink) {
	if sink != nil {
		o.activity = sink
	}
}

// SetUsageRecorder enables per-tool usage recording
func (o *Orchestrator) SetUsageRecorder(recorder UsageRecorder) {
	o.usage = recorder
}

// Analyze classifies the query and ranks every registered tool against it.
// A tool qualifies when its clamped score meets its own MinConfidence; the
// shortlist keeps the top five by descending score.
func (o *Orchestrator) Analyze(ctx context.Context, query string) (*models.QueryAnalysis, error) {
	o.activity.SetState(activity.StateThinking, "Analyzing your request...")

	intents, err := o.classifier.Classify(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("intent classification failed: %w", err)
	}

	normalized := intent.Normalize(query)
	var matching []models.ScoredTool

	for _, meta := range o.registry.All() {
		score := o.scoreTool(&meta, normalized, intents)
		if score >= meta.MinConfidence {
			matching = append(matching, models.ScoredTool{Name: meta.Name, Metadata: meta, Score: score})
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].Score == matching[j].Score {
			return matching[i].Name < matching[j].Name
		}
		return matching[i].Score > matching[j].Score
	})
	if len(matching) > maxShortlist {
		matching = matching[:maxShortlist]
	}

	primary, confidence := intents.Top()

	o.activity.Log(fmt.Sprintf("Found %d matching tools for: %s", len(matching), truncate(query, 50)))

	return &models.QueryAnalysis{
		Query:         query,
		Intents:       intents,
		MatchingTools: matching,
		PrimaryIntent: primary,
		Confidence:    confidence,
	}, nil
}

// scoreTool combines keyword hits with the category's intent score, weights by
// priority and clamps the final score to [0,1] before thresholding.
func (o *Orchestrator) scoreTool(meta *models.ToolMetadata, normalized string, intents models.IntentScores) float64 {
	hits := 0
	for _, keyword := range meta.Keywords {
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			hits++
		}
	}

	var hitRatio float64
	if len(meta.Keywords) > 0 {
		hitRatio = float64(hits) / float64(len(meta.Keywords))
	}

	score := 0.3*hitRatio + 0.7*intents[string(meta.Category)]
	score *= float64(meta.Priority) / 10.0

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Select walks the shortlist in score order and keeps at most three tools,
// skipping anything that conflicts with an earlier pick and capping non-utility
// categories to one tool each.
func (o *Orchestrator) Select(analysis *models.QueryAnalysis) []models.ScoredTool {
	var selected []models.ScoredTool
	usedCategories := make(map[models.ToolCategory]bool)

	for _, candidate := range analysis.MatchingTools {
		if conflictsWithSelection(&candidate, selected) {
			o.logger.Debug("Skipping conflicting tool", zap.String("tool", candidate.Name))
			continue
		}

		if candidate.Metadata.Category != models.CategoryUtilities {
			if usedCategories[candidate.Metadata.Category] {
				continue
			}
			usedCategories[candidate.Metadata.Category] = true
		}

		selected = append(selected, candidate)
		if len(selected) >= maxSelected {
			break
		}
	}

	return selected
}

func conflictsWithSelection(candidate *models.ScoredTool, selected []models.ScoredTool) bool {
	for _, chosen := range selected {
		if candidate.Metadata.ConflictsWith(chosen.Name) || chosen.Metadata.ConflictsWith(candidate.Name) {
			return true
		}
	}
	return false
}

// Plan resolves prerequisites into an ordered execution plan. Missing
// prerequisites are looked up in the registry and placed ahead of every
// selected tool; a shared prerequisite is injected only once. Selection is
// already conflict-free, so HasConflicts flags conflicts introduced by
// injected prerequisites.
func (o *Orchestrator) Plan(selection []models.ScoredTool) *models.ExecutionPlan {
	plan := &models.ExecutionPlan{}

	selectedNames := make(map[string]bool, len(selection))
	for _, tool := range selection {
		selectedNames[tool.Name] = true
	}

	var prerequisites []models.PlannedTool
	injected := make(map[string]bool)

	for _, tool := range selection {
		for _, prereq := range tool.Metadata.Prerequisites {
			if selectedNames[prereq] || injected[prereq] {
				continue
			}
			meta, ok := o.registry.Get(prereq)
			if !ok {
				o.logger.Warn("Prerequisite not registered, skipping",
					zap.String("tool", tool.Name), zap.String("prerequisite", prereq))
				continue
			}
			prerequisites = append(prerequisites, models.PlannedTool{Name: prereq, Metadata: meta})
			injected[prereq] = true
			plan.RequiresPrerequisites = true
		}
	}

	plan.Tools = append(plan.Tools, prerequisites...)
	for _, tool := range selection {
		plan.Tools = append(plan.Tools, models.PlannedTool{Name: tool.Name, Metadata: tool.Metadata})
	}

	for _, tool := range plan.Tools {
		plan.EstimatedTime += tool.Metadata.EstimatedTime
	}

	for i := range plan.Tools {
		for j := i + 1; j < len(plan.Tools); j++ {
			if plan.Tools[i].Metadata.ConflictsWith(plan.Tools[j].Name) ||
				plan.Tools[j].Metadata.ConflictsWith(plan.Tools[i].Name) {
				plan.HasConflicts = true
			}
		}
	}

	return plan
}

// Execute runs the plan strictly sequentially, in plan order. Tools can touch
// shared external state, so there is no parallelism within one plan. A failing
// tool is recorded and the rest of the plan still runs.
func (o *Orchestrator) Execute(ctx context.Context, plan *models.ExecutionPlan, query string) *models.ExecutionResult {
	o.activity.SetState(activity.StateThinking, fmt.Sprintf("Executing %d tools...", len(plan.Tools)))

	result := &models.ExecutionResult{
		Success:     true,
		ToolResults: make(map[string]string),
	}
	start := time.Now()

	for _, planned := range plan.Tools {
		o.activity.Log(fmt.Sprintf("Executing: %s", planned.Name))

		toolStart := time.Now()
		output, err := o.invokeTool(ctx, planned.Name, query)
		elapsed := time.Since(toolStart)

		if o.usage != nil {
			o.usage.RecordToolUse(planned.Name, query, err == nil, elapsed)
		}

		if err != nil {
			errMsg := fmt.Sprintf("Error executing %s: %v", planned.Name, err)
			result.Errors = append(result.Errors, errMsg)
			result.Success = false
			o.logger.Error("Tool execution failed",
				zap.String("tool", planned.Name), zap.Error(err))
			o.activity.Log(fmt.Sprintf("%s failed: %s", planned.Name, truncate(err.Error(), 50)))
			continue
		}

		result.ToolResults[planned.Name] = output
	}

	result.ExecutionTime = time.Since(start)

	if result.Success {
		o.activity.SetState(activity.StateIdle, "Task completed successfully")
		o.activity.Log(fmt.Sprintf("Completed in %.1fs", result.ExecutionTime.Seconds()))
	} else {
		o.activity.SetState(activity.StateError, "Some tools failed to execute")
	}

	return result
}

// invokeTool runs one tool with panic containment. A panicking tool becomes an
// ordinary execution error instead of taking the request down.
func (o *Orchestrator) invokeTool(ctx context.Context, name, query string) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()

	impl, ok := o.registry.Implementation(name)
	if !ok {
		return "", fmt.Errorf("no implementation bound for tool %q", name)
	}
	return impl.Invoke(ctx, query)
}

// Process is the composed pipeline: analyze, select, plan, execute. It returns
// the non-empty tool outputs joined in execution order, or an explicit no-match
// response when nothing qualifies.
func (o *Orchestrator) Process(ctx context.Context, query string) (string, error) {
	analysis, err := o.Analyze(ctx, query)
	if err != nil {
		return "", err
	}

	if len(analysis.MatchingTools) == 0 {
		return noMatchResponse, nil
	}

	selection := o.Select(analysis)
	if len(selection) == 0 {
		return noSelectionResponse, nil
	}

	plan := o.Plan(selection)
	result := o.Execute(ctx, plan, query)

	if !result.Success {
		limit := len(result.Errors)
		if limit > 3 {
			limit = 3
		}
		return fmt.Sprintf("Some operations failed:\n%s", strings.Join(result.Errors[:limit], "\n")), nil
	}

	var outputs []string
	for _, name := range plan.ExecutionOrder() {
		if text := result.ToolResults[name]; text != "" {
			outputs = append(outputs, text)
		}
	}
	if len(outputs) == 0 {
		return "Task completed successfully!", nil
	}
	return strings.Join(outputs, "\n\n"), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
