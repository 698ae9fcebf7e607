package models

import (
	"sort"
	"time"
)

// IntentScores maps an intent category name to a confidence in [0,1].
// Categories that scored zero are omitted entirely.
type IntentScores map[string]float64

// Sorted returns the category names ordered by descending confidence.
// Ties break alphabetically so output is stable.
func (s IntentScores) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s[names[i]] == s[names[j]] {
			return names[i] < names[j]
		}
		return s[names[i]] > s[names[j]]
	})
	return names
}

// Top returns the highest scoring category and its confidence.
// Falls back to the generic intent with 0.5 confidence when empty.
func (s IntentScores) Top() (string, float64) {
	if len(s) == 0 {
		return GeneralIntent, 0.5
	}
	best := s.Sorted()[0]
	return best, s[best]
}

// GeneralIntent is the catch-all intent when no category qualifies
const GeneralIntent = "general"

// ScoredTool is one entry of the ranked shortlist produced by analysis
type ScoredTool struct {
	Name     string       `json:"name"`
	Metadata ToolMetadata `json:"metadata"`
	Score    float64      `json:"score"`
}

// QueryAnalysis is the result of analyzing a single query
type QueryAnalysis struct {
	Query         string       `json:"query"`
	Intents       IntentScores `json:"intents"`
	MatchingTools []ScoredTool `json:"matching_tools"` // sorted by score desc, capped to top 5
	PrimaryIntent string       `json:"primary_intent"`
	Confidence    float64      `json:"confidence"`
}

// PlannedTool is one step of an execution plan
type PlannedTool struct {
	Name     string       `json:"name"`
	Metadata ToolMetadata `json:"metadata"`
}

// ExecutionPlan is the ordered, dependency-resolved tool sequence for one request
type ExecutionPlan struct {
	Tools                 []PlannedTool `json:"tools"`
	EstimatedTime         float64       `json:"estimated_time"` // seconds, sum over planned tools
	RequiresPrerequisites bool          `json:"requires_prerequisites"`
	HasConflicts          bool          `json:"has_conflicts"`
}

// ExecutionOrder returns the planned tool names in run order
func (p *ExecutionPlan) ExecutionOrder() []string {
	order := make([]string, len(p.Tools))
	for i, t := range p.Tools {
		order[i] = t.Name
	}
	return order
}

// ExecutionResult captures the outcome of running a plan
type ExecutionResult struct {
	Success       bool              `json:"success"`
	ToolResults   map[string]string `json:"tool_results"`
	Errors        []string          `json:"errors,omitempty"`
	ExecutionTime time.Duration     `json:"execution_time"`
}
