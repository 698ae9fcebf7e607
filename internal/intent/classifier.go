// Package intent scores a query against the fixed set of intent categories.
// Lexical scoring is pure string matching - deterministic, offline and exactly
// reproducible in tests. The Classifier interface keeps the implementation
// swappable so an embedding-based classifier can replace it without touching
// orchestration.
package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/yourusername/jarvis-assistant/models"
)

// Classifier scores a query against the fixed set of intent categories
type Classifier interface {
	Classify(ctx context.Context, query string) (models.IntentScores, error)
}

// LexicalClassifier classifies intent with regex patterns over normalized text
type LexicalClassifier struct {
	patterns  map[string][]*regexp.Regexp
	canonical map[string]string
}

// NewLexicalClassifier creates a classifier with the built-in pattern set
func NewLexicalClassifier() *LexicalClassifier {
	lc := &LexicalClassifier{
		patterns:  make(map[string][]*regexp.Regexp),
		canonical: make(map[string]string),
	}
	lc.initPatterns()
	return lc
}

// hinglishMappings normalizes known mixed-language tokens to their English
// equivalent before pattern matching. Pure substring replacement.
var hinglishMappings = map[string]string{
	"खोलो":     "open",
	"बंद करो":  "close",
	"बनाओ":     "create",
	"लिखो":     "write",
	"भेजो":     "send",
	"ढूंढो":    "search",
	"खोजो":     "search",
	"चलाओ":     "play",
	"रुको":     "stop",
	"सिस्टम":   "system",
	"फ़ाइल":    "file",
	"फोल्डर":   "folder",
	"कोड":      "code",
	"प्रोग्राम": "program",
	"मौसम":     "weather",
	"जानकारी":  "information",
	"सिखाओ":    "teach",
	"समझाओ":    "explain",
}

// Normalize lowercases the query and applies the mixed-language substitution
// table. Replacement order does not matter: no replacement output overlaps
// another mapping's input.
func Normalize(query string) string {
	normalized := strings.ToLower(query)
	for hindi, english := range hinglishMappings {
		normalized = strings.ReplaceAll(normalized, hindi, english)
	}
	return normalized
}

// Classify scores the query against every intent category.
// A pattern's strength is min(occurrences*0.3, 1.0); a category scores the
// maximum strength over its patterns, plus a flat 0.2 bonus (clamped to 1.0)
// when the category name or its canonical keyword appears literally.
// Categories that scored zero are omitted.
func (lc *LexicalClassifier) Classify(_ context.Context, query string) (models.IntentScores, error) {
	normalized := Normalize(query)
	scores := make(models.IntentScores)

	for category, patterns := range lc.patterns {
		maxScore := 0.0
		for _, pattern := range patterns {
			matches := len(pattern.FindAllString(normalized, -1))
			if matches == 0 {
				continue
			}
			strength := float64(matches) * 0.3
			if strength > 1.0 {
				strength = 1.0
			}
			if strength > maxScore {
				maxScore = strength
			}
		}
		if maxScore > 0 {
			scores[category] = maxScore
		}
	}

	// Literal mentions of the category get a confidence boost
	for category, score := range scores {
		keyword := lc.canonical[category]
		if strings.Contains(normalized, category) || (keyword != "" && strings.Contains(normalized, keyword)) {
			boosted := score + 0.2
			if boosted > 1.0 {
				boosted = 1.0
			}
			scores[category] = boosted
		}
	}

	return scores, nil
}

// initPatterns sets up the per-category pattern lists. Categories mirror the
// tool categories so the orchestrator can line intent scores up with tools.
func (lc *LexicalClassifier) initPatterns() {
	compile := func(category string, canonical string, exprs ...string) {
		regexps := make([]*regexp.Regexp, 0, len(exprs))
		for _, expr := range exprs {
			regexps = append(regexps, regexp.MustCompile(expr))
		}
		lc.patterns[category] = regexps
		lc.canonical[category] = canonical
	}

	compile(string(models.CategorySystemInfo), "system",
		`system|hardware|specs|performance|cpu|memory|ram|disk`,
		`computer.*details|pc.*info|machine.*specs`,
		`how much.*ram|storage.*space|processor.*speed`)

	compile(string(models.CategoryFileManagement), "file",
		`file|folder|directory|create.*file|open.*file|delete.*file`,
		`make.*folder|new.*directory|copy.*file`,
		`open.*app|close.*app|launch|application`)

	compile(string(models.CategoryCodeDevelopment), "code",
		`code|program|script|function|class|app|website|api`,
		`python|javascript|html|css|react|flask|fastapi|node|golang`,
		`vs code|vscode|editor|ide`,
		`bug|debug|error|fix.*code|analyze.*code`)

	compile(string(models.CategoryWebSearch), "search",
		`search|google|find.*information|look.*up|research`,
		`what.*is|how.*to|tell.*me.*about|information`,
		`weather|temperature|rain|climate|forecast|humidity`)

	compile(string(models.CategoryAutomation), "automation",
		`automate|control|keyboard|mouse|click|type|press`,
		`volume|cursor|scroll|hotkey|shortcut`,
		`automation|macro|script.*run`)

	compile(string(models.CategoryWriting), "write",
		`write|type|text|document|note|letter|email`,
		`draft|content|article|blog|story|compose`)

	compile(string(models.CategoryMultimedia), "media",
		`play.*music|video|audio|image|photo|picture`,
		`media|song|movie|gallery|camera|screenshot`,
		`record|capture|stream`)

	compile(string(models.CategoryLearning), "learn",
		`learn|study|tutorial|course|lesson|teach|explain`,
		`education|knowledge|skill|training|practice`)

	compile(string(models.CategoryEntertainment), "fun",
		`game|fun|joke|story|quiz|puzzle`,
		`entertainment|leisure|hobby|recreation|fact`)

	compile(string(models.CategoryProductivity), "task",
		`schedule|calendar|reminder|todo|task|meeting|appointment`,
		`organize|plan|manage|productivity|efficiency`)

	compile(string(models.CategoryCommunication), "message",
		`email|message|send|call|chat|contact|whatsapp|telegram`,
		`communicate|reply|respond|forward|share`)

	compile(string(models.CategoryUtilities), "utility",
		`time|date|clock|calculate|convert|password`,
		`clean|cleanup|optimize|temp|stop|halt|cancel`)
}
