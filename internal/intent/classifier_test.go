package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/jarvis-assistant/models"
)

func TestNormalizeHinglish(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain english untouched", "open the file", "open the file"},
		{"lowercases", "OPEN The File", "open the file"},
		{"substitutes hindi tokens", "फ़ाइल खोलो", "file open"},
		{"mixed hinglish", "मौसम kaisa hai", "weather kaisa hai"},
		{"code request", "कोड लिखो please", "code write please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.query))
		})
	}
}

func TestClassifyScoresSystemInfo(t *testing.T) {
	lc := NewLexicalClassifier()

	scores, err := lc.Classify(context.Background(), "check my system please")
	require.NoError(t, err)

	got, ok := scores[string(models.CategorySystemInfo)]
	require.True(t, ok, "system_info should score for a query containing 'system'")
	assert.Greater(t, got, 0.0)
}

func TestClassifyOmitsZeroScores(t *testing.T) {
	lc := NewLexicalClassifier()

	scores, err := lc.Classify(context.Background(), "system info")
	require.NoError(t, err)

	for category, score := range scores {
		assert.Greater(t, score, 0.0, "category %s must not be reported with zero score", category)
	}
	assert.NotContains(t, scores, string(models.CategoryEntertainment))
}

func TestClassifyPatternStrength(t *testing.T) {
	lc := NewLexicalClassifier()

	// One occurrence of a pattern is worth 0.3
	scores, err := lc.Classify(context.Background(), "tell a joke")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, scores[string(models.CategoryEntertainment)], 1e-9)

	// Repeated occurrences stack at 0.3 each, capped at 1.0
	scores, err = lc.Classify(context.Background(), "joke joke joke joke joke")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[string(models.CategoryEntertainment)], 1e-9)
}

func TestClassifyCanonicalKeywordBonus(t *testing.T) {
	lc := NewLexicalClassifier()

	// "system" is the canonical keyword for system_info, so a single pattern
	// hit gets the flat 0.2 boost on top
	scores, err := lc.Classify(context.Background(), "how is my system doing")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores[string(models.CategorySystemInfo)], 1e-9)
}

func TestClassifyBonusClampedToOne(t *testing.T) {
	lc := NewLexicalClassifier()

	scores, err := lc.Classify(context.Background(), "system system system system cpu ram disk")
	require.NoError(t, err)
	assert.LessOrEqual(t, scores[string(models.CategorySystemInfo)], 1.0)
}

func TestClassifyIsDeterministic(t *testing.T) {
	lc := NewLexicalClassifier()
	query := "search for golang tutorials and weather in delhi"

	first, err := lc.Classify(context.Background(), query)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := lc.Classify(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestIntentScoresSortedAndTop(t *testing.T) {
	scores := models.IntentScores{
		"web_search":  0.9,
		"system_info": 0.3,
		"utilities":   0.3,
	}

	sorted := scores.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "web_search", sorted[0])
	// Equal scores tie-break alphabetically
	assert.Equal(t, []string{"system_info", "utilities"}, sorted[1:])

	top, confidence := scores.Top()
	assert.Equal(t, "web_search", top)
	assert.Equal(t, 0.9, confidence)
}

func TestIntentScoresTopDefaultsToGeneral(t *testing.T) {
	top, confidence := models.IntentScores{}.Top()
	assert.Equal(t, models.GeneralIntent, top)
	assert.Equal(t, 0.5, confidence)
}
