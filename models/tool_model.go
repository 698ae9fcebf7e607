// Package models holds the data types shared by the registry, the
// orchestrator and the dispatcher.
package models

// ToolCategory groups tools by the kind of request they serve
type ToolCategory string

const (
	CategorySystemInfo      ToolCategory = "system_info"
	CategoryFileManagement  ToolCategory = "file_management"
	CategoryCodeDevelopment ToolCategory = "code_development"
	CategoryWebSearch       ToolCategory = "web_search"
	CategoryAutomation      ToolCategory = "automation"
	CategoryWriting         ToolCategory = "writing"
	CategoryMultimedia      ToolCategory = "multimedia"
	CategoryLearning        ToolCategory = "learning"
	CategoryEntertainment   ToolCategory = "entertainment"
	CategoryProductivity    ToolCategory = "productivity"
	CategoryCommunication   ToolCategory = "communication"
	CategoryUtilities       ToolCategory = "utilities"
)

// AllCategories lists every known tool category
var AllCategories = []ToolCategory{
	CategorySystemInfo,
	CategoryFileManagement,
	CategoryCodeDevelopment,
	CategoryWebSearch,
	CategoryAutomation,
	CategoryWriting,
	CategoryMultimedia,
	CategoryLearning,
	CategoryEntertainment,
	CategoryProductivity,
	CategoryCommunication,
	CategoryUtilities,
}

// ToolMetadata describes a registered tool
type ToolMetadata struct {
	Name          string       `json:"name"`
	Category      ToolCategory `json:"category"`
	Description   string       `json:"description"`
	Keywords      []string     `json:"keywords"`
	Priority      int          `json:"priority"` // 1-10, higher runs hotter in scoring
	Prerequisites []string     `json:"prerequisites,omitempty"`
	Conflicts     []string     `json:"conflicts,omitempty"`
	MinConfidence float64      `json:"min_confidence"` // minimum score to qualify, [0,1]
	AsyncCapable  bool         `json:"async_capable"`
	EstimatedTime float64      `json:"estimated_time"` // seconds
}

// HasPrerequisite reports whether the tool declares the given prerequisite
func (m *ToolMetadata) HasPrerequisite(name string) bool {
	for _, p := range m.Prerequisites {
		if p == name {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether the tool declares a conflict with the given tool
func (m *ToolMetadata) ConflictsWith(name string) bool {
	for _, c := range m.Conflicts {
		if c == name {
			return true
		}
	}
	return false
}
