package tools

import "github.com/yourusername/jarvis-assistant/models"

// DefaultCatalog returns the metadata for the standard assistant tool set.
// Desktop-facing tools (window control, input automation, editor sandbox) ship
// metadata-only here; their adapters are registered by the host process that
// actually owns the desktop session.
func DefaultCatalog() []models.ToolMetadata {
	return []models.ToolMetadata{
		// System information
		{
			Name:        "get_system_info",
			Category:    models.CategorySystemInfo,
			Description: "Get comprehensive system information including CPU, memory, disk usage",
			Keywords:    []string{"system", "info", "hardware", "specs", "performance", "cpu", "memory", "ram"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
		},
		{
			Name:        "get_running_processes",
			Category:    models.CategorySystemInfo,
			Description: "Get list of running processes and resource usage",
			Keywords:    []string{"processes", "running", "tasks", "cpu", "memory", "performance"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 3.0,
		},
		{
			Name:        "get_network_info",
			Category:    models.CategorySystemInfo,
			Description: "Get network information and connectivity status",
			Keywords:    []string{"network", "ip", "internet", "connection", "wifi"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
		},
		{
			Name:        "cleanup_system",
			Category:    models.CategoryUtilities,
			Description: "Clean temporary files and optimize system performance",
			Keywords:    []string{"clean", "cleanup", "optimize", "temp", "space", "storage"},
			Priority:    5, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 10.0,
		},

		// File and application management
		{
			Name:        "open_app",
			Category:    models.CategoryFileManagement,
			Description: "Open desktop applications",
			Keywords:    []string{"open", "launch", "start", "app", "application", "program"},
			Priority:    9, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 3.0,
		},
		{
			Name:        "close_app",
			Category:    models.CategoryFileManagement,
			Description: "Close running applications",
			Keywords:    []string{"close", "quit", "exit", "stop", "end", "terminate"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 1.0,
		},
		{
			Name:        "folder_file",
			Category:    models.CategoryFileManagement,
			Description: "Handle folder and file operations like create, rename, delete",
			Keywords:    []string{"folder", "file", "create", "delete", "rename", "manage"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
		},
		{
			Name:        "play_file",
			Category:    models.CategoryMultimedia,
			Description: "Open and play files like videos, documents, images",
			Keywords:    []string{"play", "open", "file", "video", "music", "document", "image"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
		},

		// Code development
		{
			Name:        "open_vscode_sandbox",
			Category:    models.CategoryCodeDevelopment,
			Description: "Open VS Code with safe sandbox environment for coding",
			Keywords:    []string{"vscode", "code", "editor", "ide", "programming", "development"},
			Priority:    9, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 5.0,
		},
		{
			Name:          "create_code_file",
			Category:      models.CategoryCodeDevelopment,
			Description:   "Create new code files with templates",
			Keywords:      []string{"create", "file", "code", "python", "javascript", "html", "new"},
			Priority:      8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
			Prerequisites: []string{"open_vscode_sandbox"},
		},
		{
			Name:          "write_code",
			Category:      models.CategoryCodeDevelopment,
			Description:   "Write code with proper formatting and syntax highlighting",
			Keywords:      []string{"write", "code", "type", "program", "script", "function"},
			Priority:      8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 10.0,
			Prerequisites: []string{"open_vscode_sandbox"},
		},
		{
			Name:        "analyze_code",
			Category:    models.CategoryCodeDevelopment,
			Description: "Analyze code for errors, style issues, and improvements",
			Keywords:    []string{"analyze", "check", "review", "debug", "error", "bug"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 3.0,
		},
		{
			Name:        "generate_function",
			Category:    models.CategoryCodeDevelopment,
			Description: "Generate function templates with documentation",
			Keywords:    []string{"function", "generate", "template", "create", "method"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 3.0,
		},
		{
			Name:        "generate_class",
			Category:    models.CategoryCodeDevelopment,
			Description: "Generate class templates with methods",
			Keywords:    []string{"class", "generate", "template", "create", "object"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 4.0,
		},
		{
			Name:        "create_web_app",
			Category:    models.CategoryCodeDevelopment,
			Description: "Generate complete web application templates",
			Keywords:    []string{"web", "app", "website", "api", "server", "flask", "fastapi", "express"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 8.0,
		},

		// Search and information
		{
			Name:        "google_search",
			Category:    models.CategoryWebSearch,
			Description: "Search the web for information with speech-friendly results",
			Keywords:    []string{"search", "google", "find", "information", "research", "lookup"},
			Priority:    9, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 3.0,
		},
		{
			Name:        "get_weather",
			Category:    models.CategoryWebSearch,
			Description: "Get current weather information for any city",
			Keywords:    []string{"weather", "temperature", "rain", "climate", "forecast"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 2.0,
		},
		{
			Name:        "get_current_datetime",
			Category:    models.CategoryUtilities,
			Description: "Get current date and time",
			Keywords:    []string{"time", "date", "clock", "current", "now"},
			Priority:    9, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},

		// Input automation
		{
			Name:        "move_cursor_tool",
			Category:    models.CategoryAutomation,
			Description: "Move mouse cursor in specified direction",
			Keywords:    []string{"cursor", "mouse", "move", "pointer"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.5,
		},
		{
			Name:        "mouse_click_tool",
			Category:    models.CategoryAutomation,
			Description: "Perform mouse clicks (left, right, double)",
			Keywords:    []string{"click", "mouse", "press", "select"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.5,
		},
		{
			Name:        "type_text_tool",
			Category:    models.CategoryAutomation,
			Description: "Type text safely with proper character handling",
			Keywords:    []string{"type", "text", "write", "input", "keyboard"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 5.0,
		},
		{
			Name:        "press_key_tool",
			Category:    models.CategoryAutomation,
			Description: "Press individual keyboard keys",
			Keywords:    []string{"key", "press", "keyboard", "button"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.5,
		},
		{
			Name:        "control_volume_tool",
			Category:    models.CategoryAutomation,
			Description: "Control system volume (up, down, mute)",
			Keywords:    []string{"volume", "sound", "audio", "mute", "speaker"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.5,
		},

		// Writing and safety
		{
			Name:        "safe_text_input",
			Category:    models.CategoryProductivity,
			Description: "Safely input text with proper formatting and stop control",
			Keywords:    []string{"text", "write", "input", "type", "safe"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 8.0,
		},
		{
			Name:        "stop_all_writing",
			Category:    models.CategoryUtilities,
			Description: "Emergency stop for all writing operations",
			Keywords:    []string{"stop", "halt", "cancel", "emergency", "abort"},
			Priority:    10, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},

		// Built-in utilities (implemented in this module)
		{
			Name:        "calculate_expression",
			Category:    models.CategoryUtilities,
			Description: "Evaluate arithmetic expressions",
			Keywords:    []string{"calculate", "math", "compute", "expression", "plus", "minus"},
			Priority:    8, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},
		{
			Name:        "unit_converter",
			Category:    models.CategoryUtilities,
			Description: "Convert between common units of measure",
			Keywords:    []string{"convert", "unit", "km", "miles", "celsius", "fahrenheit", "kg", "pounds"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},
		{
			Name:        "generate_password",
			Category:    models.CategoryUtilities,
			Description: "Generate a strong random password",
			Keywords:    []string{"password", "generate", "random", "secure"},
			Priority:    7, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},
		{
			Name:        "tell_joke",
			Category:    models.CategoryEntertainment,
			Description: "Tell a random joke",
			Keywords:    []string{"joke", "funny", "laugh", "humor"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},
		{
			Name:        "random_fact",
			Category:    models.CategoryEntertainment,
			Description: "Share a random interesting fact",
			Keywords:    []string{"fact", "random", "interesting", "trivia"},
			Priority:    6, MinConfidence: 0.7, AsyncCapable: true, EstimatedTime: 0.1,
		},
	}
}

// RegisterDefaults loads the default catalog into the registry and binds the
// built-in adapters where this module carries an implementation.
func RegisterDefaults(registry *Registry) {
	builtins := BuiltinTools()
	for _, meta := range DefaultCatalog() {
		registry.Register(meta, builtins[meta.Name])
	}
}
