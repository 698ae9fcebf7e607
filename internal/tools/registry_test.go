package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/jarvis-assistant/models"
)

func testTool(name string) Tool {
	return NewFuncTool(name, func(_ context.Context, _ string) (string, error) {
		return "ok from " + name, nil
	})
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	meta := models.ToolMetadata{
		Name:     "get_weather",
		Category: models.CategoryWebSearch,
		Keywords: []string{"weather", "temperature"},
		Priority: 8,
	}
	r.Register(meta, testTool("get_weather"))

	got, ok := r.Get("get_weather")
	require.True(t, ok)
	assert.Equal(t, meta, got)
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get("unknown_tool")
	assert.False(t, ok)
}

func TestRegistryRegisterReplacesExisting(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "get_weather", Priority: 5}, nil)
	r.Register(models.ToolMetadata{Name: "get_weather", Priority: 9}, testTool("get_weather"))

	got, ok := r.Get("get_weather")
	require.True(t, ok)
	assert.Equal(t, 9, got.Priority)
	assert.Equal(t, 1, r.Len())

	impl, ok := r.Implementation("get_weather")
	require.True(t, ok)
	assert.Equal(t, "get_weather", impl.Name())
}

func TestRegistryMetadataOnlyHasNoImplementation(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "open_app"}, nil)

	_, ok := r.Implementation("open_app")
	assert.False(t, ok)
}

func TestRegistryBind(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "open_app"}, nil)

	assert.True(t, r.Bind("open_app", testTool("open_app")))
	assert.False(t, r.Bind("never_registered", testTool("never_registered")))

	impl, ok := r.Implementation("open_app")
	require.True(t, ok)
	out, err := impl.Invoke(context.Background(), "open vscode")
	require.NoError(t, err)
	assert.Equal(t, "ok from open_app", out)
}

func TestRegistryAllSortedByName(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "zeta"}, nil)
	r.Register(models.ToolMetadata{Name: "alpha"}, nil)
	r.Register(models.ToolMetadata{Name: "mid"}, nil)

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "mid", all[1].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestRegistryFindByCategory(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "get_system_info", Category: models.CategorySystemInfo}, nil)
	r.Register(models.ToolMetadata{Name: "get_network_info", Category: models.CategorySystemInfo}, nil)
	r.Register(models.ToolMetadata{Name: "tell_joke", Category: models.CategoryEntertainment}, nil)

	matches := r.FindByCategory(models.CategorySystemInfo)
	require.Len(t, matches, 2)
	assert.Equal(t, "get_network_info", matches[0].Name)
	assert.Equal(t, "get_system_info", matches[1].Name)

	assert.Empty(t, r.FindByCategory(models.CategoryMultimedia))
}

func TestRegistryFindByKeyword(t *testing.T) {
	r := NewRegistry()
	r.Register(models.ToolMetadata{Name: "get_weather", Keywords: []string{"weather", "forecast"}}, nil)
	r.Register(models.ToolMetadata{Name: "google_search", Keywords: []string{"search", "google"}}, nil)

	matches := r.FindByKeyword("WEATHER")
	require.Len(t, matches, 1)
	assert.Equal(t, "get_weather", matches[0].Name)

	// substring matching
	matches = r.FindByKeyword("cast")
	require.Len(t, matches, 1)
	assert.Equal(t, "get_weather", matches[0].Name)

	assert.Empty(t, r.FindByKeyword("nothing"))
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	catalog := DefaultCatalog()
	require.NotEmpty(t, catalog)

	names := make(map[string]bool, len(catalog))
	for _, meta := range catalog {
		assert.False(t, names[meta.Name], "duplicate tool name %s", meta.Name)
		names[meta.Name] = true

		assert.NotEmpty(t, meta.Keywords, "tool %s has no keywords", meta.Name)
		assert.GreaterOrEqual(t, meta.Priority, 1, "tool %s priority out of range", meta.Name)
		assert.LessOrEqual(t, meta.Priority, 10, "tool %s priority out of range", meta.Name)
		assert.GreaterOrEqual(t, meta.MinConfidence, 0.0, "tool %s", meta.Name)
		assert.LessOrEqual(t, meta.MinConfidence, 1.0, "tool %s", meta.Name)
	}

	// Every declared prerequisite and conflict must resolve inside the catalog
	for _, meta := range catalog {
		for _, prereq := range meta.Prerequisites {
			assert.True(t, names[prereq], "tool %s declares unknown prerequisite %s", meta.Name, prereq)
		}
		for _, conflict := range meta.Conflicts {
			assert.True(t, names[conflict], "tool %s declares unknown conflict %s", meta.Name, conflict)
		}
	}
}

func TestRegisterDefaultsBindsBuiltins(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	assert.Equal(t, len(DefaultCatalog()), r.Len())

	for name := range BuiltinTools() {
		impl, ok := r.Implementation(name)
		require.True(t, ok, "builtin %s not bound", name)
		assert.Equal(t, name, impl.Name())
	}

	// Desktop-facing tools stay metadata-only until the host binds them
	_, ok := r.Implementation("open_app")
	assert.False(t, ok)
}
