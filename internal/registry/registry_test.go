package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitall-hq/vitall_backend/internal/core/domain"
	"github.com/vitall-hq/vitall_backend/internal/registry"
)

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := registry.New([]registry.ModuleDefinition{
		{Name: "", DisplayName: "Nameless"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := registry.New([]registry.ModuleDefinition{
		{Name: "Planning", APIPrefixes: []string{"/api/planning"}},
		{Name: "Planning", APIPrefixes: []string{"/api/planning-v2"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_RejectsOverlappingPrefixes(t *testing.T) {
	cases := []struct {
		name     string
		prefixes [][]string
	}{
		{"identical", [][]string{{"/api/planning"}, {"/api/planning"}}},
		{"nested", [][]string{{"/api/planning"}, {"/api/planning/shifts"}}},
		{"reverse nested", [][]string{{"/api/planning/shifts"}, {"/api/planning"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := registry.New([]registry.ModuleDefinition{
				{Name: "A", APIPrefixes: tc.prefixes[0]},
				{Name: "B", APIPrefixes: tc.prefixes[1]},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "overlaps")
		})
	}
}

func TestDefinitionForAPIPath(t *testing.T) {
	reg, err := registry.New([]registry.ModuleDefinition{
		{Name: "Planning", APIPrefixes: []string{"/api/planning"}},
		{Name: "Compta", APIPrefixes: []string{"/api/compta"}},
	})
	require.NoError(t, err)

	def, ok := reg.DefinitionForAPIPath("/api/planning/shifts/42")
	require.True(t, ok)
	assert.Equal(t, "Planning", def.Name)

	def, ok = reg.DefinitionForAPIPath("/api/compta")
	require.True(t, ok)
	assert.Equal(t, "Compta", def.Name)

	_, ok = reg.DefinitionForAPIPath("/api/v1/org/modules")
	assert.False(t, ok)
}

func TestDefinitions_PreservesDeclarationOrder(t *testing.T) {
	reg, err := registry.New([]registry.ModuleDefinition{
		{Name: "Zulu"},
		{Name: "Alpha"},
		{Name: "Mike"},
	})
	require.NoError(t, err)

	defs := reg.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "Zulu", defs[0].Name)
	assert.Equal(t, "Alpha", defs[1].Name)
	assert.Equal(t, "Mike", defs[2].Name)
}

func TestDefault_CatalogIsWellFormed(t *testing.T) {
	reg := registry.Default()

	defs := reg.Definitions()
	require.NotEmpty(t, defs)

	// Every definition carries the metadata the frontend relies on.
	for _, def := range defs {
		assert.NotEmpty(t, def.Name, "module name")
		assert.NotEmpty(t, def.DisplayName, "display name of %s", def.Name)
		assert.NotEmpty(t, def.APIPrefixes, "api prefixes of %s", def.Name)
		assert.Contains(t, []domain.ModuleCategory{
			domain.CategoryHR, domain.CategoryCommunication, domain.CategoryManagement,
		}, def.Category, "category of %s", def.Name)
	}

	planning, ok := reg.Definition("Planning")
	require.True(t, ok)
	assert.Equal(t, []string{"/api/planning"}, planning.APIPrefixes)

	def, ok := reg.DefinitionForAPIPath("/api/planning/shifts")
	require.True(t, ok)
	assert.Equal(t, "Planning", def.Name)
}
