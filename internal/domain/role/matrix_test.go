package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_WriteImpliesRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       Actions
		wantRead bool
	}{
		{"create forces read", Actions{Create: true}, true},
		{"update forces read", Actions{Update: true}, true},
		{"delete forces read", Actions{Delete: true}, true},
		{"all writes force read", Actions{Create: true, Update: true, Delete: true}, true},
		{"read-only stays read", Actions{Read: true}, true},
		{"nothing stays nothing", Actions{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(Matrix{ModuleLeads: tt.in})
			assert.Equal(t, tt.wantRead, got[ModuleLeads].Read)
			// Write flags are never touched by normalization
			assert.Equal(t, tt.in.Create, got[ModuleLeads].Create)
			assert.Equal(t, tt.in.Update, got[ModuleLeads].Update)
			assert.Equal(t, tt.in.Delete, got[ModuleLeads].Delete)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	m := Matrix{
		ModuleLeads:    {Create: true},
		ModuleTasks:    {Update: true, Delete: true},
		ModuleMeeting:  {Read: true},
		ModuleTodos:    {},
		ModuleContacts: {Create: true, Read: false},
	}

	once := Normalize(m)
	twice := Normalize(once)
	assert.Equal(t, once, twice)

	// Every module with a write grant must carry read after one pass
	for module, actions := range once {
		if actions.Create || actions.Update || actions.Delete {
			assert.True(t, actions.Read, "module %s should have read forced", module)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	m := Matrix{ModuleLeads: {Create: true}}
	_ = Normalize(m)
	assert.False(t, m[ModuleLeads].Read, "input matrix must stay untouched")
}

func TestMatrix_Allows(t *testing.T) {
	t.Parallel()

	m := Normalize(Matrix{
		ModuleLeads: {Create: true},
		ModuleTodos: {Read: true},
	})

	assert.True(t, m.Allows(ModuleLeads, ActionCreate))
	assert.True(t, m.Allows(ModuleLeads, ActionRead))
	assert.False(t, m.Allows(ModuleLeads, ActionDelete))
	assert.True(t, m.Allows(ModuleTodos, ActionRead))
	assert.False(t, m.Allows(ModuleTodos, ActionCreate))

	// Module absent from the matrix denies everything
	assert.False(t, m.Allows(ModuleMeeting, ActionRead))
	// Bogus action string denies
	assert.False(t, m.Allows(ModuleLeads, Action("approve")))
}

func TestMatrix_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Matrix{ModuleLeads: {Read: true}}.Validate())
	assert.Error(t, Matrix{Module("payroll"): {Read: true}}.Validate())
}

func TestDefaultEmployeeMatrix(t *testing.T) {
	t.Parallel()

	m := DefaultEmployeeMatrix()
	require.Len(t, m, len(KnownModules))
	for _, module := range KnownModules {
		assert.True(t, m.Allows(module, ActionRead))
		assert.False(t, m.Allows(module, ActionCreate))
	}
	// Defaults are already normalized
	assert.Equal(t, m, Normalize(m))
}
