package role

import "fmt"

// Module names the feature areas a permission matrix can grant access to.
// Route configuration supplies these statically; they are never user input.
type Module string

const (
	ModuleLeads     Module = "leads"
	ModuleContacts  Module = "contacts"
	ModuleTasks     Module = "tasks"
	ModuleMeeting   Module = "meeting"
	ModuleTodos     Module = "todos"
	ModuleNotes     Module = "notes"
	ModuleReminders Module = "reminders"
)

// KnownModules is the closed set a matrix may mention.
var KnownModules = []Module{
	ModuleLeads,
	ModuleContacts,
	ModuleTasks,
	ModuleMeeting,
	ModuleTodos,
	ModuleNotes,
	ModuleReminders,
}

func KnownModule(m Module) bool {
	for _, k := range KnownModules {
		if k == m {
			return true
		}
	}
	return false
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actions is the per-module flag set.
type Actions struct {
	Create bool `json:"create"`
	Read   bool `json:"read"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// Allows reports whether the flag for a single action is set.
func (a Actions) Allows(action Action) bool {
	switch action {
	case ActionCreate:
		return a.Create
	case ActionRead:
		return a.Read
	case ActionUpdate:
		return a.Update
	case ActionDelete:
		return a.Delete
	}
	return false
}

// Matrix maps module names to their granted actions. Matrices are value
// snapshots: every mutation path builds a fresh normalized copy rather
// than patching flags on a shared document.
type Matrix map[Module]Actions

// Normalize returns a copy with the write-implies-read rule applied:
// any module granting create, update or delete also grants read.
// Idempotent; applied on every role create and update.
func Normalize(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for module, actions := range m {
		if actions.Create || actions.Update || actions.Delete {
			actions.Read = true
		}
		out[module] = actions
	}
	return out
}

// Allows reports whether the matrix grants action on module. Unknown
// modules simply have no entry and deny.
func (m Matrix) Allows(module Module, action Action) bool {
	actions, ok := m[module]
	if !ok {
		return false
	}
	return actions.Allows(action)
}

// Validate rejects matrices mentioning modules outside the known set.
func (m Matrix) Validate() error {
	for module := range m {
		if !KnownModule(module) {
			return fmt.Errorf("unknown module %q", module)
		}
	}
	return nil
}

// Clone returns an independent copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for module, actions := range m {
		out[module] = actions
	}
	return out
}

// DefaultEmployeeMatrix is the matrix seeded for roles created without
// explicit permissions: read everywhere, todos read-only by convention.
func DefaultEmployeeMatrix() Matrix {
	m := make(Matrix, len(KnownModules))
	for _, module := range KnownModules {
		m[module] = Actions{Read: true}
	}
	return m
}
