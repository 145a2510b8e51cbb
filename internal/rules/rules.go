// Package rules holds the naming conventions and action vocabulary shared by
// the generators and the hosts that drive them.
package rules

import (
	"slices"
	"strings"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// ProcPrefix prefixes every generated stored procedure name.
const ProcPrefix = "SPX"

// ProcedureName returns the canonical procedure name, e.g. SPX_users_Insert.
func ProcedureName(table string, action Action) string {
	return ProcPrefix + "_" + table + "_" + string(action)
}

// -----------------------------------------------------------------------------
// Actions
// -----------------------------------------------------------------------------

// Action is one kind of artifact a caller can request.
type Action string

// CRUD procedure actions, in generation order.
const (
	Insert    Action = "Insert"
	GetByID   Action = "GetById"
	SelectAll Action = "SelectAll"
	Update    Action = "Update"
	Delete    Action = "Delete"
)

// Artifact actions handled by the assembler.
const (
	Database Action = "Database" // CREATE DATABASE / USE header
	Table    Action = "Table"    // CREATE TABLE
	Data     Action = "Data"     // bulk INSERT of manually entered rows
)

var crudActions = []Action{Insert, GetByID, SelectAll, Update, Delete}

var allActions = []Action{Database, Table, Insert, GetByID, SelectAll, Update, Delete, Data}

// CRUDActions returns the procedure actions in generation order.
func CRUDActions() []Action {
	return slices.Clone(crudActions)
}

// AllActions returns every action in assembly order.
func AllActions() []Action {
	return slices.Clone(allActions)
}

// IsCRUD reports whether the action produces a stored procedure.
func (a Action) IsCRUD() bool {
	return slices.Contains(crudActions, a)
}

// aliases maps lowercased spellings to actions. Besides the canonical names
// it accepts the labels shown by the original editor.
var aliases = map[string]Action{
	"database":       Database,
	"db":             Database,
	"table":          Table,
	"insert":         Insert,
	"getbyid":        GetByID,
	"get_by_id":      GetByID,
	"selectall":      SelectAll,
	"select_all":     SelectAll,
	"update":         Update,
	"delete":         Delete,
	"data":           Data,
	"inserts":        Data,
	"data (inserts)": Data,
}

// ParseAction resolves an action name case-insensitively.
func ParseAction(s string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if a, ok := aliases[key]; ok {
		return a, nil
	}

	names := make([]string, len(allActions))
	for i, a := range allActions {
		names[i] = string(a)
	}
	err := alerr.New(alerr.ErrUnknownAction, "unknown action").
		With("action", s).
		WithNote("valid actions: " + strings.Join(names, ", "))
	if hint := alerr.SuggestSimilar(key, names); hint != "" {
		err.WithHelp(hint)
	}
	return "", err
}

// -----------------------------------------------------------------------------
// ActionSet
// -----------------------------------------------------------------------------

// ActionSet is an unordered set of requested actions.
type ActionSet map[Action]struct{}

// NewActionSet builds a set from the given actions.
func NewActionSet(actions ...Action) ActionSet {
	s := make(ActionSet, len(actions))
	for _, a := range actions {
		s.Add(a)
	}
	return s
}

// Add inserts an action.
func (s ActionSet) Add(a Action) {
	s[a] = struct{}{}
}

// Has reports whether the set contains the action. A nil set contains nothing.
func (s ActionSet) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

// CRUD returns the procedure actions present in the set, in generation order.
func (s ActionSet) CRUD() []Action {
	var out []Action
	for _, a := range crudActions {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Slice returns the members in assembly order.
func (s ActionSet) Slice() []Action {
	var out []Action
	for _, a := range allActions {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String renders the members in assembly order, comma separated.
func (s ActionSet) String() string {
	members := s.Slice()
	names := make([]string, len(members))
	for i, a := range members {
		names[i] = string(a)
	}
	return strings.Join(names, ",")
}

// ParseActionSet parses a comma separated list such as "table,insert".
// The special value "all" selects every action; "crud" the five procedures.
func ParseActionSet(list string) (ActionSet, error) {
	s := NewActionSet()
	for part := range strings.SplitSeq(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "all":
			for _, a := range allActions {
				s.Add(a)
			}
			continue
		case "crud":
			for _, a := range crudActions {
				s.Add(a)
			}
			continue
		}
		a, err := ParseAction(part)
		if err != nil {
			return nil, err
		}
		s.Add(a)
	}
	return s, nil
}
