package rbac

import (
	"github.com/marga120/mds-application-sub000/internal/types"
)

// FieldAccess describes what the acting role may do with one review field.
// Editable implies Visible.
type FieldAccess struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// Gate handles field-level permission checks with set-based lookups. The
// rules are fixed product policy, so the sets are built in code rather than
// loaded from a config file.
type Gate struct {
	// role -> field -> true for the edit affordance (hot path - O(1))
	editable map[types.Role]map[types.ReviewField]bool
	// role -> field -> true for fields withheld entirely from the role
	hidden map[types.Role]map[types.ReviewField]bool
}

// NewGate builds the fixed permission sets:
//   - status transitions and GPA edits require full-control
//   - prerequisite text and rating/comment fields are editable by
//     full-control and edit-limited
//   - every review field is at minimum visible to every authenticated role;
//     only the audit history panel is withheld from read-only
func NewGate() *Gate {
	fullControlEdits := []types.ReviewField{
		types.FieldStatus,
		types.FieldGPA,
		types.FieldPrerequisites,
		types.FieldRating,
		types.FieldScholarship,
		types.FieldEnglishStatus,
	}
	editLimitedEdits := []types.ReviewField{
		types.FieldPrerequisites,
		types.FieldRating,
		types.FieldEnglishStatus,
	}

	editable := map[types.Role]map[types.ReviewField]bool{
		types.RoleFullControl: fieldSet(fullControlEdits),
		types.RoleEditLimited: fieldSet(editLimitedEdits),
		types.RoleReadOnly:    {},
	}
	hidden := map[types.Role]map[types.ReviewField]bool{
		types.RoleFullControl: {},
		types.RoleEditLimited: {},
		types.RoleReadOnly:    fieldSet([]types.ReviewField{types.FieldAuditHistory}),
	}

	return &Gate{editable: editable, hidden: hidden}
}

// Resolve maps (role, field) to its access. Pure: the result depends only on
// the inputs, so callers must re-resolve after a role change rather than
// cache across one. An unrecognized role resolves to visible-only, never to
// an edit affordance.
func (g *Gate) Resolve(role types.Role, field types.ReviewField) FieldAccess {
	if g.hidden[role][field] {
		return FieldAccess{}
	}
	return FieldAccess{
		Visible:  true,
		Editable: g.editable[role][field],
	}
}

// ResolveAll returns the full field-access map for a role, so the dashboard
// can configure every control in one pass after the role resolves.
func (g *Gate) ResolveAll(role types.Role) map[types.ReviewField]FieldAccess {
	result := make(map[types.ReviewField]FieldAccess, len(types.AllReviewFields()))
	for _, field := range types.AllReviewFields() {
		result[field] = g.Resolve(role, field)
	}
	return result
}

// CanEdit reports whether the role holds the edit affordance for the field.
func (g *Gate) CanEdit(role types.Role, field types.ReviewField) bool {
	return g.Resolve(role, field).Editable
}

// CanView reports whether the role may see the field at all.
func (g *Gate) CanView(role types.Role, field types.ReviewField) bool {
	return g.Resolve(role, field).Visible
}

func fieldSet(fields []types.ReviewField) map[types.ReviewField]bool {
	set := make(map[types.ReviewField]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
