package session

import "github.com/marga120/mds-application-sub000/internal/types"

// Session is the resolved state of the acting user's session, as reported by
// the external session service. This layer never verifies credentials; it
// only consumes the resolved role.
type Session struct {
	Authenticated bool       `json:"authenticated"`
	UserName      string     `json:"user_name"`
	Role          types.Role `json:"role"`
}
