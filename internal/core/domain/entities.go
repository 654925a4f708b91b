package domain

// Role is a free-form role name. Roles are compared by exact string
// equality; there is no hierarchy between them.
type Role string

const (
	// RoleAny is used by the gate to admit any authenticated identity
	RoleAny      Role = ""
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// Satisfies reports whether r meets the required role
func (r Role) Satisfies(required Role) bool {
	return required == RoleAny || r == required
}

// Identity is the decoded token payload attached to a request
type Identity struct {
	UserID uint
	Role   Role
}
