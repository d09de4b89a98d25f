package domain

// Role is a user's effective role on a single board.
// Owner is implicit via Board.OwnerId and is never stored as a membership row.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RoleNone   Role = "none"
)

// ValidMemberRole reports whether r can be stored in a membership row.
func ValidMemberRole(r Role) bool {
	return r == RoleEditor || r == RoleViewer
}

func (r Role) HasAccess() bool {
	return r != RoleNone && r != ""
}

func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleEditor
}
