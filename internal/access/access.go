// Package access resolves a user's effective role on a board.
//
// Every mutating service operation goes through a Resolver before touching
// state. Resolution fails closed: a lookup error yields RoleNone plus the
// error, never an implicit allow.
package access

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

// MembershipReader is the single storage dependency of role resolution.
// MemberRole returns a NotFound-tagged error when the user has no
// membership row on the board.
type MembershipReader interface {
	MemberRole(boardId domain.BoardId, userId domain.UserId) (domain.Role, error)
}

type Resolver struct {
	memberships MembershipReader
}

func NewResolver(memberships MembershipReader) *Resolver {
	return &Resolver{memberships}
}

// Resolve returns the user's effective role on the board.
// Owner iff board.OwnerId == userId; else the stored membership role if a
// row exists; else RoleNone. A stored row for the owner is ignored, the
// ownership check always wins.
func (r *Resolver) Resolve(board *domain.Board, userId domain.UserId) (domain.Role, error) {
	if board == nil {
		return domain.RoleNone, nil
	}
	if board.OwnerId == userId {
		return domain.RoleOwner, nil
	}

	role, err := r.memberships.MemberRole(board.Id, userId)
	if err != nil {
		if internal_errors.IsKind(err, http.StatusNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, err
	}
	if !domain.ValidMemberRole(role) {
		// a malformed row never grants access
		return domain.RoleNone, nil
	}
	return role, nil
}

// RequireAccess resolves the role and rejects RoleNone with Forbidden.
func (r *Resolver) RequireAccess(board *domain.Board, userId domain.UserId) (domain.Role, error) {
	role, err := r.Resolve(board, userId)
	if err != nil {
		return domain.RoleNone, err
	}
	if !role.HasAccess() {
		return domain.RoleNone, internal_errors.Forbidden("No access to this board")
	}
	return role, nil
}

// RequireEdit resolves the role and rejects anything below Editor.
func (r *Resolver) RequireEdit(board *domain.Board, userId domain.UserId) (domain.Role, error) {
	role, err := r.Resolve(board, userId)
	if err != nil {
		return domain.RoleNone, err
	}
	if !role.CanEdit() {
		return domain.RoleNone, internal_errors.Forbidden("Requires editor access")
	}
	return role, nil
}

// RequireOwner rejects everyone but the board owner.
func (r *Resolver) RequireOwner(board *domain.Board, userId domain.UserId) error {
	role, err := r.Resolve(board, userId)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		return internal_errors.Forbidden("Only the board owner can do this")
	}
	return nil
}
