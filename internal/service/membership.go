package service

import (
	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// to mock service in tests
type MembershipService interface {
	Members(boardId domain.BoardId, requesterId domain.UserId) (*domain.BoardRoster, error)
	Invite(boardId domain.BoardId, requesterId domain.UserId, inviteeEmail domain.Email, role domain.Role) (*domain.BoardMember, error)
	Remove(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId) error
	UpdateRole(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId, newRole domain.Role) (*domain.BoardMember, error)
}

type MembershipStorage interface {
	BoardGetter
	GetUser(id domain.UserId) (*domain.User, error)
	UserByEmail(email domain.Email) (*domain.User, error)
	Members(boardId domain.BoardId) ([]domain.BoardMember, error)
	AddMember(boardId domain.BoardId, userId domain.UserId, role domain.Role) (*domain.BoardMember, error)
	RemoveMember(boardId domain.BoardId, userId domain.UserId) error
	UpdateMemberRole(boardId domain.BoardId, userId domain.UserId, role domain.Role) (*domain.BoardMember, error)
}

// Membership mutations are owner-only on purpose: editors can edit
// content, never the member roster.
type Membership struct {
	storage MembershipStorage
	access  *access.Resolver
	bus     Publisher
}

func NewMembership(storage MembershipStorage, resolver *access.Resolver, bus Publisher) *Membership {
	if bus == nil {
		bus = nopPublisher{}
	}
	return &Membership{storage, resolver, bus}
}

func (m *Membership) Members(boardId domain.BoardId, requesterId domain.UserId) (*domain.BoardRoster, error) {
	board, err := m.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if _, err := m.access.RequireAccess(board, requesterId); err != nil {
		return nil, err
	}

	owner, err := m.storage.GetUser(board.OwnerId)
	if err != nil {
		return nil, err
	}
	members, err := m.storage.Members(boardId)
	if err != nil {
		return nil, err
	}
	return &domain.BoardRoster{Owner: *owner, Members: members}, nil
}

func (m *Membership) Invite(boardId domain.BoardId, requesterId domain.UserId, inviteeEmail domain.Email, role domain.Role) (*domain.BoardMember, error) {
	board, err := m.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if err := m.access.RequireOwner(board, requesterId); err != nil {
		return nil, err
	}

	if role == "" {
		role = domain.RoleEditor
	}
	if !domain.ValidMemberRole(role) {
		return nil, internal_errors.InvalidInput("Role must be editor or viewer")
	}

	invitee, err := m.storage.UserByEmail(inviteeEmail)
	if err != nil {
		return nil, err
	}
	if invitee.Id == board.OwnerId {
		return nil, internal_errors.Conflict("User is already a member of this board")
	}

	member, err := m.storage.AddMember(boardId, invitee.Id, role)
	if err != nil {
		return nil, err
	}
	member.User = *invitee

	m.bus.Publish(events.Event{Type: events.MemberInvited, BoardId: boardId, Payload: member})
	return member, nil
}

// Remove deletes the membership row. Removing a non-member reports
// NotFound so callers can tell a no-op from a removal.
func (m *Membership) Remove(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId) error {
	board, err := m.storage.GetBoard(boardId)
	if err != nil {
		return err
	}
	if err := m.access.RequireOwner(board, requesterId); err != nil {
		return err
	}
	if err := m.storage.RemoveMember(boardId, targetUserId); err != nil {
		return err
	}

	m.bus.Publish(events.Event{Type: events.MemberRemoved, BoardId: boardId, Payload: map[string]any{"userID": targetUserId}})
	return nil
}

func (m *Membership) UpdateRole(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId, newRole domain.Role) (*domain.BoardMember, error) {
	board, err := m.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if err := m.access.RequireOwner(board, requesterId); err != nil {
		return nil, err
	}
	if !domain.ValidMemberRole(newRole) {
		return nil, internal_errors.InvalidInput("Role must be editor or viewer")
	}

	member, err := m.storage.UpdateMemberRole(boardId, targetUserId, newRole)
	if err != nil {
		return nil, err
	}
	target, err := m.storage.GetUser(targetUserId)
	if err != nil {
		return nil, err
	}
	member.User = *target

	m.bus.Publish(events.Event{Type: events.MemberUpdated, BoardId: boardId, Payload: member})
	return member, nil
}
