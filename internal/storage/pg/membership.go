package pg

import (
	"database/sql"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

// MemberRole returns the stored role for (boardId, userId). The owner
// never has a row here; callers resolve ownership from the board itself.
func (s *Storage) MemberRole(boardId domain.BoardId, userId domain.UserId) (domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRow(
		`SELECT role FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardId, userId,
	).Scan(&role)
	if err == sql.ErrNoRows {
		return domain.RoleNone, internal_errors.NotFound("Membership not found")
	}
	if err != nil {
		return domain.RoleNone, s.unavailable("member role", err)
	}
	return role, nil
}

func (s *Storage) Members(boardId domain.BoardId) ([]domain.BoardMember, error) {
	rows, err := s.db.Query(
		`SELECT m.id, m.board_id, m.user_id, m.role, m.added,
		        u.id, u.email, u.full_name, u.created
		 FROM board_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.board_id = $1
		 ORDER BY m.added, m.id`,
		boardId,
	)
	if err != nil {
		return nil, s.unavailable("members", err)
	}
	defer rows.Close()

	members := []domain.BoardMember{}
	for rows.Next() {
		var m domain.BoardMember
		err := rows.Scan(
			&m.Id, &m.BoardId, &m.UserId, &m.Role, &m.AddedAt,
			&m.User.Id, &m.User.Email, &m.User.FullName, &m.User.CreatedAt,
		)
		if err != nil {
			return nil, s.unavailable("members: scan", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("members: rows", err)
	}
	return members, nil
}

func (s *Storage) AddMember(boardId domain.BoardId, userId domain.UserId, role domain.Role) (*domain.BoardMember, error) {
	member := &domain.BoardMember{BoardId: boardId, UserId: userId, Role: role}
	err := s.db.QueryRow(
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3) RETURNING id, added`,
		boardId, userId, role,
	).Scan(&member.Id, &member.AddedAt)
	if isUniqueViolation(err) {
		return nil, internal_errors.Conflict("User is already a member of this board")
	}
	if err != nil {
		return nil, s.unavailable("add member", err)
	}
	return member, nil
}

func (s *Storage) RemoveMember(boardId domain.BoardId, userId domain.UserId) error {
	res, err := s.db.Exec(
		`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardId, userId,
	)
	if err != nil {
		return s.unavailable("remove member", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Membership not found")
	}
	return nil
}

func (s *Storage) UpdateMemberRole(boardId domain.BoardId, userId domain.UserId, role domain.Role) (*domain.BoardMember, error) {
	member := &domain.BoardMember{BoardId: boardId, UserId: userId, Role: role}
	err := s.db.QueryRow(
		`UPDATE board_members SET role = $1 WHERE board_id = $2 AND user_id = $3 RETURNING id, added`,
		role, boardId, userId,
	).Scan(&member.Id, &member.AddedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("Membership not found")
	}
	if err != nil {
		return nil, s.unavailable("update member role", err)
	}
	return member, nil
}
