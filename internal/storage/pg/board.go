package pg

import (
	"database/sql"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

func (s *Storage) CreateBoard(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error) {
	board := &domain.Board{OwnerId: ownerId, Name: name}
	err := s.db.QueryRow(
		`INSERT INTO boards (owner_id, name) VALUES ($1, $2) RETURNING id, created`,
		ownerId, name,
	).Scan(&board.Id, &board.CreatedAt)
	if err != nil {
		return nil, s.unavailable("create board", err)
	}
	return board, nil
}

func (s *Storage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	board := &domain.Board{}
	err := s.db.QueryRow(
		`SELECT id, owner_id, name, created FROM boards WHERE id = $1`,
		id,
	).Scan(&board.Id, &board.OwnerId, &board.Name, &board.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("Board not found")
	}
	if err != nil {
		return nil, s.unavailable("get board", err)
	}
	return board, nil
}

func (s *Storage) RenameBoard(id domain.BoardId, name domain.BoardName) error {
	res, err := s.db.Exec(`UPDATE boards SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return s.unavailable("rename board", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

// DeleteBoard removes the board; lists, cards, comments and membership
// rows go with it through the cascading foreign keys.
func (s *Storage) DeleteBoard(id domain.BoardId) error {
	res, err := s.db.Exec(`DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return s.unavailable("delete board", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}

func (s *Storage) BoardsForUser(userId domain.UserId) (*domain.BoardsForUser, error) {
	boards := &domain.BoardsForUser{
		Owned:  []domain.Board{},
		Shared: []domain.Board{},
	}

	owned, err := s.queryBoards(
		`SELECT id, owner_id, name, created FROM boards WHERE owner_id = $1 ORDER BY created, id`,
		userId,
	)
	if err != nil {
		return nil, s.unavailable("boards for user: owned", err)
	}
	boards.Owned = owned

	shared, err := s.queryBoards(
		`SELECT b.id, b.owner_id, b.name, b.created
		 FROM boards b
		 JOIN board_members m ON m.board_id = b.id
		 WHERE m.user_id = $1
		 ORDER BY b.created, b.id`,
		userId,
	)
	if err != nil {
		return nil, s.unavailable("boards for user: shared", err)
	}
	boards.Shared = shared

	return boards, nil
}

func (s *Storage) queryBoards(query string, args ...any) ([]domain.Board, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.OwnerId, &b.Name, &b.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}
