package pg

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

func (s *Storage) GetList(id domain.ListId) (*domain.List, error) {
	list := &domain.List{}
	err := s.db.QueryRow(
		`SELECT id, board_id, name, position, created FROM lists WHERE id = $1`,
		id,
	).Scan(&list.Id, &list.BoardId, &list.Name, &list.Position, &list.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("List not found")
	}
	if err != nil {
		return nil, s.unavailable("get list", err)
	}
	return list, nil
}

// ListsWithCards loads the full board view: every list ordered by
// (position, id) with its cards attached in the same order.
func (s *Storage) ListsWithCards(boardId domain.BoardId) ([]domain.List, error) {
	rows, err := s.db.Query(
		`SELECT id, board_id, name, position, created
		 FROM lists WHERE board_id = $1
		 ORDER BY position, id`,
		boardId,
	)
	if err != nil {
		return nil, s.unavailable("lists with cards: lists", err)
	}
	defer rows.Close()

	lists := []domain.List{}
	index := map[domain.ListId]int{}
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.Id, &l.BoardId, &l.Name, &l.Position, &l.CreatedAt); err != nil {
			return nil, s.unavailable("lists with cards: scan list", err)
		}
		l.Cards = []domain.Card{}
		index[l.Id] = len(lists)
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("lists with cards: list rows", err)
	}

	cardRows, err := s.db.Query(
		`SELECT c.id, c.list_id, c.name, c.description, c.due_date, c.status, c.position, c.created
		 FROM cards c
		 JOIN lists l ON l.id = c.list_id
		 WHERE l.board_id = $1
		 ORDER BY c.position, c.id`,
		boardId,
	)
	if err != nil {
		return nil, s.unavailable("lists with cards: cards", err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var c domain.Card
		err := cardRows.Scan(&c.Id, &c.ListId, &c.Name, &c.Description, &c.DueDate, &c.Status, &c.Position, &c.CreatedAt)
		if err != nil {
			return nil, s.unavailable("lists with cards: scan card", err)
		}
		if i, ok := index[c.ListId]; ok {
			lists[i].Cards = append(lists[i].Cards, c)
		}
	}
	if err := cardRows.Err(); err != nil {
		return nil, s.unavailable("lists with cards: card rows", err)
	}

	return lists, nil
}

// CreateList inserts a list. Non-positive position means append: the
// new list lands after every existing sibling. The max lookup and the
// insert share a transaction so concurrent appends cannot race.
func (s *Storage) CreateList(boardId domain.BoardId, name domain.ListName, position domain.Position) (*domain.List, error) {
	list := &domain.List{BoardId: boardId, Name: name}
	err := s.withTx(func(tx *sql.Tx) error {
		pos := position
		if pos <= 0 {
			err := tx.QueryRow(
				`SELECT COALESCE(MAX(position), 0) + 1 FROM lists WHERE board_id = $1`,
				boardId,
			).Scan(&pos)
			if err != nil {
				return s.unavailable("create list: next position", err)
			}
		}
		err := tx.QueryRow(
			`INSERT INTO lists (board_id, name, position) VALUES ($1, $2, $3) RETURNING id, position, created`,
			boardId, name, pos,
		).Scan(&list.Id, &list.Position, &list.CreatedAt)
		if err != nil {
			return s.unavailable("create list", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	list.Cards = []domain.Card{}
	return list, nil
}

func (s *Storage) RenameList(id domain.ListId, name domain.ListName) error {
	res, err := s.db.Exec(`UPDATE lists SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return s.unavailable("rename list", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("List not found")
	}
	return nil
}

func (s *Storage) DeleteList(id domain.ListId) error {
	res, err := s.db.Exec(`DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return s.unavailable("delete list", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("List not found")
	}
	return nil
}

// BoardIdForLists resolves the single board the given lists belong to.
// A missing id is NotFound; ids spanning more than one board is a
// Conflict, reorders never cross boards.
func (s *Storage) BoardIdForLists(ids []domain.ListId) (domain.BoardId, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT board_id FROM lists WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return 0, s.unavailable("board for lists", err)
	}
	defer rows.Close()

	boardIds := []domain.BoardId{}
	for rows.Next() {
		var id domain.BoardId
		if err := rows.Scan(&id); err != nil {
			return 0, s.unavailable("board for lists: scan", err)
		}
		boardIds = append(boardIds, id)
	}
	if err := rows.Err(); err != nil {
		return 0, s.unavailable("board for lists: rows", err)
	}

	switch {
	case len(boardIds) == 0:
		return 0, internal_errors.NotFound("List not found")
	case len(boardIds) > 1:
		return 0, internal_errors.Conflict("Lists belong to different boards")
	}

	var count int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM lists WHERE id = ANY($1)`,
		pq.Array(ids),
	).Scan(&count); err != nil {
		return 0, s.unavailable("board for lists: count", err)
	}
	if count != len(uniqueIds(ids)) {
		return 0, internal_errors.NotFound("List not found")
	}

	return boardIds[0], nil
}

// ReorderLists assigns position = index for the given order, all in
// one transaction so readers never observe a half-applied order.
func (s *Storage) ReorderLists(orderedIds []domain.ListId) error {
	return s.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`UPDATE lists SET position = $1 WHERE id = $2`)
		if err != nil {
			return s.unavailable("reorder lists: prepare", err)
		}
		defer stmt.Close()

		for i, id := range orderedIds {
			res, err := stmt.Exec(i, id)
			if err != nil {
				return s.unavailable("reorder lists", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return internal_errors.NotFound("List not found")
			}
		}
		return nil
	})
}

func uniqueIds(ids []int64) []int64 {
	seen := map[int64]struct{}{}
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
