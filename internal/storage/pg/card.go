package pg

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

const cardColumns = `id, list_id, name, description, due_date, status, position, created`

func scanCard(row interface{ Scan(...any) error }, c *domain.Card) error {
	return row.Scan(&c.Id, &c.ListId, &c.Name, &c.Description, &c.DueDate, &c.Status, &c.Position, &c.CreatedAt)
}

func (s *Storage) GetCard(id domain.CardId) (*domain.Card, error) {
	card := &domain.Card{}
	err := scanCard(s.db.QueryRow(
		`SELECT `+cardColumns+` FROM cards WHERE id = $1`, id,
	), card)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("Card not found")
	}
	if err != nil {
		return nil, s.unavailable("get card", err)
	}
	return card, nil
}

func (s *Storage) CardsByList(listId domain.ListId) ([]domain.Card, error) {
	rows, err := s.db.Query(
		`SELECT `+cardColumns+` FROM cards WHERE list_id = $1 ORDER BY position, id`,
		listId,
	)
	if err != nil {
		return nil, s.unavailable("cards by list", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		if err := scanCard(rows, &c); err != nil {
			return nil, s.unavailable("cards by list: scan", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("cards by list: rows", err)
	}
	return cards, nil
}

// CreateCard inserts a card. As with lists, non-positive position means
// append after every sibling, computed inside the insert transaction.
func (s *Storage) CreateCard(listId domain.ListId, name domain.CardName, description string, dueDate *time.Time, status domain.CardStatus, position domain.Position) (*domain.Card, error) {
	card := &domain.Card{
		ListId:      listId,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
	}
	err := s.withTx(func(tx *sql.Tx) error {
		pos := position
		if pos <= 0 {
			err := tx.QueryRow(
				`SELECT COALESCE(MAX(position), 0) + 1 FROM cards WHERE list_id = $1`,
				listId,
			).Scan(&pos)
			if err != nil {
				return s.unavailable("create card: next position", err)
			}
		}
		err := tx.QueryRow(
			`INSERT INTO cards (list_id, name, description, due_date, status, position)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, position, created`,
			listId, name, description, dueDate, status, pos,
		).Scan(&card.Id, &card.Position, &card.CreatedAt)
		if err != nil {
			return s.unavailable("create card", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Storage) UpdateCard(id domain.CardId, patch domain.CardPatch) (*domain.Card, error) {
	card := &domain.Card{}
	err := scanCard(s.db.QueryRow(
		`UPDATE cards SET name = $1, description = $2, due_date = $3, status = $4
		 WHERE id = $5
		 RETURNING `+cardColumns,
		patch.Name, patch.Description, patch.DueDate, patch.Status, id,
	), card)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("Card not found")
	}
	if err != nil {
		return nil, s.unavailable("update card", err)
	}
	return card, nil
}

// SetCardStatus writes only the status column; a concurrent full update
// cannot be clobbered beyond that one field.
func (s *Storage) SetCardStatus(id domain.CardId, status domain.CardStatus) error {
	res, err := s.db.Exec(`UPDATE cards SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return s.unavailable("set card status", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Card not found")
	}
	return nil
}

// MoveCard reparents a card to the target list, appending it after the
// target's existing cards. Position lookup and the move share a
// transaction.
func (s *Storage) MoveCard(id domain.CardId, targetListId domain.ListId) (*domain.Card, error) {
	card := &domain.Card{}
	err := s.withTx(func(tx *sql.Tx) error {
		var pos domain.Position
		err := tx.QueryRow(
			`SELECT COALESCE(MAX(position), 0) + 1 FROM cards WHERE list_id = $1`,
			targetListId,
		).Scan(&pos)
		if err != nil {
			return s.unavailable("move card: next position", err)
		}
		err = scanCard(tx.QueryRow(
			`UPDATE cards SET list_id = $1, position = $2 WHERE id = $3 RETURNING `+cardColumns,
			targetListId, pos, id,
		), card)
		if err == sql.ErrNoRows {
			return internal_errors.NotFound("Card not found")
		}
		if err != nil {
			return s.unavailable("move card", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Storage) ReorderCards(updates []domain.CardPosition) error {
	return s.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`UPDATE cards SET position = $1 WHERE id = $2`)
		if err != nil {
			return s.unavailable("reorder cards: prepare", err)
		}
		defer stmt.Close()

		for _, u := range updates {
			res, err := stmt.Exec(u.Position, u.CardId)
			if err != nil {
				return s.unavailable("reorder cards", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return internal_errors.NotFound("Card not found")
			}
		}
		return nil
	})
}

func (s *Storage) DeleteCard(id domain.CardId) error {
	res, err := s.db.Exec(`DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return s.unavailable("delete card", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Card not found")
	}
	return nil
}

// BoardIdForCards resolves the single board the given cards belong to,
// with the same missing-id and cross-board semantics as BoardIdForLists.
func (s *Storage) BoardIdForCards(ids []domain.CardId) (domain.BoardId, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT l.board_id
		 FROM cards c
		 JOIN lists l ON l.id = c.list_id
		 WHERE c.id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return 0, s.unavailable("board for cards", err)
	}
	defer rows.Close()

	boardIds := []domain.BoardId{}
	for rows.Next() {
		var id domain.BoardId
		if err := rows.Scan(&id); err != nil {
			return 0, s.unavailable("board for cards: scan", err)
		}
		boardIds = append(boardIds, id)
	}
	if err := rows.Err(); err != nil {
		return 0, s.unavailable("board for cards: rows", err)
	}

	switch {
	case len(boardIds) == 0:
		return 0, internal_errors.NotFound("Card not found")
	case len(boardIds) > 1:
		return 0, internal_errors.Conflict("Cards belong to different boards")
	}

	var count int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM cards WHERE id = ANY($1)`,
		pq.Array(ids),
	).Scan(&count); err != nil {
		return 0, s.unavailable("board for cards: count", err)
	}
	if count != len(uniqueIds(ids)) {
		return 0, internal_errors.NotFound("Card not found")
	}

	return boardIds[0], nil
}
