package pg

import (
	"database/sql"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

func (s *Storage) GetComment(id domain.CommentId) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := s.db.QueryRow(
		`SELECT id, card_id, author_id, content, created FROM comments WHERE id = $1`,
		id,
	).Scan(&comment.Id, &comment.CardId, &comment.AuthorId, &comment.Content, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, internal_errors.NotFound("Comment not found")
	}
	if err != nil {
		return nil, s.unavailable("get comment", err)
	}
	return comment, nil
}

func (s *Storage) CommentsByCard(cardId domain.CardId) ([]domain.Comment, error) {
	rows, err := s.db.Query(
		`SELECT id, card_id, author_id, content, created
		 FROM comments WHERE card_id = $1
		 ORDER BY created, id`,
		cardId,
	)
	if err != nil {
		return nil, s.unavailable("comments by card", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.CardId, &c.AuthorId, &c.Content, &c.CreatedAt); err != nil {
			return nil, s.unavailable("comments by card: scan", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("comments by card: rows", err)
	}
	return comments, nil
}

func (s *Storage) CreateComment(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error) {
	comment := &domain.Comment{CardId: cardId, AuthorId: authorId, Content: content}
	err := s.db.QueryRow(
		`INSERT INTO comments (card_id, author_id, content) VALUES ($1, $2, $3) RETURNING id, created`,
		cardId, authorId, content,
	).Scan(&comment.Id, &comment.CreatedAt)
	if err != nil {
		return nil, s.unavailable("create comment", err)
	}
	return comment, nil
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	res, err := s.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return s.unavailable("delete comment", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return internal_errors.NotFound("Comment not found")
	}
	return nil
}
