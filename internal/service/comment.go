package service

import (
	"strings"

	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// to mock service in tests
type CommentService interface {
	ForCard(cardId domain.CardId, requesterId domain.UserId) ([]domain.Comment, error)
	Add(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error)
	Delete(commentId domain.CommentId, requesterId domain.UserId) error
}

type CommentStorage interface {
	BoardGetter
	GetList(id domain.ListId) (*domain.List, error)
	GetCard(id domain.CardId) (*domain.Card, error)
	GetComment(id domain.CommentId) (*domain.Comment, error)
	// CommentsByCard returns comments ordered by (created_at, id). Sort
	// direction for display is the caller's concern.
	CommentsByCard(cardId domain.CardId) ([]domain.Comment, error)
	CreateComment(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error)
	DeleteComment(id domain.CommentId) error
}

type Comment struct {
	storage CommentStorage
	access  *access.Resolver
	bus     Publisher
}

func NewComment(storage CommentStorage, resolver *access.Resolver, bus Publisher) *Comment {
	if bus == nil {
		bus = nopPublisher{}
	}
	return &Comment{storage, resolver, bus}
}

// boardForCard walks the existence chain card -> list -> board, which is
// the comment authorization context.
func (c *Comment) boardForCard(cardId domain.CardId) (*domain.Card, *domain.Board, error) {
	card, err := c.storage.GetCard(cardId)
	if err != nil {
		return nil, nil, err
	}
	list, err := c.storage.GetList(card.ListId)
	if err != nil {
		return nil, nil, err
	}
	board, err := c.storage.GetBoard(list.BoardId)
	if err != nil {
		return nil, nil, err
	}
	return card, board, nil
}

func (c *Comment) ForCard(cardId domain.CardId, requesterId domain.UserId) ([]domain.Comment, error) {
	_, board, err := c.boardForCard(cardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireAccess(board, requesterId); err != nil {
		return nil, err
	}
	return c.storage.CommentsByCard(cardId)
}

// Add creates a comment. Viewers cannot comment: writing requires editor
// access even though reading does not.
func (c *Comment) Add(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error) {
	card, board, err := c.boardForCard(cardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireEdit(board, authorId); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, internal_errors.InvalidInput("Comment content is required")
	}

	comment, err := c.storage.CreateComment(cardId, authorId, content)
	if err != nil {
		return nil, err
	}

	c.bus.Publish(events.Event{Type: events.CommentAdded, BoardId: board.Id, ListId: &card.ListId, Payload: comment})
	return comment, nil
}

// Delete is allowed for the comment's author and for anyone with editor
// access to the owning board (owners and editors moderate). A viewer can
// never delete, not even a comment they authored under an earlier,
// higher role.
func (c *Comment) Delete(commentId domain.CommentId, requesterId domain.UserId) error {
	comment, err := c.storage.GetComment(commentId)
	if err != nil {
		return err
	}
	card, board, err := c.boardForCard(comment.CardId)
	if err != nil {
		return err
	}

	role, err := c.access.Resolve(board, requesterId)
	if err != nil {
		return err
	}
	// viewers never delete, their own comments included
	if role == domain.RoleViewer || !role.HasAccess() {
		return internal_errors.Forbidden("Not allowed to delete this comment")
	}
	if !role.CanEdit() && comment.AuthorId != requesterId {
		return internal_errors.Forbidden("Not allowed to delete this comment")
	}

	if err := c.storage.DeleteComment(commentId); err != nil {
		return err
	}

	c.bus.Publish(events.Event{Type: events.CommentDeleted, BoardId: board.Id, ListId: &card.ListId, Payload: map[string]any{"commentID": commentId}})
	return nil
}
