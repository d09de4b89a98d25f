package service

import (
	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// to mock service in tests
type BoardService interface {
	Create(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error)
	Get(boardId domain.BoardId, requesterId domain.UserId) (*domain.Board, error)
	Rename(boardId domain.BoardId, requesterId domain.UserId, newName domain.BoardName) (*domain.Board, error)
	Delete(boardId domain.BoardId, requesterId domain.UserId) error
	ForUser(userId domain.UserId) (*domain.BoardsForUser, error)
}

type BoardStorage interface {
	BoardGetter
	CreateBoard(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error)
	RenameBoard(id domain.BoardId, name domain.BoardName) error
	DeleteBoard(id domain.BoardId) error
	BoardsForUser(userId domain.UserId) (*domain.BoardsForUser, error)
}

type Board struct {
	storage BoardStorage
	access  *access.Resolver
	bus     Publisher
}

func NewBoard(storage BoardStorage, resolver *access.Resolver, bus Publisher) *Board {
	if bus == nil {
		bus = nopPublisher{}
	}
	return &Board{storage, resolver, bus}
}

func (b *Board) Create(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error) {
	if err := requireName("Board name", name); err != nil {
		return nil, err
	}
	return b.storage.CreateBoard(ownerId, name)
}

// Get returns board metadata after an access check. Viewers included.
func (b *Board) Get(boardId domain.BoardId, requesterId domain.UserId) (*domain.Board, error) {
	board, err := b.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if _, err := b.access.RequireAccess(board, requesterId); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Board) Rename(boardId domain.BoardId, requesterId domain.UserId, newName domain.BoardName) (*domain.Board, error) {
	board, err := b.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if err := b.access.RequireOwner(board, requesterId); err != nil {
		return nil, err
	}
	if err := requireName("Board name", newName); err != nil {
		return nil, err
	}
	if err := b.storage.RenameBoard(boardId, newName); err != nil {
		return nil, err
	}
	board.Name = newName

	b.bus.Publish(events.Event{Type: events.BoardRenamed, BoardId: boardId, Payload: board})
	return board, nil
}

// Delete removes the board and, through storage cascades, all its lists,
// cards, comments and membership rows.
func (b *Board) Delete(boardId domain.BoardId, requesterId domain.UserId) error {
	board, err := b.storage.GetBoard(boardId)
	if err != nil {
		return err
	}
	if err := b.access.RequireOwner(board, requesterId); err != nil {
		return err
	}
	if err := b.storage.DeleteBoard(boardId); err != nil {
		return err
	}

	b.bus.Publish(events.Event{Type: events.BoardDeleted, BoardId: boardId})
	return nil
}

func (b *Board) ForUser(userId domain.UserId) (*domain.BoardsForUser, error) {
	boards, err := b.storage.BoardsForUser(userId)
	if err != nil {
		return nil, err
	}
	// A stray membership row for the owner must never surface the board
	// in the shared set.
	shared := boards.Shared[:0]
	for _, board := range boards.Shared {
		if board.OwnerId != userId {
			shared = append(shared, board)
		}
	}
	boards.Shared = shared
	return boards, nil
}
