package service

import (
	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// to mock service in tests
type ListService interface {
	ForBoard(boardId domain.BoardId, requesterId domain.UserId) ([]domain.List, error)
	Add(boardId domain.BoardId, requesterId domain.UserId, name domain.ListName, position domain.Position) (*domain.List, error)
	Rename(listId domain.ListId, requesterId domain.UserId, newName domain.ListName) (*domain.List, error)
	Delete(listId domain.ListId, requesterId domain.UserId) error
	Reorder(requesterId domain.UserId, orderedListIds []domain.ListId) error
}

type ListStorage interface {
	BoardGetter
	GetList(id domain.ListId) (*domain.List, error)
	// ListsWithCards returns the board's lists ordered by (position, id),
	// each with its cards attached in (position, id) order.
	ListsWithCards(boardId domain.BoardId) ([]domain.List, error)
	// CreateList appends when position is non-positive: the new list gets
	// max(existing position)+1, or 1 on an empty board.
	CreateList(boardId domain.BoardId, name domain.ListName, position domain.Position) (*domain.List, error)
	RenameList(id domain.ListId, name domain.ListName) error
	DeleteList(id domain.ListId) error
	// BoardIdForLists resolves the single board owning all given lists.
	// Lists from more than one board yield a Conflict-tagged error.
	BoardIdForLists(ids []domain.ListId) (domain.BoardId, error)
	// ReorderLists assigns position = index for each id, atomically.
	ReorderLists(orderedIds []domain.ListId) error
}

type List struct {
	storage  ListStorage
	access   *access.Resolver
	renderer DescriptionRenderer
	bus      Publisher
}

func NewList(storage ListStorage, resolver *access.Resolver, renderer DescriptionRenderer, bus Publisher) *List {
	if bus == nil {
		bus = nopPublisher{}
	}
	return &List{storage, resolver, renderer, bus}
}

// ForBoard returns the board's lists with cards eagerly attached.
// Requires board access; an outsider gets Forbidden, never partial data.
func (l *List) ForBoard(boardId domain.BoardId, requesterId domain.UserId) ([]domain.List, error) {
	board, err := l.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if _, err := l.access.RequireAccess(board, requesterId); err != nil {
		return nil, err
	}

	lists, err := l.storage.ListsWithCards(boardId)
	if err != nil {
		return nil, err
	}
	if l.renderer != nil {
		for i := range lists {
			for j := range lists[i].Cards {
				lists[i].Cards[j].DescriptionHTML = l.renderer.Render(lists[i].Cards[j].Description)
			}
		}
	}
	return lists, nil
}

func (l *List) Add(boardId domain.BoardId, requesterId domain.UserId, name domain.ListName, position domain.Position) (*domain.List, error) {
	board, err := l.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if _, err := l.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}
	if err := requireName("List name", name); err != nil {
		return nil, err
	}

	list, err := l.storage.CreateList(boardId, name, position)
	if err != nil {
		return nil, err
	}

	l.bus.Publish(events.Event{Type: events.ListCreated, BoardId: boardId, ListId: &list.Id, Payload: list})
	return list, nil
}

func (l *List) Rename(listId domain.ListId, requesterId domain.UserId, newName domain.ListName) (*domain.List, error) {
	list, err := l.storage.GetList(listId)
	if err != nil {
		return nil, err
	}
	board, err := l.storage.GetBoard(list.BoardId)
	if err != nil {
		return nil, err
	}
	if _, err := l.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}
	if err := requireName("List name", newName); err != nil {
		return nil, err
	}
	if err := l.storage.RenameList(listId, newName); err != nil {
		return nil, err
	}
	list.Name = newName

	l.bus.Publish(events.Event{Type: events.ListRenamed, BoardId: list.BoardId, ListId: &list.Id, Payload: list})
	return list, nil
}

// Delete removes the list and, through storage cascades, its cards and
// their comments. A missing list reports NotFound distinctly from success.
func (l *List) Delete(listId domain.ListId, requesterId domain.UserId) error {
	list, err := l.storage.GetList(listId)
	if err != nil {
		return err
	}
	board, err := l.storage.GetBoard(list.BoardId)
	if err != nil {
		return err
	}
	if _, err := l.access.RequireEdit(board, requesterId); err != nil {
		return err
	}
	if err := l.storage.DeleteList(listId); err != nil {
		return err
	}

	l.bus.Publish(events.Event{Type: events.ListDeleted, BoardId: list.BoardId, ListId: &list.Id})
	return nil
}

// Reorder applies a full ordering for one board's lists: position = index.
// Last writer wins under concurrent reorders; no merge is attempted.
func (l *List) Reorder(requesterId domain.UserId, orderedListIds []domain.ListId) error {
	if len(orderedListIds) == 0 {
		return internal_errors.InvalidInput("List order is required")
	}
	boardId, err := l.storage.BoardIdForLists(orderedListIds)
	if err != nil {
		return err
	}
	board, err := l.storage.GetBoard(boardId)
	if err != nil {
		return err
	}
	if _, err := l.access.RequireEdit(board, requesterId); err != nil {
		return err
	}
	if err := l.storage.ReorderLists(orderedListIds); err != nil {
		return err
	}

	l.bus.Publish(events.Event{Type: events.ListsReordered, BoardId: boardId, Payload: map[string]any{"order": orderedListIds}})
	return nil
}
