package service

import (
	"time"

	"github.com/taskboard-dev/taskboard/internal/access"
	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/events"
)

// DueDateLayout is the only accepted due date format.
const DueDateLayout = "2006-01-02"

// DescriptionRenderer turns a card's markdown description into sanitized
// HTML for the outgoing payload.
type DescriptionRenderer interface {
	Render(markdown string) string
}

// to mock service in tests
type CardService interface {
	ByList(listId domain.ListId, requesterId domain.UserId) ([]domain.Card, error)
	Add(listId domain.ListId, requesterId domain.UserId, name domain.CardName, description, dueDate string, position domain.Position) (*domain.Card, error)
	Update(cardId domain.CardId, requesterId domain.UserId, name domain.CardName, description, dueDate string, status domain.CardStatus) (*domain.Card, error)
	SetStatus(cardId domain.CardId, requesterId domain.UserId, status domain.CardStatus) (*domain.Card, error)
	Move(cardId domain.CardId, targetListId domain.ListId, requesterId domain.UserId) (*domain.Card, error)
	Reorder(requesterId domain.UserId, updates []domain.CardPosition) error
	Delete(cardId domain.CardId, requesterId domain.UserId) error
}

type CardStorage interface {
	BoardGetter
	GetList(id domain.ListId) (*domain.List, error)
	GetCard(id domain.CardId) (*domain.Card, error)
	// CardsByList returns cards ordered by (position, id).
	CardsByList(listId domain.ListId) ([]domain.Card, error)
	// CreateCard appends when position is non-positive: the new card gets
	// max(existing position)+1, or 1 in an empty list.
	CreateCard(listId domain.ListId, name domain.CardName, description string, dueDate *time.Time, status domain.CardStatus, position domain.Position) (*domain.Card, error)
	UpdateCard(id domain.CardId, patch domain.CardPatch) (*domain.Card, error)
	// SetCardStatus writes only the status column.
	SetCardStatus(id domain.CardId, status domain.CardStatus) error
	// MoveCard reassigns the card's list and appends it to the target:
	// position = max(target positions)+1, in one transaction.
	MoveCard(id domain.CardId, targetListId domain.ListId) (*domain.Card, error)
	// ReorderCards applies all positions in one transaction.
	ReorderCards(updates []domain.CardPosition) error
	DeleteCard(id domain.CardId) error
	// BoardIdForCards resolves the single board owning all given cards;
	// cards from more than one board yield a Conflict-tagged error.
	BoardIdForCards(ids []domain.CardId) (domain.BoardId, error)
}

type Card struct {
	storage  CardStorage
	access   *access.Resolver
	renderer DescriptionRenderer
	bus      Publisher
}

func NewCard(storage CardStorage, resolver *access.Resolver, renderer DescriptionRenderer, bus Publisher) *Card {
	if bus == nil {
		bus = nopPublisher{}
	}
	return &Card{storage, resolver, renderer, bus}
}

// boardForCard walks the existence chain card -> list -> board.
func (c *Card) boardForCard(cardId domain.CardId) (*domain.Card, *domain.Board, error) {
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

func (c *Card) decorate(card *domain.Card) *domain.Card {
	if c.renderer != nil && card != nil {
		card.DescriptionHTML = c.renderer.Render(card.Description)
	}
	return card
}

func (c *Card) ByList(listId domain.ListId, requesterId domain.UserId) ([]domain.Card, error) {
	list, err := c.storage.GetList(listId)
	if err != nil {
		return nil, err
	}
	board, err := c.storage.GetBoard(list.BoardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireAccess(board, requesterId); err != nil {
		return nil, err
	}

	cards, err := c.storage.CardsByList(listId)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		c.decorate(&cards[i])
	}
	return cards, nil
}

// parseDueDate maps the wire representation to storage semantics:
// empty clears the due date, anything else must be an ISO-8601 date.
func parseDueDate(dueDate string) (*time.Time, error) {
	if dueDate == "" {
		return nil, nil
	}
	t, err := time.Parse(DueDateLayout, dueDate)
	if err != nil {
		return nil, internal_errors.InvalidInput("Due date must be a valid date (YYYY-MM-DD)")
	}
	return &t, nil
}

func (c *Card) Add(listId domain.ListId, requesterId domain.UserId, name domain.CardName, description, dueDate string, position domain.Position) (*domain.Card, error) {
	list, err := c.storage.GetList(listId)
	if err != nil {
		return nil, err
	}
	board, err := c.storage.GetBoard(list.BoardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}
	if err := requireName("Card name", name); err != nil {
		return nil, err
	}
	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, err
	}

	card, err := c.storage.CreateCard(listId, name, description, due, domain.StatusToDo, position)
	if err != nil {
		return nil, err
	}

	c.bus.Publish(events.Event{Type: events.CardCreated, BoardId: board.Id, ListId: &listId, Payload: card})
	return c.decorate(card), nil
}

func (c *Card) Update(cardId domain.CardId, requesterId domain.UserId, name domain.CardName, description, dueDate string, status domain.CardStatus) (*domain.Card, error) {
	card, board, err := c.boardForCard(cardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}
	if err := requireName("Card name", name); err != nil {
		return nil, err
	}
	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, err
	}
	// omitted or unrecognized status falls back to the default
	if !domain.ValidCardStatus(status) {
		status = domain.StatusToDo
	}

	updated, err := c.storage.UpdateCard(cardId, domain.CardPatch{
		Name:        name,
		Description: description,
		DueDate:     due,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	c.bus.Publish(events.Event{Type: events.CardUpdated, BoardId: board.Id, ListId: &card.ListId, Payload: updated})
	return c.decorate(updated), nil
}

// SetStatus is the checkbox hot path: only the status column is written,
// every other field is left untouched.
func (c *Card) SetStatus(cardId domain.CardId, requesterId domain.UserId, status domain.CardStatus) (*domain.Card, error) {
	card, board, err := c.boardForCard(cardId)
	if err != nil {
		return nil, err
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}
	if !domain.ValidCardStatus(status) {
		return nil, internal_errors.InvalidInput(`Status must be "To Do" or "Done"`)
	}
	if err := c.storage.SetCardStatus(cardId, status); err != nil {
		return nil, err
	}
	card.Status = status

	c.bus.Publish(events.Event{Type: events.CardUpdated, BoardId: board.Id, ListId: &card.ListId, Payload: card})
	return c.decorate(card), nil
}

// Move reassigns the card to another list on the same board. The moved
// card always lands at the bottom of the destination list.
func (c *Card) Move(cardId domain.CardId, targetListId domain.ListId, requesterId domain.UserId) (*domain.Card, error) {
	card, board, err := c.boardForCard(cardId)
	if err != nil {
		return nil, err
	}
	target, err := c.storage.GetList(targetListId)
	if err != nil {
		return nil, err
	}
	if target.BoardId != board.Id {
		return nil, internal_errors.Conflict("Cannot move a card to a different board")
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return nil, err
	}

	moved, err := c.storage.MoveCard(cardId, targetListId)
	if err != nil {
		return nil, err
	}

	c.bus.Publish(events.Event{Type: events.CardMoved, BoardId: board.Id, ListId: &targetListId, Payload: map[string]any{
		"card":       moved,
		"fromListID": card.ListId,
	}})
	return c.decorate(moved), nil
}

// Reorder applies caller-supplied positions for one board's cards in a
// single transaction. Last writer wins under concurrent reorders.
func (c *Card) Reorder(requesterId domain.UserId, updates []domain.CardPosition) error {
	if len(updates) == 0 {
		return internal_errors.InvalidInput("Card order is required")
	}
	ids := make([]domain.CardId, len(updates))
	for i, u := range updates {
		ids[i] = u.CardId
	}
	boardId, err := c.storage.BoardIdForCards(ids)
	if err != nil {
		return err
	}
	board, err := c.storage.GetBoard(boardId)
	if err != nil {
		return err
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return err
	}
	if err := c.storage.ReorderCards(updates); err != nil {
		return err
	}

	c.bus.Publish(events.Event{Type: events.CardsReordered, BoardId: boardId, Payload: map[string]any{"updates": updates}})
	return nil
}

// Delete removes the card; its comments go with it through storage cascades.
func (c *Card) Delete(cardId domain.CardId, requesterId domain.UserId) error {
	card, board, err := c.boardForCard(cardId)
	if err != nil {
		return err
	}
	if _, err := c.access.RequireEdit(board, requesterId); err != nil {
		return err
	}
	if err := c.storage.DeleteCard(cardId); err != nil {
		return err
	}

	c.bus.Publish(events.Event{Type: events.CardDeleted, BoardId: board.Id, ListId: &card.ListId, Payload: map[string]any{"cardID": cardId}})
	return nil
}
