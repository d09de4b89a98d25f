package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/middleware"
)

// authedRequest builds a request with a user already in the context,
// as the auth middleware would leave it.
func authedRequest(method, target string, body io.Reader, user *domain.User) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserClaimsKey, user)
	return req.WithContext(ctx)
}

var testUser = &domain.User{Id: 1, Email: "test@example.com", FullName: "Test User"}

type MockBoardService struct {
	MockCreate  func(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error)
	MockGet     func(boardId domain.BoardId, requesterId domain.UserId) (*domain.Board, error)
	MockRename  func(boardId domain.BoardId, requesterId domain.UserId, newName domain.BoardName) (*domain.Board, error)
	MockDelete  func(boardId domain.BoardId, requesterId domain.UserId) error
	MockForUser func(userId domain.UserId) (*domain.BoardsForUser, error)
}

func (m *MockBoardService) Create(ownerId domain.UserId, name domain.BoardName) (*domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ownerId, name)
	}
	return &domain.Board{Id: 1, OwnerId: ownerId, Name: name}, nil
}

func (m *MockBoardService) Get(boardId domain.BoardId, requesterId domain.UserId) (*domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(boardId, requesterId)
	}
	return &domain.Board{Id: boardId, OwnerId: 1, Name: "Sprint"}, nil
}

func (m *MockBoardService) Rename(boardId domain.BoardId, requesterId domain.UserId, newName domain.BoardName) (*domain.Board, error) {
	if m.MockRename != nil {
		return m.MockRename(boardId, requesterId, newName)
	}
	return &domain.Board{Id: boardId, OwnerId: 1, Name: newName}, nil
}

func (m *MockBoardService) Delete(boardId domain.BoardId, requesterId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(boardId, requesterId)
	}
	return nil
}

func (m *MockBoardService) ForUser(userId domain.UserId) (*domain.BoardsForUser, error) {
	if m.MockForUser != nil {
		return m.MockForUser(userId)
	}
	return &domain.BoardsForUser{Owned: []domain.Board{}, Shared: []domain.Board{}}, nil
}

type MockMembershipService struct {
	MockMembers    func(boardId domain.BoardId, requesterId domain.UserId) (*domain.BoardRoster, error)
	MockInvite     func(boardId domain.BoardId, requesterId domain.UserId, inviteeEmail domain.Email, role domain.Role) (*domain.BoardMember, error)
	MockRemove     func(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId) error
	MockUpdateRole func(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId, newRole domain.Role) (*domain.BoardMember, error)
}

func (m *MockMembershipService) Members(boardId domain.BoardId, requesterId domain.UserId) (*domain.BoardRoster, error) {
	if m.MockMembers != nil {
		return m.MockMembers(boardId, requesterId)
	}
	return &domain.BoardRoster{Owner: *testUser, Members: []domain.BoardMember{}}, nil
}

func (m *MockMembershipService) Invite(boardId domain.BoardId, requesterId domain.UserId, inviteeEmail domain.Email, role domain.Role) (*domain.BoardMember, error) {
	if m.MockInvite != nil {
		return m.MockInvite(boardId, requesterId, inviteeEmail, role)
	}
	return &domain.BoardMember{Id: 1, BoardId: boardId, UserId: 2, Role: role}, nil
}

func (m *MockMembershipService) Remove(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId) error {
	if m.MockRemove != nil {
		return m.MockRemove(boardId, requesterId, targetUserId)
	}
	return nil
}

func (m *MockMembershipService) UpdateRole(boardId domain.BoardId, requesterId domain.UserId, targetUserId domain.UserId, newRole domain.Role) (*domain.BoardMember, error) {
	if m.MockUpdateRole != nil {
		return m.MockUpdateRole(boardId, requesterId, targetUserId, newRole)
	}
	return &domain.BoardMember{Id: 1, BoardId: boardId, UserId: targetUserId, Role: newRole}, nil
}

type MockListService struct {
	MockForBoard func(boardId domain.BoardId, requesterId domain.UserId) ([]domain.List, error)
	MockAdd      func(boardId domain.BoardId, requesterId domain.UserId, name domain.ListName, position domain.Position) (*domain.List, error)
	MockRename   func(listId domain.ListId, requesterId domain.UserId, newName domain.ListName) (*domain.List, error)
	MockDelete   func(listId domain.ListId, requesterId domain.UserId) error
	MockReorder  func(requesterId domain.UserId, orderedListIds []domain.ListId) error
}

func (m *MockListService) ForBoard(boardId domain.BoardId, requesterId domain.UserId) ([]domain.List, error) {
	if m.MockForBoard != nil {
		return m.MockForBoard(boardId, requesterId)
	}
	return []domain.List{}, nil
}

func (m *MockListService) Add(boardId domain.BoardId, requesterId domain.UserId, name domain.ListName, position domain.Position) (*domain.List, error) {
	if m.MockAdd != nil {
		return m.MockAdd(boardId, requesterId, name, position)
	}
	return &domain.List{Id: 1, BoardId: boardId, Name: name, Position: 1}, nil
}

func (m *MockListService) Rename(listId domain.ListId, requesterId domain.UserId, newName domain.ListName) (*domain.List, error) {
	if m.MockRename != nil {
		return m.MockRename(listId, requesterId, newName)
	}
	return &domain.List{Id: listId, BoardId: 1, Name: newName}, nil
}

func (m *MockListService) Delete(listId domain.ListId, requesterId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(listId, requesterId)
	}
	return nil
}

func (m *MockListService) Reorder(requesterId domain.UserId, orderedListIds []domain.ListId) error {
	if m.MockReorder != nil {
		return m.MockReorder(requesterId, orderedListIds)
	}
	return nil
}

type MockCardService struct {
	MockByList    func(listId domain.ListId, requesterId domain.UserId) ([]domain.Card, error)
	MockAdd       func(listId domain.ListId, requesterId domain.UserId, name domain.CardName, description, dueDate string, position domain.Position) (*domain.Card, error)
	MockUpdate    func(cardId domain.CardId, requesterId domain.UserId, name domain.CardName, description, dueDate string, status domain.CardStatus) (*domain.Card, error)
	MockSetStatus func(cardId domain.CardId, requesterId domain.UserId, status domain.CardStatus) (*domain.Card, error)
	MockMove      func(cardId domain.CardId, targetListId domain.ListId, requesterId domain.UserId) (*domain.Card, error)
	MockReorder   func(requesterId domain.UserId, updates []domain.CardPosition) error
	MockDelete    func(cardId domain.CardId, requesterId domain.UserId) error
}

func (m *MockCardService) ByList(listId domain.ListId, requesterId domain.UserId) ([]domain.Card, error) {
	if m.MockByList != nil {
		return m.MockByList(listId, requesterId)
	}
	return []domain.Card{}, nil
}

func (m *MockCardService) Add(listId domain.ListId, requesterId domain.UserId, name domain.CardName, description, dueDate string, position domain.Position) (*domain.Card, error) {
	if m.MockAdd != nil {
		return m.MockAdd(listId, requesterId, name, description, dueDate, position)
	}
	return &domain.Card{Id: 1, ListId: listId, Name: name, Status: domain.StatusToDo, Position: 1}, nil
}

func (m *MockCardService) Update(cardId domain.CardId, requesterId domain.UserId, name domain.CardName, description, dueDate string, status domain.CardStatus) (*domain.Card, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(cardId, requesterId, name, description, dueDate, status)
	}
	return &domain.Card{Id: cardId, ListId: 1, Name: name, Status: status}, nil
}

func (m *MockCardService) SetStatus(cardId domain.CardId, requesterId domain.UserId, status domain.CardStatus) (*domain.Card, error) {
	if m.MockSetStatus != nil {
		return m.MockSetStatus(cardId, requesterId, status)
	}
	return &domain.Card{Id: cardId, ListId: 1, Name: "Task", Status: status}, nil
}

func (m *MockCardService) Move(cardId domain.CardId, targetListId domain.ListId, requesterId domain.UserId) (*domain.Card, error) {
	if m.MockMove != nil {
		return m.MockMove(cardId, targetListId, requesterId)
	}
	return &domain.Card{Id: cardId, ListId: targetListId, Name: "Task", Position: 1}, nil
}

func (m *MockCardService) Reorder(requesterId domain.UserId, updates []domain.CardPosition) error {
	if m.MockReorder != nil {
		return m.MockReorder(requesterId, updates)
	}
	return nil
}

func (m *MockCardService) Delete(cardId domain.CardId, requesterId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(cardId, requesterId)
	}
	return nil
}

type MockCommentService struct {
	MockForCard func(cardId domain.CardId, requesterId domain.UserId) ([]domain.Comment, error)
	MockAdd     func(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error)
	MockDelete  func(commentId domain.CommentId, requesterId domain.UserId) error
}

func (m *MockCommentService) ForCard(cardId domain.CardId, requesterId domain.UserId) ([]domain.Comment, error) {
	if m.MockForCard != nil {
		return m.MockForCard(cardId, requesterId)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentService) Add(cardId domain.CardId, authorId domain.UserId, content string) (*domain.Comment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(cardId, authorId, content)
	}
	return &domain.Comment{Id: 1, CardId: cardId, AuthorId: authorId, Content: content}, nil
}

func (m *MockCommentService) Delete(commentId domain.CommentId, requesterId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(commentId, requesterId)
	}
	return nil
}

type MockAuthService struct {
	MockRegister func(email domain.Email, password domain.Password, fullName string) (*domain.User, error)
	MockLogin    func(email domain.Email, password domain.Password) (*domain.User, error)
}

func (m *MockAuthService) Register(email domain.Email, password domain.Password, fullName string) (*domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(email, password, fullName)
	}
	return &domain.User{Id: 1, Email: email, FullName: fullName}, nil
}

func (m *MockAuthService) Login(email domain.Email, password domain.Password) (*domain.User, error) {
	if m.MockLogin != nil {
		return m.MockLogin(email, password)
	}
	return &domain.User{Id: 1, Email: email}, nil
}
