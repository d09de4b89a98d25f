package service

import (
	"testing"

	"github.com/taskboard-dev/taskboard/internal/domain"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
)

// MockListStorage mocks the ListStorage interface.
type MockListStorage struct {
	getBoardFunc        func(id domain.BoardId) (*domain.Board, error)
	getListFunc         func(id domain.ListId) (*domain.List, error)
	listsWithCardsFunc  func(boardId domain.BoardId) ([]domain.List, error)
	createListFunc      func(boardId domain.BoardId, name domain.ListName, position domain.Position) (*domain.List, error)
	renameListFunc      func(id domain.ListId, name domain.ListName) error
	deleteListFunc      func(id domain.ListId) error
	boardIdForListsFunc func(ids []domain.ListId) (domain.BoardId, error)
	reorderListsFunc    func(orderedIds []domain.ListId) error
}

func (m *MockListStorage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(id)
	}
	return &domain.Board{Id: id, OwnerId: 1, Name: "Sprint"}, nil
}

func (m *MockListStorage) GetList(id domain.ListId) (*domain.List, error) {
	if m.getListFunc != nil {
		return m.getListFunc(id)
	}
	return &domain.List{Id: id, BoardId: 1, Name: "Todo"}, nil
}

func (m *MockListStorage) ListsWithCards(boardId domain.BoardId) ([]domain.List, error) {
	if m.listsWithCardsFunc != nil {
		return m.listsWithCardsFunc(boardId)
	}
	return nil, nil
}

func (m *MockListStorage) CreateList(boardId domain.BoardId, name domain.ListName, position domain.Position) (*domain.List, error) {
	if m.createListFunc != nil {
		return m.createListFunc(boardId, name, position)
	}
	if position <= 0 {
		position = 1
	}
	return &domain.List{Id: 10, BoardId: boardId, Name: name, Position: position}, nil
}

func (m *MockListStorage) RenameList(id domain.ListId, name domain.ListName) error {
	if m.renameListFunc != nil {
		return m.renameListFunc(id, name)
	}
	return nil
}

func (m *MockListStorage) DeleteList(id domain.ListId) error {
	if m.deleteListFunc != nil {
		return m.deleteListFunc(id)
	}
	return nil
}

func (m *MockListStorage) BoardIdForLists(ids []domain.ListId) (domain.BoardId, error) {
	if m.boardIdForListsFunc != nil {
		return m.boardIdForListsFunc(ids)
	}
	return 1, nil
}

func (m *MockListStorage) ReorderLists(orderedIds []domain.ListId) error {
	if m.reorderListsFunc != nil {
		return m.reorderListsFunc(orderedIds)
	}
	return nil
}

func TestListForBoard(t *testing.T) {
	mockStorage := &MockListStorage{
		listsWithCardsFunc: func(boardId domain.BoardId) ([]domain.List, error) {
			return []domain.List{
				{Id: 1, BoardId: boardId, Name: "Todo", Position: 1, Cards: []domain.Card{
					{Id: 1, ListId: 1, Name: "A", Description: "desc", Position: 1},
				}},
			}, nil
		},
	}

	t.Run("Viewer Reads Lists With Cards", func(t *testing.T) {
		s := NewList(mockStorage, testResolver(roleTable{3: domain.RoleViewer}), plainRenderer{}, nil)
		lists, err := s.ForBoard(1, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lists) != 1 || len(lists[0].Cards) != 1 {
			t.Fatalf("expected lists with cards attached, got %+v", lists)
		}
		if lists[0].Cards[0].DescriptionHTML != "<p>desc</p>" {
			t.Errorf("card descriptions must be rendered, got %q", lists[0].Cards[0].DescriptionHTML)
		}
	})

	// user with no membership gets Forbidden, never partial data
	t.Run("Outsider Denied", func(t *testing.T) {
		s := NewList(mockStorage, testResolver(nil), nil, nil)
		lists, err := s.ForBoard(1, 99)
		if internal_errors.StatusCode(err) != 403 {
			t.Fatalf("expected 403, got %v", err)
		}
		if lists != nil {
			t.Error("denied read must not return data")
		}
	})
}

func TestListAdd(t *testing.T) {
	testCases := []struct {
		name        string
		requesterId domain.UserId
		listName    string
		position    domain.Position
		wantPos     domain.Position
		wantStatus  int
	}{
		{name: "Owner Appends", requesterId: 1, listName: "Todo", wantPos: 1},
		{name: "Editor Appends", requesterId: 2, listName: "Doing", wantPos: 1},
		{name: "Explicit Position Kept", requesterId: 1, listName: "Done", position: 5, wantPos: 5},
		{name: "Viewer Denied", requesterId: 3, listName: "Todo", wantStatus: 403},
		{name: "Empty Name", requesterId: 1, listName: " ", wantStatus: 400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &recordingBus{}
			s := NewList(&MockListStorage{}, testResolver(roleTable{2: domain.RoleEditor, 3: domain.RoleViewer}), nil, bus)

			list, err := s.Add(1, tc.requesterId, tc.listName, tc.position)

			if tc.wantStatus != 0 {
				if internal_errors.StatusCode(err) != tc.wantStatus {
					t.Fatalf("expected status %d, got %v", tc.wantStatus, err)
				}
				if len(bus.published) != 0 {
					t.Error("no event must be published on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if list.Position != tc.wantPos {
				t.Errorf("expected position %d, got %d", tc.wantPos, list.Position)
			}
			if len(bus.published) != 1 || bus.published[0].Type != "list.created" {
				t.Errorf("expected list.created event, got %v", bus.types())
			}
		})
	}
}

func TestListRename(t *testing.T) {
	t.Run("Empty Name Leaves List Unchanged", func(t *testing.T) {
		renamed := false
		mockStorage := &MockListStorage{
			renameListFunc: func(domain.ListId, domain.ListName) error {
				renamed = true
				return nil
			},
		}
		s := NewList(mockStorage, testResolver(nil), nil, nil)

		_, err := s.Rename(1, 1, "")
		if internal_errors.StatusCode(err) != 400 {
			t.Fatalf("expected 400, got %v", err)
		}
		if renamed {
			t.Error("empty rename must not reach storage")
		}
	})

	t.Run("Editor Renames", func(t *testing.T) {
		s := NewList(&MockListStorage{}, testResolver(roleTable{2: domain.RoleEditor}), nil, nil)
		list, err := s.Rename(1, 2, "Backlog")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Name != "Backlog" {
			t.Errorf("expected renamed list, got %q", list.Name)
		}
	})
}

func TestListDelete(t *testing.T) {
	t.Run("Missing List Reports NotFound", func(t *testing.T) {
		mockStorage := &MockListStorage{
			getListFunc: func(id domain.ListId) (*domain.List, error) {
				return nil, internal_errors.NotFound("List not found")
			},
		}
		s := NewList(mockStorage, testResolver(nil), nil, nil)
		err := s.Delete(42, 1)
		if internal_errors.StatusCode(err) != 404 {
			t.Fatalf("expected 404, got %v", err)
		}
	})

	t.Run("Viewer Denied", func(t *testing.T) {
		s := NewList(&MockListStorage{}, testResolver(roleTable{3: domain.RoleViewer}), nil, nil)
		err := s.Delete(1, 3)
		if internal_errors.StatusCode(err) != 403 {
			t.Fatalf("expected 403, got %v", err)
		}
	})
}

func TestListReorder(t *testing.T) {
	testCases := []struct {
		name        string
		requesterId domain.UserId
		orderedIds  []domain.ListId
		boardIdErr  error
		wantStatus  int
	}{
		{name: "Editor Reorders", requesterId: 2, orderedIds: []domain.ListId{3, 1, 2}},
		{name: "Viewer Denied", requesterId: 3, orderedIds: []domain.ListId{3, 1, 2}, wantStatus: 403},
		{name: "Empty Order", requesterId: 1, orderedIds: nil, wantStatus: 400},
		{name: "Lists Across Boards", requesterId: 1, orderedIds: []domain.ListId{1, 9}, boardIdErr: internal_errors.Conflict("Lists belong to different boards"), wantStatus: 409},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var applied []domain.ListId
			mockStorage := &MockListStorage{
				boardIdForListsFunc: func(ids []domain.ListId) (domain.BoardId, error) {
					if tc.boardIdErr != nil {
						return 0, tc.boardIdErr
					}
					return 1, nil
				},
				reorderListsFunc: func(orderedIds []domain.ListId) error {
					applied = orderedIds
					return nil
				},
			}
			s := NewList(mockStorage, testResolver(roleTable{2: domain.RoleEditor, 3: domain.RoleViewer}), nil, nil)

			err := s.Reorder(tc.requesterId, tc.orderedIds)

			if tc.wantStatus != 0 {
				if internal_errors.StatusCode(err) != tc.wantStatus {
					t.Fatalf("expected status %d, got %v", tc.wantStatus, err)
				}
				if applied != nil {
					t.Error("rejected reorder must not reach storage")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(applied) != len(tc.orderedIds) {
				t.Errorf("expected full ordering applied, got %v", applied)
			}
		})
	}
}
