package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	owner := createUser(t)
	board := createBoard(t, owner.Id, "Comments")
	list := createList(t, board.Id, "Todo")
	card := createCard(t, list.Id, "Task")

	comment, err := storage.CreateComment(card.Id, owner.Id, "first!")
	require.NoError(t, err)
	assert.NotZero(t, comment.Id)
	assert.Equal(t, card.Id, comment.CardId)
	assert.Equal(t, owner.Id, comment.AuthorId)
	assert.Equal(t, "first!", comment.Content)
}

func TestCommentsByCard(t *testing.T) {
	owner := createUser(t)
	board := createBoard(t, owner.Id, "Comments")
	list := createList(t, board.Id, "Todo")
	card := createCard(t, list.Id, "Task")
	other := createCard(t, list.Id, "Other")

	first, err := storage.CreateComment(card.Id, owner.Id, "one")
	require.NoError(t, err)
	second, err := storage.CreateComment(card.Id, owner.Id, "two")
	require.NoError(t, err)
	_, err = storage.CreateComment(other.Id, owner.Id, "elsewhere")
	require.NoError(t, err)

	comments, err := storage.CommentsByCard(card.Id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.Id, comments[0].Id)
	assert.Equal(t, second.Id, comments[1].Id)

	t.Run("card without comments gives empty slice", func(t *testing.T) {
		empty := createCard(t, list.Id, "Quiet")
		comments, err := storage.CommentsByCard(empty.Id)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestDeleteComment(t *testing.T) {
	owner := createUser(t)
	board := createBoard(t, owner.Id, "Comments")
	list := createList(t, board.Id, "Todo")
	card := createCard(t, list.Id, "Task")
	comment, err := storage.CreateComment(card.Id, owner.Id, "doomed")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteComment(comment.Id))

	_, err = storage.GetComment(comment.Id)
	requireNotFoundError(t, err)

	t.Run("double delete should 404", func(t *testing.T) {
		requireNotFoundError(t, storage.DeleteComment(comment.Id))
	})
}
