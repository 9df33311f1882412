package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/pkg/domain/model"
	"bakery/pkg/domain/service"
)

func TestComments(t *testing.T) {
	ctx := context.Background()
	repo := newMockCommentRepository()
	products := newMockProductRepository()
	dispatcher := &mockEventDispatcher{}
	commentService := service.NewCommentService(repo, products, dispatcher)
	bread := products.add("Baguette", 0)

	comment, err := commentService.CreateComment(ctx, customer, bread.ID, "Crunchy!")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, comment.UserID)
	require.Len(t, dispatcher.events, 1)

	_, err = commentService.CreateComment(ctx, customer, 99, "Where is it?")
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	_, err = commentService.CreateComment(ctx, customer, bread.ID, "")
	assert.ErrorIs(t, err, service.ErrRequired)

	comments, err := commentService.ListComments(ctx, bread.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	_, err = commentService.EditComment(ctx, stranger, bread.ID, comment.ID, "Soggy")
	assert.ErrorIs(t, err, service.ErrNotAuthorized)

	edited, err := commentService.EditComment(ctx, customer, bread.ID, comment.ID, "Very crunchy!")
	require.NoError(t, err)
	assert.Equal(t, "Very crunchy!", repo.store[comment.ID].Message)
	assert.Equal(t, edited.Message, repo.store[comment.ID].Message)

	err = commentService.DeleteComment(ctx, admin, bread.ID+1, comment.ID)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)

	require.NoError(t, commentService.DeleteComment(ctx, admin, bread.ID, comment.ID))
	assert.Empty(t, repo.store)
}
