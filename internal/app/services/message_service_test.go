package services

import (
	"context"
	"testing"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func msg(id, sender, receiver int64, at time.Time, read bool) *models.Message {
	return &models.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    "hello",
		Read:       read,
		CreatedAt:  at,
	}
}

func TestAssembleConversationsGroupsAndOrders(t *testing.T) {
	// User 1 talks to counterparts 2 and 3. The chat with 3 is more
	// recent and must come first.
	messages := []*models.Message{
		msg(1, 1, 2, base, true),
		msg(2, 2, 1, base.Add(1*time.Minute), false),
		msg(3, 3, 1, base.Add(5*time.Minute), false),
		msg(4, 1, 3, base.Add(2*time.Minute), true),
	}

	conversations := AssembleConversations(1, messages)
	require.Len(t, conversations, 2)

	assert.Equal(t, int64(3), conversations[0].Counterpart.ID)
	assert.Equal(t, int64(3), conversations[0].LastMessage.ID)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	assert.Equal(t, int64(2), conversations[1].Counterpart.ID)
	assert.Equal(t, int64(2), conversations[1].LastMessage.ID)
	assert.Equal(t, 1, conversations[1].UnreadCount)
}

func TestAssembleConversationsTimestampTieBreak(t *testing.T) {
	// Equal timestamps resolve to the lower message id.
	messages := []*models.Message{
		msg(9, 2, 1, base, false),
		msg(4, 1, 2, base, true),
	}

	conversations := AssembleConversations(1, messages)
	require.Len(t, conversations, 1)
	assert.Equal(t, int64(4), conversations[0].LastMessage.ID)
}

func TestAssembleConversationsUnreadCountsInboundOnly(t *testing.T) {
	messages := []*models.Message{
		msg(1, 2, 1, base, false),
		msg(2, 2, 1, base.Add(time.Minute), false),
		msg(3, 1, 2, base.Add(2*time.Minute), false), // outbound, never counted
		msg(4, 2, 1, base.Add(3*time.Minute), true),
	}

	conversations := AssembleConversations(1, messages)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].UnreadCount)
}

func TestAssembleConversationsEmpty(t *testing.T) {
	assert.Empty(t, AssembleConversations(1, nil))
}

func TestSendMessageValidation(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 2, Username: "other", FullName: "Other User"})
	svc := NewMessageService(newFakeMessageStore(), users, &fakeActivities{})
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SendMessage(ctx, 1, &dto.SendMessageRequest{ReceiverID: 1, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SendMessage(ctx, 1, &dto.SendMessageRequest{ReceiverID: 404, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSendMessageRecordsActivity(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 2, Username: "other", FullName: "Other User"})
	store := newFakeMessageStore()
	activities := &fakeActivities{}
	svc := NewMessageService(store, users, activities)

	sent, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "hi"})
	require.NoError(t, err)

	assert.False(t, sent.Read)
	assert.Equal(t, int64(1), sent.SenderID)

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, models.ActivityMessage, activities.recorded[0].Type)
}

func TestConversationsResolvesCounterparts(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 2, Username: "other", FullName: "Other User"})
	store := newFakeMessageStore()
	svc := NewMessageService(store, users, &fakeActivities{})
	ctx := context.Background()

	_, err := store.Create(ctx, msg(0, 2, 1, base, false))
	require.NoError(t, err)

	conversations, err := svc.Conversations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Other User", conversations[0].Counterpart.FullName)
}

func TestMarkConversationRead(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 2, Username: "other"})
	store := newFakeMessageStore()
	svc := NewMessageService(store, users, &fakeActivities{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, msg(0, 2, 1, base.Add(time.Duration(i)*time.Minute), false))
		require.NoError(t, err)
	}
	// Outbound message stays untouched.
	_, err := store.Create(ctx, msg(0, 1, 2, base, false))
	require.NoError(t, err)

	updated, err := svc.MarkConversationRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	// A second call is a no-op.
	updated, err = svc.MarkConversationRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestHistoryRequiresCounterpart(t *testing.T) {
	users := newFakeUserStore()
	svc := NewMessageService(newFakeMessageStore(), users, &fakeActivities{})

	_, err := svc.History(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
