package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

type messageStore interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Message, error)
	ListBetween(ctx context.Context, a, b int64) ([]*models.Message, error)
	MarkConversationRead(ctx context.Context, userID, counterpartID int64) (int64, error)
}

type userStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// MessageService defines the interface for messaging operations
type MessageService interface {
	SendMessage(ctx context.Context, actorID int64, req *dto.SendMessageRequest) (*models.Message, error)
	Conversations(ctx context.Context, actorID int64) ([]*models.Conversation, error)
	History(ctx context.Context, actorID, counterpartID int64) ([]*models.Message, error)
	MarkConversationRead(ctx context.Context, actorID, counterpartID int64) (int64, error)
}

type messageServiceImpl struct {
	messageRepo messageStore
	userRepo    userStore
	activities  ActivityService
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo messageStore, userRepo userStore, activities ActivityService) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		activities:  activities,
	}
}

// SendMessage creates a message and records a "message" activity
func (s *messageServiceImpl) SendMessage(ctx context.Context, actorID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.ReceiverID == actorID {
		return nil, fmt.Errorf("%w: cannot message yourself", apperrors.ErrValidationFailed)
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving receiver: %w", err)
	}

	message := &models.Message{
		SenderID:   actorID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
		Read:       false,
	}

	if _, err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityMessage,
		Title:       "Message sent",
		Description: fmt.Sprintf("To %s", receiver.FullName),
		UserID:      actorID,
	})

	return message, nil
}

// Conversations assembles per-counterpart summaries for the actor,
// most recently active first.
func (s *messageServiceImpl) Conversations(ctx context.Context, actorID int64) ([]*models.Conversation, error) {
	messages, err := s.messageRepo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	conversations := AssembleConversations(actorID, messages)

	for _, conv := range conversations {
		counterpart, err := s.userRepo.GetByID(ctx, conv.Counterpart.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				// Counterpart account is gone; keep the stub with just the id.
				continue
			}
			return nil, fmt.Errorf("error retrieving counterpart: %w", err)
		}
		conv.Counterpart = counterpart
	}

	return conversations, nil
}

// History retrieves the full bidirectional history with a counterpart,
// oldest first.
func (s *messageServiceImpl) History(ctx context.Context, actorID, counterpartID int64) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, counterpartID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving counterpart: %w", err)
	}

	messages, err := s.messageRepo.ListBetween(ctx, actorID, counterpartID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}

// MarkConversationRead flags the counterpart's unread messages to the
// actor as read.
func (s *messageServiceImpl) MarkConversationRead(ctx context.Context, actorID, counterpartID int64) (int64, error) {
	updated, err := s.messageRepo.MarkConversationRead(ctx, actorID, counterpartID)
	if err != nil {
		return 0, fmt.Errorf("error marking conversation read: %w", err)
	}
	return updated, nil
}

// AssembleConversations groups a flat message sequence into
// per-counterpart summaries. Within each group the representative
// message is the one with the greatest createdAt (equal timestamps
// resolved by ascending id); groups are ordered by that message's
// createdAt descending. Counterpart entries carry only the id; callers
// resolve the full user record.
func AssembleConversations(userID int64, messages []*models.Message) []*models.Conversation {
	byCounterpart := map[int64]*models.Conversation{}
	order := []int64{}

	for _, m := range messages {
		counterpartID := m.SenderID
		if counterpartID == userID {
			counterpartID = m.ReceiverID
		}

		conv, ok := byCounterpart[counterpartID]
		if !ok {
			conv = &models.Conversation{
				Counterpart: &models.User{ID: counterpartID},
			}
			byCounterpart[counterpartID] = conv
			order = append(order, counterpartID)
		}

		if conv.LastMessage == nil || laterMessage(m, conv.LastMessage) {
			conv.LastMessage = m
		}
		if m.ReceiverID == userID && !m.Read {
			conv.UnreadCount++
		}
	}

	conversations := make([]*models.Conversation, 0, len(order))
	for _, id := range order {
		conversations = append(conversations, byCounterpart[id])
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		a, b := conversations[i].LastMessage, conversations[j].LastMessage
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return conversations
}

// laterMessage reports whether m should replace current as the
// representative message of its group.
func laterMessage(m, current *models.Message) bool {
	if !m.CreatedAt.Equal(current.CreatedAt) {
		return m.CreatedAt.After(current.CreatedAt)
	}
	return m.ID < current.ID
}
