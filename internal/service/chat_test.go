package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/service"
)

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("New Session", func(t *testing.T) {
		chatRepo := new(MockChatRepo)
		model := new(MockChatModel)
		svc := service.NewChatService(chatRepo, model)

		chatRepo.On("GetConversationBySession", ctx, "s1").Return(nil, sql.ErrNoRows)
		chatRepo.On("CreateConversation", ctx, mock.AnythingOfType("*domain.Conversation")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Conversation).ID = "c1"
			}).Return(nil)
		chatRepo.On("AppendMessage", ctx, mock.MatchedBy(func(m *domain.ChatMessage) bool {
			return m.Role == domain.ChatRoleUser && m.Content == "When to sow wheat?"
		})).Return(nil)
		chatRepo.On("ListMessages", ctx, "c1").Return([]domain.ChatMessage{
			{ConversationID: "c1", Role: domain.ChatRoleUser, Content: "When to sow wheat?"},
		}, nil)
		model.On("Generate", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]domain.ChatMessage")).
			Return("Sow wheat in November.", nil)
		chatRepo.On("AppendMessage", ctx, mock.MatchedBy(func(m *domain.ChatMessage) bool {
			return m.Role == domain.ChatRoleAssistant && m.Content == "Sow wheat in November."
		})).Return(nil)
		chatRepo.On("TouchConversation", ctx, "c1").Return(nil)

		reply, err := svc.SendMessage(ctx, "s1", "u1", "When to sow wheat?")

		assert.NoError(t, err)
		assert.Equal(t, "Sow wheat in November.", reply)
		chatRepo.AssertExpectations(t)
	})

	t.Run("Model Failure Keeps User Message", func(t *testing.T) {
		chatRepo := new(MockChatRepo)
		model := new(MockChatModel)
		svc := service.NewChatService(chatRepo, model)

		conv := &domain.Conversation{ID: "c1", SessionID: "s1"}
		chatRepo.On("GetConversationBySession", ctx, "s1").Return(conv, nil)
		chatRepo.On("AppendMessage", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)
		chatRepo.On("ListMessages", ctx, "c1").Return([]domain.ChatMessage{}, nil)
		model.On("Generate", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]domain.ChatMessage")).
			Return("", assert.AnError)

		_, err := svc.SendMessage(ctx, "s1", "", "hello")

		assert.Error(t, err)
		chatRepo.AssertNotCalled(t, "TouchConversation", mock.Anything, mock.Anything)
	})
}

func TestChatService_History(t *testing.T) {
	ctx := context.Background()
	chatRepo := new(MockChatRepo)
	svc := service.NewChatService(chatRepo, new(MockChatModel))

	t.Run("Unknown Session Is Empty", func(t *testing.T) {
		chatRepo.On("GetConversationBySession", ctx, "nope").Return(nil, sql.ErrNoRows)

		messages, err := svc.History(ctx, "nope")

		assert.NoError(t, err)
		assert.Empty(t, messages)
	})
}
