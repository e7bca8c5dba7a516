package service

import (
	"context"
	"database/sql"
	"errors"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

const chatSystemInstruction = `You are KrishiMitra, the farming assistant of the KrishiSanjivni platform. ` +
	`You help Indian farmers with crop selection, soil health, fertilizers, pest control, irrigation, ` +
	`government schemes and mandi prices. Answer in the language the farmer writes in. ` +
	`Keep answers short, practical and specific to Indian agriculture. ` +
	`If a question is not about farming or the platform, politely steer back to farming topics.`

// historyWindow bounds how many stored turns are replayed to the model.
const historyWindow = 20

// ChatModel generates a reply from a system instruction and conversation
// history.
type ChatModel interface {
	Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage) (string, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
	model    ChatModel
}

func NewChatService(chatRepo repository.ChatRepository, model ChatModel) ChatService {
	return &chatService{chatRepo: chatRepo, model: model}
}

func (s *chatService) SendMessage(ctx context.Context, sessionID, userID, message string) (string, error) {
	conv, err := s.chatRepo.GetConversationBySession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		conv = &domain.Conversation{SessionID: sessionID, UserID: userID}
		if err := s.chatRepo.CreateConversation(ctx, conv); err != nil {
			return "", err
		}
	}

	userMsg := &domain.ChatMessage{
		ConversationID: conv.ID,
		Role:           domain.ChatRoleUser,
		Content:        message,
	}
	if err := s.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return "", err
	}

	history, err := s.chatRepo.ListMessages(ctx, conv.ID)
	if err != nil {
		return "", err
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	reply, err := s.model.Generate(ctx, chatSystemInstruction, history)
	if err != nil {
		return "", err
	}

	if err := s.chatRepo.AppendMessage(ctx, &domain.ChatMessage{
		ConversationID: conv.ID,
		Role:           domain.ChatRoleAssistant,
		Content:        reply,
	}); err != nil {
		return "", err
	}
	if err := s.chatRepo.TouchConversation(ctx, conv.ID); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	conv, err := s.chatRepo.GetConversationBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.ChatMessage{}, nil
		}
		return nil, err
	}
	return s.chatRepo.ListMessages(ctx, conv.ID)
}
