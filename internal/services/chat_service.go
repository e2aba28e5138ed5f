package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"giftfinder/internal/models/response_models"
	"giftfinder/internal/repositories"
	"giftfinder/pkg/utils"
)

const chatErrorReply = "Sorry, I encountered an error. Please try again."

// ChatServiceInterface drives the gift assistant widget. The transcript is
// append-only; a backend failure turns into an apologetic bot message rather
// than an error, so the widget never breaks.
type ChatServiceInterface interface {
	Send(ctx context.Context, content string) (response_models.ChatReply, error)
	Messages() []response_models.ChatMessage
}

type ChatService struct {
	backendRepo repositories.BackendRepository
	catalog     CatalogServiceInterface
	logger      *zap.Logger

	mu       sync.Mutex
	messages []response_models.ChatMessage
}

func NewChatService(
	backendRepo repositories.BackendRepository,
	catalog CatalogServiceInterface,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		backendRepo: backendRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

func (s *ChatService) Send(ctx context.Context, content string) (response_models.ChatReply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return response_models.ChatReply{}, utils.ErrEmptyMessage
	}

	s.append(response_models.ChatMessageUser, content)

	reply, err := s.backendRepo.SendChatMessage(ctx, content)
	if err != nil {
		s.logger.Warn("chatbot call failed", zap.Error(err))
		s.append(response_models.ChatMessageBot, chatErrorReply)
		return response_models.ChatReply{Reply: chatErrorReply}, nil
	}

	s.append(response_models.ChatMessageBot, reply)

	added := s.catalog.Merge(utils.ExtractGiftReply(reply))
	return response_models.ChatReply{Reply: reply, AddedGifts: added}, nil
}

func (s *ChatService) Messages() []response_models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]response_models.ChatMessage(nil), s.messages...)
}

func (s *ChatService) append(msgType, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, response_models.ChatMessage{Type: msgType, Content: content})
}
