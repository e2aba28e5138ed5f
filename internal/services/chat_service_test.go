package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"giftfinder/internal/models/response_models"
	"giftfinder/pkg/utils"
)

const giftReply = "Here are some gifts that might interest you:\n" +
	"1. Telescope - $120.00\n" +
	"Description: A beginner telescope\n" +
	"Category: Science"

func newTestChat(t *testing.T, backend *fakeBackend) (ChatServiceInterface, CatalogServiceInterface) {
	t.Helper()
	catalog, _ := newTestCatalog()
	return NewChatService(backend, catalog, zap.NewNop()), catalog
}

func TestSendAppendsBothMessages(t *testing.T) {
	backend := &fakeBackend{chatReply: "Happy to help!"}
	chat, _ := newTestChat(t, backend)

	reply, err := chat.Send(context.Background(), "  hi there  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply.Reply != "Happy to help!" || reply.AddedGifts != 0 {
		t.Errorf("reply = %+v", reply)
	}
	if backend.chatMessage != "hi there" {
		t.Errorf("backend received %q, want trimmed message", backend.chatMessage)
	}

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	if msgs[0].Type != response_models.ChatMessageUser || msgs[0].Content != "hi there" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[1].Type != response_models.ChatMessageBot || msgs[1].Content != "Happy to help!" {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}
}

func TestSendEmptyMessage(t *testing.T) {
	chat, _ := newTestChat(t, &fakeBackend{})

	_, err := chat.Send(context.Background(), "   ")
	if !errors.Is(err, utils.ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
	if len(chat.Messages()) != 0 {
		t.Error("rejected message must not enter the transcript")
	}
}

func TestSendMergesExtractedGifts(t *testing.T) {
	backend := &fakeBackend{chatReply: giftReply}
	chat, catalog := newTestChat(t, backend)

	reply, err := chat.Send(context.Background(), "any telescopes?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply.AddedGifts != 1 {
		t.Errorf("AddedGifts = %d, want 1", reply.AddedGifts)
	}

	groups := catalog.Grouped()
	if len(groups) != 1 || groups[0].Category != "Science" {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Gifts[0].Name != "Telescope" {
		t.Errorf("merged gift = %+v", groups[0].Gifts[0])
	}
}

func TestSendBackendFailureBecomesBotApology(t *testing.T) {
	backend := &fakeBackend{chatErr: utils.ErrBackendUnavailable}
	chat, catalog := newTestChat(t, backend)

	reply, err := chat.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("a backend failure must not surface as an error, got %v", err)
	}
	if reply.Reply != chatErrorReply || reply.AddedGifts != 0 {
		t.Errorf("reply = %+v", reply)
	}

	msgs := chat.Messages()
	if len(msgs) != 2 || msgs[1].Content != chatErrorReply {
		t.Errorf("transcript = %+v", msgs)
	}
	if catalog.HasGifts() {
		t.Error("a failed chat call must not touch the catalog")
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	backend := &fakeBackend{chatReply: "ok"}
	chat, _ := newTestChat(t, backend)

	if _, err := chat.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	msgs := chat.Messages()
	msgs[0].Content = "mutated"
	if chat.Messages()[0].Content != "hi" {
		t.Error("Messages must return a copy of the transcript")
	}
}
