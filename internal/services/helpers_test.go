package services

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/models/response_models"
	"giftfinder/internal/repositories"
)

// fakeBackend is an in-test BackendRepository. Each call records its inputs
// and returns whatever the test primed.
type fakeBackend struct {
	authResult *response_models.AuthResult
	authErr    error

	surveyGifts   []response_models.Gift
	surveyErr     error
	surveyToken   string
	surveyAnswers map[string]any

	shippingOrder   *response_models.OrderDetails
	shippingErr     error
	shippingToken   string
	shippingDetails request_models.ShippingRequest

	chatReply   string
	chatErr     error
	chatMessage string
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*response_models.AuthResult, error) {
	return f.authResult, f.authErr
}

func (f *fakeBackend) Register(ctx context.Context, email, password string) (*response_models.AuthResult, error) {
	return f.authResult, f.authErr
}

func (f *fakeBackend) SubmitSurvey(ctx context.Context, token string, responses map[string]any) ([]response_models.Gift, error) {
	f.surveyToken = token
	f.surveyAnswers = responses
	return f.surveyGifts, f.surveyErr
}

func (f *fakeBackend) SubmitShipping(ctx context.Context, token string, details request_models.ShippingRequest) (*response_models.OrderDetails, error) {
	f.shippingToken = token
	f.shippingDetails = details
	return f.shippingOrder, f.shippingErr
}

func (f *fakeBackend) SendChatMessage(ctx context.Context, message string) (string, error) {
	f.chatMessage = message
	return f.chatReply, f.chatErr
}

func newTestSession(t *testing.T) (SessionServiceInterface, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	repo, err := repositories.NewSessionRepository(path)
	if err != nil {
		t.Fatalf("NewSessionRepository: %v", err)
	}
	return NewSessionService(repo, zap.NewNop()), path
}

func loggedInSession(t *testing.T) SessionServiceInterface {
	t.Helper()
	session, _ := newTestSession(t)
	if err := session.Login("tok-1", response_models.SessionUser{Email: "a@b.com"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return session
}
