package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"giftfinder/internal/config"
	"giftfinder/internal/models/request_models"
	"giftfinder/internal/models/response_models"
	"giftfinder/pkg/utils"
)

// BackendRepository is the client of the external gift backend. The backend
// owns all business logic; this layer only moves JSON over HTTP. A bearer
// token is attached where the endpoint requires it and is never inspected
// locally.
type BackendRepository interface {
	Login(ctx context.Context, email, password string) (*response_models.AuthResult, error)
	Register(ctx context.Context, email, password string) (*response_models.AuthResult, error)
	SubmitSurvey(ctx context.Context, token string, responses map[string]any) ([]response_models.Gift, error)
	SubmitShipping(ctx context.Context, token string, details request_models.ShippingRequest) (*response_models.OrderDetails, error)
	SendChatMessage(ctx context.Context, message string) (string, error)
}

type HTTPBackendRepository struct {
	baseURL string
	client  *http.Client
}

func NewBackendRepository(cfg *config.Config) BackendRepository {
	return &HTTPBackendRepository{
		baseURL: cfg.BackendBaseURL,
		client:  &http.Client{Timeout: cfg.BackendTimeout},
	}
}

func (r *HTTPBackendRepository) Login(ctx context.Context, email, password string) (*response_models.AuthResult, error) {
	return r.authenticate(ctx, "/auth/login", email, password)
}

func (r *HTTPBackendRepository) Register(ctx context.Context, email, password string) (*response_models.AuthResult, error) {
	return r.authenticate(ctx, "/auth/register", email, password)
}

func (r *HTTPBackendRepository) authenticate(ctx context.Context, path, email, password string) (*response_models.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := r.post(ctx, path, "", body)
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Message == "" {
			failure.Message = "Authentication failed"
		}
		return nil, &utils.AuthError{Message: failure.Message}
	}

	var result response_models.AuthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, utils.ErrBackendUnavailable
	}
	return &result, nil
}

// giftWire tolerates both numeric server-assigned ids and string ids.
type giftWire struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       float64     `json:"price"`
	Score       float64     `json:"score"`
}

func (r *HTTPBackendRepository) SubmitSurvey(ctx context.Context, token string, responses map[string]any) ([]response_models.Gift, error) {
	resp, err := r.post(ctx, "/survey", token, map[string]any{"responses": responses})
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ErrBackendUnavailable
	}

	var wire []giftWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, utils.ErrBackendUnavailable
	}

	gifts := make([]response_models.Gift, 0, len(wire))
	for _, w := range wire {
		gifts = append(gifts, response_models.Gift{
			ID:          w.ID.String(),
			Name:        w.Name,
			Description: w.Description,
			Category:    w.Category,
			Price:       w.Price,
			Score:       w.Score,
		})
	}
	return gifts, nil
}

func (r *HTTPBackendRepository) SubmitShipping(ctx context.Context, token string, details request_models.ShippingRequest) (*response_models.OrderDetails, error) {
	resp, err := r.post(ctx, "/shipping", token, details)
	if err != nil {
		return nil, utils.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ErrBackendUnavailable
	}

	var order response_models.OrderDetails
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, utils.ErrBackendUnavailable
	}
	return &order, nil
}

func (r *HTTPBackendRepository) SendChatMessage(ctx context.Context, message string) (string, error) {
	resp, err := r.post(ctx, "/chatbot", "", map[string]string{"message": message})
	if err != nil {
		return "", utils.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", utils.ErrBackendUnavailable
	}

	var reply struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", utils.ErrBackendUnavailable
	}
	return reply.Response, nil
}

func (r *HTTPBackendRepository) post(ctx context.Context, path, token string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	return r.client.Do(req)
}
