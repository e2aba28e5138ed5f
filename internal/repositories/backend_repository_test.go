package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giftfinder/internal/config"
	"giftfinder/internal/models/request_models"
	"giftfinder/pkg/utils"
)

func newTestRepository(t *testing.T, handler http.Handler) BackendRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackendRepository(&config.Config{
		BackendBaseURL: srv.URL,
		BackendTimeout: 2 * time.Second,
	})
}

func TestLoginSuccess(t *testing.T) {
	var gotBody map[string]string
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("login must not carry an Authorization header, got %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token":                "tok-1",
			"has_completed_survey": true,
		})
	}))

	result, err := repo.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok-1" || !result.HasCompletedSurvey {
		t.Errorf("result = %+v", result)
	}
	if gotBody["email"] != "a@b.com" || gotBody["password"] != "secret" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestLoginFailureUsesBackendMessage(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, err := repo.Login(context.Background(), "a@b.com", "wrong")
	var authErr *utils.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *utils.AuthError", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestRegisterFailureFallbackMessage(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %q, want /auth/register", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := repo.Register(context.Background(), "a@b.com", "pw")
	var authErr *utils.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *utils.AuthError", err)
	}
	if authErr.Message != "Authentication failed" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestSubmitSurvey(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/survey" {
			t.Errorf("path = %q, want /survey", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want Bearer tok-1", auth)
		}
		var body struct {
			Responses map[string]any `json:"responses"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Responses["tech_comfort"] != "high" {
			t.Errorf("responses = %v", body.Responses)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "name": "Puzzle", "description": "A fun puzzle", "category": "Games", "price": 19.99, "score": 0.91},
			{"id": "srv-2", "name": "Mug", "category": "Home", "price": 9.5, "score": 0.4},
		})
	}))

	gifts, err := repo.SubmitSurvey(context.Background(), "tok-1", map[string]any{"tech_comfort": "high"})
	if err != nil {
		t.Fatalf("SubmitSurvey: %v", err)
	}
	if len(gifts) != 2 {
		t.Fatalf("len(gifts) = %d, want 2", len(gifts))
	}
	if gifts[0].ID != "7" {
		t.Errorf("numeric id should round-trip as string, got %q", gifts[0].ID)
	}
	if gifts[1].ID != "srv-2" {
		t.Errorf("string id = %q", gifts[1].ID)
	}
	if gifts[0].Name != "Puzzle" || gifts[0].Price != 19.99 {
		t.Errorf("gift[0] = %+v", gifts[0])
	}
}

func TestSubmitSurveyServerError(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := repo.SubmitSurvey(context.Background(), "tok-1", map[string]any{})
	if !errors.Is(err, utils.ErrBackendUnavailable) {
		t.Errorf("err = %v, want ErrBackendUnavailable", err)
	}
}

func TestSubmitShipping(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shipping" {
			t.Errorf("path = %q, want /shipping", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want Bearer tok-1", auth)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["full_name"] != "Ada Lovelace" || body["zip_code"] != "12345" {
			t.Errorf("request body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"message":            "Order placed",
			"shipping_id":        "SHIP-9",
			"estimated_delivery": "2026-09-05",
		})
	}))

	order, err := repo.SubmitShipping(context.Background(), "tok-1", request_models.ShippingRequest{
		FullName:     "Ada Lovelace",
		AddressLine1: "1 Analytical Way",
		City:         "London",
		State:        "LDN",
		ZipCode:      "12345",
	})
	if err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}
	if order.ShippingID != "SHIP-9" || order.EstimatedDelivery != "2026-09-05" {
		t.Errorf("order = %+v", order)
	}
}

func TestSendChatMessage(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chatbot" {
			t.Errorf("path = %q, want /chatbot", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["message"] != "any board games?" {
			t.Errorf("request body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Sure, try these."})
	}))

	reply, err := repo.SendChatMessage(context.Background(), "any board games?")
	if err != nil {
		t.Fatalf("SendChatMessage: %v", err)
	}
	if reply != "Sure, try these." {
		t.Errorf("reply = %q", reply)
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	repo := NewBackendRepository(&config.Config{
		BackendBaseURL: srv.URL,
		BackendTimeout: time.Second,
	})

	_, err := repo.SendChatMessage(context.Background(), "hello")
	if !errors.Is(err, utils.ErrBackendUnavailable) {
		t.Errorf("err = %v, want ErrBackendUnavailable", err)
	}
}
