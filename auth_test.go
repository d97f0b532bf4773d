package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authToken":
			capturedBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"token": "abc"}`))
		default:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Authenticate(context.Background(), "testuser", "password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.Token() != "abc" {
		t.Errorf("expected token=abc, got %s", client.Token())
	}

	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(capturedBody, &payload); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}

	if payload.Username != "testuser" {
		t.Errorf("expected username=testuser, got %s", payload.Username)
	}

	if payload.Password != "password" {
		t.Errorf("expected password=password, got %s", payload.Password)
	}
}

func TestAuthenticate_TokenUsedOnSubsequentCalls(t *testing.T) {
	t.Parallel()

	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authToken":
			if r.Header.Get("Authorization") != "" {
				t.Error("authenticate request must not carry an Authorization header")
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"token": "abc"}`))
		case "/accounts":
			authHeader = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Authenticate(context.Background(), "testuser", "password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.GetAccounts(context.Background(), Bearer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if authHeader != "Bearer abc" {
		t.Errorf("expected 'Bearer abc', got %s", authHeader)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Authenticate(context.Background(), "testuser", "password")

	if err == nil {
		t.Fatal("expected error for missing token")
	}

	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("expected *SchemaError, got %T", err)
	}

	if client.Token() != "" {
		t.Errorf("expected token to remain unset, got %s", client.Token())
	}
}

func TestAuthenticate_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Authenticate(context.Background(), "testuser", "password")

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}

	if client.Token() != "" {
		t.Errorf("expected token to remain unset, got %s", client.Token())
	}
}

func TestAuthenticate_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "bad credentials"}`))
	}))
	defer server.Close()

	client, err := New(server.URL, WithRetryCount(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Authenticate(context.Background(), "testuser", "wrongpassword")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}

	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.StatusCode)
	}

	if client.Token() != "" {
		t.Errorf("expected token to remain unset, got %s", client.Token())
	}
}

func TestAuthenticate_ConnectionError(t *testing.T) {
	t.Parallel()

	client, err := New("http://localhost:1", WithRetryCount(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Authenticate(context.Background(), "testuser", "password")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}

	if client.Token() != "" {
		t.Errorf("expected token to remain unset, got %s", client.Token())
	}
}

func TestAuthenticate_ReplacesExistingToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token": "fresh"}`))
	}))
	defer server.Close()

	client, err := New(server.URL, WithAuthToken("stale"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.Authenticate(context.Background(), "testuser", "password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.Token() != "fresh" {
		t.Errorf("expected token=fresh, got %s", client.Token())
	}
}
