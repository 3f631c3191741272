package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestRegisterUser(t *testing.T) {
	t.Parallel()

	var method, path string
	var body []byte
	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"username":"ash","token":"tok-123","campfire_member_id":null}`))
	}))

	session, err := client.RegisterUser(context.Background(), "ash", "TrainerPass123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPost || path != "/auth/register/" {
		t.Errorf("expected POST /auth/register/, got %s %s", method, path)
	}

	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}

	if payload["username"] != "ash" || payload["password"] != "TrainerPass123" {
		t.Errorf("unexpected payload: %s", body)
	}

	if session.Username != "ash" || session.Token != "tok-123" {
		t.Errorf("unexpected session: %+v", session)
	}

	if session.CampfireMemberID != nil {
		t.Errorf("expected no linked member, got %v", *session.CampfireMemberID)
	}
}

func TestLoginUser(t *testing.T) {
	t.Parallel()

	var path string
	var sawAuthHeader bool
	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, sawAuthHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"username":"ash","token":"tok-456","campfire_member_id":"member-123"}`))
	}), WithAuthToken("stale"))

	session, err := client.LoginUser(context.Background(), "ash", "TrainerPass123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/auth/login/" {
		t.Errorf("expected path=/auth/login/, got %s", path)
	}

	// Login is anonymous even when a stale token is held.
	if sawAuthHeader {
		t.Error("expected login request to carry no Authorization header")
	}

	if session.Token != "tok-456" {
		t.Errorf("unexpected session: %+v", session)
	}

	if session.CampfireMemberID == nil || *session.CampfireMemberID != "member-123" {
		t.Errorf("unexpected member id: %+v", session.CampfireMemberID)
	}
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Invalid credentials."}`))
	}))

	_, err := client.LoginUser(context.Background(), "ash", "wrong")

	if err == nil {
		t.Fatal("expected error for invalid credentials")
	}

	if err.Error() != "Invalid credentials." {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLogoutUser(t *testing.T) {
	t.Parallel()

	var method, path string
	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}), WithAuthToken("abc"))

	if err := client.LogoutUser(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPost || path != "/auth/logout/" {
		t.Errorf("expected POST /auth/logout/, got %s %s", method, path)
	}
}

func TestLinkCampfireAccount(t *testing.T) {
	t.Parallel()

	var path, authHeader string
	var body []byte
	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"username":"ash","token":"tok-123","campfire_member_id":"member-123","campfire_username":"Serena"}`))
	}), WithAuthToken("abc"))

	session, err := client.LinkCampfireAccount(context.Background(), AccountLink{
		MemberID: "member-123",
		Username: "Serena",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/auth/campfire/" {
		t.Errorf("expected path=/auth/campfire/, got %s", path)
	}

	if authHeader != "Token abc" {
		t.Errorf("expected 'Token abc', got %q", authHeader)
	}

	// Payload keys are snake-cased for the backend.
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}

	if payload["campfire_member_id"] != "member-123" || payload["campfire_username"] != "Serena" {
		t.Errorf("unexpected payload: %s", body)
	}

	if session.CampfireUsername == nil || *session.CampfireUsername != "Serena" {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestUnlinkCampfireAccount(t *testing.T) {
	t.Parallel()

	var method, path, authHeader string
	client := newTestClient(t, okUnlessHealth(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}), WithAuthToken("abc"))

	if err := client.UnlinkCampfireAccount(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodDelete || path != "/auth/campfire/" {
		t.Errorf("expected DELETE /auth/campfire/, got %s %s", method, path)
	}

	if authHeader != "Token abc" {
		t.Errorf("expected 'Token abc', got %q", authHeader)
	}
}
