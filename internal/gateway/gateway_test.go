package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		gotRequestID = r.Header.Get("X-Request-ID")

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "user", req.Role)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "t1",
			"token_type":   "Bearer",
			"expires_in":   1800,
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	resp, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw", Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 1800, resp.ExpiresIn)
	assert.NotEmpty(t, gotRequestID, "request id header missing")
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "bad credentials"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Login(context.Background(), LoginRequest{Username: "bob", Password: "wrong", Role: "merchant"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestLoginResponseWithoutTokenIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw", Role: "user"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoToken))
}

func TestLoginValidatesBeforeSending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server")
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw", Role: "admin"})
	require.Error(t, err, "unknown role must fail validation")

	_, err = client.Login(context.Background(), LoginRequest{Password: "pw", Role: "user"})
	require.Error(t, err, "missing username must fail validation")
}

func TestRegisterUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register/user", r.URL.Path)
		var req RegisterUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		json.NewEncoder(w).Encode(map[string]any{"user_id": 1, "username": "alice"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.RegisterUser(context.Background(), RegisterUserRequest{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
}

func TestRegisterMerchantValidation(t *testing.T) {
	client := New("http://unreachable.invalid")
	err := client.RegisterMerchant(context.Background(), RegisterMerchantRequest{Name: "shop"})
	require.Error(t, err, "missing password must fail validation before the wire")
}
