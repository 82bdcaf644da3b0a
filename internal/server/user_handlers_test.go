package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	_, app := newTestServer(t)
	userID, _ := registerAndLogin(t, app, "alice@example.com")

	t.Run("public profile lookup", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(userID), body["id"])
		assert.NotContains(t, body, "password")
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/users/9999", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/users/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateUser(t *testing.T) {
	_, app := newTestServer(t)
	aliceID, aliceToken := registerAndLogin(t, app, "alice@example.com")
	bobID, _ := registerAndLogin(t, app, "bob@example.com")

	t.Run("owner updates own name", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", aliceID),
			map[string]string{"name": "Alicia"}, aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		user := body["user"].(map[string]any)
		assert.Equal(t, "Alicia", user["name"])
		assert.Equal(t, "alice@example.com", user["email"], "unsupplied fields stay put")
	})

	t.Run("foreign account is forbidden", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", bobID),
			map[string]string{"name": "Hijacked"}, aliceToken)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeBody(t, resp)["code"])
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", aliceID),
			map[string]string{}, aliceToken)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("updated password is usable for login", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", aliceID),
			map[string]string{"password": "newpassword456"}, aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{
			"email":    "alice@example.com",
			"password": "newpassword456",
		}, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/users/%d", aliceID),
			map[string]string{"name": "Nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDeleteUser(t *testing.T) {
	_, app := newTestServer(t)
	_, aliceToken := registerAndLogin(t, app, "alice@example.com")
	bobID, bobToken := registerAndLogin(t, app, "bob@example.com")

	t.Run("foreign account is forbidden", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/%d", bobID), nil, aliceToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner deletes own account", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/%d", bobID), nil, bobToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// The account is gone for later lookups and logins.
		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", bobID), nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{
			"email":    "bob@example.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("email is free again after deletion", func(t *testing.T) {
		newID, _ := registerAndLogin(t, app, "bob@example.com")
		assert.NotEqual(t, bobID, newID)
	})
}
