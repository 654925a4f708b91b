package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oilwell-reports/internal/pkg/jwt"
	"oilwell-reports/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t   *testing.T
	app *fiber.App
}

func newClient(t *testing.T) (*client, *memStore) {
	t.Helper()
	tokens, err := jwt.NewService("routes-secret")
	require.NoError(t, err)

	store := newMemStore()
	app := fiber.New()
	Mount(app, store.repositories(), tokens, Options{
		Mode:    "dev",
		CheckDB: func(context.Context) error { return nil },
		Log:     logger.Nop(),
	})
	return &client{t: t, app: app}, store
}

func (c *client) do(method, path, body, token string) (int, []byte) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.app.Test(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, raw
}

func (c *client) json(method, path, body, token string) (int, map[string]any) {
	c.t.Helper()
	status, raw := c.do(method, path, body, token)
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &out), string(raw))
	return status, out
}

func (c *client) login(username, password, role string) string {
	c.t.Helper()
	status, _ := c.json(http.MethodPost, "/register",
		fmt.Sprintf(`{"username":%q,"password":%q,"role":%q}`, username, password, role), "")
	require.Equal(c.t, http.StatusCreated, status)

	status, body := c.json(http.MethodPost, "/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), "")
	require.Equal(c.t, http.StatusOK, status)
	assert.Equal(c.t, role, body["role"])
	return body["token"].(string)
}

func (c *client) createWell(token, name string) uint {
	c.t.Helper()
	status, body := c.json(http.MethodPost, "/wells",
		fmt.Sprintf(`{"name":%q,"location":"Field A"}`, name), token)
	require.Equal(c.t, http.StatusCreated, status)
	return uint(body["data"].(map[string]any)["id"].(float64))
}

func (c *client) fileReport(token, title string, wellID uint) {
	c.t.Helper()
	status, _ := c.json(http.MethodPost, "/reports",
		fmt.Sprintf(`{"title":%q,"content":"c","pressure":101.3,"wellStatus":"active","temperature":55,"well":%d}`, title, wellID),
		token)
	require.Equal(c.t, http.StatusCreated, status)
}

func TestReportLifecycle(t *testing.T) {
	c, _ := newClient(t)

	admin := c.login("root", "rootpw", "admin")
	operator := c.login("op1", "oppw", "operator")

	wellID := c.createWell(admin, "W-7")
	c.fileReport(operator, "Morning check", wellID)

	status, page := c.json(http.MethodGet, "/reports", "", admin)
	require.Equal(t, http.StatusOK, status)
	items := page["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Morning check", item["title"])
	assert.Equal(t, "W-7", item["well"].(map[string]any)["name"])
	assert.Equal(t, "op1", item["createdBy"].(map[string]any)["username"])
	assert.Equal(t, float64(1), page["totalPages"])
	assert.Equal(t, float64(1), page["currentPage"])

	// a deleted well leaves its reports with a null reference
	status, _ = c.json(http.MethodDelete, fmt.Sprintf("/wells/%d", wellID), "", admin)
	require.Equal(t, http.StatusOK, status)

	_, page = c.json(http.MethodGet, "/reports", "", operator)
	items = page["items"].([]any)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].(map[string]any)["well"])
}

func TestReportPagination(t *testing.T) {
	c, _ := newClient(t)
	admin := c.login("root", "rootpw", "admin")
	operator := c.login("op", "pw", "operator")
	wellID := c.createWell(admin, "W-1")
	for i := 1; i <= 10; i++ {
		c.fileReport(operator, fmt.Sprintf("r%d", i), wellID)
	}

	tests := []struct {
		query     string
		wantCount int
		wantFirst string
		wantPage  float64
		wantTotal float64
	}{
		{"", 4, "r1", 1, 3},
		{"?page=2&limit=4", 4, "r5", 2, 3},
		{"?page=3&limit=4", 2, "r9", 3, 3},
		{"?page=4&limit=4", 0, "", 4, 3},
		{"?page=1&limit=100", 10, "r1", 1, 1},
		{"?page=abc&limit=-2", 4, "r1", 1, 3},
		{"?page=9223372036854775807", 0, "", math.MaxInt, 3},
		{"?page=3&limit=4611686018427387904", 0, "", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, page := c.json(http.MethodGet, "/reports"+tt.query, "", operator)
			require.Equal(t, http.StatusOK, status)

			items := page["items"].([]any)
			require.Len(t, items, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, items[0].(map[string]any)["title"])
			}
			assert.Equal(t, tt.wantPage, page["currentPage"])
			assert.Equal(t, tt.wantTotal, page["totalPages"])
		})
	}
}

func TestReportPagination_Empty(t *testing.T) {
	c, _ := newClient(t)
	token := c.login("op", "pw", "operator")

	status, raw := c.do(http.MethodGet, "/reports", "", token)

	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"items":[],"totalPages":0,"currentPage":1}`, string(raw))
}

func TestDeleteTwice(t *testing.T) {
	c, _ := newClient(t)
	admin := c.login("root", "rootpw", "admin")
	operator := c.login("op", "pw", "operator")
	wellID := c.createWell(admin, "W-1")
	c.fileReport(operator, "only", wellID)

	_, page := c.json(http.MethodGet, "/reports", "", admin)
	reportID := uint(page["items"].([]any)[0].(map[string]any)["id"].(float64))

	status, _ := c.json(http.MethodDelete, fmt.Sprintf("/reports/%d", reportID), "", admin)
	assert.Equal(t, http.StatusOK, status)
	status, body := c.json(http.MethodDelete, fmt.Sprintf("/reports/%d", reportID), "", admin)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Report not found.", body["error"])

	status, _ = c.json(http.MethodDelete, fmt.Sprintf("/wells/%d", wellID), "", admin)
	assert.Equal(t, http.StatusOK, status)
	status, body = c.json(http.MethodDelete, fmt.Sprintf("/wells/%d", wellID), "", admin)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Well not found.", body["error"])
}

func TestRouteGates(t *testing.T) {
	c, _ := newClient(t)
	admin := c.login("root", "rootpw", "admin")
	operator := c.login("op", "pw", "operator")
	viewer := c.login("v", "pw", "viewer")
	corrupted := admin[:10] + "garbage" + admin[10:]

	report := `{"title":"t","content":"c","pressure":1,"wellStatus":"s","temperature":1,"well":1}`
	well := `{"name":"n","location":"l"}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
		wantError  string
	}{
		{"list reports without token", http.MethodGet, "/reports", "", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"list reports with corrupted token", http.MethodGet, "/reports", "", corrupted, http.StatusUnauthorized, "Invalid token."},
		{"list wells without token", http.MethodGet, "/wells", "", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"me without token", http.MethodGet, "/me", "", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"admin files report", http.MethodPost, "/reports", report, admin, http.StatusForbidden, "Access denied. You are not authorized."},
		{"viewer files report", http.MethodPost, "/reports", report, viewer, http.StatusForbidden, "Access denied. You are not authorized."},
		{"operator creates well", http.MethodPost, "/wells", well, operator, http.StatusForbidden, "Access denied. You are not authorized."},
		{"operator deletes report", http.MethodDelete, "/reports/1", "", operator, http.StatusForbidden, "Access denied. You are not authorized."},
		{"operator deletes well", http.MethodDelete, "/wells/1", "", operator, http.StatusForbidden, "Access denied. You are not authorized."},
		{"create well without token", http.MethodPost, "/wells", well, "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"admin deletes bad id", http.MethodDelete, "/wells/abc", "", admin, http.StatusBadRequest, "Invalid ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := c.json(tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}

	// any role may read
	for _, token := range []string{admin, operator, viewer} {
		status, _ := c.do(http.MethodGet, "/wells", "", token)
		assert.Equal(t, http.StatusOK, status)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	c, _ := newClient(t)
	c.login("alice", "right", "admin")

	status, body := c.json(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotContains(t, body, "token")

	status, _ = c.json(http.MethodPost, "/login", `{"username":"nobody","password":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMe(t *testing.T) {
	c, _ := newClient(t)
	token := c.login("op", "pw", "operator")

	status, body := c.json(http.MethodGet, "/me", "", token)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "op", body["username"])
	assert.Equal(t, "operator", body["role"])
}

func TestPasswordsAreStoredHashed(t *testing.T) {
	c, store := newClient(t)
	c.login("op", "plain-pw", "operator")

	require.Len(t, store.users, 1)
	assert.NotEqual(t, "plain-pw", store.users[0].Password)
	assert.True(t, strings.HasPrefix(store.users[0].Password, "$2"))
}

func TestHealth(t *testing.T) {
	c, _ := newClient(t)
	status, body := c.json(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
