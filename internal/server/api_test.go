package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	app, db := newTestApp(t)
	g := goldie.New(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusOK, status)
	g.Assert(t, "signup_success", []byte(body))

	status, body = doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada Again","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	g.Assert(t, "signup_duplicate", []byte(body))

	status, body = doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"x","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	g.Assert(t, "signup_invalid_email", []byte(body))

	// A stored malformed address is reported as a duplicate, not a format error.
	require.NoError(t, db.Exec("INSERT INTO users (name, email) VALUES (?, ?)", "legacy", "not-an-email").Error)
	status, body = doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"x","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	g.Assert(t, "signup_duplicate", []byte(body))

	// Matching is case-sensitive.
	status, _ = doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ADA@example.com"}`)
	assert.Equal(t, http.StatusOK, status)
}

func TestSignup_RequiredFields(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	bodies := map[string]string{
		"missing name":    `{"email":"a@b.co"}`,
		"missing email":   `{"name":"Ada"}`,
		"empty name":      `{"name":"","email":"a@b.co"}`,
		"null email":      `{"name":"Ada","email":null}`,
		"zero name":       `{"name":0,"email":"a@b.co"}`,
		"false email":     `{"name":"Ada","email":false}`,
		"object name":     `{"name":{"first":"Ada"},"email":"a@b.co"}`,
		"empty object":    `{}`,
		"no body":         ``,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			status, got := doRequest(t, app, http.MethodPost, "/api/signup", body)
			assert.Equal(t, http.StatusBadRequest, status)
			g.Assert(t, "signup_missing_fields", []byte(got))
		})
	}
}

func TestSignup_NonJSONBodyIsIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_MalformedJSON(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada",`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"status":400,"message":"Invalid request body."}`, body)
}

func TestCreateAndListPosts(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	status, _ := doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, app, http.MethodGet, "/api/posts/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	g.Assert(t, "no_posts", []byte(body))

	status, body = doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":1,"content":"first"}`)
	assert.Equal(t, http.StatusOK, status)
	g.Assert(t, "post_created", []byte(body))

	// Numeric strings are accepted as ids.
	status, _ = doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":"1","content":"second"}`)
	assert.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/posts/1", "")
	assert.Equal(t, http.StatusOK, status)
	g.Assert(t, "user_posts", []byte(body))
}

func TestCreatePost_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	status, _ := doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, status)

	tests := []struct {
		name   string
		body   string
		status int
		golden string
	}{
		{"unknown user", `{"userId":999999,"content":"hi"}`, http.StatusNotFound, "post_user_not_found"},
		{"zero user id", `{"userId":0,"content":"hi"}`, http.StatusBadRequest, "post_missing_fields"},
		{"string zero user id is looked up", `{"userId":"0","content":"hi"}`, http.StatusNotFound, "post_user_not_found"},
		{"non-numeric user id", `{"userId":"abc","content":"hi"}`, http.StatusNotFound, "post_user_not_found"},
		{"missing user id", `{"content":"hi"}`, http.StatusBadRequest, "post_missing_fields"},
		{"empty content", `{"userId":1,"content":""}`, http.StatusBadRequest, "post_missing_fields"},
		{"missing content", `{"userId":1}`, http.StatusBadRequest, "post_missing_fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodPost, "/api/posts", tt.body)
			assert.Equal(t, tt.status, status)
			g.Assert(t, tt.golden, []byte(body))
		})
	}
}

func TestDeletePost(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ada@example.com"}`)
	doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":1,"content":"keep"}`)
	doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":1,"content":"drop"}`)

	status, body := doRequest(t, app, http.MethodDelete, "/api/deletepost/2", "")
	assert.Equal(t, http.StatusOK, status)
	g.Assert(t, "post_deleted", []byte(body))

	status, body = doRequest(t, app, http.MethodGet, "/api/posts/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"content":"keep"`)
	assert.NotContains(t, body, `"content":"drop"`)

	// Second delete of the same id misses.
	status, body = doRequest(t, app, http.MethodDelete, "/api/deletepost/2", "")
	assert.Equal(t, http.StatusNotFound, status)
	g.Assert(t, "post_not_found", []byte(body))

	for _, id := range []string{"999", "abc", "0"} {
		status, body = doRequest(t, app, http.MethodDelete, "/api/deletepost/"+id, "")
		assert.Equal(t, http.StatusNotFound, status, id)
		g.Assert(t, "post_not_found", []byte(body))
	}
}

func TestGetUserPosts_UnknownUser(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	for _, id := range []string{"42", "abc", "0"} {
		status, body := doRequest(t, app, http.MethodGet, "/api/posts/"+id, "")
		assert.Equal(t, http.StatusNotFound, status, id)
		g.Assert(t, "post_user_not_found", []byte(body))
	}
}

func TestGetUserPosts_OnlyOwnPosts(t *testing.T) {
	app, _ := newTestApp(t)

	doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Ada","email":"ada@example.com"}`)
	doRequest(t, app, http.MethodPost, "/api/signup", `{"name":"Grace","email":"grace@example.com"}`)
	doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":1,"content":"by ada"}`)
	doRequest(t, app, http.MethodPost, "/api/posts", `{"userId":2,"content":"by grace"}`)

	status, body := doRequest(t, app, http.MethodGet, "/api/posts/2", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":200,"posts":[{"id":2,"userId":2,"content":"by grace"}]}`, body)
}

func TestRootAndFallbacks(t *testing.T) {
	app, _ := newTestApp(t)
	g := goldie.New(t)

	status, body := doRequest(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome to the API!", body)

	status, body = doRequest(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	g.Assert(t, "route_not_found", []byte(body))

	status, body = doRequest(t, app, http.MethodPost, "/api/deletepost/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	g.Assert(t, "route_not_found", []byte(body))
}

func TestHealthChecks(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"up"`)

	status, body = doRequest(t, app, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"database":"healthy"`)
	assert.Contains(t, body, `"redis":"disabled"`)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	doRequest(t, app, http.MethodGet, "/", "")
	status, body := doRequest(t, app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(body, "http_requests_total"), "expected request counter in metrics output")
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
