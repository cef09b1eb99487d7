package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/backend/internal/contract"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func newTestRouter(t *testing.T, adminToken string) http.Handler {
	t.Helper()
	repo := repository.NewMemoryContactRepository()
	return NewRouter(RouterConfig{
		DB:             repo,
		ContactService: service.NewContactService(repo),
		FrontendURL:    "http://localhost:5173",
		AdminToken:     adminToken,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func listMessages(t *testing.T, h http.Handler, header ...string) []*model.ContactMessage {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/api/contact", "", header...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out []*model.ContactMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRouter_CreateScenario(t *testing.T) {
	h := newTestRouter(t, "")
	before := time.Now().Add(-time.Second)

	rec := do(t, h, http.MethodPost, "/api/contact", validBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created model.ContactMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "Jon Snow", created.Name)
	assert.Equal(t, "jon@wall.watch", created.Email)
	assert.Equal(t, "Night gathers", created.Subject)
	assert.Equal(t, "I am the sword in the darkness.", created.Message)
	assert.True(t, created.CreatedAt.After(before))
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 5*time.Second)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	list := listMessages(t, h)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.True(t, created.CreatedAt.Equal(list[0].CreatedAt))
}

func TestRouter_InvalidScenarioReportsFirstFieldAndPersistsNothing(t *testing.T) {
	h := newTestRouter(t, "")

	rec := do(t, h, http.MethodPost, "/api/contact",
		`{"name":"J","email":"jon@wall.watch","subject":"Hi","message":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var vErr contract.ValidationError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&vErr))
	assert.Equal(t, "name", vErr.Field)
	assert.NotEmpty(t, vErr.Message)

	assert.Empty(t, listMessages(t, h))
}

func TestRouter_SingleViolationPerField(t *testing.T) {
	h := newTestRouter(t, "")
	valid := map[string]string{
		"name":    "Jon Snow",
		"email":   "jon@wall.watch",
		"subject": "Night gathers",
		"message": "I am the sword in the darkness.",
	}
	bad := map[string]string{
		"name":    strings.Repeat("n", 81),
		"email":   "jon at the wall",
		"subject": "Hi",
		"message": strings.Repeat("m", 2001),
	}

	for field, value := range bad {
		body := map[string]string{}
		for k, v := range valid {
			body[k] = v
		}
		body[field] = value
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		rec := do(t, h, http.MethodPost, "/api/contact", string(raw))
		require.Equal(t, http.StatusBadRequest, rec.Code, field)

		var vErr contract.ValidationError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&vErr))
		assert.Equal(t, field, vErr.Field)
	}

	assert.Empty(t, listMessages(t, h))
}

func TestRouter_ListReturnsEveryCreateOnceInOrder(t *testing.T) {
	h := newTestRouter(t, "")

	var created []model.ContactMessage
	for i := 0; i < 5; i++ {
		rec := do(t, h, http.MethodPost, "/api/contact", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)
		var m model.ContactMessage
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
		if len(created) > 0 {
			assert.Greater(t, m.ID, created[len(created)-1].ID)
		}
		created = append(created, m)
	}

	list := listMessages(t, h)
	require.Len(t, list, len(created))
	for i := range created {
		assert.Equal(t, created[i].ID, list[i].ID)
	}

	rec := do(t, h, http.MethodGet, "/api/contact?order=newest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var newest []*model.ContactMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&newest))
	require.Len(t, newest, len(created))
	assert.Equal(t, created[len(created)-1].ID, newest[0].ID)
}

func TestRouter_EmptyListIsArray(t *testing.T) {
	h := newTestRouter(t, "")

	rec := do(t, h, http.MethodGet, "/api/contact", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRouter_AdminTokenGuardsList(t *testing.T) {
	h := newTestRouter(t, "inbox-token")

	rec := do(t, h, http.MethodGet, "/api/contact", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/contact", validBody)
	assert.Equal(t, http.StatusCreated, rec.Code, "submitting must stay public")

	list := listMessages(t, h, "Authorization", "Bearer inbox-token")
	assert.Len(t, list, 1)
}

func TestRouter_UnknownAPIPathIsJSON404(t *testing.T) {
	static, err := NewStaticHandler(newStaticDir(t, true))
	require.NoError(t, err)
	repo := repository.NewMemoryContactRepository()
	h := NewRouter(RouterConfig{
		DB:             repo,
		ContactService: service.NewContactService(repo),
		Static:         static,
	})

	requests := []struct{ method, path string }{
		{http.MethodGet, "/api/nope"},
		{http.MethodPost, "/api/nope"},
		{http.MethodPut, "/api/contact"},
		{http.MethodDelete, "/api/contact"},
	}
	for _, r := range requests {
		rec := do(t, h, r.method, r.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", r.method, r.path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), "%s %s", r.method, r.path)

		var body contract.ErrorBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body), "%s %s", r.method, r.path)
		assert.Equal(t, "Not found", body.Message)
	}
}

func TestRouter_TrailingDataIsRejectedAndNotStored(t *testing.T) {
	h := newTestRouter(t, "")

	rec := do(t, h, http.MethodPost, "/api/contact", validBody+" trailing")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	var vErr contract.ValidationError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&vErr))
	assert.Equal(t, "Invalid request", vErr.Message)
	assert.Empty(t, vErr.Field)

	assert.Empty(t, listMessages(t, h))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, "")

	rec := do(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_http_requests_total")
}

func TestRouter_RateLimitsSubmissions(t *testing.T) {
	repo := repository.NewMemoryContactRepository()
	h := NewRouter(RouterConfig{
		DB:                 repo,
		ContactService:     service.NewContactService(repo),
		RateLimitPerMinute: 2,
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(t, h, http.MethodPost, "/api/contact", validBody).Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	rec := do(t, h, http.MethodGet, "/api/contact", "")
	assert.Equal(t, http.StatusOK, rec.Code, "listing is not rate limited")
}

func TestRouter_ServesStaticFallback(t *testing.T) {
	static, err := NewStaticHandler(newStaticDir(t, true))
	require.NoError(t, err)
	repo := repository.NewMemoryContactRepository()
	h := NewRouter(RouterConfig{
		DB:             repo,
		ContactService: service.NewContactService(repo),
		Static:         static,
	})

	rec := do(t, h, http.MethodGet, "/inbox", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<div id=root>")

	rec = do(t, h, http.MethodPost, "/inbox", validBody)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestRouter_MiddlewareWrapsEveryResponse(t *testing.T) {
	repo := repository.NewMemoryContactRepository()
	h := NewRouter(RouterConfig{
		DB:                 repo,
		ContactService:     service.NewContactService(repo),
		FrontendURL:        "http://localhost:5173",
		RateLimitPerMinute: 1,
	})

	responses := map[string]*httptest.ResponseRecorder{
		"created":   do(t, h, http.MethodPost, "/api/contact", validBody),
		"limited":   do(t, h, http.MethodPost, "/api/contact", validBody),
		"not found": do(t, h, http.MethodPut, "/api/contact", ""),
		"preflight": do(t, h, http.MethodOptions, "/api/contact", ""),
	}
	assert.Equal(t, http.StatusTooManyRequests, responses["limited"].Code)
	assert.Equal(t, http.StatusNoContent, responses["preflight"].Code)

	for name, rec := range responses {
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), name)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"), name)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"), name)
	}
}
