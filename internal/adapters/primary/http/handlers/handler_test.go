package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phishing-url-service/internal/adapters/secondary/memory"
	"phishing-url-service/internal/adapters/secondary/sklearn"
	"phishing-url-service/internal/core/services"
	"phishing-url-service/internal/testutil"
)

const cookieName = "test_session"

// setupRouter wires the handlers over the fixture artifacts and an in-memory
// session store. ready=false simulates a failed startup load.
func setupRouter(t *testing.T, ready bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := new(testutil.MockArtifactSource)
	if ready {
		src.On("Fetch", mock.Anything, "mem://model").Return([]byte(testutil.ModelJSON), nil)
		src.On("Fetch", mock.Anything, "mem://vectorizer").Return([]byte(testutil.VectorizerJSON), nil)
	} else {
		src.On("Fetch", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)
	}
	loader := services.NewArtifactLoader(sklearn.NewCodec())
	loader.Register(src, "mem")
	artifacts := loader.LoadAll(context.Background(), "mem://model", "mem://vectorizer")

	h := New(
		services.NewVerdictService(artifacts),
		services.NewSessionService(memory.NewSessionRepository(time.Hour, 0)),
		CookieConfig{Name: cookieName, MaxAge: time.Hour},
	)

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	h.RegisterWebRoutes(r)
	h.RegisterRoutes(r.Group("/api/v1"))
	r.GET("/healthz", h.Healthz)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	require.FailNow(t, "session cookie not set")
	return nil
}
