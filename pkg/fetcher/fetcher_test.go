package fetcher_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flxhelpers/flxhelpers/pkg/fetcher"
)

type post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestFetch_DecodesSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"title":"hello"}]`)
	}))
	defer srv.Close()

	res := fetcher.Fetch[[]post](context.Background(), fetcher.New(), srv.URL, fetcher.Options{})
	assert.True(t, res.OK())
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Empty(t, res.Error)
	require.NotNil(t, res.Data)
	assert.Equal(t, []post{{ID: 1, Title: "hello"}}, *res.Data)
}

func TestFetch_NotFoundWithMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"not found"}`)
	}))
	defer srv.Close()

	res := fetcher.Fetch[post](context.Background(), fetcher.New(), srv.URL, fetcher.Options{})
	assert.Equal(t, fetcher.Response[post]{Status: 404, Error: "not found"}, res)
	assert.False(t, res.OK())
}

func TestFetch_ErrorFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"plain text body", "boom"},
		{"empty message", `{"message":""}`},
		{"non-string message", `{"message":42}`},
		{"empty body", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			res := fetcher.Fetch[post](context.Background(), fetcher.New(), srv.URL, fetcher.Options{})
			assert.Equal(t, 500, res.Status)
			assert.Equal(t, "Internal Server Error", res.Error)
			assert.Nil(t, res.Data)
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubClient(status int, reason, body string) *fetcher.Client {
	return fetcher.New(fetcher.WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Status:     reason,
				Header:     make(http.Header),
				Body:       io.NopCloser(strings.NewReader(body)),
				Request:    r,
			}, nil
		}),
	}))
}

func TestFetch_ErrorUsesServerReasonPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   int
		status string
		want   string
	}{
		{"custom phrase", 503, "503 Backend Warming Up", "Backend Warming Up"},
		{"canonical phrase", 404, "404 Not Found", "Not Found"},
		{"missing phrase", 502, "502", "Bad Gateway"},
		{"empty status line", 429, "", "Too Many Requests"},
		{"unknown code", 599, "599", "HTTP 599"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := fetcher.Get[post](context.Background(), stubClient(tt.code, tt.status, "oops"), "http://upstream.test/", fetcher.Options{})
			assert.Equal(t, tt.code, res.Status)
			assert.Equal(t, tt.want, res.Error)
			assert.Nil(t, res.Data)
		})
	}
}

func TestFetch_BodyOverLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":1,"title":"this does not fit"}`)
	}))
	t.Cleanup(srv.Close)

	t.Run("over limit", func(t *testing.T) {
		t.Parallel()

		res := fetcher.Fetch[post](context.Background(), fetcher.New(fetcher.WithMaxBodySize(8)), srv.URL, fetcher.Options{})
		assert.Equal(t, 200, res.Status)
		assert.Equal(t, fetcher.BodyTooLargeMessage+": limit is 8 bytes", res.Error)
		assert.NotEqual(t, fetcher.ParseErrorMessage, res.Error)
		assert.Nil(t, res.Data)
		assert.False(t, res.OK())
	})

	t.Run("exactly at limit", func(t *testing.T) {
		t.Parallel()

		size := int64(len(`{"id":1,"title":"this does not fit"}`))
		res := fetcher.Fetch[post](context.Background(), fetcher.New(fetcher.WithMaxBodySize(size)), srv.URL, fetcher.Options{})
		assert.True(t, res.OK())
		require.NotNil(t, res.Data)
		assert.Equal(t, "this does not fit", res.Data.Title)
	})
}

func TestFetch_SuccessBodyEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		res := fetcher.Fetch[post](context.Background(), fetcher.New(), srv.URL, fetcher.Options{})
		assert.Equal(t, fetcher.Response[post]{Status: 204}, res)
		assert.True(t, res.OK())
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		}))
		defer srv.Close()

		res := fetcher.Fetch[post](context.Background(), fetcher.New(), srv.URL, fetcher.Options{})
		assert.Equal(t, 200, res.Status)
		assert.Equal(t, fetcher.ParseErrorMessage, res.Error)
		assert.Nil(t, res.Data)
	})
}

func TestFetch_RequestComposition(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "caller", r.Header.Get("X-Source"), "caller headers override static ones")
		assert.Equal(t, "flx-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"), "caller may override content type")

		var in post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(post{ID: 7, Title: in.Title})
	}))
	defer srv.Close()

	client := fetcher.NewFromConfig(
		fetcher.Config{Timeout: time.Second, UserAgent: "flx-test"},
		fetcher.WithHeader("X-Source", "static"),
	)
	res := fetcher.Post[post](context.Background(), client, srv.URL, fetcher.Options{
		Headers: map[string]string{"X-Source": "caller", "Content-Type": "text/plain", "Authorization": "Basic x"},
		Body:    post{Title: "new"},
		Token:   "tok",
	})
	assert.Equal(t, 201, res.Status)
	require.NotNil(t, res.Data)
	assert.Equal(t, post{ID: 7, Title: "new"}, *res.Data)
}

func TestFetch_Shorthands(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"method": r.Method})
	}))
	defer srv.Close()

	client := fetcher.New()
	ctx := context.Background()
	opts := fetcher.Options{Method: "PATCH"}

	for method, res := range map[string]fetcher.Response[map[string]string]{
		http.MethodGet:    fetcher.Get[map[string]string](ctx, client, srv.URL, opts),
		http.MethodPost:   fetcher.Post[map[string]string](ctx, client, srv.URL, opts),
		http.MethodPut:    fetcher.Put[map[string]string](ctx, client, srv.URL, opts),
		http.MethodDelete: fetcher.Delete[map[string]string](ctx, client, srv.URL, opts),
	} {
		require.NotNil(t, res.Data, method)
		assert.Equal(t, method, (*res.Data)["method"])
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := fetcher.Fetch[post](context.Background(), fetcher.New(), url, fetcher.Options{})
	assert.Equal(t, 0, res.Status)
	assert.NotEmpty(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestFetch_UnencodableBody(t *testing.T) {
	t.Parallel()

	res := fetcher.Fetch[post](context.Background(), fetcher.New(), "http://127.0.0.1:1", fetcher.Options{
		Method: http.MethodPost,
		Body:   func() {},
	})
	assert.Equal(t, 0, res.Status)
	assert.Contains(t, res.Error, "encode request body")
}

func TestFetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res := fetcher.Fetch[post](ctx, fetcher.New(), srv.URL, fetcher.Options{})
	assert.Equal(t, 0, res.Status)
	assert.Contains(t, res.Error, "context deadline exceeded")
}

func TestFetch_ClientTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := fetcher.New(fetcher.WithTimeout(50 * time.Millisecond))
	res := fetcher.Fetch[post](context.Background(), client, srv.URL, fetcher.Options{})
	assert.Equal(t, 0, res.Status)
	assert.NotEmpty(t, res.Error)
}

func TestClient_CloseIdleConnections(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":3}`)
	}))
	defer srv.Close()

	client := fetcher.New()
	res := fetcher.Get[post](context.Background(), client, srv.URL, fetcher.Options{})
	require.True(t, res.OK())

	assert.NotPanics(t, client.CloseIdleConnections)

	res = fetcher.Get[post](context.Background(), client, srv.URL, fetcher.Options{})
	assert.True(t, res.OK(), "client stays usable after closing idle connections")
}
