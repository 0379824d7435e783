package myhttpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	t.Run("Post with bearer token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/thing", r.RequestURI)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(body))

			w.WriteHeader(201)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer ts.Close()

		status, body, err := New(time.Second).Send(context.TODO(), http.MethodPost, ts.URL+"/api/thing", "abc123", []byte(`{"a":1}`))
		assert.NoError(t, err)
		assert.Equal(t, 201, status)
		assert.Equal(t, `{"ok":true}`, string(body))
	})

	t.Run("Post without bearer token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(401)
		}))
		defer ts.Close()

		status, body, err := New(time.Second).Send(context.TODO(), http.MethodPost, ts.URL, "", []byte(`{}`))
		assert.NoError(t, err)
		assert.Equal(t, 401, status)
		assert.Empty(t, body)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer ts.Close()
		defer close(release)

		_, _, err := New(50*time.Millisecond).Send(context.TODO(), http.MethodPost, ts.URL, "", []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("Connection refused", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, _, err := New(time.Second).Send(context.TODO(), http.MethodPost, url, "", []byte(`{}`))
		assert.Error(t, err)
	})
}
