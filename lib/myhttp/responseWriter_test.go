package myhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hatua/futuretech/lib/myerrors"
	"github.com/hatua/futuretech/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	c := context.TODO()
	writer := NewWriter(mylog.New("test"))

	t.Run("Write error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(c, response, myerrors.NewInvalidInputError(fmt.Errorf("Missing Amount")))

		assert.Equal(t, 400, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		resp := ErrorResponse{}
		err := json.Unmarshal(response.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Missing Amount", resp.Error)
	})

	t.Run("Write plain error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(c, response, fmt.Errorf("boom"))

		assert.Equal(t, 500, response.Code)
		assert.JSONEq(t, `{"error":"boom"}`, response.Body.String())
	})

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(c, response, 200, map[string]string{"url": "https://pay.example/abc"})

		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"url":"https://pay.example/abc"}`, response.Body.String())
	})

	t.Run("Write plain text", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WritePlain(c, response, 405, "Method Not Allowed")

		assert.Equal(t, 405, response.Code)
		assert.Equal(t, "text/plain; charset=utf-8", response.Header().Get("Content-Type"))
		assert.Equal(t, "Method Not Allowed", response.Body.String())
	})
}
