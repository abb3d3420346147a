package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"library-assistant/pkg/response"
)

func perform(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return w, body
}

func TestOK(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		response.OK(c, map[string]string{"answer": "hi"})
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body.ErrorCode != 0 || body.Message != response.MessageSuccess {
		t.Errorf("unexpected envelope: %+v", body)
	}
}

func TestError(t *testing.T) {
	t.Run("Plain Error Is 400", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			response.Error(c, errors.New("bad input"))
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if body.Message != "bad input" {
			t.Errorf("expected error message, got %q", body.Message)
		}
	})

	t.Run("HTTPError Keeps Status", func(t *testing.T) {
		w, _ := perform(t, func(c *gin.Context) {
			response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, "catalog down"))
		})
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Wrapped HTTPError Keeps Status", func(t *testing.T) {
		wrapped := errors.Join(response.NewHTTPError(http.StatusNotFound, "no session"))
		w, _ := perform(t, func(c *gin.Context) {
			response.Error(c, wrapped)
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestInternalError(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		response.InternalError(c)
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if body.Message != response.DefaultErrorMessage {
		t.Errorf("internal errors must not leak details, got %q", body.Message)
	}
}
