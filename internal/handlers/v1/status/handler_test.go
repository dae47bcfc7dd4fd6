package status

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler().Register(api)
	return api
}

func TestHandler_GoodMethod(t *testing.T) {
	resp := newTestAPI(t).Get("/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body StatusResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHandler_BadMethod(t *testing.T) {
	resp := newTestAPI(t).Post("/status", map[string]any{})

	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.Code)
}
