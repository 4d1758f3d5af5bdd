package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// =========================================
// Mock Service
// =========================================

type mockService struct{}

func (m *mockService) LoadPolicy(ctx context.Context) error {
	return nil
}

func (m *mockService) Enforce(req EnforceRequest) (bool, error) {
	if req.Role == "manager" && req.Resource == "request" && req.Action == "respond" {
		return true, nil
	}
	return false, nil
}

func (m *mockService) Can(role, resource, action string) (bool, error) {
	return m.Enforce(EnforceRequest{Role: role, Resource: resource, Action: action})
}

func (m *mockService) Policies() []PolicyResponse {
	return []PolicyResponse{{Role: "manager", Resource: "request", Action: "respond"}}
}

type envelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
	Count  *int            `json:"count"`
}

// =========================================
// TEST: Handler Enforce
// =========================================

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&mockService{})

	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("success", func(t *testing.T) {
		jsonBody, _ := json.Marshal(EnforceRequest{Role: "manager", Resource: "request", Action: "respond"})
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Status)

		var resp EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("negative missing action", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"manager","resource":"request"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListPolicies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&mockService{})
	router := gin.New()
	router.GET("/rbac/policies", handler.ListPolicies)

	req, _ := http.NewRequest(http.MethodGet, "/rbac/policies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}
