package request_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/identity"
	"go-hrms/internal/request"
	requesterrors "go-hrms/internal/request/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Details any    `json:"details"`
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeRequestService struct {
	createFn          func(ctx context.Context, caller identity.Caller, req request.CreateRequestRequest) (request.RequestResponse, error)
	listForCallerFn   func(ctx context.Context, caller identity.Caller) ([]request.RequestViewResponse, error)
	listForApproverFn func(ctx context.Context, caller identity.Caller) ([]request.RequestViewResponse, error)
	respondFn         func(ctx context.Context, caller identity.Caller, req request.RespondRequestRequest) (request.RequestResponse, error)
	updateFn          func(ctx context.Context, caller identity.Caller, req request.UpdateRequestRequest) (request.RequestResponse, error)
	deleteFn          func(ctx context.Context, caller identity.Caller, req request.DeleteRequestRequest) (request.RequestResponse, error)
	getByIDFn         func(ctx context.Context, caller identity.Caller, id string) (request.RequestResponse, error)
}

func (f *fakeRequestService) Create(ctx context.Context, caller identity.Caller, req request.CreateRequestRequest) (request.RequestResponse, error) {
	return f.createFn(ctx, caller, req)
}
func (f *fakeRequestService) ListForCaller(ctx context.Context, caller identity.Caller) ([]request.RequestViewResponse, error) {
	return f.listForCallerFn(ctx, caller)
}
func (f *fakeRequestService) ListForApprover(ctx context.Context, caller identity.Caller) ([]request.RequestViewResponse, error) {
	return f.listForApproverFn(ctx, caller)
}
func (f *fakeRequestService) Respond(ctx context.Context, caller identity.Caller, req request.RespondRequestRequest) (request.RequestResponse, error) {
	return f.respondFn(ctx, caller, req)
}
func (f *fakeRequestService) Update(ctx context.Context, caller identity.Caller, req request.UpdateRequestRequest) (request.RequestResponse, error) {
	return f.updateFn(ctx, caller, req)
}
func (f *fakeRequestService) Delete(ctx context.Context, caller identity.Caller, req request.DeleteRequestRequest) (request.RequestResponse, error) {
	return f.deleteFn(ctx, caller, req)
}
func (f *fakeRequestService) GetByID(ctx context.Context, caller identity.Caller, id string) (request.RequestResponse, error) {
	return f.getByIDFn(ctx, caller, id)
}

func newContext(method, target, body string, caller *identity.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		c.Set(identity.KeyEmployeeID, caller.ID)
		c.Set(identity.KeyRole, string(caller.Role))
	}
	return c, w
}

func TestRequestHandler_Create(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		svc := &fakeRequestService{
			createFn: func(ctx context.Context, got identity.Caller, req request.CreateRequestRequest) (request.RequestResponse, error) {
				assert.Equal(t, caller, got)
				assert.Equal(t, 2, req.RequestTypeCode)
				assert.Equal(t, "2024-01-01", req.From)
				return request.RequestResponse{ID: uuid.NewString(), EmployeeID: got.ID, RequestTypeCode: 2, Status: request.StatusPending}, nil
			},
		}

		h := request.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/requests", `{"requestTypeCode":2,"description":"trip","from":"2024-01-01","to":"2024-01-03"}`, &caller)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Status)
		assert.Equal(t, "Request added successfully", env.Message)
		var got request.RequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, caller.ID, got.EmployeeID)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("negative unauthenticated", func(t *testing.T) {
		h := request.NewHandler(&fakeRequestService{})
		c, w := newContext(http.MethodPost, "/requests", `{}`, nil)
		h.Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Status)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("negative malformed body", func(t *testing.T) {
		h := request.NewHandler(&fakeRequestService{})
		c, w := newContext(http.MethodPost, "/requests", `{"requestTypeCode":"two"}`, &caller)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "Invalid input", env.Message)
	})

	t.Run("negative internal error is masked", func(t *testing.T) {
		svc := &fakeRequestService{
			createFn: func(ctx context.Context, caller identity.Caller, req request.CreateRequestRequest) (request.RequestResponse, error) {
				return request.RequestResponse{}, errors.New("pq: relation missing")
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/requests", `{}`, &caller)
		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, w.Body.String(), "relation missing")
	})
}

func TestRequestHandler_ListMine(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}

	t.Run("success with count", func(t *testing.T) {
		svc := &fakeRequestService{
			listForCallerFn: func(ctx context.Context, got identity.Caller) ([]request.RequestViewResponse, error) {
				return []request.RequestViewResponse{{ID: "r1"}, {ID: "r2"}}, nil
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/requests", "", &caller)
		h.ListMine(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Request fetched successfully", env.Message)
		assert.Equal(t, 2, *env.Count)
	})

	t.Run("success empty list is an array", func(t *testing.T) {
		svc := &fakeRequestService{
			listForCallerFn: func(ctx context.Context, got identity.Caller) ([]request.RequestViewResponse, error) {
				return nil, nil
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/requests", "", &caller)
		h.ListMine(c)

		env := decodeEnvelope(t, w.Body.Bytes())
		assert.JSONEq(t, `[]`, string(env.Data))
		assert.Equal(t, 0, *env.Count)
	})
}

func TestRequestHandler_ListForApprover(t *testing.T) {
	svc := &fakeRequestService{
		listForApproverFn: func(ctx context.Context, caller identity.Caller) ([]request.RequestViewResponse, error) {
			return []request.RequestViewResponse{{ID: "r1"}}, nil
		},
	}
	h := request.NewHandler(svc)

	cases := []struct {
		role    identity.Role
		message string
	}{
		{identity.RoleAdmin, "All requests fetched for admin"},
		{identity.RoleManager, "Requests fetched for manager"},
		{identity.RoleSuperAdmin, "Requests fetched for manager"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			caller := identity.Caller{ID: uuid.NewString(), Role: tc.role}
			c, w := newContext(http.MethodGet, "/requests/for-approver", "", &caller)
			h.ListForApprover(c)

			assert.Equal(t, http.StatusOK, w.Code)
			env := decodeEnvelope(t, w.Body.Bytes())
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestRequestHandler_Respond(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleManager}

	t.Run("success passes optional fields through", func(t *testing.T) {
		svc := &fakeRequestService{
			respondFn: func(ctx context.Context, got identity.Caller, req request.RespondRequestRequest) (request.RequestResponse, error) {
				assert.Equal(t, "r1", req.ID)
				assert.Equal(t, "approved", *req.Status)
				assert.Nil(t, req.Reply)
				return request.RequestResponse{ID: "r1", Status: "approved"}, nil
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/requests/respond", `{"id":"r1","status":"approved"}`, &caller)
		h.Respond(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Request updated", env.Message)
	})

	errCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing id", requesterrors.ErrRequestIDRequired, http.StatusBadRequest, "INVALID_INPUT"},
		{"not found", requesterrors.ErrRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", requesterrors.ErrNotAuthorizedToRespond, http.StatusForbidden, "FORBIDDEN"},
		{"concurrent", requesterrors.ErrRequestModified, http.StatusConflict, "CONFLICT"},
	}
	for _, tc := range errCases {
		t.Run("negative "+tc.name, func(t *testing.T) {
			svc := &fakeRequestService{
				respondFn: func(ctx context.Context, got identity.Caller, req request.RespondRequestRequest) (request.RequestResponse, error) {
					return request.RequestResponse{}, tc.err
				},
			}
			h := request.NewHandler(svc)
			c, w := newContext(http.MethodPost, "/requests/respond", `{"id":"r1"}`, &caller)
			h.Respond(c)

			assert.Equal(t, tc.status, w.Code)
			env := decodeEnvelope(t, w.Body.Bytes())
			assert.False(t, env.Status)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}
}

func TestRequestHandler_Update(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		svc := &fakeRequestService{
			updateFn: func(ctx context.Context, got identity.Caller, req request.UpdateRequestRequest) (request.RequestResponse, error) {
				assert.Equal(t, "r1", req.ID)
				assert.Equal(t, "new text", req.Description)
				return request.RequestResponse{ID: "r1", Description: req.Description}, nil
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/requests/update", `{"id":"r1","description":"new text"}`, &caller)
		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Request updated successfully", env.Message)
	})

	t.Run("negative not pending", func(t *testing.T) {
		svc := &fakeRequestService{
			updateFn: func(ctx context.Context, got identity.Caller, req request.UpdateRequestRequest) (request.RequestResponse, error) {
				return request.RequestResponse{}, requesterrors.ErrOnlyPendingUpdatable
			},
		}
		h := request.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/requests/update", `{"id":"r1"}`, &caller)
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Equal(t, "Only pending requests can be updated", env.Message)
	})
}

func TestRequestHandler_Delete(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}
	svc := &fakeRequestService{
		deleteFn: func(ctx context.Context, got identity.Caller, req request.DeleteRequestRequest) (request.RequestResponse, error) {
			assert.Equal(t, "r1", req.ID)
			return request.RequestResponse{ID: "r1", IsDeleted: true}, nil
		},
	}
	h := request.NewHandler(svc)
	c, w := newContext(http.MethodPost, "/requests/delete", `{"id":"r1"}`, &caller)
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "Request deleted successfully", env.Message)
	var got request.RequestResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.IsDeleted)
}

func TestRequestHandler_GetByID(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleEmployee}
	svc := &fakeRequestService{
		getByIDFn: func(ctx context.Context, got identity.Caller, id string) (request.RequestResponse, error) {
			assert.Equal(t, "r9", id)
			return request.RequestResponse{}, requesterrors.ErrNotAuthorizedToView
		},
	}
	h := request.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/requests/r9", "", &caller)
	c.Params = gin.Params{{Key: "id", Value: "r9"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
