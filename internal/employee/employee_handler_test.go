package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, caller identity.Caller, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListFn       func(ctx context.Context, query employee.ListEmployeesQuery) ([]employee.EmployeeResponse, int64, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOptionResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, caller identity.Caller, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	return f.CreateFn(ctx, caller, req)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) List(ctx context.Context, query employee.ListEmployeesQuery) ([]employee.EmployeeResponse, int64, error) {
	return f.ListFn(ctx, query)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withCaller(caller identity.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identity.KeyEmployeeID, caller.ID)
		c.Set(identity.KeyRole, string(caller.Role))
		c.Next()
	}
}

func TestEmployeeHandler_Health(t *testing.T) {
	r := setupRouter()
	r.GET("/employee/health", employee.NewHandler(&fakeEmployeeService{}).Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Server is running","status":"OK"}`, w.Body.String())
}

func TestEmployeeHandler_Create(t *testing.T) {
	caller := identity.Caller{ID: uuid.NewString(), Role: identity.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, got identity.Caller, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				assert.Equal(t, caller, got)
				assert.Equal(t, "John Doe", req.EmployeeName)
				return employee.CreateEmployeeResponse{
					EmployeeResponse:  employee.EmployeeResponse{ID: uuid.NewString(), EmployeeName: req.EmployeeName},
					TemporaryPassword: "tmp",
				}, nil
			},
		}
		r := setupRouter()
		r.POST("/employee/create", withCaller(caller), employee.NewHandler(svc).Create)

		body := `{"employeeName":"John Doe","employeeNumber":"EMP-900","dateOfJoining":"2026-01-01","email":"john@example.com","phone":"0812","position":"Engineer","role":"employee"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Employee created successfully")
		assert.Contains(t, w.Body.String(), `"temporaryPassword":"tmp"`)
	})

	t.Run("validation error - bad email", func(t *testing.T) {
		r := setupRouter()
		r.POST("/employee/create", withCaller(caller), employee.NewHandler(&fakeEmployeeService{}).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/create", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, got identity.Caller, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				return employee.CreateEmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
			},
		}
		r := setupRouter()
		r.POST("/employee/create", withCaller(caller), employee.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/create", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "All fields are required")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r := setupRouter()
		r.POST("/employee/create", employee.NewHandler(&fakeEmployeeService{}).Create)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employee/create", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	svc := &fakeEmployeeService{
		ListFn: func(ctx context.Context, query employee.ListEmployeesQuery) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, "ann", query.Q)
			assert.Equal(t, 2, query.Page)
			assert.Equal(t, 10, query.Limit)
			return []employee.EmployeeResponse{{EmployeeName: "Ann"}}, 11, nil
		},
	}
	r := setupRouter()
	r.GET("/employee", employee.NewHandler(svc).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee?q=ann&page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			HasPrev    bool  `json:"hasPrev"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(11), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.True(t, env.Meta.HasPrev)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter()
		r.GET("/employee/:id", employee.NewHandler(svc).GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("options", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
				return []employee.EmployeeOptionResponse{{ID: "e1", EmployeeName: "Eve"}}, nil
			},
		}
		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/options", h.GetOptions)
		r.GET("/employee/:id", h.GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee/options", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
	})
}
