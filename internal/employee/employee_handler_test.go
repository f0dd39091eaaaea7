package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/employee"
	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	FindAllFn    func(ctx context.Context, page, limit int) (employee.PaginatedEmployeesResponse, error)
	FindByIDFn   func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOptionResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) FindAll(ctx context.Context, page, limit int) (employee.PaginatedEmployeesResponse, error) {
	return f.FindAllFn(ctx, page, limit)
}
func (f *fakeEmployeeService) FindByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.DeleteFn(ctx, id)
}

// Handlers report errors via c.Error, so every test router carries the
// translating middleware the real server mounts.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func createBody() string {
	return `{"name":"John Doe","email":"john@example.com","password":"secret1","hiring_date":"2026-01-05T00:00:00Z","position_id":"` +
		uuid.New().String() + `","department_id":"` + uuid.New().String() + `"}`
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, "john@example.com", req.Email)
				return employee.EmployeeResponse{
					ID:    uuid.New().String(),
					Name:  req.Name,
					Email: req.Email,
				}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employees", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employees", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})

	t.Run("duplicate email returns conflict body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employees", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("service error collapses to 500", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employees", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(createBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "database connection failed")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			FindAllFn: func(ctx context.Context, page, limit int) (employee.PaginatedEmployeesResponse, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return employee.PaginatedEmployeesResponse{
					TotalItems: 12,
					Employees: []employee.EmployeeResponse{
						{ID: uuid.New().String(), Name: "John Doe"},
					},
					TotalPages:  3,
					CurrentPage: 2,
				}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees", h.GetAll)

		req := httptest.NewRequest(http.MethodGet, "/employees?page=2&limit=5", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "totalItems")
		assert.Contains(t, w.Body.String(), "currentPage")
	})

	t.Run("invalid page parameter", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees", h.GetAll)

		req := httptest.NewRequest(http.MethodGet, "/employees?page=abc", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid page parameter")
	})

	t.Run("negative limit parameter", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees", h.GetAll)

		req := httptest.NewRequest(http.MethodGet, "/employees?limit=-2", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid limit parameter")
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		targetID := uuid.New().String()

		svc := &fakeEmployeeService{
			FindByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, targetID, id)
				return employee.EmployeeResponse{ID: id, Name: "John Doe"}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/employees/"+targetID, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed id rejected before service", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/employees/not-a-uuid", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			FindByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
				return []employee.EmployeeOptionResponse{
					{ID: uuid.New().String(), Name: "Alice Smith"},
					{ID: uuid.New().String(), Name: "Bob Wilson"},
				}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/options", h.GetOptions)

		req := httptest.NewRequest(http.MethodGet, "/employees/options", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alice Smith")
		assert.Contains(t, w.Body.String(), "Bob Wilson")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
				return nil, errors.New("redis connection failed")
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employees/options", h.GetOptions)

		req := httptest.NewRequest(http.MethodGet, "/employees/options", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		targetID := uuid.New().String()

		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, targetID, id)
				assert.NotNil(t, req.Name)
				return employee.EmployeeResponse{ID: id, Name: *req.Name}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.PUT("/employees/:id", h.Update)

		body := `{"name":"Renamed Person"}`
		req := httptest.NewRequest(http.MethodPut, "/employees/"+targetID, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed Person")
	})

	t.Run("empty body -> 400 from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmptyUpdate
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.PUT("/employees/:id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/employees/"+uuid.New().String(), strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "At least one field")
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.PUT("/employees/:id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/employees/123", strings.NewReader(`{"name":"X Y Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeRoutes_UpdateVerbs(t *testing.T) {
	// The partial update is documented as PATCH; PUT stays as an alias.
	targetID := uuid.New().String()

	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, targetID, id)
			return employee.EmployeeResponse{ID: id, Name: *req.Name}, nil
		},
	}

	r := setupRouter()
	rdb, _ := redismock.NewClientMock()
	api := r.Group("")
	employee.RegisterRoutes(api, employee.NewHandler(svc), rdb, zap.NewNop())

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			body := `{"name":"Renamed Person"}`
			req := httptest.NewRequest(method, "/employees/"+targetID, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Renamed Person")
		})
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success - 204 with empty body", func(t *testing.T) {
		targetID := uuid.New().String()

		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, targetID, id)
				return employee.EmployeeResponse{ID: id, IsActive: false}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/employees/"+targetID, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/employees/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
