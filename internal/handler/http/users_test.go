package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	createFn func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	updateFn func(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return m.createFn(ctx, request)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) Update(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	return m.updateFn(ctx, id, request)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithUsers builds a Handler with the given UserService mock.
func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{UserService: users}, logger.Nop())
}

// withURLParam attaches a chi route parameter to the request so handlers
// invoked outside a router can still read it.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

// TestListUsers_Success verifies that all stored users are returned as a
// JSON array with 200 OK.
func TestListUsers_Success(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 1, Name: "Alice", Email: "alice@example.com", Age: 28},
				{ID: 2, Name: "Bob", Email: "bob@example.com", Age: 35},
			}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Alice","email":"alice@example.com","age":28},
		{"id":2,"name":"Bob","email":"bob@example.com","age":35}
	]`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// TestListUsers_EmptyStore verifies that an empty store produces an empty
// JSON array rather than null.
func TestListUsers_EmptyStore(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// TestListUsers_StorageError verifies that a storage failure maps to 500
// without leaking the underlying error.
func TestListUsers_StorageError(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context) ([]models.User, error) {
			return nil, fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection refused"))
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ─────────────────────────────────────────────
// getUser
// ─────────────────────────────────────────────

// TestGetUser_Success verifies that an existing user is returned with 200 OK.
func TestGetUser_Success(t *testing.T) {
	users := &mockUserService{
		getFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return models.User{ID: 7, Name: "Carol", Email: "carol@example.com", Age: 42}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"name":"Carol","email":"carol@example.com","age":42}`, rec.Body.String())
}

// TestGetUser_NotFound verifies that a missing user maps to 404 with the
// sentinel message only, even when the service wraps it with context.
func TestGetUser_NotFound(t *testing.T) {
	users := &mockUserService{
		getFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{}, fmt.Errorf("get user id=%d: %w", id, store.ErrUserNotFound)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/999", nil), "id", "999")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user was not found"}`, rec.Body.String())
}

// TestGetUser_NonNumericID verifies that an unparsable id is treated as a
// missing user and the service is never consulted.
func TestGetUser_NonNumericID(t *testing.T) {
	users := &mockUserService{
		getFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("Get should not be called for a non-numeric id")
			return models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user was not found"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// createUser
// ─────────────────────────────────────────────

// TestCreateUser_Success verifies that a valid payload produces 201 Created
// with a Location header and the stored user in the body.
func TestCreateUser_Success(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, request models.CreateUserRequest) (models.User, error) {
			require.NotNil(t, request.Age)
			return models.User{ID: 3, Name: request.Name, Email: request.Email, Age: *request.Age}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Carol","email":"carol@example.com","age":42}`))
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/users/3", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":3,"name":"Carol","email":"carol@example.com","age":42}`, rec.Body.String())
}

// TestCreateUser_InvalidJSON verifies that a malformed body maps to 400 and
// the service is never consulted.
func TestCreateUser_InvalidJSON(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			t.Fatal("Create should not be called for malformed JSON")
			return models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Invalid JSON was passed"]}`, rec.Body.String())
}

// TestCreateUser_ValidationErrors verifies that every validation violation is
// reported in order with 400 Bad Request.
func TestCreateUser_ValidationErrors(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			validationErr := &validators.ValidationError{Messages: []string{
				validators.MsgNameRequired,
				validators.MsgEmailInvalid,
				validators.MsgAgeRequired,
			}}
			return models.User{}, fmt.Errorf("error during user validation: %w", validationErr)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[
		"name is required",
		"email must be a valid email address",
		"age is required"
	]}`, rec.Body.String())
}

// TestCreateUser_EmailConflict verifies that a duplicate email maps to 409
// Conflict.
func TestCreateUser_EmailConflict(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("create user: %w", store.ErrEmailAlreadyExists)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice","email":"alice@example.com","age":28}`))
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already exists"}`, rec.Body.String())
}

// TestCreateUser_UnexpectedError verifies that an unknown failure maps to 500
// with a generic message.
func TestCreateUser_UnexpectedError(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			return models.User{}, errors.New("disk full")
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Carol","email":"carol@example.com","age":42}`))
	rec := httptest.NewRecorder()

	h.createUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "disk full")
}

// ─────────────────────────────────────────────
// updateUser
// ─────────────────────────────────────────────

// TestUpdateUser_Success verifies that a partial update returns the full
// updated user with 200 OK.
func TestUpdateUser_Success(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
			require.Equal(t, int64(1), id)
			require.NotNil(t, request.Age)
			assert.Equal(t, 29, *request.Age)
			assert.Nil(t, request.Name)
			assert.Nil(t, request.Email)
			return models.User{ID: 1, Name: "Alice", Email: "alice@example.com", Age: 29}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(`{"age":29}`)), "id", "1")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Alice","email":"alice@example.com","age":29}`, rec.Body.String())
}

// TestUpdateUser_NotFound verifies that updating a missing user maps to 404.
func TestUpdateUser_NotFound(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, id int64, _ models.UpdateUserRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("update user id=%d: %w", id, store.ErrUserNotFound)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/999", strings.NewReader(`{"age":29}`)), "id", "999")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user was not found"}`, rec.Body.String())
}

// TestUpdateUser_NonNumericID verifies that an unparsable id maps to 404
// before the body is even read.
func TestUpdateUser_NonNumericID(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, _ int64, _ models.UpdateUserRequest) (models.User, error) {
			t.Fatal("Update should not be called for a non-numeric id")
			return models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/abc", strings.NewReader(`{"age":29}`)), "id", "abc")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user was not found"}`, rec.Body.String())
}

// TestUpdateUser_InvalidJSON verifies that a malformed body maps to 400.
func TestUpdateUser_InvalidJSON(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, _ int64, _ models.UpdateUserRequest) (models.User, error) {
			t.Fatal("Update should not be called for malformed JSON")
			return models.User{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(`not json`)), "id", "1")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Invalid JSON was passed"]}`, rec.Body.String())
}

// TestUpdateUser_EmailConflict verifies that changing an email to one owned
// by another user maps to 409 Conflict.
func TestUpdateUser_EmailConflict(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, _ int64, _ models.UpdateUserRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("update user: %w", store.ErrEmailAlreadyExists)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/1", strings.NewReader(`{"email":"bob@example.com"}`)), "id", "1")
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already exists"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// deleteUser
// ─────────────────────────────────────────────

// TestDeleteUser_Success verifies that deleting an existing user returns
// 204 No Content with an empty body.
func TestDeleteUser_Success(t *testing.T) {
	deleted := false
	users := &mockUserService{
		deleteFn: func(_ context.Context, id int64) error {
			require.Equal(t, int64(2), id)
			deleted = true
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/2", nil), "id", "2")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.True(t, deleted)
}

// TestDeleteUser_NotFound verifies that deleting a missing user maps to 404.
func TestDeleteUser_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteFn: func(_ context.Context, id int64) error {
			return fmt.Errorf("delete user id=%d: %w", id, store.ErrUserNotFound)
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/999", nil), "id", "999")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user was not found"}`, rec.Body.String())
}

// TestDeleteUser_NonNumericID verifies that an unparsable id maps to 404 and
// the service is never consulted.
func TestDeleteUser_NonNumericID(t *testing.T) {
	users := &mockUserService{
		deleteFn: func(_ context.Context, _ int64) error {
			t.Fatal("Delete should not be called for a non-numeric id")
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.deleteUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// userIDFromRequest
// ─────────────────────────────────────────────

func Test_userIDFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    int64
		wantErr bool
	}{
		{name: "simple id", param: "1", want: 1},
		{name: "large id", param: "9223372036854775807", want: 9223372036854775807},
		{name: "zero", param: "0", want: 0},
		{name: "non-numeric", param: "abc", wantErr: true},
		{name: "empty", param: "", wantErr: true},
		{name: "float", param: "1.5", wantErr: true},
		{name: "overflow", param: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/x", nil), "id", tt.param)

			got, err := userIDFromRequest(req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
