package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/internal/usecase"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService, zap.NewNop())

	mockService.On("Register", mock.Anything, mock.AnythingOfType("*request.AuthRequest")).
		Return(&response.AuthResponse{Token: "signed-token"}, nil).Once()

	body := `{"email":"new@example.com","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)

	mockService.AssertExpectations(t)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService, zap.NewNop())

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"supersecret"}`},
		{"bad email", `{"email":"not-an-email","password":"supersecret"}`},
		{"short password", `{"email":"a@b.com","password":"short"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	mockService.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService, zap.NewNop())

	mockService.On("Register", mock.Anything, mock.Anything).
		Return(nil, repository.ErrEmailTaken).Once()

	body := `{"email":"taken@example.com","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is occupied!")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService, zap.NewNop())

	mockService.On("Login", mock.Anything, mock.Anything).
		Return(&response.AuthResponse{Token: "signed-token"}, nil).Once()

	body := `{"email":"user@example.com","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
}

func TestAuthHandler_Login_DistinctFailures(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantDetail string
	}{
		{"unknown email", usecase.ErrIncorrectEmail, "Incorrect email!"},
		{"wrong password", usecase.ErrIncorrectPassword, "Incorrect password!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			handler := NewAuthHandler(mockService, zap.NewNop())

			mockService.On("Login", mock.Anything, mock.Anything).
				Return(nil, tc.serviceErr).Once()

			body := `{"email":"user@example.com","password":"supersecret"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantDetail)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}
