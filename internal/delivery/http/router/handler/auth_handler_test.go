package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxe/internal/delivery/http/middleware"
	"luxe/internal/delivery/http/response"
	"luxe/internal/delivery/http/validator"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/service"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase returns canned results for the auth handler tests.
type stubUserUsecase struct {
	registerOutput *usecase.AuthOutput
	registerErr    error
	loginOutput    *usecase.AuthOutput
	loginErr       error
	profile        *entity.PublicUser
	profileErr     error
}

func (s *stubUserUsecase) Register(_ context.Context, _ usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUserUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubUserUsecase) GetProfile(_ context.Context, _ uuid.UUID) (*entity.PublicUser, error) {
	return s.profile, s.profileErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	user := &entity.PublicUser{ID: uuid.New(), Username: "amina", Email: "amina@example.com"}
	h := NewAuthHandler(&stubUserUsecase{
		registerOutput: &usecase.AuthOutput{Token: "signed.jwt", User: user},
	}, testLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"amina","email":"amina@example.com","password":"secret-password"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Inscription réussie", body.Message)
	assert.Contains(t, rec.Body.String(), "signed.jwt")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubUserUsecase{}, testLogger())

	// Password below the minimum length
	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"amina","email":"amina@example.com","password":"abc"}`)

	err := h.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Register_BadEmail(t *testing.T) {
	h := NewAuthHandler(&stubUserUsecase{}, testLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"amina","email":"not-an-email","password":"secret-password"}`)

	err := h.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_PropagatesUsecaseError(t *testing.T) {
	h := NewAuthHandler(&stubUserUsecase{loginErr: domainerrors.ErrInvalidCredentials}, testLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"amina@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	h := NewAuthHandler(&stubUserUsecase{}, testLogger())

	c, _ := newJSONContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestAuthHandler_Me_ReturnsProfile(t *testing.T) {
	profile := &entity.PublicUser{ID: uuid.New(), Username: "amina"}
	h := NewAuthHandler(&stubUserUsecase{profile: profile}, testLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("claims", &service.Claims{UserID: profile.ID})
	_, ok := middleware.CurrentClaims(c)
	require.True(t, ok)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amina")
}
