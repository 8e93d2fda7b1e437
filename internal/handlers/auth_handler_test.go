package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "grana/internal/errors"
	"grana/internal/models"
	"grana/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(username, email, password string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	attemptLoginFn   func(identifier, password string) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
}

func (m *mockUserService) CreateUser(username, email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) AttemptLogin(identifier, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(identifier, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

type mockResetService struct {
	requestResetFn func(email string) error
	confirmResetFn func(email, code, newPassword string) error
}

func (m *mockResetService) RequestReset(email string) error {
	if m.requestResetFn != nil {
		return m.requestResetFn(email)
	}
	return nil
}

func (m *mockResetService) ConfirmReset(email, code, newPassword string) error {
	if m.confirmResetFn != nil {
		return m.confirmResetFn(email, code, newPassword)
	}
	return nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/reset/request", handler.RequestPasswordReset)
	r.POST("/auth/reset/confirm", handler.ConfirmPasswordReset)
	r.GET("/profile", injectUserID(1), handler.GetProfile)
	return r
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(username, email, _ string) (*models.User, error) {
				return &models.User{
					Base:     models.Base{ID: 1},
					Username: username,
					Email:    email,
				}, nil
			},
		}
		handler := NewAuthHandler(userSvc, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"username":"maria","email":"maria@example.com","password":"password123"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == nil || result["token"] == "" {
			t.Error("expected non-empty token")
		}
		user := result["user"].(map[string]interface{})
		if user["username"] != "maria" {
			t.Errorf("expected username maria, got %v", user["username"])
		}
	})

	t.Run("returns 400 on missing username", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"maria@example.com","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"username":"maria","email":"maria@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate username", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUsername
			},
		}
		handler := NewAuthHandler(userSvc, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"username":"maria","email":"maria@example.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_USERNAME")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(identifier, _ string) (*models.User, error) {
				return &models.User{
					Base:     models.Base{ID: 1},
					Username: "maria",
					Email:    "maria@example.com",
				}, nil
			},
		}
		handler := NewAuthHandler(userSvc, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"identifier":"maria","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == nil || result["token"] == "" {
			t.Error("expected non-empty token")
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userSvc, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"identifier":"maria","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("request returns 200 on success", func(t *testing.T) {
		var requested string
		resetSvc := &mockResetService{
			requestResetFn: func(email string) error {
				requested = email
				return nil
			},
		}
		handler := NewAuthHandler(&mockUserService{}, resetSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/reset/request",
			`{"email":"maria@example.com"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if requested != "maria@example.com" {
			t.Errorf("expected request for maria@example.com, got %q", requested)
		}
	})

	t.Run("request returns 404 on unknown email", func(t *testing.T) {
		resetSvc := &mockResetService{
			requestResetFn: func(_ string) error {
				return apperrors.ErrUserNotFound
			},
		}
		handler := NewAuthHandler(&mockUserService{}, resetSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/reset/request",
			`{"email":"ghost@example.com"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "USER_NOT_FOUND")
	})

	t.Run("confirm returns 400 on malformed code", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/reset/confirm",
			`{"email":"maria@example.com","code":"12ab56","new_password":"password456"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("confirm returns 400 on wrong code", func(t *testing.T) {
		resetSvc := &mockResetService{
			confirmResetFn: func(_, _, _ string) error {
				return apperrors.ErrInvalidResetCode
			},
		}
		handler := NewAuthHandler(&mockUserService{}, resetSvc)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/reset/confirm",
			`{"email":"maria@example.com","code":"123456","new_password":"password456"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_RESET_CODE")
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return &models.User{
					Base:     models.Base{ID: id},
					Username: "maria",
					Email:    "maria@example.com",
				}, nil
			},
		}
		handler := NewAuthHandler(userSvc, &mockResetService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["email"] != "maria@example.com" {
			t.Errorf("expected maria@example.com, got %v", user["email"])
		}
	})
}
