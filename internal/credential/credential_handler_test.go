package credential_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workcurb/internal/credential"
	credentialerrors "workcurb/internal/credential/errors"
	credentialMock "workcurb/internal/credential/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func setupRouter(h *credential.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/change-password", h.ChangePassword)
	return r
}

func TestHandler_ChangePassword(t *testing.T) {
	t.Run("returns changed flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := credentialMock.NewMockService(ctrl)
		router := setupRouter(credential.NewHandler(svc))

		svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(false, nil)

		body, _ := json.Marshal(map[string]string{
			"email":        "ana@example.com",
			"old_password": "Wrong#1",
			"new_password": "NewPass#2",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"changed":false}`, string(env.Data))
	})

	t.Run("missing field is rejected before the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := credentialMock.NewMockService(ctrl)
		router := setupRouter(credential.NewHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_ERROR", env.Code)
	})

	t.Run("policy error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := credentialMock.NewMockService(ctrl)
		router := setupRouter(credential.NewHandler(svc))

		svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(false, credentialerrors.ErrPasswordTooShort)

		body := `{"email":"ana@example.com","old_password":"Old#1234","new_password":"short"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, credentialerrors.ErrPasswordTooShort.Message, env.Error)
	})
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := credentialMock.NewMockService(ctrl)
	router := setupRouter(credential.NewHandler(svc))

	svc.EXPECT().
		Login(gomock.Any(), credential.LoginRequest{Email: "rin@example.com", Password: "bad"}).
		Return(credential.LoginResponse{}, credentialerrors.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"rin@example.com","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
