package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("middleware-test-secret")

type mockSessionService struct {
	getSessionFn func(sessionID string) (*models.Session, error)
}

var _ services.SessionServicer = (*mockSessionService)(nil)

func (m *mockSessionService) CreateSession() (*models.Session, error) {
	return nil, nil
}

func (m *mockSessionService) PurgeExpired(time.Time) (int64, error) {
	return 0, nil
}

func (m *mockSessionService) GetSession(sessionID string) (*models.Session, error) {
	return m.getSessionFn(sessionID)
}

func liveSessions() *mockSessionService {
	return &mockSessionService{getSessionFn: func(id string) (*models.Session, error) {
		return &models.Session{Base: models.Base{ID: id}, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}}
}

func setupSessionRouter(sessions services.SessionServicer) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(SessionMiddleware(testSecret, sessions))
	r.GET("/test", func(c *gin.Context) {
		id, _ := SessionID(c)
		c.JSON(http.StatusOK, gin.H{"session_id": id})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	code, _ := errObj["code"].(string)
	return code
}

func signedToken(t *testing.T, secret []byte, sessionID string, expiresAt time.Time) string {
	t.Helper()
	token, err := GenerateSessionToken(secret, &models.Session{Base: models.Base{ID: sessionID}, ExpiresAt: expiresAt})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

const testSessionID = "0190f8a0-0000-7000-8000-000000000001"

func TestSessionMiddleware(t *testing.T) {
	valid := signedToken(t, testSecret, testSessionID, time.Now().Add(time.Hour))

	tests := []struct {
		name          string
		header        string
		sessions      *mockSessionService
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:       "valid_token",
			header:     "Bearer " + valid,
			sessions:   liveSessions(),
			wantStatus: http.StatusOK,
		},
		{
			name:          "missing_header",
			sessions:      liveSessions(),
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "UNAUTHORIZED",
		},
		{
			name:          "wrong_scheme",
			header:        "Token " + valid,
			sessions:      liveSessions(),
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "UNAUTHORIZED",
		},
		{
			name:          "wrong_secret",
			header:        "Bearer " + signedToken(t, []byte("another-secret-value"), testSessionID, time.Now().Add(time.Hour)),
			sessions:      liveSessions(),
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "UNAUTHORIZED",
		},
		{
			name:          "expired_token",
			header:        "Bearer " + signedToken(t, testSecret, testSessionID, time.Now().Add(-time.Minute)),
			sessions:      liveSessions(),
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "UNAUTHORIZED",
		},
		{
			name:   "subject_not_a_session_id",
			header: "Bearer " + signedToken(t, testSecret, "session-1", time.Now().Add(time.Hour)),
			sessions: &mockSessionService{getSessionFn: func(string) (*models.Session, error) {
				t.Error("session lookup must not run for a malformed subject")
				return nil, apperrors.ErrSessionNotFound
			}},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "UNAUTHORIZED",
		},
		{
			name:   "session_gone",
			header: "Bearer " + valid,
			sessions: &mockSessionService{getSessionFn: func(string) (*models.Session, error) {
				return nil, apperrors.ErrSessionNotFound
			}},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "SESSION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(setupSessionRouter(tt.sessions), tt.header)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantErrorCode != "" {
				if code := errorCode(t, rec); code != tt.wantErrorCode {
					t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
				}
			}
			if tt.wantStatus == http.StatusOK {
				if id, _ := parseBody(t, rec)["session_id"].(string); id != testSessionID {
					t.Errorf("expected %s in context, got %q", testSessionID, id)
				}
			}
		})
	}
}

func TestParseSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "session-1", Issuer: tokenIssuer},
	})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	if _, err := ParseSessionToken(testSecret, s); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		bind       bool
		wantStatus int
		wantCode   string
	}{
		{"app_error", apperrors.ErrDatasetNotLoaded, false, http.StatusNotFound, "DATASET_NOT_LOADED"},
		{"wrapped_app_error", apperrors.Wrap(apperrors.ErrInvalidDataset, errors.New("zip: not a valid zip file")), false, http.StatusUnprocessableEntity, "INVALID_DATASET"},
		{"oversized_body", &http.MaxBytesError{Limit: 1 << 20}, false, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"bind_error", errors.New("metric must be current or contribution"), true, http.StatusBadRequest, "INVALID_INPUT"},
		{"plain_error", errors.New("boom"), false, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/test", func(c *gin.Context) {
				ginErr := c.Error(tt.err)
				if tt.bind {
					ginErr.SetType(gin.ErrorTypeBind)
				}
			})

			rec := doRequest(r, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("error code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := doRequest(r, "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("expected upstream request ID to be kept, got %q", got)
	}
}
