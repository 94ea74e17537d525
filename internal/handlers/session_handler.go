package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/middleware"
	"assetboard/internal/services"
)

// SessionHandler handles session-related requests
type SessionHandler struct {
	sessionService services.SessionServicer
	secret         []byte
}

// NewSessionHandler creates a new SessionHandler that signs tokens with secret.
func NewSessionHandler(sessionService services.SessionServicer, secret []byte) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, secret: secret}
}

// SessionResponse represents a newly created session.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSession starts an anonymous session
// @Summary     Create a session
// @Description Start an anonymous session and receive its bearer token. Datasets loaded into the session are discarded when it expires.
// @Tags        sessions
// @Produce     json
// @Success     201 {object} SessionResponse "Session created"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.CreateSession()
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateSessionToken(h.secret, session)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	})
}
