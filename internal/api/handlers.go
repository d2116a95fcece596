package api

import (
	"time"

	"radsafe/internal/nav"
	"radsafe/internal/profile"
	"radsafe/internal/session"
	"radsafe/internal/telemetry"
)

type Handler struct {
	sessions     *session.Manager
	router       *nav.Router
	reconciler   *profile.Reconciler
	telemetry    *telemetry.Service
	alerts       *telemetry.AlertFeed
	secretKey    []byte
	cookieSecure bool
	loginLimiter *attemptLimiter
	startedAt    time.Time
}

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Remember bool   `json:"remember" form:"remember"`
}

type navigateInput struct {
	Screen string `json:"screen" form:"screen"`
}

type chatInput struct {
	Message string `json:"message" form:"message"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(
	sessions *session.Manager,
	router *nav.Router,
	reconciler *profile.Reconciler,
	telemetryService *telemetry.Service,
	alerts *telemetry.AlertFeed,
	secret string,
	cookieSecure bool,
) *Handler {
	return &Handler{
		sessions:     sessions,
		router:       router,
		reconciler:   reconciler,
		telemetry:    telemetryService,
		alerts:       alerts,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
		startedAt:    time.Now(),
	}
}
