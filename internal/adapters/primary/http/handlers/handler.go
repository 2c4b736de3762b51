package handlers

import (
	"time"

	"phishing-url-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

const serviceName = "phishing-url-service"

type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type Handler struct {
	verdictSvc *services.VerdictService
	sessionSvc *services.SessionService
	cookie     CookieConfig
}

func New(
	verdictSvc *services.VerdictService,
	sessionSvc *services.SessionService,
	cookie CookieConfig,
) *Handler {
	if cookie.Name == "" {
		cookie.Name = "phishing_session"
	}
	return &Handler{
		verdictSvc: verdictSvc,
		sessionSvc: sessionSvc,
		cookie:     cookie,
	}
}

// RegisterRoutes mounts the JSON API.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/status", h.Status)
	r.GET("/health", h.Healthz)
}

// RegisterWebRoutes mounts the server-rendered page. The engine must have the
// templates from Templates() installed.
func (h *Handler) RegisterWebRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.POST("/", h.Submit)
}
