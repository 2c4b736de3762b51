package handlers

import (
	"html"
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"phishing-url-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const indexTemplate = "index.html"

type pageData struct {
	Class    string
	Message  string
	URL      string
	Warnings []string
	History  []domain.HistoryEntry
}

func (h *Handler) Index(c *gin.Context) {
	session := h.openSession(c)
	data := pageData{History: session.History}

	if flash := h.sessionSvc.TakeFlash(c.Request.Context(), session); flash != nil {
		data.Class = string(flash.Label)
		data.Message = flash.Message
		data.URL = flash.URL
		data.Warnings = flash.Warnings
	} else if !h.verdictSvc.Ready() {
		data.Class = string(domain.LabelError)
		data.Message = domain.MessageSystemError
	}

	c.HTML(http.StatusOK, indexTemplate, data)
}

// Submit classifies the posted URL and redirects back to the page
// (post/redirect/get); the result travels in the session flash. Without
// loaded artifacts it renders the system error and leaves the session alone.
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	session := h.openSession(c)

	if !h.verdictSvc.Ready() {
		c.HTML(http.StatusOK, indexTemplate, pageData{
			Class:   string(domain.LabelError),
			Message: domain.MessageSystemError,
			History: session.History,
		})
		return
	}

	url := c.PostForm("url")
	if strings.TrimSpace(url) == "" {
		flash := &domain.Flash{Label: domain.LabelError, Message: domain.MessageMissingInput, Warnings: []string{}}
		if err := h.sessionSvc.SetFlash(ctx, session, flash); err != nil {
			log.WithError(err).Error("store flash failed")
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	verdict := h.verdictSvc.Assemble(url)
	if err := h.sessionSvc.Record(ctx, session, url, verdict); err != nil {
		// Without a stored flash the redirect would lose the result.
		log.WithError(err).WithField("session_id", session.ID).Error("record verdict failed")
		flash := session.TakeFlash()
		c.HTML(http.StatusOK, indexTemplate, pageData{
			Class:    string(flash.Label),
			Message:  flash.Message,
			URL:      flash.URL,
			Warnings: flash.Warnings,
			History:  session.History,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) openSession(c *gin.Context) *domain.Session {
	raw, _ := c.Cookie(h.cookie.Name)
	session, err := h.sessionSvc.Open(c.Request.Context(), raw)
	if err != nil {
		log.WithError(err).Warn("open session failed, starting a new one")
		session = domain.NewSession()
	}

	if raw != session.ID.String() {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, session.ID.String(), int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, true)
	}
	return session
}

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// renderFinding escapes a finding and turns its **bold** markers into <strong>.
func renderFinding(s string) template.HTML {
	return template.HTML(boldPattern.ReplaceAllString(html.EscapeString(s), "<strong>$1</strong>"))
}

// Templates returns the parsed page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{"finding": renderFinding}).
		ParseFS(templateFS, "templates/*.html"))
}
