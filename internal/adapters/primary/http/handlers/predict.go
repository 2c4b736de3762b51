package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"phishing-url-service/internal/adapters/primary/http/dto"
	"phishing-url-service/internal/adapters/primary/http/middleware"
	"phishing-url-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Message: "invalid request body: " + err.Error()})
		return
	}
	if req.URL == "" {
		req.URL = c.Query("url")
	}
	if strings.TrimSpace(req.URL) == "" {
		c.JSON(verdictStatus(domain.ErrMissingInput), dto.ErrorResponse{Status: dto.StatusError, Message: domain.MessageMissingInput})
		return
	}

	verdict := h.verdictSvc.Assemble(req.URL)
	if verdict.IsError() {
		log.WithFields(log.Fields{
			"request_id": c.GetString(middleware.ContextRequestID),
			"fault":      domain.FaultKind(verdict.Fault),
		}).Warn("predict returned an error verdict")
	}

	c.JSON(verdictStatus(verdict.Fault), dto.ToPredictResponse(req.URL, verdict))
}
