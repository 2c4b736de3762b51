package handlers

import (
	"net/http"

	"phishing-url-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Status(c *gin.Context) {
	artifacts := h.verdictSvc.Artifacts()
	ready := h.verdictSvc.Ready()

	status := "ok"
	if !ready {
		status = "degraded"
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Service:    serviceName,
		Status:     status,
		Ready:      ready,
		Model:      dto.ToArtifactResponse(artifacts.ModelInfo),
		Vectorizer: dto.ToArtifactResponse(artifacts.VectorizerInfo),
	})
}

func (h *Handler) Healthz(c *gin.Context) {
	if !h.verdictSvc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "model or vectorizer not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
