package dto

import (
	"time"

	"github.com/google/uuid"

	"phishing-url-service/internal/core/domain"
)

// ============================================================================
// Prediction DTOs
// ============================================================================

type PredictRequest struct {
	URL string `json:"url" form:"url"`
}

type PredictResponse struct {
	Status     string   `json:"status"`
	URL        string   `json:"url"`
	Prediction string   `json:"prediction"`
	Message    string   `json:"message"`
	Analysis   []string `json:"analysis"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func ToPredictResponse(url string, v domain.Verdict) PredictResponse {
	status := StatusSuccess
	if v.IsError() {
		status = StatusError
	}
	analysis := v.Warnings
	if analysis == nil {
		analysis = []string{}
	}
	return PredictResponse{
		Status:     status,
		URL:        url,
		Prediction: string(v.Label),
		Message:    v.Message,
		Analysis:   analysis,
	}
}

// ============================================================================
// Status DTOs
// ============================================================================

type ArtifactResponse struct {
	Kind     string     `json:"kind"`
	Source   string     `json:"source"`
	Ready    bool       `json:"ready"`
	Type     string     `json:"type,omitempty"`
	Bytes    int        `json:"bytes,omitempty"`
	LoadID   uuid.UUID  `json:"load_id"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type StatusResponse struct {
	Service    string           `json:"service"`
	Status     string           `json:"status"`
	Ready      bool             `json:"ready"`
	Model      ArtifactResponse `json:"model"`
	Vectorizer ArtifactResponse `json:"vectorizer"`
}

func ToArtifactResponse(info domain.ArtifactInfo) ArtifactResponse {
	resp := ArtifactResponse{
		Kind:   string(info.Kind),
		Source: info.Source,
		Ready:  info.Ready,
		Type:   info.Type,
		Bytes:  info.Bytes,
		LoadID: info.LoadID,
		Error:  info.Error,
	}
	if !info.LoadedAt.IsZero() {
		t := info.LoadedAt
		resp.LoadedAt = &t
	}
	return resp
}
