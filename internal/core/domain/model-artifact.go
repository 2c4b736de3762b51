package domain

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactKind string

const (
	ArtifactKindModel      ArtifactKind = "model"
	ArtifactKindVectorizer ArtifactKind = "vectorizer"
)

// ArtifactInfo describes one load attempt of a fitted artifact. It is written
// once at startup and never mutated afterwards.
type ArtifactInfo struct {
	Kind     ArtifactKind `json:"kind"`
	Source   string       `json:"source"`
	Ready    bool         `json:"ready"`
	LoadID   uuid.UUID    `json:"load_id"`
	LoadedAt time.Time    `json:"loaded_at"`
	Type     string       `json:"type,omitempty"`
	Bytes    int          `json:"bytes,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// FeatureVector is a sparse numeric representation of a URL. Indices are
// strictly increasing and every index is below Dim.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v FeatureVector) Len() int {
	return len(v.Indices)
}
