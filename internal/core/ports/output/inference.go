package ports

import (
	"context"

	"phishing-url-service/internal/core/domain"
)

// Vectorizer is a fitted text-to-feature transform.
type Vectorizer interface {
	Transform(url string) (domain.FeatureVector, error)
	// Type names the fitted estimator, e.g. "TfidfVectorizer".
	Type() string
}

// Classifier is a fitted model mapping a feature vector to a class label.
type Classifier interface {
	Predict(v domain.FeatureVector) (string, error)
	Type() string
}

// ArtifactCodec turns serialized artifact bytes into inference objects.
type ArtifactCodec interface {
	DecodeVectorizer(data []byte) (Vectorizer, error)
	DecodeClassifier(data []byte) (Classifier, error)
}

// ArtifactSource fetches raw artifact bytes from one kind of location.
type ArtifactSource interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}
