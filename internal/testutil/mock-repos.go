package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

// MockSessionRepo is a mock of SessionRepository.
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVectorizer is a mock of Vectorizer.
type MockVectorizer struct {
	mock.Mock
}

func (m *MockVectorizer) Transform(url string) (domain.FeatureVector, error) {
	args := m.Called(url)
	return args.Get(0).(domain.FeatureVector), args.Error(1)
}

func (m *MockVectorizer) Type() string {
	return "MockVectorizer"
}

// MockClassifier is a mock of Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(v domain.FeatureVector) (string, error) {
	args := m.Called(v)
	return args.String(0), args.Error(1)
}

func (m *MockClassifier) Type() string {
	return "MockClassifier"
}

// MockArtifactSource is a mock of ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var (
	_ ports.SessionRepository = (*MockSessionRepo)(nil)
	_ ports.Vectorizer        = (*MockVectorizer)(nil)
	_ ports.Classifier        = (*MockClassifier)(nil)
	_ ports.ArtifactSource    = (*MockArtifactSource)(nil)
)
