package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"phishing-url-service/internal/adapters/secondary/sklearn"
	"phishing-url-service/internal/core/domain"
	"phishing-url-service/internal/testutil"
)

func TestArtifactLoader_LoadAll(t *testing.T) {
	src := new(testutil.MockArtifactSource)
	src.On("Fetch", mock.Anything, "https://releases.example.com/v1/model.json?X-Sig=secret").
		Return([]byte(testutil.ModelJSON), nil)
	src.On("Fetch", mock.Anything, "https://releases.example.com/v1/vectorizer.json").
		Return([]byte(testutil.VectorizerJSON), nil)

	loader := NewArtifactLoader(sklearn.NewCodec())
	loader.Register(src, "http", "https")

	a := loader.LoadAll(context.Background(),
		"https://releases.example.com/v1/model.json?X-Sig=secret",
		"https://releases.example.com/v1/vectorizer.json")

	assert.True(t, a.Ready())
	assert.True(t, a.ModelInfo.Ready)
	assert.Equal(t, domain.ArtifactKindModel, a.ModelInfo.Kind)
	assert.Equal(t, "LogisticRegression", a.ModelInfo.Type)
	assert.Equal(t, "https://releases.example.com/v1/model.json", a.ModelInfo.Source)
	assert.Equal(t, len(testutil.ModelJSON), a.ModelInfo.Bytes)
	assert.False(t, a.ModelInfo.LoadedAt.IsZero())
	assert.Empty(t, a.ModelInfo.Error)

	assert.True(t, a.VectorizerInfo.Ready)
	assert.Equal(t, "CountVectorizer", a.VectorizerInfo.Type)
	assert.NotEqual(t, a.ModelInfo.LoadID, a.VectorizerInfo.LoadID)
	src.AssertExpectations(t)
}

func TestArtifactLoader_FetchFailure(t *testing.T) {
	src := new(testutil.MockArtifactSource)
	src.On("Fetch", mock.Anything, "https://x/model.json").Return(nil, errors.New("unexpected status 404"))
	src.On("Fetch", mock.Anything, "https://x/vectorizer.json").Return([]byte(testutil.VectorizerJSON), nil)

	loader := NewArtifactLoader(sklearn.NewCodec())
	loader.Register(src, "https")

	a := loader.LoadAll(context.Background(), "https://x/model.json", "https://x/vectorizer.json")

	assert.False(t, a.Ready())
	assert.False(t, a.ModelInfo.Ready)
	assert.Contains(t, a.ModelInfo.Error, "artifact unavailable")
	assert.Contains(t, a.ModelInfo.Error, "404")
	assert.True(t, a.VectorizerInfo.Ready)

	_, err := a.Predict(domain.FeatureVector{})
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestArtifactLoader_DecodeFailure(t *testing.T) {
	src := new(testutil.MockArtifactSource)
	src.On("Fetch", mock.Anything, mock.Anything).Return([]byte("\x80\x04\x95pickle"), nil)

	loader := NewArtifactLoader(sklearn.NewCodec())
	loader.Register(src, "file")

	vec, info := loader.LoadVectorizer(context.Background(), "file:///tmp/vectorizer.pkl")
	assert.Nil(t, vec)
	assert.False(t, info.Ready)
	assert.Contains(t, info.Error, "invalid artifact")
}

func TestArtifactLoader_UnsupportedSource(t *testing.T) {
	loader := NewArtifactLoader(sklearn.NewCodec())

	tests := []string{"", "s3://bucket/model.json", "://bad"}
	for _, location := range tests {
		t.Run(location, func(t *testing.T) {
			model, info := loader.LoadModel(context.Background(), location)
			assert.Nil(t, model)
			assert.False(t, info.Ready)
			assert.Contains(t, info.Error, "unsupported artifact source")
		})
	}
}

func TestArtifacts_NilSafe(t *testing.T) {
	var a *Artifacts
	assert.False(t, a.Ready())

	_, err := a.Vectorize("https://example.com")
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://host/x", redact("https://user:pw@host/x?sig=abc"))
	assert.Equal(t, "configmap://ns/name/key", redact("configmap://ns/name/key"))
}
