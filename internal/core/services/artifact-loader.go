package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

// ArtifactLoader fetches and decodes the fitted artifacts. Sources are chosen
// by the scheme of the artifact location.
type ArtifactLoader struct {
	sources map[string]ports.ArtifactSource
	codec   ports.ArtifactCodec
}

func NewArtifactLoader(codec ports.ArtifactCodec) *ArtifactLoader {
	return &ArtifactLoader{
		sources: make(map[string]ports.ArtifactSource),
		codec:   codec,
	}
}

// Register binds a source to one or more location schemes. It must be called
// before LoadAll.
func (l *ArtifactLoader) Register(src ports.ArtifactSource, schemes ...string) {
	for _, s := range schemes {
		l.sources[strings.ToLower(s)] = src
	}
}

// LoadAll loads the vectorizer and the model concurrently. It never fails:
// an artifact that cannot be loaded is reported as not ready and the returned
// Artifacts stay in the degraded state for the life of the process.
func (l *ArtifactLoader) LoadAll(ctx context.Context, modelLocation, vectorizerLocation string) *Artifacts {
	a := &Artifacts{}

	var g errgroup.Group
	g.Go(func() error {
		var vec ports.Vectorizer
		vec, a.VectorizerInfo = l.LoadVectorizer(ctx, vectorizerLocation)
		a.vectorizer = vec
		return nil
	})
	g.Go(func() error {
		var model ports.Classifier
		model, a.ModelInfo = l.LoadModel(ctx, modelLocation)
		a.classifier = model
		return nil
	})
	_ = g.Wait()

	return a
}

func (l *ArtifactLoader) LoadVectorizer(ctx context.Context, location string) (ports.Vectorizer, domain.ArtifactInfo) {
	var vec ports.Vectorizer
	info := l.load(ctx, domain.ArtifactKindVectorizer, location, func(data []byte) (string, error) {
		v, err := l.codec.DecodeVectorizer(data)
		if err != nil {
			return "", err
		}
		vec = v
		return v.Type(), nil
	})
	return vec, info
}

func (l *ArtifactLoader) LoadModel(ctx context.Context, location string) (ports.Classifier, domain.ArtifactInfo) {
	var model ports.Classifier
	info := l.load(ctx, domain.ArtifactKindModel, location, func(data []byte) (string, error) {
		m, err := l.codec.DecodeClassifier(data)
		if err != nil {
			return "", err
		}
		model = m
		return m.Type(), nil
	})
	return model, info
}

func (l *ArtifactLoader) load(ctx context.Context, kind domain.ArtifactKind, location string, decode func([]byte) (string, error)) domain.ArtifactInfo {
	start := time.Now()
	info := domain.ArtifactInfo{
		Kind:   kind,
		Source: redact(location),
		LoadID: uuid.New(),
	}
	logger := log.WithFields(log.Fields{
		"artifact": kind,
		"source":   info.Source,
		"load_id":  info.LoadID,
	})
	logger.Info("loading artifact")

	fail := func(err error) domain.ArtifactInfo {
		err = fmt.Errorf("%w: %s: %v", domain.ErrArtifactUnavailable, kind, err)
		info.Error = err.Error()
		logger.WithError(err).Error("artifact load failed")
		return info
	}

	src, err := l.sourceFor(location)
	if err != nil {
		return fail(err)
	}

	data, err := src.Fetch(ctx, location)
	if err != nil {
		return fail(err)
	}
	info.Bytes = len(data)

	typ, err := decode(data)
	if err != nil {
		return fail(err)
	}

	info.Ready = true
	info.Type = typ
	info.LoadedAt = time.Now()
	logger.WithFields(log.Fields{
		"type":        typ,
		"bytes":       len(data),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("artifact loaded")
	return info
}

func (l *ArtifactLoader) sourceFor(location string) (ports.ArtifactSource, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", domain.ErrUnsupportedSource)
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedSource, err)
	}
	src, ok := l.sources[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: scheme %q", domain.ErrUnsupportedSource, u.Scheme)
	}
	return src, nil
}

// redact drops credentials and query strings (signed URLs) from a location
// before it is logged or exposed.
func redact(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
