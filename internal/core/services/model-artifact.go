package services

import (
	"errors"
	"fmt"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

// Artifacts is the process-wide pair of fitted artifacts. It is built once by
// ArtifactLoader.LoadAll and is read-only afterwards, so it is shared by all
// request handlers without locking.
type Artifacts struct {
	vectorizer ports.Vectorizer
	classifier ports.Classifier

	VectorizerInfo domain.ArtifactInfo
	ModelInfo      domain.ArtifactInfo
}

// NewArtifacts wraps already-decoded artifacts. A nil artifact is reported as
// not ready.
func NewArtifacts(vec ports.Vectorizer, model ports.Classifier) *Artifacts {
	a := &Artifacts{
		vectorizer:     vec,
		classifier:     model,
		VectorizerInfo: domain.ArtifactInfo{Kind: domain.ArtifactKindVectorizer, Source: "memory", Ready: vec != nil},
		ModelInfo:      domain.ArtifactInfo{Kind: domain.ArtifactKindModel, Source: "memory", Ready: model != nil},
	}
	if vec != nil {
		a.VectorizerInfo.Type = vec.Type()
	}
	if model != nil {
		a.ModelInfo.Type = model.Type()
	}
	return a
}

func (a *Artifacts) Ready() bool {
	return a != nil && a.vectorizer != nil && a.classifier != nil
}

// Vectorize converts a URL into the feature vector the classifier expects.
// Any string is accepted.
func (a *Artifacts) Vectorize(url string) (fv domain.FeatureVector, err error) {
	if a == nil || a.vectorizer == nil {
		return domain.FeatureVector{}, fmt.Errorf("%w: vectorizer", domain.ErrNotReady)
	}
	defer recoverFault(&err, "vectorize")

	fv, err = a.vectorizer.Transform(url)
	if err != nil {
		return domain.FeatureVector{}, asInferenceFault(err)
	}
	return fv, nil
}

// Predict maps a feature vector to the raw class label of the model.
func (a *Artifacts) Predict(fv domain.FeatureVector) (label string, err error) {
	if a == nil || a.classifier == nil {
		return "", fmt.Errorf("%w: model", domain.ErrNotReady)
	}
	defer recoverFault(&err, "predict")

	label, err = a.classifier.Predict(fv)
	if err != nil {
		return "", asInferenceFault(err)
	}
	return label, nil
}

func recoverFault(err *error, op string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %s panicked: %v", domain.ErrInferenceFault, op, r)
	}
}

func asInferenceFault(err error) error {
	if errors.Is(err, domain.ErrInferenceFault) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrInferenceFault, err)
}
