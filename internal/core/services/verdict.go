package services

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"phishing-url-service/internal/core/domain"
	"phishing-url-service/internal/core/heuristics"
)

// VerdictService turns a URL into a Verdict. It is the only entry point the
// HTTP adapters use; it never panics and never returns a raw error.
type VerdictService struct {
	artifacts *Artifacts
	explain   func(url string) []string
}

func NewVerdictService(artifacts *Artifacts) *VerdictService {
	return &VerdictService{artifacts: artifacts, explain: heuristics.Explain}
}

func (s *VerdictService) Artifacts() *Artifacts {
	return s.artifacts
}

func (s *VerdictService) Ready() bool {
	return s.artifacts.Ready()
}

func (s *VerdictService) Assemble(url string) (v domain.Verdict) {
	if !s.artifacts.Ready() {
		return domain.Verdict{
			Label:    domain.LabelError,
			Message:  domain.MessageSystemError,
			Warnings: []string{},
			Fault:    fmt.Errorf("%w: model or vectorizer not loaded", domain.ErrArtifactUnavailable),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			v = faultVerdict(url, fmt.Errorf("%w: %v", domain.ErrInferenceFault, r))
		}
	}()

	fv, err := s.artifacts.Vectorize(url)
	if err != nil {
		return faultVerdict(url, err)
	}
	label, err := s.artifacts.Predict(fv)
	if err != nil {
		return faultVerdict(url, err)
	}

	switch domain.Label(label) {
	case domain.LabelBad:
		return domain.Verdict{
			Label:    domain.LabelBad,
			Message:  domain.MessageBad,
			Warnings: s.explain(url),
		}
	case domain.LabelGood:
		return domain.Verdict{
			Label:    domain.LabelGood,
			Message:  domain.MessageGood,
			Warnings: []string{},
		}
	default:
		log.WithField("label", label).Warn("classifier returned an unrecognized label")
		return domain.Verdict{
			Label:    domain.LabelError,
			Message:  domain.MessageUnknownLabel,
			Warnings: []string{},
			Fault:    fmt.Errorf("%w: %q", domain.ErrUnrecognizedLabel, label),
		}
	}
}

func faultVerdict(url string, err error) domain.Verdict {
	entry := log.WithError(err).WithField("url_length", len(url))
	if errors.Is(err, domain.ErrNotReady) {
		entry.Error("prediction attempted without loaded artifacts")
		return domain.Verdict{
			Label:    domain.LabelError,
			Message:  domain.MessageSystemError,
			Warnings: []string{},
			Fault:    err,
		}
	}
	entry.Error("prediction failed")
	return domain.Verdict{
		Label:    domain.LabelError,
		Message:  domain.FaultMessage(err),
		Warnings: []string{},
		Fault:    err,
	}
}
