// Package sklearn decodes fitted scikit-learn estimators exported as JSON
// (their learned attributes: vocabulary_, idf_, coef_, intercept_, classes_,
// feature_log_prob_, class_log_prior_) and runs inference over them.
package sklearn

import (
	"encoding/json"
	"fmt"

	"phishing-url-service/internal/core/domain"
	ports "phishing-url-service/internal/core/ports/output"
)

type Codec struct{}

func NewCodec() ports.ArtifactCodec {
	return Codec{}
}

func (Codec) DecodeVectorizer(data []byte) (ports.Vectorizer, error) {
	var spec vectorizerSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: decode vectorizer: %v", domain.ErrInvalidArtifact, err)
	}

	switch spec.Type {
	case "CountVectorizer":
		spec.IDF = nil
	case "TfidfVectorizer":
	default:
		return nil, fmt.Errorf("%w: unsupported vectorizer type %q", domain.ErrInvalidArtifact, spec.Type)
	}

	v, err := newVectorizer(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, spec.Type, err)
	}
	return v, nil
}

func (Codec) DecodeClassifier(data []byte) (ports.Classifier, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: decode classifier: %v", domain.ErrInvalidArtifact, err)
	}

	var (
		c   ports.Classifier
		err error
	)
	switch probe.Type {
	case "LogisticRegression", "LinearSVC", "SGDClassifier", "RidgeClassifier":
		var spec linearSpec
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidArtifact, probe.Type, err)
		}
		c, err = newLinearModel(spec)
	case "MultinomialNB", "ComplementNB":
		var spec naiveBayesSpec
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidArtifact, probe.Type, err)
		}
		c, err = newNaiveBayes(spec)
	default:
		return nil, fmt.Errorf("%w: unsupported classifier type %q", domain.ErrInvalidArtifact, probe.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, probe.Type, err)
	}
	return c, nil
}
