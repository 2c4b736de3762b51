package filesource

import (
	"context"
	"fmt"
	"net/url"
	"os"

	ports "phishing-url-service/internal/core/ports/output"
)

type fileSource struct{}

// NewFileSource reads artifacts from file:// locations. Meant for local runs
// and tests; production artifacts come from a remote source.
func NewFileSource() ports.ArtifactSource {
	return fileSource{}
}

func (fileSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}
	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		// file://relative/path
		path = u.Host + u.Path
	}
	if path == "" {
		return nil, fmt.Errorf("empty file location %q", location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
