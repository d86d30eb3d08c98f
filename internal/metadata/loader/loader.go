// Package loader implements metadata.Loader over file, fs.FS, and HTTP
// sources.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

// Loader implements metadata.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	now       func() time.Time
}

// Ensure the implementation satisfies the public interface.
var _ metadata.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options metadata.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src metadata.Source) (metadata.Document, error) {
	if src == nil {
		return metadata.Document{}, errors.New("metadata loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case metadata.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case metadata.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case metadata.SourceKindURL:
		if !l.allowHTTP {
			return metadata.Document{}, errors.New("metadata loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.now)
	default:
		err = errors.New("metadata loader: unsupported source kind")
	}
	if err != nil {
		return metadata.Document{}, err
	}

	return metadata.NewDocument(src, data)
}
