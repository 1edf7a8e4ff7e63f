package csvsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"
)

// Stdin is the source URI that reads from standard input.
const Stdin = "-"

// Location is a parsed source URI.
type Location struct {
	Scheme string // "file", "s3" or "stdin"
	Bucket string
	Path   string
}

func (l Location) String() string {
	switch l.Scheme {
	case "s3":
		return "s3://" + l.Bucket + "/" + l.Path
	case "stdin":
		return Stdin
	default:
		return l.Path
	}
}

// ParseLocation interprets a source URI: "-" for stdin, "s3://bucket/key",
// "file:///abs/path" or a plain filesystem path.
func ParseLocation(uri string) (Location, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidURI)
	case uri == Stdin:
		return Location{Scheme: "stdin"}, nil
	case strings.HasPrefix(uri, "s3://"):
		u, err := url.Parse(uri)
		if err != nil {
			return Location{}, errors.Join(ErrInvalidURI, err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %q must be s3://bucket/key", ErrInvalidURI, uri)
		}
		return Location{Scheme: "s3", Bucket: u.Host, Path: key}, nil
	case strings.HasPrefix(uri, "file://"):
		u, err := url.Parse(uri)
		if err != nil {
			return Location{}, errors.Join(ErrInvalidURI, err)
		}
		return Location{Scheme: "file", Path: u.Path}, nil
	case strings.Contains(uri, "://"):
		return Location{}, fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidURI, uri)
	default:
		return Location{Scheme: "file", Path: uri}, nil
	}
}

// Opener opens CSV sources by URI. The zero value opens local files and stdin;
// S3 locations need an S3 client.
type Opener struct {
	stdin    io.Reader
	s3Client S3Client
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithStdin replaces os.Stdin as the reader behind "-".
func WithStdin(r io.Reader) OpenerOption {
	return func(o *Opener) {
		if r != nil {
			o.stdin = r
		}
	}
}

// WithS3 enables s3:// locations.
func WithS3(client S3Client) OpenerOption {
	return func(o *Opener) {
		o.s3Client = client
	}
}

// NewOpener creates an Opener.
func NewOpener(opts ...OpenerOption) *Opener {
	o := &Opener{stdin: os.Stdin}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open returns a reader for uri. The caller must close it.
func (o *Opener) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := ParseLocation(uri)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch loc.Scheme {
	case "stdin":
		return io.NopCloser(o.stdin), nil
	case "s3":
		if o.s3Client == nil {
			return nil, fmt.Errorf("%w: no S3 client for %s", ErrInvalidConfig, loc)
		}
		return getObject(ctx, o.s3Client, loc.Bucket, loc.Path)
	default:
		return openLocal(loc.Path)
	}
}

// Load opens uri and parses it.
func (o *Opener) Load(ctx context.Context, uri string, opts ...Option) (*Table, error) {
	rc, err := o.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(ctx, rc, opts...)
}

func openLocal(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, errors.Join(ErrFailedToOpenFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenFile, err)
	}
	return f, nil
}
