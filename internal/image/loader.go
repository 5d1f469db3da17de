package imagepkg

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/wishbanner/internal/util"
)

// Photo is a resolved photo. Placeholder is set when the reference could not
// be resolved and Image is the "No Photo" square; it is diagnostic only.
type Photo struct {
	Image       image.Image
	Placeholder bool
}

// Loader resolves photo references. It never fails: anything it cannot
// resolve becomes the placeholder.
//
// Local file references are refused unless AllowFiles is set. With a
// FileRoot they must also resolve inside that directory.
type Loader struct {
	Timeout    time.Duration
	MaxBytes   int64
	AllowFiles bool
	FileRoot   string
	Logger     *zap.Logger
}

var errFilesDisabled = errors.New("local file references are disabled")

const defaultLoadTimeout = 10 * time.Second

// Load resolves ref, which may be empty, a data: URI, an http(s) URL or a
// local file path (see AllowFiles).
func (l *Loader) Load(ctx context.Context, ref string) Photo {
	img, err := l.resolve(ctx, strings.TrimSpace(ref))
	if err != nil {
		if err != errNoPhoto {
			l.logger().Debug("photo unavailable, using placeholder",
				zap.String("ref", abbreviate(ref)), zap.Error(err))
		}
		return Photo{Image: Placeholder(), Placeholder: true}
	}
	return Photo{Image: img}
}

// LoadPair resolves both references concurrently and waits for both.
func (l *Loader) LoadPair(ctx context.Context, a, b string) (Photo, Photo) {
	var pa, pb Photo
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pa = l.Load(ctx, a)
	}()
	go func() {
		defer wg.Done()
		pb = l.Load(ctx, b)
	}()
	wg.Wait()
	return pa, pb
}

func (l *Loader) resolve(ctx context.Context, ref string) (image.Image, error) {
	switch {
	case ref == "":
		return nil, errNoPhoto
	case strings.HasPrefix(ref, "data:"):
		return DecodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		timeout := l.Timeout
		if timeout <= 0 {
			timeout = defaultLoadTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return DownloadImage(ctx, ref, l.MaxBytes)
	default:
		return l.openFile(ref)
	}
}

func (l *Loader) openFile(ref string) (image.Image, error) {
	if !l.AllowFiles {
		return nil, errFilesDisabled
	}
	var f *os.File
	if l.FileRoot == "" {
		fp, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		f = fp
	} else {
		root, err := os.OpenRoot(l.FileRoot)
		if err != nil {
			return nil, err
		}
		defer root.Close()
		name, err := rootRelative(l.FileRoot, ref)
		if err != nil {
			return nil, err
		}
		// Root.Open rejects ".." escapes and symlinks leaving the root
		fp, err := root.Open(name)
		if err != nil {
			return nil, err
		}
		f = fp
	}
	defer f.Close()

	limit := l.MaxBytes
	if limit <= 0 {
		limit = util.DefaultMaxBytes
	}
	b, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("file exceeds %d bytes", limit)
	}
	return DecodeBytes(b)
}

// rootRelative expresses ref, taken relative to the working directory,
// as a path inside root.
func rootRelative(root, ref string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absRef, err := filepath.Abs(ref)
	if err != nil {
		return "", err
	}
	return filepath.Rel(absRoot, absRef)
}

func (l *Loader) logger() *zap.Logger {
	if l == nil || l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func abbreviate(ref string) string {
	if len(ref) > 64 {
		return ref[:64] + "..."
	}
	return ref
}
