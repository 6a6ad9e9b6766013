package composer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize is the per-file attachment ceiling.
const MaxImageSize = 5 * 1024 * 1024

var (
	// ErrImageTooLarge rejects a single attachment above MaxImageSize.
	ErrImageTooLarge = errors.New("composer: image exceeds 5MB")
	// ErrNotImage rejects attachments that are not images.
	ErrNotImage = errors.New("composer: not an image")
)

// Rejection records why one file was not attached.
type Rejection struct {
	Name string
	Err  error
}

// AttachReport summarises AttachFiles. A rejected file never stops the rest.
type AttachReport struct {
	Attached []string
	Rejected []Rejection
}

// AttachImage reads one image from r and appends it as a base64 data URI.
func (c *Composer) AttachImage(name string, r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return fmt.Errorf("composer: read %s: %w", name, err)
	}
	if len(data) > MaxImageSize {
		return fmt.Errorf("%w: %s", ErrImageTooLarge, name)
	}
	uri, err := DataURI(name, data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.images = append(c.images, uri)
	c.mu.Unlock()
	return nil
}

// AttachFiles attaches every path, collecting per-file rejections.
func (c *Composer) AttachFiles(paths []string) AttachReport {
	var report AttachReport
	for _, path := range paths {
		name := filepath.Base(path)
		if err := c.attachFile(path); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Name: name, Err: err})
			continue
		}
		report.Attached = append(report.Attached, name)
	}
	return report
}

func (c *Composer) attachFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > MaxImageSize {
		return fmt.Errorf("%w: %s", ErrImageTooLarge, filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.AttachImage(filepath.Base(path), f)
}

// RemoveImage drops the attachment at index i.
func (c *Composer) RemoveImage(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.images) {
		return false
	}
	c.images = append(c.images[:i:i], c.images[i+1:]...)
	return true
}

// DataURI encodes data as an inline image data URI. The media type is
// sniffed from the content, then guessed from the file name.
func DataURI(name string, data []byte) (string, error) {
	mt := http.DetectContentType(data)
	if !strings.HasPrefix(mt, "image/") {
		mt = mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	}
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = mt[:i]
	}
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, name)
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
