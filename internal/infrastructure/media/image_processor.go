// Package media stores uploaded files and derives web variants of images
package media

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/oklog/ulid/v2"
)

// Processor writes upload binaries under a base directory. Images wider than
// maxWidth are resized and every raster image gets a webp variant.
type Processor struct {
	basePath    string
	maxWidth    int
	webpQuality float32
}

// NewProcessor creates a processor rooted at basePath
func NewProcessor(basePath string, maxWidth, webpQuality int) *Processor {
	return &Processor{
		basePath:    basePath,
		maxWidth:    maxWidth,
		webpQuality: float32(webpQuality),
	}
}

// StoredFile describes one stored upload
type StoredFile struct {
	FileName     string
	WebPFileName string
	Mime         string
	Size         int64
	Width        int
	Height       int
}

// Store persists the upload and returns its on-disk names. Raster images are
// re-encoded (resized to maxWidth when wider) with a webp sibling; any other
// file is written verbatim.
func (p *Processor) Store(data []byte, originalName string) (*StoredFile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload")
	}

	if err := os.MkdirAll(p.basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	mimeType := http.DetectContentType(data)
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = extensionForMime(mimeType)
	}
	baseName := ulid.Make().String()

	switch mimeType {
	case "image/jpeg", "image/png", "image/gif":
		return p.storeImage(data, baseName, ext, mimeType)
	default:
		fileName := baseName + ext
		if err := os.WriteFile(filepath.Join(p.basePath, fileName), data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write upload %s: %w", fileName, err)
		}
		return &StoredFile{FileName: fileName, Mime: mimeType, Size: int64(len(data))}, nil
	}
}

func (p *Processor) storeImage(data []byte, baseName, ext, mimeType string) (*StoredFile, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if p.maxWidth > 0 && bounds.Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
		bounds = img.Bounds()
	}

	fileName := baseName + ext
	fullPath := filepath.Join(p.basePath, fileName)
	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to save image %s: %w", fileName, err)
	}

	webpName, err := p.saveWebP(img, baseName)
	if err != nil {
		// webp is an optimization; the primary file is already on disk
		webpName = ""
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat image %s: %w", fileName, err)
	}

	return &StoredFile{
		FileName:     fileName,
		WebPFileName: webpName,
		Mime:         mimeType,
		Size:         info.Size(),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}, nil
}

func (p *Processor) saveWebP(img image.Image, baseName string) (string, error) {
	webpName := baseName + ".webp"
	f, err := os.Create(filepath.Join(p.basePath, webpName))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := webp.Encode(f, img, &webp.Options{Quality: p.webpQuality}); err != nil {
		os.Remove(filepath.Join(p.basePath, webpName))
		return "", err
	}
	return webpName, nil
}

// PathFor resolves a stored file name to its absolute path
func (p *Processor) PathFor(fileName string) string {
	return filepath.Join(p.basePath, filepath.Base(fileName))
}

// Remove deletes stored files, ignoring already-missing ones
func (p *Processor) Remove(fileNames ...string) {
	for _, name := range fileNames {
		if name == "" {
			continue
		}
		os.Remove(p.PathFor(name))
	}
}

func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
