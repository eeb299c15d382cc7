package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStore_Image(t *testing.T) {
	p := NewProcessor(t.TempDir(), 1920, 80)

	stored, err := p.Store(pngBytes(t, 640, 480), "site-photo.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", stored.Mime)
	assert.Equal(t, 640, stored.Width)
	assert.Equal(t, 480, stored.Height)
	assert.NotEmpty(t, stored.FileName)

	_, err = os.Stat(p.PathFor(stored.FileName))
	require.NoError(t, err)
}

func TestStore_ResizesWideImages(t *testing.T) {
	p := NewProcessor(t.TempDir(), 100, 80)

	stored, err := p.Store(pngBytes(t, 400, 200), "wide.png")
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Width)
	assert.Equal(t, 50, stored.Height)
}

func TestStore_NonImagePassthrough(t *testing.T) {
	p := NewProcessor(t.TempDir(), 1920, 80)

	data := []byte("%PDF-1.4 fake document body")
	stored, err := p.Store(data, "company-profile.pdf")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", stored.FileName[len(stored.FileName)-4:])
	assert.Equal(t, int64(len(data)), stored.Size)
	assert.Empty(t, stored.WebPFileName)
	assert.Zero(t, stored.Width)

	onDisk, err := os.ReadFile(p.PathFor(stored.FileName))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)
}

func TestStore_EmptyUpload(t *testing.T) {
	p := NewProcessor(t.TempDir(), 1920, 80)
	_, err := p.Store(nil, "empty.bin")
	assert.Error(t, err)
}

func TestRemove_IgnoresMissing(t *testing.T) {
	p := NewProcessor(t.TempDir(), 1920, 80)

	stored, err := p.Store([]byte("some bytes"), "blob.bin")
	require.NoError(t, err)

	p.Remove(stored.FileName, "", "never-existed.bin")
	_, err = os.Stat(p.PathFor(stored.FileName))
	assert.True(t, os.IsNotExist(err))
}
