package logos

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// LogoSize is the bounding box every logo is fitted into.
	LogoSize = 200
	// maxLogoBytes caps what we read from the provider.
	maxLogoBytes = 2 << 20
)

// Normalize decodes a provider image, fits it inside a size x size box
// keeping its aspect ratio, and re-encodes it as PNG.
// Images already inside the box are not upscaled.
func Normalize(data []byte, size int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	src := img.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUndecodable)
	}

	w, h := fit(src.Dx(), src.Dy(), size)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

// fit returns the largest w x h inside size x size with the source aspect ratio.
func fit(srcW, srcH, size int) (int, int) {
	if srcW <= size && srcH <= size {
		return srcW, srcH
	}
	if srcW >= srcH {
		h := srcH * size / srcW
		if h < 1 {
			h = 1
		}
		return size, h
	}
	w := srcW * size / srcH
	if w < 1 {
		w = 1
	}
	return w, size
}
