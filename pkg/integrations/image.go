package integrations

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// MaxUploadWidth bounds submitted recipe images; anything wider is
// downscaled before encoding to keep the payload reasonable.
const MaxUploadWidth = 1280

// EncodeImageFile reads a local image, downscales it to MaxUploadWidth
// if needed and returns it as a base64 JPEG data URI, ready to embed in
// a recipe submission.
func EncodeImageFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxUploadWidth {
		scale := float64(MaxUploadWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy()) * scale)
		scaled := image.NewRGBA(image.Rect(0, 0, MaxUploadWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
