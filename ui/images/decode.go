package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ErrEmpty is returned for zero-length input.
var ErrEmpty = errors.New("empty image data")

// Decode parses jpeg, png, gif or webp bytes and applies EXIF orientation so
// phone photos are displayed upright.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmpty
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unrecognised image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// Prepare decodes data and fits it inside maxW x maxH, returning PNG bytes
// ready for a Tk photo.
func Prepare(data []byte, maxW, maxH int) ([]byte, image.Rectangle, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	fitted := ScaleToFit(img, maxW, maxH)
	out := EncodePNG(fitted)
	if len(out) == 0 {
		return nil, image.Rectangle{}, errors.New("png encode failed")
	}
	return out, fitted.Bounds(), nil
}
