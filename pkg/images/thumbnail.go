package images

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Uploaded images are shrunk to fit this box before they are stored.
const (
	thumbnailWidth  = 1280
	thumbnailHeight = 720
)

// Thumbnail decodes an uploaded image and scales it down to fit
// 1280x720, keeping the aspect ratio. Images already inside the box are
// returned as-is.
func Thumbnail(r io.Reader) (image.Image, error) {
	src, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() <= thumbnailWidth && bounds.Dy() <= thumbnailHeight {
		return src, nil
	}

	return imaging.Fit(src, thumbnailWidth, thumbnailHeight, imaging.Lanczos), nil
}
