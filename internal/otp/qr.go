package otp

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// QRDecoder reads QR codes from PNG, JPEG or GIF images. Every code found
// in the image is returned, so callers can reject images holding several.
type QRDecoder struct{}

func (QRDecoder) Decode(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", kerrors.ErrIO, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a supported image: %w", kerrors.ErrOTPDecode, path, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrOTPDecode, err)
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, nil)
	if err != nil {
		var notFound gozxing.NotFoundException
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading QR code in %s: %w", kerrors.ErrOTPDecode, path, err)
	}

	texts := make([]string, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if text := r.GetText(); !seen[text] {
			seen[text] = true
			texts = append(texts, text)
		}
	}
	return texts, nil
}
