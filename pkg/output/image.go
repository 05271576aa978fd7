package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToImage converts fb to an opaque 8-bit image using the same per-channel
// clamp as the PPM writer
func ToImage(fb *core.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = ChannelToByte(c.R)
			img.Pix[offset+1] = ChannelToByte(c.G)
			img.Pix[offset+2] = ChannelToByte(c.B)
			img.Pix[offset+3] = 255
		}
	}
	return img
}

// SaveImage writes fb to path. The extension picks the encoder: ".ppm" is
// written as binary PPM, anything else goes through imaging (png, jpg,
// gif, bmp, tif).
func SaveImage(path string, fb *core.Framebuffer) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return WritePPM(path, fb, FormatP6)
	}
	if err := imaging.Save(ToImage(fb), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// SaveImageAs writes fb to path in the named format, whatever the extension
// of path
func SaveImageAs(path string, fb *core.Framebuffer, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Encode(file, fb, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Supported reports whether Encode accepts the format name
func Supported(format string) bool {
	switch strings.ToLower(format) {
	case "ppm", "p6", "p3":
		return true
	}
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

// Extension returns the file extension, without the dot, for a format name.
// Both PPM variants use "ppm".
func Extension(format string) string {
	switch format = strings.ToLower(format); format {
	case "p6", "p3":
		return "ppm"
	case "jpeg":
		return "jpg"
	case "tiff":
		return "tif"
	default:
		return format
	}
}

// Encode writes fb to w in the named format ("ppm", "p3", "png", "jpg", ...)
func Encode(w io.Writer, fb *core.Framebuffer, format string) error {
	switch strings.ToLower(format) {
	case "ppm", "p6":
		return EncodePPM(w, fb, FormatP6)
	case "p3":
		return EncodePPM(w, fb, FormatP3)
	}

	imgFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported image format %q: %w", format, err)
	}
	return EncodeImage(w, ToImage(fb), imgFormat)
}

// EncodeImage writes an already converted image with imaging
func EncodeImage(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// ContentType returns the MIME type for a format name accepted by Encode
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "ppm", "p6", "p3":
		return "image/x-portable-pixmap"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Thumbnail downscales fb to fit within maxWidth x maxHeight, preserving
// the aspect ratio. Images already inside the box are returned unscaled.
func Thumbnail(fb *core.Framebuffer, maxWidth, maxHeight uint) image.Image {
	return resize.Thumbnail(maxWidth, maxHeight, ToImage(fb), resize.Bilinear)
}

// SaveThumbnail writes a downscaled copy of fb to path
func SaveThumbnail(path string, fb *core.Framebuffer, maxWidth, maxHeight uint) error {
	if err := imaging.Save(Thumbnail(fb, maxWidth, maxHeight), path); err != nil {
		return fmt.Errorf("failed to save thumbnail %s: %w", path, err)
	}
	return nil
}
