package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Format selects the PPM variant
type Format int

const (
	FormatP6 Format = iota // Binary RGB triples
	FormatP3               // ASCII decimal triples
)

func (f Format) String() string {
	if f == FormatP3 {
		return "P3"
	}
	return "P6"
}

// ChannelToByte converts a linear channel value to a byte: scale by 255,
// round to nearest, clamp to [0, 255]. NaN maps to 0.
func ChannelToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * 255)
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}

// EncodePPM writes fb as a PPM image, top row first
func EncodePPM(w io.Writer, fb *core.Framebuffer, format Format) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", format, fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, c := range fb.Pixels {
		r, g, b := ChannelToByte(c.R), ChannelToByte(c.G), ChannelToByte(c.B)
		var err error
		if format == FormatP3 {
			_, err = fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		} else {
			_, err = bw.Write([]byte{r, g, b})
		}
		if err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// WritePPM creates path and writes fb into it
func WritePPM(path string, fb *core.Framebuffer, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodePPM(file, fb, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
