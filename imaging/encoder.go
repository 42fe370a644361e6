package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/pagemark/model"
)

// Mode selects how images reach the markdown output
type Mode int

const (
	// ModeFile writes each image to a file and references it by path
	ModeFile Mode = iota

	// ModeEmbed inlines each image as a base64 data URI
	ModeEmbed
)

// EncoderConfig holds configuration for image encoding
type EncoderConfig struct {
	// Mode selects file output or inline embedding. Default: ModeFile
	Mode Mode

	// Dir is the directory image files are written to. Markdown references
	// are relative to the output document. Default: "."
	Dir string

	// Format is the output encoding: "png", "jpeg", "tiff" or "bmp".
	// Default: "png"
	Format string

	// MinWidth and MinHeight skip images smaller than this in either
	// dimension, filtering out icons and decorations. Default: 30 each
	MinWidth  int
	MinHeight int
}

// DefaultEncoderConfig returns sensible default configuration
func DefaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		Mode:      ModeFile,
		Dir:       ".",
		Format:    "png",
		MinWidth:  30,
		MinHeight: 30,
	}
}

// Encoder encodes extracted images and produces their markdown targets.
// It implements the markdown image renderer contract.
type Encoder struct {
	config EncoderConfig
}

// NewEncoder creates an encoder with default configuration
func NewEncoder() *Encoder {
	return NewEncoderWithConfig(DefaultEncoderConfig())
}

// NewEncoderWithConfig creates an encoder with custom configuration
func NewEncoderWithConfig(config EncoderConfig) *Encoder {
	if config.Format == "" {
		config.Format = "png"
	}
	if config.Dir == "" {
		config.Dir = "."
	}
	return &Encoder{config: config}
}

// Target encodes one image and returns its markdown target. Images below the
// configured minimum size return an empty target and are skipped.
func (e *Encoder) Target(img *model.ImageRef, pageNumber, index int) (string, error) {
	if img.Width < e.config.MinWidth || img.Height < e.config.MinHeight {
		return "", nil
	}
	if len(img.Data) == 0 {
		return "", nil
	}

	encoded, err := e.transcode(img)
	if err != nil {
		return "", err
	}

	if e.config.Mode == ModeEmbed {
		return fmt.Sprintf("data:image/%s;base64,%s",
			e.config.Format, base64.StdEncoding.EncodeToString(encoded)), nil
	}

	name := fmt.Sprintf("page-%d-%d.%s", pageNumber, index, e.config.Format)
	path := filepath.Join(e.config.Dir, name)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}
	return name, nil
}

// transcode re-encodes the image bytes in the configured output format.
// Data already in the target format passes through untouched.
func (e *Encoder) transcode(img *model.ImageRef) ([]byte, error) {
	if img.Format == e.config.Format {
		return img.Data, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", img.Format, err)
	}

	var buf bytes.Buffer
	switch e.config.Format {
	case "png":
		err = png.Encode(&buf, decoded)
	case "jpeg":
		err = jpeg.Encode(&buf, decoded, nil)
	case "tiff":
		err = tiff.Encode(&buf, decoded, nil)
	case "bmp":
		err = bmp.Encode(&buf, decoded)
	default:
		return nil, fmt.Errorf("unsupported image format %q", e.config.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s image: %w", e.config.Format, err)
	}
	return buf.Bytes(), nil
}

// ValidFormat reports whether the encoder supports an output format name
func ValidFormat(format string) bool {
	switch format {
	case "png", "jpeg", "tiff", "bmp":
		return true
	}
	return false
}
