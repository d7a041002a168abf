// Package ocr adapts the gosseract Tesseract binding to the ports.Recognizer
// interface.
package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Reader extracts text from screen captures using Tesseract.
type Reader struct {
	languages []string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLanguages sets the Tesseract language models, e.g. "eng", "deu".
func WithLanguages(langs ...string) Option {
	return func(r *Reader) { r.languages = langs }
}

// New creates a Reader. With no options Tesseract's default language is used.
func New(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recognize runs OCR over the image and returns the extracted text, trimmed.
// A blank image yields an empty string, not an error; a nil or unencodable
// image fails loudly.
func (r *Reader) Recognize(img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("ocr: nil image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode capture: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(r.languages) > 0 {
		if err := client.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set ocr language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("load capture: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("text recognition: %w", err)
	}
	return strings.TrimSpace(text), nil
}
