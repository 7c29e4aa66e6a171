package recognize

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Image is a decoded image payload.
type Image struct {
	Data     []byte
	MIMEType string
}

// NewImage wraps raw bytes, sniffing the MIME type.
func NewImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	return &Image{Data: data, MIMEType: sniffMIME(data)}, nil
}

// DecodeImage decodes a base64 payload, with or without a
// "data:image/...;base64," prefix.
func DecodeImage(payload string) (*Image, error) {
	payload = strings.TrimSpace(payload)
	declared := ""
	if strings.HasPrefix(payload, "data:") {
		comma := strings.Index(payload, ",")
		if comma < 0 {
			return nil, errors.New("invalid data URI")
		}
		meta := payload[len("data:"):comma]
		declared, _, _ = strings.Cut(meta, ";")
		payload = payload[comma+1:]
	}
	if payload == "" {
		return nil, errors.New("empty image")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip padding.
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 image: %w", err)
		}
	}
	img, err := NewImage(data)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(declared, "image/") {
		img.MIMEType = declared
	}
	return img, nil
}

// Base64 returns the payload as standard base64 without a data-URI prefix.
func (img *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

func sniffMIME(data []byte) string {
	mime := http.DetectContentType(data)
	if strings.HasPrefix(mime, "image/") {
		return mime
	}
	return "image/jpeg"
}
