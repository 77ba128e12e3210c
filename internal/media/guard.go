package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"culturefest-api/internal/apperr"

	"github.com/gabriel-vasile/mimetype"
)

var DefaultAllowed = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

// Guard rejects uploads by size and sniffed content type.
type Guard struct {
	MaxBytes int64
	Allowed  []string
}

// Check returns the detected content type of data.
func (g Guard) Check(data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperr.Upload(apperr.ReasonEmpty, "uploaded file is empty", nil)
	}
	if g.MaxBytes > 0 && int64(len(data)) > g.MaxBytes {
		return "", apperr.Upload(apperr.ReasonTooLarge, fmt.Sprintf("file exceeds %d MB", g.MaxBytes>>20), nil)
	}

	detected := mimetype.Detect(data)
	allowed := g.Allowed
	if len(allowed) == 0 {
		allowed = DefaultAllowed
	}
	for _, a := range allowed {
		if detected.Is(a) {
			return a, nil
		}
	}
	return "", apperr.Upload(
		apperr.ReasonUnsupportedType,
		fmt.Sprintf("%s is not accepted, use %s", detected.String(), strings.Join(allowed, ", ")),
		nil,
	)
}

// ReadFileHeader reads a multipart file, stopping one byte past maxBytes.
func ReadFileHeader(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, apperr.Upload(apperr.ReasonTooLarge, fmt.Sprintf("file exceeds %d MB", maxBytes>>20), nil)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperr.Upload(apperr.ReasonFailed, "could not read uploaded file", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.Upload(apperr.ReasonFailed, "could not read uploaded file", err)
	}
	return data, nil
}
