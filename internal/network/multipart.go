package network

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/google/uuid"
)

// MultipartBody encodes parts as form-data files named file<i> and returns the
// payload with its Content-Type (the boundary in the header matches the body).
func MultipartBody(parts [][]byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary("Boundary-" + uuid.NewString()); err != nil {
		return nil, "", err
	}

	for i, data := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file%d"; filename="file%d.jpg"`, i, i))
		h.Set("Content-Type", "image/jpeg")

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %d: %w", i, err)
		}
		if _, err := pw.Write(data); err != nil {
			return nil, "", fmt.Errorf("failed to write part %d: %w", i, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
