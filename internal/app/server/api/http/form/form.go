// Package form decodes urlencoded and multipart request bodies read by huma
// as raw bytes.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxMemory = 8 << 20

var ErrNotInteger = errors.New("not an integer")

type Form struct {
	values    url.Values
	multipart *multipart.Form
}

// Parse decodes body according to contentType. Bodies of any other media
// type yield an empty form.
func Parse(contentType string, body []byte) (*Form, error) {
	empty := &Form{values: url.Values{}}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return empty, nil
	}

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	switch mediaType {
	case "multipart/form-data":
		if err := req.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		return &Form{values: req.MultipartForm.Value, multipart: req.MultipartForm}, nil
	case "application/x-www-form-urlencoded":
		if err := req.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return &Form{values: req.PostForm}, nil
	default:
		return empty, nil
	}
}

func (f *Form) Value(key string) string {
	return f.values.Get(key)
}

// Int64 returns nil when the field is absent or empty.
func (f *Form) Int64(key string) (*int64, error) {
	raw := strings.TrimSpace(f.values.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, ErrNotInteger)
	}
	return &v, nil
}

// File reads the first file part named key. ok is false when there is none.
func (f *Form) File(key string) (content []byte, header *multipart.FileHeader, ok bool, err error) {
	if f.multipart == nil || len(f.multipart.File[key]) == 0 {
		return nil, nil, false, nil
	}

	header = f.multipart.File[key][0]
	file, err := header.Open()
	if err != nil {
		return nil, header, true, fmt.Errorf("open %s: %w", key, err)
	}
	defer file.Close()

	content, err = io.ReadAll(file)
	if err != nil {
		return nil, header, true, fmt.Errorf("read %s: %w", key, err)
	}
	return content, header, true, nil
}

// Close removes temporary files spilled to disk by a multipart parse.
func (f *Form) Close() error {
	if f.multipart == nil {
		return nil
	}
	return f.multipart.RemoveAll()
}
