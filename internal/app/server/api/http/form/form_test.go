package form

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (string, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for k, content := range files {
		part, err := w.CreateFormFile(k, k+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return w.FormDataContentType(), buf.Bytes()
}

func TestParse_URLEncoded(t *testing.T) {
	f, err := Parse("application/x-www-form-urlencoded", []byte("name=Taxes&user_id=7&description="))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Taxes", f.Value("name"))
	assert.Equal(t, "", f.Value("description"))

	id, err := f.Int64("user_id")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)

	_, _, ok, err := f.File("document")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParse_Multipart(t *testing.T) {
	content := []byte{0, 1, 2, 255}
	ct, body := multipartBody(t,
		map[string]string{"name": "a.bin", "user_id": "x"},
		map[string][]byte{"document": content},
	)

	f, err := Parse(ct, body)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "a.bin", f.Value("name"))

	_, err = f.Int64("user_id")
	assert.ErrorIs(t, err, ErrNotInteger)

	got, header, ok, err := f.File("document")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "document.bin", header.Filename)
	assert.Equal(t, content, got)
}

func TestParse_Unsupported(t *testing.T) {
	for _, ct := range []string{"", "application/json", "not a media type;;"} {
		f, err := Parse(ct, []byte(`{"name":"x"}`))
		require.NoError(t, err, ct)
		assert.Equal(t, "", f.Value("name"))
		assert.NoError(t, f.Close())
	}
}

func TestParse_BrokenMultipart(t *testing.T) {
	_, err := Parse("multipart/form-data; boundary=zzz", []byte("garbage"))
	assert.Error(t, err)
}

func TestInt64_Absent(t *testing.T) {
	f, err := Parse("application/x-www-form-urlencoded", []byte("size=+"))
	require.NoError(t, err)

	v, err := f.Int64("size")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = f.Int64("folder_id")
	assert.NoError(t, err)
	assert.Nil(t, v)
}
