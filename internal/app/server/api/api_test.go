package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"docstore/internal/app/server/config"
	"docstore/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newLoggedTestServer(t, io.Discard)
}

func newLoggedTestServer(t *testing.T, w io.Writer) *testServer {
	t.Helper()

	cfg := &config.Config{
		Env: config.EnvProd,
		DB: config.DB{
			Driver:      config.DriverSQLite,
			DatabaseURI: filepath.Join(t.TempDir(), "api.db"),
		},
		Server: config.Server{MaxUploadBytes: 1 << 20, CORSOrigins: []string{"*"}},
	}
	log := slog.New(slog.NewTextHandler(w, nil))

	store, err := storage.New(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return &testServer{t: t, handler: New(store, cfg, log)}
}

func (s *testServer) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) json(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	return s.do(method, path, "application/json", r)
}

func (s *testServer) createUser(name string) int64 {
	s.t.Helper()

	resp := s.json(http.MethodPost, "/users", map[string]string{
		"username": name, "email": name + "@example.com", "password": "correct-horse",
	})
	require.Equal(s.t, http.StatusCreated, resp.Code, resp.Body.String())

	var u struct {
		ID int64 `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Body.Bytes(), &u))
	return u.ID
}

func (s *testServer) createFolder(name string, userID int64) int64 {
	s.t.Helper()

	body := "name=" + name + "&user_id=" + strconv.FormatInt(userID, 10)
	resp := s.do(http.MethodPost, "/folders", "application/x-www-form-urlencoded", strings.NewReader(body))
	require.Equal(s.t, http.StatusCreated, resp.Code, resp.Body.String())
	return decodeID(s.t, resp)
}

func (s *testServer) upload(fields map[string]string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	if content != nil {
		part, err := w.CreateFormFile("document", "file.bin")
		require.NoError(s.t, err)
		_, err = part.Write(content)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, w.Close())

	return s.do(http.MethodPost, "/documents", w.FormDataContentType(), &buf)
}

func (s *testServer) count(path string) int {
	s.t.Helper()

	resp := s.do(http.MethodGet, path, "", nil)
	require.Equal(s.t, http.StatusOK, resp.Code)

	var items []json.RawMessage
	require.NoError(s.t, json.Unmarshal(resp.Body.Bytes(), &items))
	return len(items)
}

func decodeID(t *testing.T, resp *httptest.ResponseRecorder) int64 {
	t.Helper()

	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.ID
}

func assertContent(t *testing.T, want []byte, doc documentJSON) {
	t.Helper()

	got, err := base64.StdEncoding.DecodeString(doc.Document)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type documentJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	UserID      int64  `json:"user_id"`
	FolderID    *int64 `json:"folder_id"`
	Document    string `json:"document"`
	Type        string `json:"type"`
	DateCreated string `json:"date_created"`
	Size        int64  `json:"size"`
}

type folderJSON struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	UserID      int64          `json:"user_id"`
	DateCreated string         `json:"date_created"`
	Documents   []documentJSON `json:"documents"`
}

type userJSON struct {
	ID          int64          `json:"id"`
	Username    string         `json:"username"`
	DropboxSync bool           `json:"dropbox_sync"`
	DriveSync   bool           `json:"drive_sync"`
	Documents   []documentJSON `json:"documents"`
	Folders     []folderJSON   `json:"folders"`
}

func TestAPI_Welcome(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Welcome to the Drive Dropbox Backend!", resp.Body.String())

	resp = s.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAPI_RequestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedTestServer(t, &buf)

	paths := []string{"/api/v1/health", "/users", "/folders", "/documents"}
	for _, path := range paths {
		require.Equal(t, http.StatusOK, s.do(http.MethodGet, path, "", nil).Code, path)
	}

	out := buf.String()
	assert.Equal(t, len(paths), strings.Count(out, `msg="HTTP request"`))
	for _, path := range paths {
		assert.Contains(t, out, "path="+path)
	}
}

func TestAPI_CORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_DuplicateUser(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	resp := s.json(http.MethodPost, "/users", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, 1, s.count("/users"))

	resp = s.json(http.MethodPost, "/users", map[string]string{
		"username": "alice2", "email": "alice@example.com", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusConflict, resp.Code, resp.Body.String())
	assert.Equal(t, 1, s.count("/users"))
}

func TestAPI_DocumentRoundTrip(t *testing.T) {
	s := newTestServer(t)
	userID := s.createUser("bob")

	content := make([]byte, 256)
	for i := range content {
		content[i] = byte(i)
	}

	resp := s.upload(map[string]string{
		"name": "all-bytes.bin", "type": "application/octet-stream",
		"user_id": strconv.FormatInt(userID, 10), "size": "1",
	}, content)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "Document created successfully")
	docID := decodeID(t, resp)

	resp = s.do(http.MethodGet, "/document/"+strconv.FormatInt(docID, 10), "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var doc documentJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doc))
	decoded, err := base64.StdEncoding.DecodeString(doc.Document)
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
	assert.Equal(t, int64(len(content)), doc.Size)
	assert.Nil(t, doc.FolderID)
}

func TestAPI_DeleteMissing(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/user/99", "/folder/99", "/document/99"} {
		resp := s.do(http.MethodDelete, path, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}
}

func TestAPI_ToggleTwice(t *testing.T) {
	s := newTestServer(t)
	id := strconv.FormatInt(s.createUser("carol"), 10)

	for _, provider := range []string{"dropbox", "drive"} {
		resp := s.do(http.MethodPut, "/update_"+provider+"_sync/"+id, "", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "sync updated successfully")

		resp = s.do(http.MethodPut, "/update_"+provider+"_sync/"+id, "", nil)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	resp := s.do(http.MethodGet, "/user/"+id+"?depth=0", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var u userJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &u))
	assert.False(t, u.DropboxSync)
	assert.False(t, u.DriveSync)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/update_drive_sync/99", "", nil).Code)
}

func TestAPI_FolderWithoutUser(t *testing.T) {
	s := newTestServer(t)
	before := s.count("/folders")

	resp := s.do(http.MethodPost, "/folders", "application/x-www-form-urlencoded", strings.NewReader("name=Orphan"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Missing required fields")
	assert.Equal(t, before, s.count("/folders"))
}

func TestAPI_FolderUnknownUser(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodPost, "/folders", "application/x-www-form-urlencoded", strings.NewReader("name=Ghost&user_id=42"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, s.count("/folders"))
}

func TestAPI_DocumentWithoutFile(t *testing.T) {
	s := newTestServer(t)
	userID := s.createUser("dave")
	before := s.count("/documents")

	resp := s.upload(map[string]string{
		"name": "x.txt", "type": "text/plain", "user_id": strconv.FormatInt(userID, 10),
	}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "No file provided")
	assert.Equal(t, before, s.count("/documents"))
}

func TestAPI_RejectsInvalidUTF8(t *testing.T) {
	s := newTestServer(t)
	userID := strconv.FormatInt(s.createUser("grace"), 10)

	t.Run("document name", func(t *testing.T) {
		before := s.count("/documents")

		resp := s.upload(map[string]string{
			"name": "\xff\xfe.txt", "type": "text/plain", "user_id": userID,
		}, []byte("hello"))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "valid UTF-8")
		assert.Equal(t, before, s.count("/documents"))
	})

	t.Run("document type", func(t *testing.T) {
		before := s.count("/documents")

		resp := s.upload(map[string]string{
			"name": "ok.txt", "type": "text/\xc3", "user_id": userID,
		}, []byte("hello"))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, before, s.count("/documents"))
	})

	t.Run("folder fields", func(t *testing.T) {
		before := s.count("/folders")

		for _, body := range []string{
			"name=%FF%FE&user_id=" + userID,
			"name=Docs&description=%C3&user_id=" + userID,
		} {
			resp := s.do(http.MethodPost, "/folders", "application/x-www-form-urlencoded", strings.NewReader(body))
			assert.Equal(t, http.StatusBadRequest, resp.Code, body)
		}
		assert.Equal(t, before, s.count("/folders"))
	})

	t.Run("listing still encodes", func(t *testing.T) {
		resp := s.do(http.MethodGet, "/users", "", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, json.Valid(resp.Body.Bytes()))
	})
}

func TestAPI_MalformedID(t *testing.T) {
	s := newTestServer(t)
	s.createUser("heidi")

	for _, path := range []string{"/user/abc", "/folder/1x", "/document/99999999999999999999"} {
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, path, "", nil).Code, path)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, path, "", nil).Code, path)
	}
	assert.Equal(t, 1, s.count("/users"))
}

func TestAPI_Nesting(t *testing.T) {
	s := newTestServer(t)
	userID := s.createUser("erin")
	folderID := s.createFolder("F1", userID)

	resp := s.upload(map[string]string{
		"name": "D1", "type": "text/plain",
		"user_id":   strconv.FormatInt(userID, 10),
		"folder_id": strconv.FormatInt(folderID, 10),
	}, []byte("hello"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = s.do(http.MethodGet, "/user/"+strconv.FormatInt(userID, 10), "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var u userJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &u))

	require.Len(t, u.Documents, 1)
	assert.Equal(t, "D1", u.Documents[0].Name)
	assertContent(t, []byte("hello"), u.Documents[0])
	require.Len(t, u.Folders, 1)
	assert.Equal(t, "F1", u.Folders[0].Name)
	require.Len(t, u.Folders[0].Documents, 1)
	assert.Equal(t, "D1", u.Folders[0].Documents[0].Name)
	assertContent(t, []byte("hello"), u.Folders[0].Documents[0])

	resp = s.do(http.MethodGet, "/folder/"+strconv.FormatInt(folderID, 10), "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var f folderJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &f))
	require.Len(t, f.Documents, 1)
	assert.Equal(t, "D1", f.Documents[0].Name)
	assertContent(t, []byte("hello"), f.Documents[0])

	resp = s.do(http.MethodGet, "/users?depth=1", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var users []userJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &users))
	require.Len(t, users, 1)
	require.Len(t, users[0].Folders, 1)
	assert.Nil(t, users[0].Folders[0].Documents)
}

func TestAPI_RenameKeepsFolderState(t *testing.T) {
	s := newTestServer(t)
	userID := s.createUser("frank")
	folderID := s.createFolder("Old", userID)
	path := "/folder/" + strconv.FormatInt(folderID, 10)

	resp := s.upload(map[string]string{
		"name": "kept.txt", "type": "text/plain",
		"user_id":   strconv.FormatInt(userID, 10),
		"folder_id": strconv.FormatInt(folderID, 10),
	}, []byte("kept"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = s.do(http.MethodGet, path, "", nil)
	var before folderJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &before))

	resp = s.json(http.MethodPut, path, map[string]string{"name": "New"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var after folderJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &after))

	assert.Equal(t, "New", after.Name)
	assert.Equal(t, before.DateCreated, after.DateCreated)
	assert.Equal(t, before.Documents, after.Documents)

	assert.Equal(t, http.StatusNotFound, s.json(http.MethodPut, "/folder/99", map[string]string{"name": "x"}).Code)
}

func TestAPI_DeletePolicy(t *testing.T) {
	s := newTestServer(t)
	userID := s.createUser("gina")
	folderID := s.createFolder("Box", userID)
	uid := strconv.FormatInt(userID, 10)

	resp := s.upload(map[string]string{
		"name": "a.txt", "type": "text/plain", "user_id": uid,
		"folder_id": strconv.FormatInt(folderID, 10),
	}, []byte("a"))
	require.Equal(t, http.StatusCreated, resp.Code)
	docPath := "/document/" + strconv.FormatInt(decodeID(t, resp), 10)

	resp = s.do(http.MethodDelete, "/folder/"+strconv.FormatInt(folderID, 10), "", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = s.do(http.MethodGet, docPath, "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var doc documentJSON
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doc))
	assert.Nil(t, doc.FolderID)

	s.createFolder("Second", userID)
	resp = s.do(http.MethodDelete, "/user/"+uid, "", nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	assert.Equal(t, 0, s.count("/folders"))
	assert.Equal(t, 0, s.count("/documents"))
}

func TestAPI_UpdateUser(t *testing.T) {
	s := newTestServer(t)
	first := s.createUser("hank")
	s.createUser("ivy")

	resp := s.json(http.MethodPut, "/user/"+strconv.FormatInt(first, 10), map[string]string{
		"username": "ivy", "email": "other@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = s.json(http.MethodPut, "/user/"+strconv.FormatInt(first, 10), map[string]string{
		"username": "henry", "email": "henry@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"username":"henry"`)
	assert.NotContains(t, resp.Body.String(), "password")
}
