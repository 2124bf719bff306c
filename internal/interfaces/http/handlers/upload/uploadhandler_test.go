package upload

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/application/upload/usecases"
	"leafsmp/internal/interfaces/http/handlers/testutil"
)

type mockUploadImageUC struct {
	result *usecases.UploadImageResult
	err    error
	got    usecases.UploadImageCommand
	called bool
}

func (m *mockUploadImageUC) Execute(_ context.Context, cmd usecases.UploadImageCommand) (*usecases.UploadImageResult, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

func newTestHandler(maxBytes int64) (*UploadHandler, *mockUploadImageUC) {
	uc := &mockUploadImageUC{result: &usecases.UploadImageResult{ImageURL: "/uploads/abc.png"}}
	return NewUploadHandler(uc, maxBytes, testutil.NewMockLogger()), uc
}

func TestUploadImage_DataURL(t *testing.T) {
	h, uc := newTestHandler(1024)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/upload-image",
		map[string]string{"imageData": "data:image/png;base64,iVBORw0KGgo="})
	h.UploadImage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", uc.got.DataURL)
	assert.Empty(t, uc.got.Body)

	var got usecases.UploadImageResult
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Equal(t, "/uploads/abc.png", got.ImageURL)
}

func TestUploadImage_RawBody(t *testing.T) {
	h, uc := newTestHandler(1024)
	payload := []byte("\x89PNG\r\n\x1a\nrest")

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/upload-image", "image/png", payload)
	h.UploadImage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, uc.got.Body)
	assert.Equal(t, "image/png", uc.got.ContentType)
}

func TestUploadImage_MissingImageData(t *testing.T) {
	h, uc := newTestHandler(1024)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/upload-image", map[string]string{})
	h.UploadImage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}

func TestUploadImage_BodyTooLarge(t *testing.T) {
	h, uc := newTestHandler(16)

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/upload-image", "image/png", bytes.Repeat([]byte{0x1}, 4096))
	h.UploadImage(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.False(t, uc.called)
}
