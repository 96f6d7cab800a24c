package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadController_GeneratePresignedURL(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodPost, "/upload/presigned-url", GeneratePresignedURLRequest{
		Filename:    "rx.png",
		ContentType: "image/png",
		Folder:      "prescriptions",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "prescriptions/test.png", body["key"])
	assert.NotEmpty(t, body["upload_url"])
}

func TestUploadController_Rejections(t *testing.T) {
	env := setupControllerTest(t)

	w := env.do(t, http.MethodPost, "/upload/presigned-url", GeneratePresignedURLRequest{
		Filename: "rx.pdf", ContentType: "application/pdf", Folder: "prescriptions",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UPLOAD_INVALID_FILE_TYPE", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/upload/presigned-url", GeneratePresignedURLRequest{
		Filename: "a.png", ContentType: "image/png", Folder: "profiles",
	}, "")
	assert.Equal(t, "UPLOAD_INVALID_FOLDER", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/upload/presigned-url", GeneratePresignedURLRequest{
		Filename: "fail.png", ContentType: "image/png", Folder: "documents",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "UPLOAD_FAILED", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/upload/presigned-url", GeneratePresignedURLRequest{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
