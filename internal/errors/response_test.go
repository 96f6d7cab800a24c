package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorized_DefaultMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Unauthorized(c, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, AuthUnauthorized, resp.Error)
	assert.Equal(t, "로그인이 필요합니다", resp.Message)
}

func TestRespondWithFieldError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithFieldError(c, ValidationMismatch, "confirm_password", "비밀번호가 일치하지 않습니다.")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp FieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ValidationMismatch, resp.Error)
	assert.Equal(t, "confirm_password", resp.Field)
}
