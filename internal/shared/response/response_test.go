package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	// CreateTestContext bypasses gin's handler chain, which is what
	// normally flushes a status set via c.Status; flush it here. This is
	// a no-op when the handler already wrote a body.
	c.Writer.WriteHeaderNow()
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	t.Parallel()

	w := record(func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": 1})
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestErrorEnvelope(t *testing.T) {
	t.Parallel()

	w := record(func(c *gin.Context) {
		BadRequest(c, "bad input")
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestNotFoundHasNoBody(t *testing.T) {
	t.Parallel()

	w := record(func(c *gin.Context) {
		NotFound(c)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestInternalServerErrorIsGeneric(t *testing.T) {
	t.Parallel()

	w := record(func(c *gin.Context) {
		InternalServerError(c)
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), GenericServerError)
}
