package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// An article read with no authenticated identity on the context must fail
// with 401 before the service is ever consulted.
func TestGetArticleHandlerRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/articles/a-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "a-1"}}

	h := &ArticleHandler{}
	h.GetArticleHandler(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
