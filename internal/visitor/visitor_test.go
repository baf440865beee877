package visitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcecodehub/hub-backend/internal/storage"
)

func TestNewLabel(t *testing.T) {
	for i := 0; i < 500; i++ {
		label := NewLabel()
		require.True(t, strings.HasPrefix(label, "USER"), label)

		n, err := strconv.Atoi(strings.TrimPrefix(label, "USER"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10000)
		assert.True(t, Valid(label))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("USER0"))
	assert.True(t, Valid("USER9999"))
	assert.False(t, Valid("USER10000"))
	assert.False(t, Valid("user12"))
	assert.False(t, Valid("USER<script>"))
	assert.False(t, Valid(""))
}

func TestEnsureLabel(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	first, err := EnsureLabel(ctx, kv)
	require.NoError(t, err)

	second, err := EnsureLabel(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	t.Run("garbage is replaced", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, Key, "hacker"))
		label, err := EnsureLabel(ctx, kv)
		require.NoError(t, err)
		assert.True(t, Valid(label))
	})
}

type downKV struct{ storage.KV }

func (downKV) Get(context.Context, string) (string, error) { return "", errors.New("down") }

func TestEnsureLabel_BackendError(t *testing.T) {
	_, err := EnsureLabel(context.Background(), downKV{storage.NewMemoryStore()})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, Label(c)) })

	t.Run("mints a cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Equal(t, cookies[0].Value, w.Body.String())
		assert.True(t, Valid(w.Body.String()))
	})

	t.Run("keeps an existing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "USER77"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "USER77", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}
