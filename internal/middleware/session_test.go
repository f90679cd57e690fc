package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/banner-admin-api/internal/models"
)

const testSecret = "test_secret"

func signToken(t *testing.T, claims *models.ShopClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runSession(t *testing.T, authorization string) (*httptest.ResponseRecorder, *models.ShopClaims) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	var captured *models.ShopClaims
	r := gin.New()
	r.Use(ShopSession(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		if value, ok := c.Get(ContextShopKey); ok {
			captured = value.(*models.ShopClaims)
		}
		c.Status(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestShopSessionValidToken(t *testing.T) {
	token := signToken(t, &models.ShopClaims{
		ShopID:     "shop-1",
		ShopDomain: "demo.myshopify.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	w, claims := runSession(t, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "shop-1", claims.ShopID)
}

func TestShopSessionMissingHeader(t *testing.T) {
	w, _ := runSession(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestShopSessionWrongSecret(t *testing.T) {
	token := signToken(t, &models.ShopClaims{ShopID: "shop-1"}, "other_secret")
	w, _ := runSession(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestShopSessionMissingShop(t *testing.T) {
	token := signToken(t, &models.ShopClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)
	w, _ := runSession(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestShopSessionMalformedHeader(t *testing.T) {
	w, _ := runSession(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
