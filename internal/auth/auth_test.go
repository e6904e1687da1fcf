package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTOperations(t *testing.T) {
	service := NewAuthService("test-signing-key-for-jwt-operations")

	// Test token generation
	token, err := service.GenerateJWT("usr_2aFh8xKq", "Jordan Lee", "jordan.lee@berkeley.k12.us", "https://avatars.example/jordan")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Test token validation
	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "usr_2aFh8xKq", claims.UserID)
	assert.Equal(t, "Jordan Lee", claims.Name)
	assert.Equal(t, "jordan.lee@berkeley.k12.us", claims.Email)
	assert.Equal(t, "https://avatars.example/jordan", claims.AvatarURL)
	assert.Equal(t, "usr_2aFh8xKq", claims.Subject)

	// Test invalid token
	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-one")
	verifier := NewAuthService("secret-two")

	token, err := issuer.GenerateJWT("usr_1", "Test User", "test@example.com", "")
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := NewAuthService("test-signing-key")
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "Authorization header is required", response["error"])
	})

	t.Run("wrong header format", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT("usr_42", "Ada", "ada@student.example", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "usr_42", response["user_id"])
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := NewAuthService("test-signing-key")
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("no token still passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "", response["user_id"])
	})

	t.Run("garbage token still passes anonymously", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer junk")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		token, err := service.GenerateJWT("usr_7", "Sam", "sam@student.example", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "usr_7", response["user_id"])
	})
}

func TestContextHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty user id is treated as unauthenticated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", "")

		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("claims round trip", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		want := &AuthClaims{UserID: "usr_9", Name: "Kai", Email: "kai@student.example"}
		c.Set("auth_claims", want)

		got, ok := GetAuthClaims(c)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("missing keys", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := GetUserID(c)
		assert.False(t, ok)
		_, ok = GetUserEmail(c)
		assert.False(t, ok)
		_, ok = GetUserName(c)
		assert.False(t, ok)
		_, ok = GetAvatarURL(c)
		assert.False(t, ok)
		_, ok = GetAuthClaims(c)
		assert.False(t, ok)
	})
}
