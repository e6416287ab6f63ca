package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/middleware"
	"github.com/oakfield/realty/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		actorID, _ := middleware.ActorID(c)
		c.JSON(http.StatusOK, gin.H{"userId": actorID})
	})
	return router
}

func performWithHeader(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	router := protectedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 42, Username: "jrealtor", Role: models.RoleRealtor})
	require.NoError(t, err)

	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuthMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := protectedRouter(jwtService)

	w := performWithHeader(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := protectedRouter(jwtService)

	w := performWithHeader(router, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})
	router := protectedRouter(jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "jrealtor", Role: models.RoleRealtor})
	require.NoError(t, err)

	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func realtorOnlyRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	router.POST("/listings", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleRealtor), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"status": "created"})
	})
	return router
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := realtorOnlyRouter(jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "jrealtor", Role: models.RoleRealtor})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/listings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := realtorOnlyRouter(jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 2, Username: "assistant", Role: "ASSISTANT"})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/listings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	issuer := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	validator := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour})
	router := protectedRouter(validator)

	token, _, err := issuer.GenerateToken(&models.User{ID: 1, Username: "jrealtor", Role: models.RoleRealtor})
	require.NoError(t, err)

	w := performWithHeader(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
