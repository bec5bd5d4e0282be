package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/internal/utils"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func langRouter() *gin.Engine {
	r := gin.New()
	r.Use(Language())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(LangKey))
	})
	return r
}

func TestLanguageDefaultsToArabic(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	langRouter().ServeHTTP(w, req)

	assert.Equal(t, "ar", w.Body.String())
}

func TestLanguageUnknownFallsBackToEnglish(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("lang", "fr")
	langRouter().ServeHTTP(w, req)

	assert.Equal(t, "en", w.Body.String())
}

func TestLanguagePassesSupportedValue(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("lang", "en")
	langRouter().ServeHTTP(w, req)

	assert.Equal(t, "en", w.Body.String())
}

func docsRouter() *gin.Engine {
	r := gin.New()
	r.GET("/docs/:token", ProtectDocs(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestProtectDocsMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/docs/", nil)

	ProtectDocs(testSecret)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is missing in URL")
}

func TestProtectDocsInvalidToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/docs/not-a-token", nil)
	docsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestProtectDocsRejectsNonSuperAdmin(t *testing.T) {
	token, err := utils.GenerateSessionToken(testSecret, "abc", "admin@clinic.test", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/docs/"+token, nil)
	docsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "SuperAdmin only")
}

func TestProtectDocsAcceptsSuperAdminAnyCase(t *testing.T) {
	for _, role := range []string{"superAdmin", "SuperAdmin"} {
		token, err := utils.GenerateSessionToken(testSecret, "abc", "root@clinic.test", role)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/docs/"+token, nil)
		docsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userEmail"))
	})
	return r
}

func TestAuthRequiresToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	token, err := utils.GenerateSessionToken(testSecret, "abc", "admin@clinic.test", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@clinic.test", w.Body.String())
}

func TestAuthAcceptsCookie(t *testing.T) {
	token, err := utils.GenerateSessionToken(testSecret, "abc", "admin@clinic.test", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsForeignSignature(t *testing.T) {
	token, err := utils.GenerateSessionToken([]byte("other-secret"), "abc", "admin@clinic.test", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
