package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/renova-gestion/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/renova-gestion/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "renova-gestion-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y
// RequireUserType delante de un handler que devuelve 200.
func buildTestApp(allowedTypes ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireUserType(allowedTypes...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":        true,
				"user_type": apphttp.GetUserType(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el tipo de usuario indicado.
func tokenFor(t *testing.T, userType string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "maria", userType, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El tipo de usuario permitido pasa.
func TestRequireUserType_AdminPermitido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["user_type"])
}

// Un tipo no incluido en la lista recibe 403.
func TestRequireUserType_OperadorRechazado(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenFor(t, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Multi-tipo: basta con que coincida uno.
func TestRequireUserType_MultiTipo(t *testing.T) {
	app := buildTestApp("admin", "operador")
	resp := doRequest(t, app, tokenFor(t, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin header Authorization → 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secreto → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate("otro-secreto", "maria", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Formato de header inválido → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
