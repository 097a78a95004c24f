package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T(), suite.T().TempDir())
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.env.close()
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	w := suite.env.request("POST", "/api/auth/login",
		map[string]interface{}{"password": testAdminPassword}, "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	assert.NotEmpty(suite.T(), response["token"])
	admin := response["admin"].(map[string]interface{})
	assert.Equal(suite.T(), "admin", admin["username"])
	assert.NotContains(suite.T(), admin, "passwordHash")
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	w := suite.env.request("POST", "/api/auth/login",
		map[string]interface{}{"password": "wrong"}, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "INVALID_CREDENTIALS", response["code"])
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingPassword() {
	w := suite.env.request("POST", "/api/auth/login", map[string]interface{}{}, "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestLogin_RateLimited sends six attempts from one address; the sixth is
// rejected before credentials are checked.
func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	for i := 0; i < 5; i++ {
		w := suite.env.request("POST", "/api/auth/login",
			map[string]interface{}{"password": "wrong"}, "")
		assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	}

	w := suite.env.request("POST", "/api/auth/login",
		map[string]interface{}{"password": testAdminPassword}, "")

	assert.Equal(suite.T(), http.StatusTooManyRequests, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "TOO_MANY_ATTEMPTS", response["code"])
}

func (suite *AuthHandlerTestSuite) TestVerify_Success() {
	token := suite.env.login(suite.T())

	w := suite.env.request("GET", "/api/auth/verify", nil, token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := decodeBody(suite.T(), w)
	admin := response["admin"].(map[string]interface{})
	assert.Equal(suite.T(), "admin", admin["username"])
}

func (suite *AuthHandlerTestSuite) TestVerify_NoToken() {
	w := suite.env.request("GET", "/api/auth/verify", nil, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "TOKEN_REQUIRED", response["code"])
}

func (suite *AuthHandlerTestSuite) TestVerify_GarbageToken() {
	w := suite.env.request("GET", "/api/auth/verify", nil, "garbage")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "INVALID_TOKEN", response["code"])
}

func (suite *AuthHandlerTestSuite) TestChangePassword_Success() {
	token := suite.env.login(suite.T())

	w := suite.env.request("PUT", "/api/auth/password", map[string]interface{}{
		"currentPassword": testAdminPassword,
		"newPassword":     "brand-new-password",
	}, token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// Old password no longer works.
	w = suite.env.request("POST", "/api/auth/login",
		map[string]interface{}{"password": testAdminPassword}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestChangePassword_WrongCurrent() {
	token := suite.env.login(suite.T())

	w := suite.env.request("PUT", "/api/auth/password", map[string]interface{}{
		"currentPassword": "nope",
		"newPassword":     "brand-new-password",
	}, token)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "INVALID_CREDENTIALS", response["code"])
}

func (suite *AuthHandlerTestSuite) TestResetRequest_AlwaysOK() {
	w := suite.env.request("POST", "/api/auth/reset-password/request",
		map[string]interface{}{"email": "nobody@example.com"}, "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
