package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

type ProjectHandlerTestSuite struct {
	suite.Suite
	env   *testEnv
	token string
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T(), suite.T().TempDir())
	suite.token = suite.env.login(suite.T())
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.env.close()
}

func (suite *ProjectHandlerTestSuite) createProject(body map[string]interface{}) map[string]interface{} {
	w := suite.env.request("POST", "/api/projects", body, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(suite.T(), w)["project"].(map[string]interface{})
}

func (suite *ProjectHandlerTestSuite) TestCreate_DerivesSlug() {
	project := suite.createProject(map[string]interface{}{
		"title":    "My Cool, Project!",
		"category": "web",
		"status":   "in-progress",
	})

	assert.Equal(suite.T(), "my-cool-project", project["slug"])
	assert.Equal(suite.T(), float64(50), project["completionPercentage"])
}

func (suite *ProjectHandlerTestSuite) TestCreate_Unauthorized() {
	w := suite.env.request("POST", "/api/projects",
		map[string]interface{}{"title": "Nope", "category": "web"}, "")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "TOKEN_REQUIRED", response["code"])
}

func (suite *ProjectHandlerTestSuite) TestCreate_DuplicateSlugIsBadRequest() {
	suite.createProject(map[string]interface{}{
		"title": "First", "slug": "taken", "category": "web",
	})

	w := suite.env.request("POST", "/api/projects",
		map[string]interface{}{"title": "Second", "slug": "taken", "category": "web"}, suite.token)

	// Duplicates come back as 400, not 409.
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "ALREADY_EXISTS", response["code"])
}

func (suite *ProjectHandlerTestSuite) TestList_OrderingAndEnvelope() {
	suite.createProject(map[string]interface{}{"title": "Plain", "category": "web", "priority": 5})
	suite.createProject(map[string]interface{}{"title": "Starred", "category": "web", "featured": true})

	w := suite.env.request("GET", "/api/projects", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	projects := response["projects"].([]interface{})
	suite.Require().Len(projects, 2)
	assert.Equal(suite.T(), "Starred", projects[0].(map[string]interface{})["title"])

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), pagination["total"])
	assert.Equal(suite.T(), float64(20), pagination["limit"])
	assert.Equal(suite.T(), float64(0), pagination["offset"])
}

func (suite *ProjectHandlerTestSuite) TestList_PublicHidesPrivate() {
	suite.createProject(map[string]interface{}{"title": "Visible", "category": "web"})
	suite.createProject(map[string]interface{}{"title": "Hidden", "category": "web", "isPublic": false})

	w := suite.env.request("GET", "/api/projects", nil, "")
	response := decodeBody(suite.T(), w)
	assert.Len(suite.T(), response["projects"].([]interface{}), 1)

	w = suite.env.request("GET", "/api/projects/admin/all", nil, suite.token)
	response = decodeBody(suite.T(), w)
	assert.Len(suite.T(), response["projects"].([]interface{}), 2)
}

func (suite *ProjectHandlerTestSuite) TestGetBySlug_CountsView() {
	suite.createProject(map[string]interface{}{"title": "Viewed", "category": "web"})

	w := suite.env.request("GET", "/api/projects/viewed", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	project := decodeBody(suite.T(), w)["project"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), project["viewCount"])

	// Admin fetch does not count a view.
	w = suite.env.request("GET", "/api/projects/admin/viewed", nil, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)
	project = decodeBody(suite.T(), w)["project"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), project["viewCount"])
}

func (suite *ProjectHandlerTestSuite) TestGetBySlug_NotFound() {
	w := suite.env.request("GET", "/api/projects/missing", nil, "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	response := decodeBody(suite.T(), w)
	assert.Equal(suite.T(), "NOT_FOUND", response["code"])
}

func (suite *ProjectHandlerTestSuite) TestLike() {
	suite.createProject(map[string]interface{}{"title": "Likeable", "category": "web"})

	w := suite.env.request("POST", "/api/projects/1/like", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), decodeBody(suite.T(), w)["likeCount"])

	w = suite.env.request("POST", "/api/projects/1/like", nil, "")
	assert.Equal(suite.T(), float64(2), decodeBody(suite.T(), w)["likeCount"])

	w = suite.env.request("POST", "/api/projects/999/like", nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdate_PartialAndCompletionFloor() {
	project := suite.createProject(map[string]interface{}{
		"title": "Rising", "category": "web", "status": "planning",
	})
	suite.Require().Equal(float64(10), project["completionPercentage"])

	w := suite.env.request("PUT", "/api/projects/1",
		map[string]interface{}{"status": "completed"}, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	updated := decodeBody(suite.T(), w)["project"].(map[string]interface{})
	assert.Equal(suite.T(), float64(100), updated["completionPercentage"])
	assert.Equal(suite.T(), "Rising", updated["title"])
}

func (suite *ProjectHandlerTestSuite) TestDelete() {
	suite.createProject(map[string]interface{}{"title": "Doomed", "category": "web"})

	w := suite.env.request("DELETE", "/api/projects/1", nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.env.request("DELETE", "/api/projects/1", nil, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestBulkUpdate() {
	suite.createProject(map[string]interface{}{"title": "A", "category": "web"})
	suite.createProject(map[string]interface{}{"title": "B", "category": "web"})

	w := suite.env.request("PUT", "/api/projects/bulk", map[string]interface{}{
		"ids":    []uint{1, 2},
		"fields": map[string]interface{}{"featured": true},
	}, suite.token)

	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(2), decodeBody(suite.T(), w)["updated"])

	var featured int64
	suite.env.db.Model(&models.Project{}).Where("featured = ?", true).Count(&featured)
	assert.Equal(suite.T(), int64(2), featured)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
