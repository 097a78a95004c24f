package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

type EducationHandlerTestSuite struct {
	suite.Suite
	env   *testEnv
	token string
}

func (suite *EducationHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T(), suite.T().TempDir())
	suite.token = suite.env.login(suite.T())
}

func (suite *EducationHandlerTestSuite) TearDownTest() {
	suite.env.close()
}

func (suite *EducationHandlerTestSuite) createEntry(institution string, order int) {
	w := suite.env.request("POST", "/api/education", map[string]interface{}{
		"institution": institution,
		"degree":      "BSc",
		"order":       order,
	}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *EducationHandlerTestSuite) TestCreate_RequiresFields() {
	w := suite.env.request("POST", "/api/education",
		map[string]interface{}{"institution": "MIT"}, suite.token)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EducationHandlerTestSuite) TestList_InDisplayOrder() {
	suite.createEntry("Second", 2)
	suite.createEntry("First", 1)

	w := suite.env.request("GET", "/api/education", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	entries := decodeBody(suite.T(), w)["education"].([]interface{})
	suite.Require().Len(entries, 2)
	assert.Equal(suite.T(), "First", entries[0].(map[string]interface{})["institution"])
	assert.Equal(suite.T(), "Second", entries[1].(map[string]interface{})["institution"])
}

func (suite *EducationHandlerTestSuite) TestList_HidesInactive() {
	suite.createEntry("Visible", 1)
	suite.createEntry("Hidden", 2)
	suite.env.db.Model(&models.Education{}).Where("institution = ?", "Hidden").
		Update("is_active", false)

	w := suite.env.request("GET", "/api/education", nil, "")
	entries := decodeBody(suite.T(), w)["education"].([]interface{})
	assert.Len(suite.T(), entries, 1)

	w = suite.env.request("GET", "/api/education/admin/all", nil, suite.token)
	entries = decodeBody(suite.T(), w)["education"].([]interface{})
	assert.Len(suite.T(), entries, 2)
}

// TestReorder sends ids in a new sequence; orders are rewritten to 0..n-1 and
// the public listing follows.
func (suite *EducationHandlerTestSuite) TestReorder() {
	suite.createEntry("A", 10) // id 1
	suite.createEntry("B", 20) // id 2
	suite.createEntry("C", 30) // id 3

	w := suite.env.request("PUT", "/api/education/reorder",
		map[string]interface{}{"ids": []uint{3, 1, 2}}, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	list := suite.env.request("GET", "/api/education", nil, "")
	entries := decodeBody(suite.T(), list)["education"].([]interface{})
	suite.Require().Len(entries, 3)
	assert.Equal(suite.T(), "C", entries[0].(map[string]interface{})["institution"])
	assert.Equal(suite.T(), "A", entries[1].(map[string]interface{})["institution"])
	assert.Equal(suite.T(), "B", entries[2].(map[string]interface{})["institution"])
}

// TestReorder_UnknownIDRollsBack includes a missing id; nothing changes.
func (suite *EducationHandlerTestSuite) TestReorder_UnknownIDRollsBack() {
	suite.createEntry("A", 1)
	suite.createEntry("B", 2)

	w := suite.env.request("PUT", "/api/education/reorder",
		map[string]interface{}{"ids": []uint{2, 999, 1}}, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	list := suite.env.request("GET", "/api/education", nil, "")
	entries := decodeBody(suite.T(), list)["education"].([]interface{})
	suite.Require().Len(entries, 2)
	assert.Equal(suite.T(), "A", entries[0].(map[string]interface{})["institution"])
}

func (suite *EducationHandlerTestSuite) TestUpdate() {
	suite.createEntry("Old Name", 1)

	w := suite.env.request("PUT", "/api/education/1",
		map[string]interface{}{"institution": "New Name"}, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	entry := decodeBody(suite.T(), w)["education"].(map[string]interface{})
	assert.Equal(suite.T(), "New Name", entry["institution"])
	assert.Equal(suite.T(), "BSc", entry["degree"])
}

func (suite *EducationHandlerTestSuite) TestDelete() {
	suite.createEntry("Doomed", 1)

	w := suite.env.request("DELETE", "/api/education/1", nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.env.request("DELETE", "/api/education/1", nil, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestEducationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EducationHandlerTestSuite))
}
