package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Project{})
	suite.Require().NoError(err)

	suite.service = NewProjectService(repository.NewProjectRepository(suite.db))
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectServiceTestSuite) createProject(input CreateProjectInput) *models.Project {
	project, err := suite.service.CreateProject(input)
	suite.Require().NoError(err)
	return project
}

func TestCompletionFloor(t *testing.T) {
	assert.Equal(t, 100, CompletionFloor(models.ProjectStatusCompleted))
	assert.Equal(t, 50, CompletionFloor(models.ProjectStatusInProgress))
	assert.Equal(t, 10, CompletionFloor(models.ProjectStatusPlanning))
	assert.Equal(t, 0, CompletionFloor(models.ProjectStatus("something-else")))
}

// TestCreateDerivesSlugAndCompletion leaves slug and completion empty; both
// are derived from the title and status.
func (suite *ProjectServiceTestSuite) TestCreateDerivesSlugAndCompletion() {
	project := suite.createProject(CreateProjectInput{
		Title:    "My Cool, Project!",
		Category: models.ProjectCategoryWeb,
		Status:   models.ProjectStatusInProgress,
	})

	assert.Equal(suite.T(), "my-cool-project", project.Slug)
	assert.Equal(suite.T(), 50, project.CompletionPercentage)
	assert.True(suite.T(), project.IsPublic)
	assert.Equal(suite.T(), 1, project.TeamSize)
}

func (suite *ProjectServiceTestSuite) TestCreateExplicitCompletionWins() {
	project := suite.createProject(CreateProjectInput{
		Title:                "Explicit",
		Category:             models.ProjectCategoryWeb,
		Status:               models.ProjectStatusCompleted,
		CompletionPercentage: intPtr(80),
	})
	assert.Equal(suite.T(), 80, project.CompletionPercentage)
}

func (suite *ProjectServiceTestSuite) TestCreateDefaultsToPlanning() {
	project := suite.createProject(CreateProjectInput{
		Title:    "No Status",
		Category: models.ProjectCategoryGame,
	})
	assert.Equal(suite.T(), models.ProjectStatusPlanning, project.Status)
	assert.Equal(suite.T(), 10, project.CompletionPercentage)
}

func (suite *ProjectServiceTestSuite) TestCreateRejectsDuplicateSlug() {
	suite.createProject(CreateProjectInput{
		Title:    "First",
		Slug:     "shared-slug",
		Category: models.ProjectCategoryWeb,
	})

	_, err := suite.service.CreateProject(CreateProjectInput{
		Title:    "Second",
		Slug:     "shared-slug",
		Category: models.ProjectCategoryWeb,
	})
	assert.ErrorIs(suite.T(), err, ErrSlugTaken)
}

func (suite *ProjectServiceTestSuite) TestCreateRejectsBadInput() {
	_, err := suite.service.CreateProject(CreateProjectInput{
		Title:    "   ",
		Category: models.ProjectCategoryWeb,
	})
	assert.ErrorIs(suite.T(), err, ErrTitleRequired)

	_, err = suite.service.CreateProject(CreateProjectInput{
		Title:    "Bad Category",
		Category: models.ProjectCategory("nope"),
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCategory)

	_, err = suite.service.CreateProject(CreateProjectInput{
		Title:     "Bad URL",
		Category:  models.ProjectCategoryWeb,
		GithubURL: "not a url",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidURL)

	_, err = suite.service.CreateProject(CreateProjectInput{
		Title:    "Bad Slug",
		Slug:     "Has Spaces",
		Category: models.ProjectCategoryWeb,
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidSlug)
}

// TestUpdateStatusRaisesCompletionToFloor moves a planning project to
// completed without touching completion; it rises to the new floor.
func (suite *ProjectServiceTestSuite) TestUpdateStatusRaisesCompletionToFloor() {
	project := suite.createProject(CreateProjectInput{
		Title:    "Rising",
		Category: models.ProjectCategoryWeb,
		Status:   models.ProjectStatusPlanning,
	})
	suite.Require().Equal(10, project.CompletionPercentage)

	completed := models.ProjectStatusCompleted
	updated, err := suite.service.UpdateProject(project.ID, UpdateProjectInput{Status: &completed})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 100, updated.CompletionPercentage)
}

// TestUpdateExplicitCompletionBeatsFloor lets the caller pin completion below
// the status floor when set explicitly in the same update.
func (suite *ProjectServiceTestSuite) TestUpdateExplicitCompletionBeatsFloor() {
	project := suite.createProject(CreateProjectInput{
		Title:    "Pinned",
		Category: models.ProjectCategoryWeb,
		Status:   models.ProjectStatusPlanning,
	})

	completed := models.ProjectStatusCompleted
	updated, err := suite.service.UpdateProject(project.ID, UpdateProjectInput{
		Status:               &completed,
		CompletionPercentage: intPtr(60),
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 60, updated.CompletionPercentage)
}

// TestUpdateTitleRegeneratesSlug changes the title without a slug; the slug
// follows. Supplying a slug alongside the title pins it.
func (suite *ProjectServiceTestSuite) TestUpdateTitleRegeneratesSlug() {
	project := suite.createProject(CreateProjectInput{
		Title:    "Old Name",
		Category: models.ProjectCategoryWeb,
	})
	suite.Require().Equal("old-name", project.Slug)

	newTitle := "New Name"
	updated, err := suite.service.UpdateProject(project.ID, UpdateProjectInput{Title: &newTitle})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "new-name", updated.Slug)

	finalTitle := "Final Name"
	pinned := "kept-slug"
	updated, err = suite.service.UpdateProject(project.ID, UpdateProjectInput{
		Title: &finalTitle,
		Slug:  &pinned,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "kept-slug", updated.Slug)
}

// TestPublicFetchCountsView fetches by slug publicly twice; the counter moves
// each time. An admin fetch leaves it alone.
func (suite *ProjectServiceTestSuite) TestPublicFetchCountsView() {
	project := suite.createProject(CreateProjectInput{
		Title:    "Viewed",
		Category: models.ProjectCategoryWeb,
	})

	fetched, err := suite.service.GetProjectBySlug(project.Slug, true)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), fetched.ViewCount)

	fetched, err = suite.service.GetProjectBySlug(project.Slug, false)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), fetched.ViewCount)
}

func (suite *ProjectServiceTestSuite) TestPublicFetchHidesPrivateProjects() {
	private := false
	project := suite.createProject(CreateProjectInput{
		Title:    "Hidden",
		Category: models.ProjectCategoryWeb,
		IsPublic: &private,
	})

	_, err := suite.service.GetProjectBySlug(project.Slug, true)
	assert.ErrorIs(suite.T(), err, ErrProjectNotFound)

	fetched, err := suite.service.GetProjectBySlug(project.Slug, false)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), project.ID, fetched.ID)
}

func (suite *ProjectServiceTestSuite) TestLikeProject() {
	project := suite.createProject(CreateProjectInput{
		Title:    "Likeable",
		Category: models.ProjectCategoryWeb,
	})

	count, err := suite.service.LikeProject(project.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), count)

	count, err = suite.service.LikeProject(project.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(2), count)

	_, err = suite.service.LikeProject(9999)
	assert.ErrorIs(suite.T(), err, ErrProjectNotFound)
}

// TestListOrdering checks featured-first then priority ordering with the id
// tie-break.
func (suite *ProjectServiceTestSuite) TestListOrdering() {
	suite.createProject(CreateProjectInput{Title: "Plain", Category: models.ProjectCategoryWeb, Priority: 5})
	suite.createProject(CreateProjectInput{Title: "Starred Low", Category: models.ProjectCategoryWeb, Featured: true, Priority: 1})
	suite.createProject(CreateProjectInput{Title: "Starred High", Category: models.ProjectCategoryWeb, Featured: true, Priority: 9})

	projects, total, err := suite.service.ListProjects(ListProjectsInput{PublicOnly: true, Limit: 10})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(3), total)
	suite.Require().Len(projects, 3)
	assert.Equal(suite.T(), "Starred High", projects[0].Title)
	assert.Equal(suite.T(), "Starred Low", projects[1].Title)
	assert.Equal(suite.T(), "Plain", projects[2].Title)
}

func (suite *ProjectServiceTestSuite) TestListSearch() {
	suite.createProject(CreateProjectInput{
		Title:       "Game Engine",
		Category:    models.ProjectCategoryGame,
		Description: "A custom renderer",
	})
	suite.createProject(CreateProjectInput{
		Title:    "Todo App",
		Category: models.ProjectCategoryWeb,
	})

	projects, total, err := suite.service.ListProjects(ListProjectsInput{Search: "renderer", PublicOnly: true, Limit: 10})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), total)
	suite.Require().Len(projects, 1)
	assert.Equal(suite.T(), "Game Engine", projects[0].Title)
}

func (suite *ProjectServiceTestSuite) TestBulkUpdate() {
	a := suite.createProject(CreateProjectInput{Title: "Bulk A", Category: models.ProjectCategoryWeb})
	b := suite.createProject(CreateProjectInput{Title: "Bulk B", Category: models.ProjectCategoryWeb})

	updated, err := suite.service.BulkUpdateProjects(
		[]uint{a.ID, b.ID},
		map[string]interface{}{"featured": true},
	)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(2), updated)

	var featured int64
	suite.db.Model(&models.Project{}).Where("featured = ?", true).Count(&featured)
	assert.Equal(suite.T(), int64(2), featured)
}

func (suite *ProjectServiceTestSuite) TestBulkUpdateRejectsUnknownField() {
	a := suite.createProject(CreateProjectInput{Title: "Guarded", Category: models.ProjectCategoryWeb})

	_, err := suite.service.BulkUpdateProjects(
		[]uint{a.ID},
		map[string]interface{}{"slug": "hijacked"},
	)
	assert.Error(suite.T(), err)
}

func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	project := suite.createProject(CreateProjectInput{Title: "Doomed", Category: models.ProjectCategoryWeb})

	suite.Require().NoError(suite.service.DeleteProject(project.ID))
	assert.ErrorIs(suite.T(), suite.service.DeleteProject(project.ID), ErrProjectNotFound)
}

func intPtr(v int) *int { return &v }

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
