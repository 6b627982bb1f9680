package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"blog-article-api/models"
)

func newTestRepo(t *testing.T) ArticleRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Article{}))

	return NewArticleRepository(db)
}

func testArticle(title string, status models.ArticleStatus) *models.Article {
	return &models.Article{
		AuthorID:        1,
		Title:           title,
		Content:         "body",
		Keywords:        datatypes.NewJSONSlice([]string{}),
		Status:          status,
		Slug:            "slug",
		PublicationDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	article := testArticle("First", models.StatusDraft)
	require.NoError(t, repo.Create(article))

	assert.NotZero(t, article.ID)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestGetByIDRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	article := testArticle("Round Trip", models.StatusPublished)
	article.Keywords = datatypes.NewJSONSlice([]string{"go", "gorm"})
	require.NoError(t, repo.Create(article))

	found, err := repo.GetByID(article.ID)
	require.NoError(t, err)

	assert.Equal(t, "Round Trip", found.Title)
	assert.Equal(t, models.StatusPublished, found.Status)
	assert.Equal(t, []string{"go", "gorm"}, []string(found.Keywords))
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(123)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByStatusesFiltersAndOrders(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(testArticle("Draft", models.StatusDraft)))
	require.NoError(t, repo.Create(testArticle("Deleted", models.StatusDeleted)))
	require.NoError(t, repo.Create(testArticle("Published", models.StatusPublished)))

	articles, err := repo.GetByStatuses([]models.ArticleStatus{models.StatusDraft, models.StatusPublished})
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Draft", articles[0].Title)
	assert.Equal(t, "Published", articles[1].Title)
	assert.Less(t, articles[0].ID, articles[1].ID)
}

func TestUpdatePersistsChanges(t *testing.T) {
	repo := newTestRepo(t)

	article := testArticle("Before", models.StatusDraft)
	require.NoError(t, repo.Create(article))

	article.Title = "After"
	article.Status = models.StatusDeleted
	require.NoError(t, repo.Update(article))

	found, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Title)
	assert.Equal(t, models.StatusDeleted, found.Status)
}
