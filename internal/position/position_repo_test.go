package position_test

import (
	"context"
	"testing"

	"go-workforce/internal/position"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) position.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&position.Position{}))

	return position.NewRepository(db)
}

func TestPositionRepository_CreateAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	desc := "Writes the software"
	post := &position.Position{
		ID:                uuid.New(),
		Name:              "Software Engineer",
		Description:       &desc,
		HierarchicalLevel: 3,
	}

	require.NoError(t, repo.Create(ctx, post))

	found, err := repo.FindByID(ctx, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", found.Name)
	assert.Equal(t, 3, found.HierarchicalLevel)
	require.NotNil(t, found.Description)
	assert.Equal(t, desc, *found.Description)
}

func TestPositionRepository_FindAll_Ordering(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	seed := []position.Position{
		{ID: uuid.New(), Name: "Engineer", HierarchicalLevel: 3},
		{ID: uuid.New(), Name: "CTO", HierarchicalLevel: 1},
		{ID: uuid.New(), Name: "Architect", HierarchicalLevel: 3},
		{ID: uuid.New(), Name: "Manager", HierarchicalLevel: 2},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	// level first, then name within the same level
	assert.Equal(t, "CTO", all[0].Name)
	assert.Equal(t, "Manager", all[1].Name)
	assert.Equal(t, "Architect", all[2].Name)
	assert.Equal(t, "Engineer", all[3].Name)
}

func TestPositionRepository_Update(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	post := &position.Position{ID: uuid.New(), Name: "Junior Engineer", HierarchicalLevel: 4}
	require.NoError(t, repo.Create(ctx, post))

	post.Name = "Senior Engineer"
	post.HierarchicalLevel = 2
	require.NoError(t, repo.Update(ctx, post))

	found, err := repo.FindByID(ctx, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", found.Name)
	assert.Equal(t, 2, found.HierarchicalLevel)
}

func TestPositionRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	post := &position.Position{ID: uuid.New(), Name: "Temp", HierarchicalLevel: 9}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.Delete(ctx, post.ID.String()))

	_, err := repo.FindByID(ctx, post.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPositionRepository_Delete_NotFound(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
