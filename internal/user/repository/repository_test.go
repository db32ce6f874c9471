package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	models "inklink/internal/user/model"
	"inklink/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "inklink"
	dbUser := "inklink"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.User)(nil),
		(*models.ArtistProfile)(nil),
		(*models.Studio)(nil),
		(*models.StudioMember)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE users, artist_profiles, studios, studio_members RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func Test_RegisterProfile(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	userID := uuid.New()
	u := &models.User{ID: userID, Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	profile := &models.ArtistProfile{UserID: userID, Styles: []string{"japanese"}, MinPrice: 120}

	require.NoError(t, repo.RegisterProfile(context.Background(), u, profile, nil))

	fetched, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "inkmaster", fetched.Handle)
	assert.Equal(t, models.RoleArtist, fetched.Role)

	fetchedProfile, err := repo.GetArtistProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"japanese"}, fetchedProfile.Styles)
	assert.Equal(t, 120, fetchedProfile.MinPrice)
}

func Test_RegisterProfile_RetryUpserts(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	userID := uuid.New()
	u := &models.User{ID: userID, Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist, UpdatedAt: time.Now()}
	require.NoError(t, repo.RegisterProfile(context.Background(), u, nil, nil))

	// Same user id again with changed fields: the retry resumes instead of
	// failing on the primary key.
	retry := &models.User{ID: userID, Handle: "inkmaster", Name: "Mara K.", Bio: "Irezumi specialist", Role: models.RoleArtist, UpdatedAt: time.Now()}
	require.NoError(t, repo.RegisterProfile(context.Background(), retry, nil, nil))

	fetched, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Mara K.", fetched.Name)
	assert.Equal(t, "Irezumi specialist", fetched.Bio)

	count, err := testDB.NewSelect().Model((*models.User)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_RegisterProfile_WithMembership(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	ownerID := uuid.New()
	owner := &models.User{ID: ownerID, Handle: "owner", Name: "Owner", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), owner, nil, nil))

	studio := &models.Studio{ID: uuid.New(), Name: "Black Lotus", City: "Berlin", OwnerID: ownerID}
	_, err := testDB.NewInsert().Model(studio).Exec(context.Background())
	require.NoError(t, err)

	userID := uuid.New()
	u := &models.User{ID: userID, Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	membership := &models.StudioMember{StudioID: studio.ID, UserID: userID, Role: "member"}
	require.NoError(t, repo.RegisterProfile(context.Background(), u, nil, membership))

	members, err := repo.ListStudioMembers(context.Background(), studio.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, userID, members[0].UserID)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "inkmaster", members[0].User.Handle)
}

func Test_GetUserByHandle(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u := &models.User{ID: uuid.New(), Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), u, nil, nil))

	fetched, err := repo.GetUserByHandle(context.Background(), "inkmaster")
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)

	_, err = repo.GetUserByHandle(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_HandleExists(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u := &models.User{ID: uuid.New(), Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), u, nil, nil))

	exists, err := repo.HandleExists(context.Background(), "inkmaster")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.HandleExists(context.Background(), "inkmaster2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_UpdateUserDisplayName(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	u := &models.User{ID: uuid.New(), Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), u, nil, nil))

	require.NoError(t, repo.UpdateUserDisplayName(context.Background(), u.ID, "Mara K."))

	fetched, err := repo.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mara K.", fetched.Name)
}

func Test_StudioMembership(t *testing.T) {
	cleanup(t)
	repo := NewUserRepository(testDB, logger.Logger{})

	ownerID := uuid.New()
	owner := &models.User{ID: ownerID, Handle: "owner", Name: "Owner", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), owner, nil, nil))

	studio := &models.Studio{ID: uuid.New(), Name: "Black Lotus", OwnerID: ownerID}
	_, err := testDB.NewInsert().Model(studio).Exec(context.Background())
	require.NoError(t, err)

	memberID := uuid.New()
	member := &models.User{ID: memberID, Handle: "inkmaster", Name: "Mara", Role: models.RoleArtist}
	require.NoError(t, repo.RegisterProfile(context.Background(), member, nil, nil))

	t.Run("join and list", func(t *testing.T) {
		require.NoError(t, repo.AddStudioMember(context.Background(), &models.StudioMember{
			StudioID: studio.ID, UserID: memberID, Role: "member",
		}))

		members, err := repo.ListStudioMembers(context.Background(), studio.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, memberID, members[0].UserID)
	})

	t.Run("leave hides the member without deleting the row", func(t *testing.T) {
		require.NoError(t, repo.RemoveStudioMember(context.Background(), studio.ID, memberID, time.Now()))

		members, err := repo.ListStudioMembers(context.Background(), studio.ID)
		require.NoError(t, err)
		assert.Empty(t, members)

		count, err := testDB.NewSelect().Model((*models.StudioMember)(nil)).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejoin clears left_at", func(t *testing.T) {
		require.NoError(t, repo.AddStudioMember(context.Background(), &models.StudioMember{
			StudioID: studio.ID, UserID: memberID, Role: "manager",
		}))

		members, err := repo.ListStudioMembers(context.Background(), studio.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "manager", members[0].Role)
		assert.Nil(t, members[0].LeftAt)
	})

	t.Run("unknown studio", func(t *testing.T) {
		_, err := repo.GetStudioByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrStudioNotFound)
	})
}
