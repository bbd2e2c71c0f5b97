package user

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/database"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db

	return mock, func() {
		database.DB = originalDB
		mockDB.Close()
	}
}

func userRows(u User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "bio", "profile_picture", "cognito_id", "created_at"}).
		AddRow(u.ID, u.Username, u.Email, u.Bio, u.ProfilePicture, u.CognitoID, u.CreatedAt)
}

func TestExistsByUsername(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{"exists", 1, true},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, teardown := setupMockDB(t)
			defer teardown()

			mock.ExpectQuery(`SELECT count`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := ExistsByUsername("alice")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestExistsByUsernameDBError(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT count`).WillReturnError(errors.New("connection refused"))

	exists, err := ExistsByUsername("alice")
	assert.Error(t, err)
	// Un fallo de lectura nunca se interpreta como "nombre libre".
	assert.False(t, exists)
}

func TestByIdentifierResolvesUsernameFirst(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := User{ID: "u1", Username: "alice", Email: "alice@mail.com", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows(existing))

	found, err := ByIdentifier("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	// Resuelto como username: no hace falta la consulta por email.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestByIdentifierFallsBackToEmail(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := User{ID: "u1", Username: "alice", Email: "alice@mail.com", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows(existing))

	found, err := ByIdentifier("alice@mail.com")
	assert.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestByIdentifierNotFound(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ByIdentifier("ghost")
	assert.EqualError(t, err, "User not found")
}

func TestUpdateProfilePartial(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := User{ID: "u1", Username: "alice", Email: "alice@mail.com", Bio: "old bio", ProfilePicture: "old.png", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows(existing))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "bio"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	bio := "new bio"
	updated, err := UpdateProfile("u1", ProfilePatch{Bio: &bio})
	assert.NoError(t, err)
	// Solo bio viaja en el UPDATE; profilePicture queda como estaba.
	assert.Equal(t, "old.png", updated.ProfilePicture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileNoFields(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := User{ID: "u1", Username: "alice", Email: "alice@mail.com", Bio: "bio", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows(existing))

	updated, err := UpdateProfile("u1", ProfilePatch{})
	assert.NoError(t, err)
	assert.Equal(t, "bio", updated.Bio)
	// Patch vacío: ninguna escritura.
	assert.NoError(t, mock.ExpectationsWereMet())
}
