package auth

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
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

func TestRegisterMissingFields(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	_, err := Register("", "alice@mail.com", "secret")
	assert.EqualError(t, err, "Missing required fields")
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))

	// La validación corta antes de tocar la base de datos o Cognito.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT count`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := Register("alice", "alice@mail.com", "secret")
	assert.EqualError(t, err, "Username already exists")
	assert.Equal(t, http.StatusConflict, apperror.Status(err))

	// El conflicto local se detecta antes de la llamada externa: con el
	// cliente de Cognito sin inicializar, llegar al proveedor rompería aquí.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT count`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := Register("alice", "alice@mail.com", "secret")
	assert.EqualError(t, err, "Email already exists")
	assert.Equal(t, http.StatusConflict, apperror.Status(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUniquenessCheckFailure(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT count`).WillReturnError(errors.New("connection refused"))

	_, err := Register("alice", "alice@mail.com", "secret")
	assert.Error(t, err)
	// Si la comprobación local falla, no se toca el proveedor: con el
	// cliente de Cognito sin inicializar, llegar a SignUp rompería aquí.
	assert.False(t, apperror.Is(err, apperror.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckExists(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		rows       []*sqlmock.Rows
		expected   bool
	}{
		{
			name:       "found by username",
			identifier: "alice",
			rows: []*sqlmock.Rows{
				sqlmock.NewRows([]string{"id", "username", "email", "bio", "profile_picture", "cognito_id", "created_at"}).
					AddRow("u1", "alice", "alice@mail.com", "", "", "sub-1", time.Now()),
			},
			expected: true,
		},
		{
			name:       "not found anywhere",
			identifier: "ghost",
			rows: []*sqlmock.Rows{
				sqlmock.NewRows([]string{"id"}),
				sqlmock.NewRows([]string{"id"}),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, teardown := setupMockDB(t)
			defer teardown()

			for _, rows := range tt.rows {
				mock.ExpectQuery(`SELECT`).WillReturnRows(rows)
			}

			exists, err := CheckExists(tt.identifier)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestRefreshUnknownUser(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := Refresh("refresh-token", "ghost")
	assert.EqualError(t, err, "User not found")
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestConfirmUnknownUser(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := Confirm("ghost", "123456")
	assert.EqualError(t, err, "User not found")
}
