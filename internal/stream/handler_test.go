package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/streams", CreateStream)
	r.GET("/api/streams/:name", GetStreamByName)
	return r
}

func TestCreateStreamEndpoint(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "streams"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/streams", strings.NewReader(`{"name":"tech","description":"Tech talk"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tech", body["name"])
	assert.Equal(t, "Tech talk", body["description"])
	// Un stream recién creado serializa posts como lista vacía, no como null.
	assert.Equal(t, []interface{}{}, body["posts"])
}

func TestCreateStreamEndpointDuplicate(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := Stream{ID: "s1", Name: "tech", Description: "Tech talk", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(streamRows(existing))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/streams", strings.NewReader(`{"name":"tech"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ya existe un stream con ese nombre", body["error"])
}

func TestGetStreamByNameEndpoint(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	existing := Stream{ID: "s1", Name: "tech", Description: "Tech talk", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT`).WillReturnRows(streamRows(existing))
	// Preload de los posts embebidos, siempre del más reciente al más antiguo
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE "posts"\."stream_id" = \$1 ORDER BY created_at DESC`).WillReturnRows(sqlmock.NewRows([]string{"id", "stream_id", "content", "user_id", "username", "created_at"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/streams/tech", nil)
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tech", body["name"])
	assert.Equal(t, "Tech talk", body["description"])
	assert.Equal(t, []interface{}{}, body["posts"])
}

func TestGetStreamByNameEndpointMissing(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/streams/ghost", nil)
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
