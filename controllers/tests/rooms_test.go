package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"Quina/config"
	"Quina/middleware"
	"Quina/models/postgres"
	"Quina/routes"
	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *game.Service) {
	if os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("POSTGRES_HOST not set, skipping database test")
	}
	db, err := config.ConnectGORM()
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))

	gin.SetMode(gin.TestMode)
	svc := game.NewService(db, nil)
	r := gin.New()
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, db, svc)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUserViaDB(t *testing.T, svc *game.Service) *postgres.User {
	suffix := uuid.New().String()[:8]
	user := postgres.User{
		Username:     "http_test_" + suffix,
		Email:        fmt.Sprintf("http_test_%s@example.com", suffix),
		PasswordHash: "irrelevant",
	}
	require.NoError(t, svc.DB.Create(&user).Error)
	t.Cleanup(func() {
		svc.DB.Where("user_id = ?", user.UserID).Delete(&postgres.User{})
	})
	return &user
}

func TestRoomEndpoints(t *testing.T) {
	r, svc := setupRouter(t)
	creator := createUserViaDB(t, svc)
	other := createUserViaDB(t, svc)

	// create
	w := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
		"roomName": "http test room",
		"userId":   creator.UserID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		GameRoomID uuid.UUID `json:"game_room_id"`
		Status     string    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)
	t.Cleanup(func() {
		svc.DeleteRoom(created.GameRoomID, creator.UserID)
	})

	// join twice, third seat rejected with a stable code
	w = doJSON(t, r, http.MethodPost, "/api/players/join", gin.H{
		"roomId": created.GameRoomID, "userId": creator.UserID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/players/join", gin.H{
		"roomId": created.GameRoomID, "userId": other.UserID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	third := createUserViaDB(t, svc)
	w = doJSON(t, r, http.MethodPost, "/api/players/join", gin.H{
		"roomId": created.GameRoomID, "userId": third.UserID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	var rejection struct {
		Code      string `json:"code"`
		Retryable bool   `json:"retryable"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejection))
	assert.Equal(t, "RoomFull", rejection.Code)
	assert.False(t, rejection.Retryable)

	// out-of-range draws leave the ledger unchanged; zero gets the same
	// classification as any other out-of-range number
	for _, bad := range []int{26, 0} {
		w = doJSON(t, r, http.MethodPost, "/api/draw", gin.H{
			"roomId": created.GameRoomID, "number": bad,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejection))
		assert.Equal(t, "OutOfRange", rejection.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/draw/"+created.GameRoomID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drawnResp struct {
		DrawnNumbers []postgres.DrawnNumber `json:"drawnNumbers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drawnResp))
	assert.Empty(t, drawnResp.DrawnNumbers)

	// a valid draw
	w = doJSON(t, r, http.MethodPost, "/api/draw", gin.H{
		"roomId": created.GameRoomID, "number": 9,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// unknown room reads as 404
	w = doJSON(t, r, http.MethodGet, "/api/rooms/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
