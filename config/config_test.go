package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, DefaultRoomTTL, conf.RoomTTL)
}

func TestNewReadsRoomTTL(t *testing.T) {
	os.Setenv("ROOM_TTL", "24h")
	defer os.Unsetenv("ROOM_TTL")

	conf := New()
	assert.Equal(t, 24*time.Hour, conf.RoomTTL)
}

func TestNewRoomTTLDisabled(t *testing.T) {
	os.Setenv("ROOM_TTL", "0")
	defer os.Unsetenv("ROOM_TTL")

	conf := New()
	assert.Equal(t, time.Duration(0), conf.RoomTTL)
}

func TestNewRoomTTLInvalidFallsBack(t *testing.T) {
	os.Setenv("ROOM_TTL", "three days")
	defer os.Unsetenv("ROOM_TTL")

	conf := New()
	assert.Equal(t, DefaultRoomTTL, conf.RoomTTL)
}

func TestErrorStatus(t *testing.T) {

	ErrorStatus("error it borked", http.StatusBadRequest, httptest.NewRecorder(), errors.New("bad request"))
	assert.True(t, true)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}
