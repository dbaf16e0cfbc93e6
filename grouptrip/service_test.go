package grouptrip

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoplytravel/hoply-api/models"
)

func newTestService() *Service {
	return NewService(NewRoomStore(), NewStaticCatalog(DefaultDestinations()))
}

func TestService_CreateRoomValidation(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name     string
		roomName string
		wantErr  bool
	}{
		{name: "Valid name", roomName: "Friends Trip", wantErr: false},
		{name: "Empty name", roomName: "", wantErr: true},
		{name: "Whitespace only", roomName: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := s.CreateRoom(tt.roomName)
			if tt.wantErr {
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, room.Code, CodeLength)
		})
	}
}

func TestService_GetRoomCaseInsensitive(t *testing.T) {
	s := newTestService()

	room, err := s.CreateRoom("Case Test")
	require.NoError(t, err)

	got, err := s.GetRoom(strings.ToLower(room.Code))
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)

	got, err = s.GetRoom("  " + room.Code + " ")
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)
}

func TestService_SubmitVoteValidation(t *testing.T) {
	s := newTestService()
	room, err := s.CreateRoom("Validation")
	require.NoError(t, err)

	from := models.NewDate(2026, time.January, 10)
	to := models.NewDate(2026, time.January, 20)

	tests := []struct {
		name         string
		participant  string
		destinations []string
		dateFrom     models.Date
		dateTo       models.Date
		wantField    string
	}{
		{name: "Empty participant", participant: "", destinations: []string{"bariloche"}, dateFrom: from, dateTo: to, wantField: "name"},
		{name: "No destinations", participant: "ana", destinations: nil, dateFrom: from, dateTo: to, wantField: "destinations"},
		{name: "Too many destinations", participant: "ana", destinations: []string{"bariloche", "mendoza", "salta", "jujuy"}, dateFrom: from, dateTo: to, wantField: "destinations"},
		{name: "Unknown destination", participant: "ana", destinations: []string{"atlantis"}, dateFrom: from, dateTo: to, wantField: "destinations"},
		{name: "Missing dateFrom", participant: "ana", destinations: []string{"bariloche"}, dateTo: to, wantField: "dateFrom"},
		{name: "Missing dateTo", participant: "ana", destinations: []string{"bariloche"}, dateFrom: from, wantField: "dateTo"},
		{name: "Inverted dates", participant: "ana", destinations: []string{"bariloche"}, dateFrom: to, dateTo: from, wantField: "dateFrom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitVote(context.Background(), room.Code, tt.participant, tt.destinations, tt.dateFrom, tt.dateTo)
			var v *ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.wantField, v.Field)
		})
	}

	// nothing above may have written a vote
	check, err := s.GetRoom(room.Code)
	require.NoError(t, err)
	assert.Empty(t, check.Votes)
}

func TestService_SubmitVoteDedupesDestinations(t *testing.T) {
	s := newTestService()
	room, err := s.CreateRoom("Dedupe")
	require.NoError(t, err)

	updated, err := s.SubmitVote(context.Background(), room.Code, "ana",
		[]string{"bariloche", "bariloche", "mendoza"},
		models.NewDate(2026, time.January, 10), models.NewDate(2026, time.January, 20))
	require.NoError(t, err)

	require.Len(t, updated.Votes, 1)
	assert.Equal(t, []string{"bariloche", "mendoza"}, updated.Votes[0].Destinations)
}

func TestService_SubmitVoteUnknownRoom(t *testing.T) {
	s := newTestService()

	_, err := s.SubmitVote(context.Background(), "ZZZZZZ", "ana", []string{"bariloche"},
		models.NewDate(2026, time.January, 10), models.NewDate(2026, time.January, 20))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_ResubmissionReplacesVote(t *testing.T) {
	s := newTestService()
	room, err := s.CreateRoom("Resubmit")
	require.NoError(t, err)

	from := models.NewDate(2026, time.February, 1)
	to := models.NewDate(2026, time.February, 10)

	_, err = s.SubmitVote(context.Background(), room.Code, "ana", []string{"bariloche"}, from, to)
	require.NoError(t, err)
	updated, err := s.SubmitVote(context.Background(), room.Code, "ana", []string{"mendoza"}, from, to)
	require.NoError(t, err)

	require.Len(t, updated.Votes, 1)
	assert.Equal(t, []string{"mendoza"}, updated.Votes[0].Destinations)
}

func TestService_ComputeResultsUnknownRoom(t *testing.T) {
	s := newTestService()

	_, err := s.ComputeResults("ZZZZZZ")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_FriendsTripScenario(t *testing.T) {
	s := newTestService()

	room, err := s.CreateRoom("Friends Trip")
	require.NoError(t, err)

	_, err = s.SubmitVote(context.Background(), room.Code, "ana", []string{"bariloche", "mendoza"},
		models.NewDate(2026, time.March, 1), models.NewDate(2026, time.March, 15))
	require.NoError(t, err)

	_, err = s.SubmitVote(context.Background(), room.Code, "bruno", []string{"bariloche"},
		models.NewDate(2026, time.March, 10), models.NewDate(2026, time.March, 20))
	require.NoError(t, err)

	results, err := s.ComputeResults(room.Code)
	require.NoError(t, err)

	assert.Equal(t, 2, results.MemberCount)
	require.Len(t, results.Ranking, 2)
	assert.Equal(t, models.RankingEntry{DestID: "bariloche", Votes: 2}, results.Ranking[0])
	assert.Equal(t, models.RankingEntry{DestID: "mendoza", Votes: 1}, results.Ranking[1])
	require.NotNil(t, results.DateOverlap)
	assert.Equal(t, models.NewDate(2026, time.March, 10), results.DateOverlap.From)
	assert.Equal(t, models.NewDate(2026, time.March, 15), results.DateOverlap.To)
}

func TestStaticCatalog(t *testing.T) {
	catalog := NewStaticCatalog(DefaultDestinations())
	ctx := context.Background()

	known, err := catalog.Exists(ctx, "bariloche")
	require.NoError(t, err)
	assert.True(t, known)

	known, err = catalog.Exists(ctx, "atlantis")
	require.NoError(t, err)
	assert.False(t, known)

	dest, err := catalog.Lookup(ctx, "mendoza")
	require.NoError(t, err)
	assert.Equal(t, "Mendoza", dest.Name)
	assert.Equal(t, "MDZ", dest.IATA)

	_, err = catalog.Lookup(ctx, "atlantis")
	assert.ErrorIs(t, err, ErrDestinationNotFound)

	all, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
