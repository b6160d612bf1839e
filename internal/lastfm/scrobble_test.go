package lastfm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tracks := make([]ScrobbleTrack, 23)

	chunks := Chunk(tracks, 10)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[1], 10)
	assert.Len(t, chunks[2], 3)

	// Batch sizes above the service limit are clamped to 50.
	tracks = make([]ScrobbleTrack, 120)
	chunks = Chunk(tracks, 75)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 50)
	assert.Len(t, chunks[2], 20)

	// Non-positive sizes degrade to one track per batch.
	chunks = Chunk(make([]ScrobbleTrack, 3), 0)
	assert.Len(t, chunks, 3)

	assert.Empty(t, Chunk(nil, 10))
}

func TestScrobbleTrack_Params(t *testing.T) {
	duration := int64(354)
	chosen := true
	track := ScrobbleTrack{
		Artist:       "Queen",
		Track:        "Bohemian Rhapsody",
		Timestamp:    1719000000,
		Album:        "A Night at the Opera",
		AlbumArtist:  "Queen",
		TrackNumber:  "11",
		Duration:     &duration,
		ChosenByUser: &chosen,
	}

	params := track.Params()
	assert.Equal(t, "Queen", params["artist"])
	assert.Equal(t, "1719000000", params["timestamp"])
	assert.Equal(t, "Queen", params["albumArtist"])
	assert.Equal(t, "11", params["trackNumber"])
	assert.Equal(t, "354", params["duration"])
	assert.Equal(t, "1", params["chosenByUser"])

	// Absent optionals are omitted, not sent empty.
	_, ok := params["mbid"]
	assert.False(t, ok)
	_, ok = params["streamId"]
	assert.False(t, ok)
}

func TestScrobble_IndexesBatchFields(t *testing.T) {
	c, mock := newTestClient(`{
		"scrobbles": {
			"scrobble": [
				{"artist": {"#text": "Queen"}, "track": {"#text": "Radio Ga Ga"}, "timestamp": "100", "ignoredMessage": {"code": "0"}},
				{"artist": {"#text": "Queen"}, "track": {"#text": "Under Pressure"}, "timestamp": "200", "ignoredMessage": {"code": "0"}}
			],
			"@attr": {"accepted": 2, "ignored": 0}
		}
	}`)
	c.SetSessionKey("sess")

	tracks := []ScrobbleTrack{
		{Artist: "Queen", Track: "Radio Ga Ga", Timestamp: 100},
		{Artist: "Queen", Track: "Under Pressure", Timestamp: 200},
	}
	result, err := c.Track.Scrobble(context.Background(), tracks)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Accepted)
	assert.Equal(t, int64(0), result.Ignored)
	require.Len(t, result.Scrobbles, 2)
	assert.True(t, result.Scrobbles[0].Accepted())
	assert.Equal(t, "Radio Ga Ga", result.Scrobbles[0].Track.Text)

	// Each field is qualified with its positional index.
	values := form(t, mock.requests[0])
	assert.Equal(t, "Radio Ga Ga", values.Get("track[0]"))
	assert.Equal(t, "Under Pressure", values.Get("track[1]"))
	assert.Equal(t, "100", values.Get("timestamp[0]"))
	assert.Equal(t, "200", values.Get("timestamp[1]"))
	assert.Empty(t, values.Get("track"))
}

func TestScrobble_RejectsOversizedBatch(t *testing.T) {
	c, _ := newTestClient()
	c.SetSessionKey("sess")

	_, err := c.Track.Scrobble(context.Background(), make([]ScrobbleTrack, 51))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "51")
}

func TestScrobble_SingleOutcomeCollapse(t *testing.T) {
	// A one-track batch comes back with the outcome as a bare object.
	c, _ := newTestClient(`{
		"scrobbles": {
			"scrobble": {"artist": {"#text": "Queen"}, "track": {"#text": "Radio Ga Ga"}, "ignoredMessage": {"code": "1", "#text": "Artist was ignored"}},
			"@attr": {"accepted": 0, "ignored": 1}
		}
	}`)
	c.SetSessionKey("sess")

	result, err := c.Track.Scrobble(context.Background(), []ScrobbleTrack{{Artist: "Queen", Track: "Radio Ga Ga", Timestamp: 100}})
	require.NoError(t, err)
	require.Len(t, result.Scrobbles, 1)
	assert.False(t, result.Scrobbles[0].Accepted())
	assert.Equal(t, "Artist was ignored", result.Scrobbles[0].IgnoredMessage.Text)
}

func TestScrobbleAll_AggregatesBatches(t *testing.T) {
	c, mock := newTestClient(
		`{"scrobbles": {"scrobble": [
			{"track": {"#text": "a"}, "ignoredMessage": {"code": "0"}},
			{"track": {"#text": "b"}, "ignoredMessage": {"code": "0"}}
		], "@attr": {"accepted": 2, "ignored": 0}}}`,
		`{"scrobbles": {"scrobble": {"track": {"#text": "c"}, "ignoredMessage": {"code": "1"}}, "@attr": {"accepted": 0, "ignored": 1}}}`,
	)
	c.SetSessionKey("sess")

	tracks := []ScrobbleTrack{
		{Artist: "x", Track: "a", Timestamp: 1},
		{Artist: "x", Track: "b", Timestamp: 2},
		{Artist: "x", Track: "c", Timestamp: 3},
	}
	result, err := c.Track.ScrobbleAll(context.Background(), tracks, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, mock.callCount)
	assert.Equal(t, int64(2), result.Accepted)
	assert.Equal(t, int64(1), result.Ignored)

	// Outcomes keep submission order across batches.
	require.Len(t, result.Scrobbles, 3)
	assert.Equal(t, "a", result.Scrobbles[0].Track.Text)
	assert.Equal(t, "b", result.Scrobbles[1].Track.Text)
	assert.Equal(t, "c", result.Scrobbles[2].Track.Text)
}

func TestScrobbleAll_StopsOnBatchError(t *testing.T) {
	// Only one response configured: the second batch hits the transport
	// error and aborts the run.
	c, mock := newTestClient(
		`{"scrobbles": {"scrobble": {"track": {"#text": "a"}, "ignoredMessage": {"code": "0"}}, "@attr": {"accepted": 1, "ignored": 0}}}`,
	)
	c.SetSessionKey("sess")

	tracks := []ScrobbleTrack{
		{Artist: "x", Track: "a", Timestamp: 1},
		{Artist: "x", Track: "b", Timestamp: 2},
	}
	result, err := c.Track.ScrobbleAll(context.Background(), tracks, 1)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "batch 2")
	assert.Equal(t, 2, mock.callCount)
}

func TestScrobbleAll_Empty(t *testing.T) {
	c, mock := newTestClient()
	c.SetSessionKey("sess")

	result, err := c.Track.ScrobbleAll(context.Background(), nil, 50)
	require.NoError(t, err)
	assert.Zero(t, result.Accepted)
	assert.Empty(t, result.Scrobbles)
	assert.Equal(t, 0, mock.callCount)
}
