package lastfm

import (
	"context"
	"testing"
)

func TestUser_GetTopAlbums(t *testing.T) {
	c, mock := newTestClient(`{
		"topalbums": {
			"album": [
				{
					"name": "A Night at the Opera",
					"artist": {"name": "Queen"},
					"playcount": "120",
					"@attr": {"rank": "1"}
				}
			],
			"@attr": {"page": "1", "perPage": "50", "total": "1", "totalPages": "1"}
		}
	}`)

	albums, attrs, err := c.User.GetTopAlbums(context.Background(), "bob", Period7Day, 1, 50)
	if err != nil {
		t.Fatalf("GetTopAlbums: %v", err)
	}
	if len(albums) != 1 {
		t.Fatalf("len = %d, want 1", len(albums))
	}
	if albums[0].Name != "A Night at the Opera" || albums[0].Artist.Name != "Queen" {
		t.Errorf("album = %+v", albums[0])
	}
	if albums[0].Rank == nil || *albums[0].Rank != 1 {
		t.Errorf("Rank = %v, want 1", albums[0].Rank)
	}
	if attrs.Total != 1 {
		t.Errorf("attrs = %+v", attrs)
	}

	q := form(t, mock.requests[0])
	if q.Get("period") != "7day" {
		t.Errorf("period = %q, want 7day", q.Get("period"))
	}
}

func TestUser_GetFriends(t *testing.T) {
	c, mock := newTestClient(`{
		"friends": {
			"user": {"name": "alice", "url": "https://www.last.fm/user/alice"},
			"@attr": {"page": "1", "perPage": "50", "total": "1", "totalPages": "1"}
		}
	}`)

	friends, _, err := c.User.GetFriends(context.Background(), "bob", true, 1, 50)
	if err != nil {
		t.Fatalf("GetFriends: %v", err)
	}
	if len(friends) != 1 || friends[0].Name != "alice" {
		t.Errorf("friends = %+v", friends)
	}

	q := form(t, mock.requests[0])
	if q.Get("recenttracks") != "1" {
		t.Errorf("recenttracks = %q, want 1", q.Get("recenttracks"))
	}
}

func TestUser_GetWeeklyTrackChart(t *testing.T) {
	c, mock := newTestClient(`{
		"weeklytrackchart": {
			"track": [
				{"name": "Radio Ga Ga", "artist": {"#text": "Queen"}, "playcount": "12", "@attr": {"rank": "1"}},
				{"name": "Under Pressure", "artist": {"#text": "Queen"}, "playcount": "9", "@attr": {"rank": "2"}}
			]
		}
	}`)

	tracks, err := c.User.GetWeeklyTrackChart(context.Background(), "bob", 1718000000, 1719000000)
	if err != nil {
		t.Fatalf("GetWeeklyTrackChart: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("len = %d, want 2", len(tracks))
	}
	if tracks[0].Rank == nil || *tracks[0].Rank != 1 {
		t.Errorf("Rank = %v, want 1", tracks[0].Rank)
	}

	q := form(t, mock.requests[0])
	if q.Get("from") != "1718000000" || q.Get("to") != "1719000000" {
		t.Errorf("bounds = %q..%q", q.Get("from"), q.Get("to"))
	}
}

func TestUser_GetWeeklyArtistChart_DefaultBounds(t *testing.T) {
	c, mock := newTestClient(`{
		"weeklyartistchart": {
			"artist": {"name": "Queen", "playcount": "30", "@attr": {"rank": "1"}}
		}
	}`)

	artists, err := c.User.GetWeeklyArtistChart(context.Background(), "bob", 0, 0)
	if err != nil {
		t.Fatalf("GetWeeklyArtistChart: %v", err)
	}
	if len(artists) != 1 || artists[0].Name != "Queen" {
		t.Errorf("artists = %+v", artists)
	}

	// Zero bounds select the current chart and are omitted from the call.
	q := form(t, mock.requests[0])
	if q.Has("from") || q.Has("to") {
		t.Errorf("expected no bounds, got from=%q to=%q", q.Get("from"), q.Get("to"))
	}
}
