package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Track is a Last.fm track. After decoding, Artist is always a populated
// record, never a bare name: string payloads are promoted to name-only
// stubs, recursively for the album's artist as well.
type Track struct {
	Name      string
	Artist    Artist
	Album     *Album
	MBID      string
	URL       string
	Rank      *int64
	Duration  *int64 // seconds
	Listeners *int64
	Playcount *int64
	Match     *float64 // similarity score on getSimilar results
	Loved     *bool
	Date      *Date // scrobble time on user track lists
	Images    []Image
	TopTags   []Tag
	Wiki      *Wiki
}

type rawTrack struct {
	Name      string           `json:"name"`
	Artist    Artist           `json:"artist"`
	Album     *Album           `json:"album"`
	MBID      string           `json:"mbid"`
	URL       string           `json:"url"`
	Rank      *flexInt         `json:"rank"`
	Attr      *rawRankAttr     `json:"@attr"`
	Duration  *flexInt         `json:"duration"`
	Listeners *flexInt         `json:"listeners"`
	Playcount *flexInt         `json:"playcount"`
	Match     *flexFloat       `json:"match"`
	Loved     *flexBool        `json:"loved"`
	UserLoved *flexBool        `json:"userloved"`
	Date      *Date            `json:"date"`
	Image     oneOrMany[Image] `json:"image"`
	TopTags   tagList          `json:"toptags"`
	Wiki      *Wiki            `json:"wiki"`
}

func (t *Track) UnmarshalJSON(data []byte) error {
	var raw rawTrack
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("track: %w", err)
	}
	if raw.Name == "" {
		return fmt.Errorf("track: missing name")
	}

	*t = Track{
		Name:      raw.Name,
		Artist:    raw.Artist,
		Album:     raw.Album,
		MBID:      raw.MBID,
		URL:       raw.URL,
		Duration:  intPtr(raw.Duration),
		Listeners: intPtr(raw.Listeners),
		Playcount: intPtr(raw.Playcount),
		Match:     floatPtr(raw.Match),
		Loved:     boolPtr(raw.Loved),
		Date:      raw.Date,
		Images:    raw.Image,
		TopTags:   raw.TopTags,
		Wiki:      raw.Wiki,
	}
	if t.Loved == nil {
		t.Loved = boolPtr(raw.UserLoved)
	}
	t.Rank = intPtr(raw.Rank)
	if raw.Attr != nil {
		t.Rank = intPtr(raw.Attr.Rank)
	}
	return nil
}

// Params returns the flat outbound form of the track: scalar fields only,
// absent fields omitted. Nested relations (artist, album) are not included;
// callers flatten those explicitly.
func (t Track) Params() P {
	p := P{}
	p.set("name", t.Name)
	p.set("mbid", t.MBID)
	p.set("url", t.URL)
	p.setInt("rank", t.Rank)
	p.setInt("duration", t.Duration)
	p.setInt("listeners", t.Listeners)
	p.setInt("playcount", t.Playcount)
	p.setFloat("match", t.Match)
	p.setBool("loved", t.Loved)
	return p
}

// TrackCorrection is the canonicalized form of a misspelled track name.
type TrackCorrection struct {
	Track Track
	Attr  CorrectionAttributes
}

func (c *TrackCorrection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Track Track                `json:"track"`
		Attr  CorrectionAttributes `json:"@attr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Track = raw.Track
	c.Attr = raw.Attr
	return nil
}

// NowPlaying is the response to an updateNowPlaying submission: each
// submitted field echoed back with its correction flag.
type NowPlaying struct {
	Artist         Corrected
	Track          Corrected
	Album          Corrected
	AlbumArtist    Corrected
	IgnoredMessage IgnoredMessage
}

func (n *NowPlaying) UnmarshalJSON(data []byte) error {
	var raw struct {
		Artist         Corrected      `json:"artist"`
		Track          Corrected      `json:"track"`
		Album          Corrected      `json:"album"`
		AlbumArtist    Corrected      `json:"albumArtist"`
		IgnoredMessage IgnoredMessage `json:"ignoredMessage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = NowPlaying(raw)
	return nil
}

// TrackService provides the track.* operations.
type TrackService struct {
	client *Client
}

// GetInfo fetches the metadata for a track.
func (s *TrackService) GetInfo(ctx context.Context, artist, track string) (*Track, error) {
	var resp struct {
		Track *Track `json:"track"`
	}
	params := P{"artist": artist, "track": track, "autocorrect": "1"}
	if err := s.client.get(ctx, "track.getInfo", params, &resp); err != nil {
		return nil, fmt.Errorf("track.getInfo: %w", err)
	}
	if resp.Track == nil {
		return nil, fmt.Errorf("track.getInfo: empty response")
	}
	return resp.Track, nil
}

// Search returns tracks matching the query, sorted by relevance.
func (s *TrackService) Search(ctx context.Context, query string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		Results struct {
			rawSearchMeta
			Matches struct {
				Track oneOrMany[Track] `json:"track"`
			} `json:"trackmatches"`
		} `json:"results"`
	}
	params := P{"track": query, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "track.search", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("track.search: %w", err)
	}
	return resp.Results.Matches.Track, resp.Results.attrs(), nil
}

// GetSimilar returns tracks similar to the named one.
func (s *TrackService) GetSimilar(ctx context.Context, artist, track string, limit int) ([]Track, error) {
	var resp struct {
		SimilarTracks struct {
			Track oneOrMany[Track] `json:"track"`
		} `json:"similartracks"`
	}
	params := P{"artist": artist, "track": track, "autocorrect": "1", "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "track.getSimilar", params, &resp); err != nil {
		return nil, fmt.Errorf("track.getSimilar: %w", err)
	}
	return resp.SimilarTracks.Track, nil
}

// GetCorrection checks whether the supplied artist and track names have a
// canonical correction. Returns nil when the service proposes none.
func (s *TrackService) GetCorrection(ctx context.Context, artist, track string) (*TrackCorrection, error) {
	var resp struct {
		Corrections json.RawMessage `json:"corrections"`
	}
	params := P{"artist": artist, "track": track}
	if err := s.client.get(ctx, "track.getCorrection", params, &resp); err != nil {
		return nil, fmt.Errorf("track.getCorrection: %w", err)
	}
	corrections, err := unwrapList[TrackCorrection](resp.Corrections, "correction")
	if err != nil {
		return nil, fmt.Errorf("track.getCorrection: %w", err)
	}
	if len(corrections) == 0 {
		return nil, nil
	}
	return &corrections[0], nil
}

// GetTopTags returns the most applied tags for a track.
func (s *TrackService) GetTopTags(ctx context.Context, artist, track string) ([]Tag, error) {
	var resp struct {
		TopTags struct {
			Tag oneOrMany[Tag] `json:"tag"`
		} `json:"toptags"`
	}
	params := P{"artist": artist, "track": track, "autocorrect": "1"}
	if err := s.client.get(ctx, "track.getTopTags", params, &resp); err != nil {
		return nil, fmt.Errorf("track.getTopTags: %w", err)
	}
	return resp.TopTags.Tag, nil
}

// Love marks a track as loved on the user's profile. Requires
// authentication.
func (s *TrackService) Love(ctx context.Context, artist, track string) error {
	if err := s.client.post(ctx, "track.love", P{"artist": artist, "track": track}, true, nil); err != nil {
		return fmt.Errorf("track.love: %w", err)
	}
	return nil
}

// Unlove removes the loved mark from a track. Requires authentication.
func (s *TrackService) Unlove(ctx context.Context, artist, track string) error {
	if err := s.client.post(ctx, "track.unlove", P{"artist": artist, "track": track}, true, nil); err != nil {
		return fmt.Errorf("track.unlove: %w", err)
	}
	return nil
}

// UpdateNowPlaying notifies the service that a track started playing.
// Requires authentication.
func (s *TrackService) UpdateNowPlaying(ctx context.Context, track ScrobbleTrack) (*NowPlaying, error) {
	params := track.Params()
	delete(params, "timestamp") // now playing is momentary, not a play record
	var resp struct {
		NowPlaying *NowPlaying `json:"nowplaying"`
	}
	if err := s.client.post(ctx, "track.updateNowPlaying", params, true, &resp); err != nil {
		return nil, fmt.Errorf("track.updateNowPlaying: %w", err)
	}
	if resp.NowPlaying == nil {
		return nil, fmt.Errorf("track.updateNowPlaying: empty response")
	}
	return resp.NowPlaying, nil
}
