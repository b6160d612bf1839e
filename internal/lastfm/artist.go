package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Artist is a Last.fm artist. When the service returns a bare name string
// in place of an artist object, decoding promotes it to a name-only stub.
type Artist struct {
	Name      string
	MBID      string
	URL       string
	Rank      *int64   // position in a ranked list, when part of one
	Match     *float64 // similarity score on getSimilar results
	Listeners *int64
	Playcount *int64
	Images    []Image
	Similar   []Artist
	Tags      []Tag
	Wiki      *Wiki
}

type rawArtist struct {
	Name      string           `json:"name"`
	Text      flexText         `json:"#text"`
	MBID      string           `json:"mbid"`
	URL       string           `json:"url"`
	Rank      *flexInt         `json:"rank"`
	Match     *flexFloat       `json:"match"`
	Listeners *flexInt         `json:"listeners"`
	Playcount *flexInt         `json:"playcount"`
	Stats     *rawArtistStats  `json:"stats"`
	Attr      *rawRankAttr     `json:"@attr"`
	Image     oneOrMany[Image] `json:"image"`
	Similar   artistList       `json:"similar"`
	Tags      tagList          `json:"tags"`
	Bio       *Wiki            `json:"bio"`
	Wiki      *Wiki            `json:"wiki"`
}

type rawArtistStats struct {
	Listeners *flexInt `json:"listeners"`
	Playcount *flexInt `json:"playcount"`
}

type rawRankAttr struct {
	Rank *flexInt `json:"rank"`
}

func (a *Artist) UnmarshalJSON(data []byte) error {
	// A reference field may arrive as a bare name string.
	if kind(data) == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*a = Artist{Name: name}
		return nil
	}

	var raw rawArtist
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("artist: %w", err)
	}

	*a = Artist{
		Name:      raw.Name,
		MBID:      raw.MBID,
		URL:       raw.URL,
		Match:     floatPtr(raw.Match),
		Listeners: intPtr(raw.Listeners),
		Playcount: intPtr(raw.Playcount),
		Images:    raw.Image,
		Similar:   raw.Similar,
		Tags:      raw.Tags,
		Wiki:      raw.Wiki,
	}
	if a.Name == "" {
		// Some list payloads carry the name as a text node instead.
		a.Name = string(raw.Text)
	}
	if raw.Stats != nil {
		a.Listeners = intPtr(raw.Stats.Listeners)
		a.Playcount = intPtr(raw.Stats.Playcount)
	}
	// Ranked lists nest the rank in @attr; flat payloads carry it top level.
	a.Rank = intPtr(raw.Rank)
	if raw.Attr != nil {
		a.Rank = intPtr(raw.Attr.Rank)
	}
	if a.Wiki == nil {
		a.Wiki = raw.Bio
	}
	if a.Name == "" {
		return fmt.Errorf("artist: missing name")
	}
	return nil
}

// Params returns the flat outbound form of the artist: scalar fields only,
// absent fields omitted.
func (a Artist) Params() P {
	p := P{}
	p.set("name", a.Name)
	p.set("mbid", a.MBID)
	p.set("url", a.URL)
	p.setInt("rank", a.Rank)
	p.setFloat("match", a.Match)
	p.setInt("listeners", a.Listeners)
	p.setInt("playcount", a.Playcount)
	return p
}

// ArtistCorrection is the canonicalized form of a misspelled artist name.
type ArtistCorrection struct {
	Artist Artist
	Attr   CorrectionAttributes
}

// ArtistService provides the artist.* operations.
type ArtistService struct {
	client *Client
}

// GetInfo fetches the metadata for an artist by name.
func (s *ArtistService) GetInfo(ctx context.Context, artist string) (*Artist, error) {
	return s.getInfo(ctx, P{"artist": artist, "autocorrect": "1"})
}

// GetInfoByMBID fetches the metadata for an artist by MusicBrainz ID.
func (s *ArtistService) GetInfoByMBID(ctx context.Context, mbid string) (*Artist, error) {
	return s.getInfo(ctx, P{"mbid": mbid})
}

func (s *ArtistService) getInfo(ctx context.Context, params P) (*Artist, error) {
	var resp struct {
		Artist *Artist `json:"artist"`
	}
	if err := s.client.get(ctx, "artist.getInfo", params, &resp); err != nil {
		return nil, fmt.Errorf("artist.getInfo: %w", err)
	}
	if resp.Artist == nil {
		return nil, fmt.Errorf("artist.getInfo: empty response")
	}
	return resp.Artist, nil
}

// Search returns artists matching the query, sorted by relevance.
func (s *ArtistService) Search(ctx context.Context, query string, page, limit int) ([]Artist, *ListAttributes, error) {
	var resp struct {
		Results struct {
			rawSearchMeta
			Matches struct {
				Artist oneOrMany[Artist] `json:"artist"`
			} `json:"artistmatches"`
		} `json:"results"`
	}
	params := P{"artist": query, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "artist.search", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("artist.search: %w", err)
	}
	return resp.Results.Matches.Artist, resp.Results.attrs(), nil
}

// GetSimilar returns artists similar to the named one.
func (s *ArtistService) GetSimilar(ctx context.Context, artist string, limit int) ([]Artist, error) {
	var resp struct {
		SimilarArtists struct {
			Artist oneOrMany[Artist] `json:"artist"`
		} `json:"similarartists"`
	}
	params := P{"artist": artist, "autocorrect": "1", "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "artist.getSimilar", params, &resp); err != nil {
		return nil, fmt.Errorf("artist.getSimilar: %w", err)
	}
	return resp.SimilarArtists.Artist, nil
}

// GetTopTracks returns the artist's most played tracks.
func (s *ArtistService) GetTopTracks(ctx context.Context, artist string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		TopTracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"toptracks"`
	}
	params := P{"artist": artist, "autocorrect": "1", "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "artist.getTopTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("artist.getTopTracks: %w", err)
	}
	return resp.TopTracks.Track, resp.TopTracks.Attr.attrs(), nil
}

// GetTopTags returns the most applied tags for an artist.
func (s *ArtistService) GetTopTags(ctx context.Context, artist string) ([]Tag, error) {
	var resp struct {
		TopTags struct {
			Tag oneOrMany[Tag] `json:"tag"`
		} `json:"toptags"`
	}
	params := P{"artist": artist, "autocorrect": "1"}
	if err := s.client.get(ctx, "artist.getTopTags", params, &resp); err != nil {
		return nil, fmt.Errorf("artist.getTopTags: %w", err)
	}
	return resp.TopTags.Tag, nil
}

// GetCorrection checks whether the supplied artist name has a canonical
// correction. Returns nil when the service proposes none.
func (s *ArtistService) GetCorrection(ctx context.Context, artist string) (*ArtistCorrection, error) {
	var resp struct {
		Corrections json.RawMessage `json:"corrections"`
	}
	if err := s.client.get(ctx, "artist.getCorrection", P{"artist": artist}, &resp); err != nil {
		return nil, fmt.Errorf("artist.getCorrection: %w", err)
	}
	corrections, err := unwrapList[ArtistCorrection](resp.Corrections, "correction")
	if err != nil {
		return nil, fmt.Errorf("artist.getCorrection: %w", err)
	}
	if len(corrections) == 0 {
		return nil, nil
	}
	return &corrections[0], nil
}

func (c *ArtistCorrection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Artist Artist               `json:"artist"`
		Attr   CorrectionAttributes `json:"@attr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Artist = raw.Artist
	c.Attr = raw.Attr
	return nil
}

// AddTags tags an artist with up to 10 user supplied tags. Requires
// authentication.
func (s *ArtistService) AddTags(ctx context.Context, artist string, tags []string) error {
	if err := s.client.post(ctx, "artist.addTags", P{"artist": artist, "tags": joinTags(tags)}, true, nil); err != nil {
		return fmt.Errorf("artist.addTags: %w", err)
	}
	return nil
}

// RemoveTag removes the user's tag from an artist. Requires authentication.
func (s *ArtistService) RemoveTag(ctx context.Context, artist, tag string) error {
	if err := s.client.post(ctx, "artist.removeTag", P{"artist": artist, "tag": tag}, true, nil); err != nil {
		return fmt.Errorf("artist.removeTag: %w", err)
	}
	return nil
}
