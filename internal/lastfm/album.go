package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Album is a Last.fm album. Artist may be a name-only stub when the
// service returned only the artist name.
type Album struct {
	Name      string
	Artist    Artist
	MBID      string
	URL       string
	Rank      *int64
	Listeners *int64
	Playcount *int64
	Tracks    []Track
	Tags      []Tag
	Images    []Image
	Wiki      *Wiki
}

type rawAlbum struct {
	Name      string           `json:"name"`
	Title     string           `json:"title"`
	Text      flexText         `json:"#text"`
	Artist    Artist           `json:"artist"`
	MBID      string           `json:"mbid"`
	URL       string           `json:"url"`
	Rank      *flexInt         `json:"rank"`
	Attr      *rawRankAttr     `json:"@attr"`
	Listeners *flexInt         `json:"listeners"`
	Playcount *flexInt         `json:"playcount"`
	Tracks    trackList        `json:"tracks"`
	Tags      tagList          `json:"tags"`
	Image     oneOrMany[Image] `json:"image"`
	Wiki      *Wiki            `json:"wiki"`
}

func (a *Album) UnmarshalJSON(data []byte) error {
	if kind(data) == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*a = Album{Name: name}
		return nil
	}

	var raw rawAlbum
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("album: %w", err)
	}

	*a = Album{
		Name:      raw.Name,
		Artist:    raw.Artist,
		MBID:      raw.MBID,
		URL:       raw.URL,
		Listeners: intPtr(raw.Listeners),
		Playcount: intPtr(raw.Playcount),
		Tracks:    raw.Tracks,
		Tags:      raw.Tags,
		Images:    raw.Image,
		Wiki:      raw.Wiki,
	}
	if a.Name == "" {
		// Albums nested inside track payloads name the album "title".
		a.Name = raw.Title
	}
	if a.Name == "" {
		a.Name = string(raw.Text)
	}
	a.Rank = intPtr(raw.Rank)
	if raw.Attr != nil {
		a.Rank = intPtr(raw.Attr.Rank)
	}
	return nil
}

// Params returns the flat outbound form of the album: scalar fields only,
// absent fields omitted. The nested artist is not included; callers flatten
// relations explicitly.
func (a Album) Params() P {
	p := P{}
	p.set("name", a.Name)
	p.set("mbid", a.MBID)
	p.set("url", a.URL)
	p.setInt("rank", a.Rank)
	p.setInt("listeners", a.Listeners)
	p.setInt("playcount", a.Playcount)
	return p
}

// AlbumService provides the album.* operations.
type AlbumService struct {
	client *Client
}

// GetInfo fetches the metadata and tracklist for an album.
func (s *AlbumService) GetInfo(ctx context.Context, artist, album string) (*Album, error) {
	var resp struct {
		Album *Album `json:"album"`
	}
	params := P{"artist": artist, "album": album, "autocorrect": "1"}
	if err := s.client.get(ctx, "album.getInfo", params, &resp); err != nil {
		return nil, fmt.Errorf("album.getInfo: %w", err)
	}
	if resp.Album == nil {
		return nil, fmt.Errorf("album.getInfo: empty response")
	}
	return resp.Album, nil
}

// Search returns albums matching the query, sorted by relevance.
func (s *AlbumService) Search(ctx context.Context, query string, page, limit int) ([]Album, *ListAttributes, error) {
	var resp struct {
		Results struct {
			rawSearchMeta
			Matches struct {
				Album oneOrMany[Album] `json:"album"`
			} `json:"albummatches"`
		} `json:"results"`
	}
	params := P{"album": query, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "album.search", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("album.search: %w", err)
	}
	return resp.Results.Matches.Album, resp.Results.attrs(), nil
}

// AddTags tags an album with up to 10 user supplied tags. Requires
// authentication.
func (s *AlbumService) AddTags(ctx context.Context, artist, album string, tags []string) error {
	params := P{"artist": artist, "album": album, "tags": joinTags(tags)}
	if err := s.client.post(ctx, "album.addTags", params, true, nil); err != nil {
		return fmt.Errorf("album.addTags: %w", err)
	}
	return nil
}

// RemoveTag removes the user's tag from an album. Requires authentication.
func (s *AlbumService) RemoveTag(ctx context.Context, artist, album, tag string) error {
	params := P{"artist": artist, "album": album, "tag": tag}
	if err := s.client.post(ctx, "album.removeTag", params, true, nil); err != nil {
		return fmt.Errorf("album.removeTag: %w", err)
	}
	return nil
}
