package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Tag is a Last.fm tag.
type Tag struct {
	Name  string
	URL   string
	Count *int64
	Reach *int64
	Total *int64
	Wiki  *Wiki
}

type rawTag struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Count    *flexInt `json:"count"`
	Reach    *flexInt `json:"reach"`
	Total    *flexInt `json:"total"`
	Taggings *flexInt `json:"taggings"`
	Wiki     *Wiki    `json:"wiki"`
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	if kind(data) == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*t = Tag{Name: name}
		return nil
	}
	var raw rawTag
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	*t = Tag{
		Name:  raw.Name,
		URL:   raw.URL,
		Count: intPtr(raw.Count),
		Reach: intPtr(raw.Reach),
		Total: intPtr(raw.Total),
		Wiki:  raw.Wiki,
	}
	if t.Total == nil {
		t.Total = intPtr(raw.Taggings)
	}
	return nil
}

// Params returns the flat outbound form of the tag.
func (t Tag) Params() P {
	p := P{}
	p.set("name", t.Name)
	p.set("url", t.URL)
	p.setInt("count", t.Count)
	p.setInt("reach", t.Reach)
	p.setInt("total", t.Total)
	return p
}

// TagService provides the tag.* operations.
type TagService struct {
	client *Client
}

// GetInfo fetches the metadata for a tag.
func (s *TagService) GetInfo(ctx context.Context, tag string) (*Tag, error) {
	var resp struct {
		Tag *Tag `json:"tag"`
	}
	if err := s.client.get(ctx, "tag.getInfo", P{"tag": tag}, &resp); err != nil {
		return nil, fmt.Errorf("tag.getInfo: %w", err)
	}
	if resp.Tag == nil {
		return nil, fmt.Errorf("tag.getInfo: empty response")
	}
	return resp.Tag, nil
}

// GetSimilar returns tags similar to the named one.
func (s *TagService) GetSimilar(ctx context.Context, tag string) ([]Tag, error) {
	var resp struct {
		SimilarTags struct {
			Tag oneOrMany[Tag] `json:"tag"`
		} `json:"similartags"`
	}
	if err := s.client.get(ctx, "tag.getSimilar", P{"tag": tag}, &resp); err != nil {
		return nil, fmt.Errorf("tag.getSimilar: %w", err)
	}
	return resp.SimilarTags.Tag, nil
}

// GetTopArtists returns the most tagged artists for a tag.
func (s *TagService) GetTopArtists(ctx context.Context, tag string, page, limit int) ([]Artist, *ListAttributes, error) {
	var resp struct {
		TopArtists struct {
			Artist oneOrMany[Artist] `json:"artist"`
			Attr   rawListAttributes `json:"@attr"`
		} `json:"topartists"`
	}
	params := P{"tag": tag, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "tag.getTopArtists", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("tag.getTopArtists: %w", err)
	}
	return resp.TopArtists.Artist, resp.TopArtists.Attr.attrs(), nil
}

// GetTopAlbums returns the most tagged albums for a tag.
func (s *TagService) GetTopAlbums(ctx context.Context, tag string, page, limit int) ([]Album, *ListAttributes, error) {
	var resp struct {
		Albums struct {
			Album oneOrMany[Album]  `json:"album"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"albums"`
	}
	params := P{"tag": tag, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "tag.getTopAlbums", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("tag.getTopAlbums: %w", err)
	}
	return resp.Albums.Album, resp.Albums.Attr.attrs(), nil
}

// GetTopTracks returns the most tagged tracks for a tag.
func (s *TagService) GetTopTracks(ctx context.Context, tag string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		Tracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"tracks"`
	}
	params := P{"tag": tag, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "tag.getTopTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("tag.getTopTracks: %w", err)
	}
	return resp.Tracks.Track, resp.Tracks.Attr.attrs(), nil
}
