package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Chart is a date range for which a weekly chart is available.
type Chart struct {
	From int64
	To   int64
	Text string
}

func (c *Chart) UnmarshalJSON(data []byte) error {
	var raw struct {
		From flexInt  `json:"from"`
		To   flexInt  `json:"to"`
		Text flexText `json:"#text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.From = int64(raw.From)
	c.To = int64(raw.To)
	c.Text = string(raw.Text)
	return nil
}

// ChartService provides the chart.* operations.
type ChartService struct {
	client *Client
}

// GetTopArtists returns the global top artists chart.
func (s *ChartService) GetTopArtists(ctx context.Context, page, limit int) ([]Artist, *ListAttributes, error) {
	var resp struct {
		Artists struct {
			Artist oneOrMany[Artist] `json:"artist"`
			Attr   rawListAttributes `json:"@attr"`
		} `json:"artists"`
	}
	params := P{"page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "chart.getTopArtists", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("chart.getTopArtists: %w", err)
	}
	return resp.Artists.Artist, resp.Artists.Attr.attrs(), nil
}

// GetTopTracks returns the global top tracks chart.
func (s *ChartService) GetTopTracks(ctx context.Context, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		Tracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"tracks"`
	}
	params := P{"page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "chart.getTopTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("chart.getTopTracks: %w", err)
	}
	return resp.Tracks.Track, resp.Tracks.Attr.attrs(), nil
}

// GetTopTags returns the global top tags chart.
func (s *ChartService) GetTopTags(ctx context.Context, page, limit int) ([]Tag, *ListAttributes, error) {
	var resp struct {
		Tags struct {
			Tag  oneOrMany[Tag]    `json:"tag"`
			Attr rawListAttributes `json:"@attr"`
		} `json:"tags"`
	}
	params := P{"page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "chart.getTopTags", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("chart.getTopTags: %w", err)
	}
	return resp.Tags.Tag, resp.Tags.Attr.attrs(), nil
}

// GeoService provides the geo.* operations.
type GeoService struct {
	client *Client
}

// GetTopArtists returns the most popular artists for a country, by ISO
// 3166-1 name.
func (s *GeoService) GetTopArtists(ctx context.Context, country string, page, limit int) ([]Artist, *ListAttributes, error) {
	var resp struct {
		TopArtists struct {
			Artist oneOrMany[Artist] `json:"artist"`
			Attr   rawListAttributes `json:"@attr"`
		} `json:"topartists"`
	}
	params := P{"country": country, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "geo.getTopArtists", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("geo.getTopArtists: %w", err)
	}
	return resp.TopArtists.Artist, resp.TopArtists.Attr.attrs(), nil
}

// GetTopTracks returns the most popular tracks for a country.
func (s *GeoService) GetTopTracks(ctx context.Context, country string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		Tracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"tracks"`
	}
	params := P{"country": country, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "geo.getTopTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("geo.getTopTracks: %w", err)
	}
	return resp.Tracks.Track, resp.Tracks.Attr.attrs(), nil
}
