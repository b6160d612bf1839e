package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// User is a Last.fm user profile.
type User struct {
	Name       string
	RealName   string
	URL        string
	Country    string
	Age        *int64
	Playcount  *int64
	Playlists  *int64
	Registered *Date
	Images     []Image
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       string           `json:"name"`
		RealName   string           `json:"realname"`
		URL        string           `json:"url"`
		Country    string           `json:"country"`
		Age        *flexInt         `json:"age"`
		Playcount  *flexInt         `json:"playcount"`
		Playlists  *flexInt         `json:"playlists"`
		Registered *Date            `json:"registered"`
		Image      oneOrMany[Image] `json:"image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	if raw.Name == "" {
		return fmt.Errorf("user: missing name")
	}
	*u = User{
		Name:       raw.Name,
		RealName:   raw.RealName,
		URL:        raw.URL,
		Country:    raw.Country,
		Age:        intPtr(raw.Age),
		Playcount:  intPtr(raw.Playcount),
		Playlists:  intPtr(raw.Playlists),
		Registered: raw.Registered,
		Images:     raw.Image,
	}
	return nil
}

// UserService provides the user.* operations.
type UserService struct {
	client *Client
}

// GetInfo fetches a user profile.
func (s *UserService) GetInfo(ctx context.Context, user string) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := s.client.get(ctx, "user.getInfo", P{"user": user}, &resp); err != nil {
		return nil, fmt.Errorf("user.getInfo: %w", err)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("user.getInfo: empty response")
	}
	return resp.User, nil
}

// GetRecentTracks returns the tracks the user recently listened to,
// newest first. The currently playing track, when present, has no Date.
func (s *UserService) GetRecentTracks(ctx context.Context, user string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		RecentTracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"recenttracks"`
	}
	params := P{"user": user, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit), "extended": "0"}
	if err := s.client.get(ctx, "user.getRecentTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getRecentTracks: %w", err)
	}
	return resp.RecentTracks.Track, resp.RecentTracks.Attr.attrs(), nil
}

// GetLovedTracks returns the user's loved tracks.
func (s *UserService) GetLovedTracks(ctx context.Context, user string, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		LovedTracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"lovedtracks"`
	}
	params := P{"user": user, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "user.getLovedTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getLovedTracks: %w", err)
	}
	return resp.LovedTracks.Track, resp.LovedTracks.Attr.attrs(), nil
}

// GetTopArtists returns the user's most played artists for a period.
func (s *UserService) GetTopArtists(ctx context.Context, user string, period Period, page, limit int) ([]Artist, *ListAttributes, error) {
	var resp struct {
		TopArtists struct {
			Artist oneOrMany[Artist] `json:"artist"`
			Attr   rawListAttributes `json:"@attr"`
		} `json:"topartists"`
	}
	params := P{"user": user, "period": string(period), "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "user.getTopArtists", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getTopArtists: %w", err)
	}
	return resp.TopArtists.Artist, resp.TopArtists.Attr.attrs(), nil
}

// GetTopTracks returns the user's most played tracks for a period.
func (s *UserService) GetTopTracks(ctx context.Context, user string, period Period, page, limit int) ([]Track, *ListAttributes, error) {
	var resp struct {
		TopTracks struct {
			Track oneOrMany[Track]  `json:"track"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"toptracks"`
	}
	params := P{"user": user, "period": string(period), "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "user.getTopTracks", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getTopTracks: %w", err)
	}
	return resp.TopTracks.Track, resp.TopTracks.Attr.attrs(), nil
}

// GetTopAlbums returns the user's most played albums for a period.
func (s *UserService) GetTopAlbums(ctx context.Context, user string, period Period, page, limit int) ([]Album, *ListAttributes, error) {
	var resp struct {
		TopAlbums struct {
			Album oneOrMany[Album]  `json:"album"`
			Attr  rawListAttributes `json:"@attr"`
		} `json:"topalbums"`
	}
	params := P{"user": user, "period": string(period), "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	if err := s.client.get(ctx, "user.getTopAlbums", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getTopAlbums: %w", err)
	}
	return resp.TopAlbums.Album, resp.TopAlbums.Attr.attrs(), nil
}

// GetFriends returns the user's friends. When recentTracks is true each
// friend carries their most recent listen.
func (s *UserService) GetFriends(ctx context.Context, user string, recentTracks bool, page, limit int) ([]User, *ListAttributes, error) {
	var resp struct {
		Friends struct {
			User oneOrMany[User]   `json:"user"`
			Attr rawListAttributes `json:"@attr"`
		} `json:"friends"`
	}
	params := P{"user": user, "page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
	params.setBool("recenttracks", &recentTracks)
	if err := s.client.get(ctx, "user.getFriends", params, &resp); err != nil {
		return nil, nil, fmt.Errorf("user.getFriends: %w", err)
	}
	return resp.Friends.User, resp.Friends.Attr.attrs(), nil
}

// weeklyChartParams builds the bounds for a weekly chart call. Zero bounds
// select the most recent chart.
func weeklyChartParams(user string, from, to int64) P {
	params := P{"user": user}
	if from > 0 {
		params.setInt("from", &from)
	}
	if to > 0 {
		params.setInt("to", &to)
	}
	return params
}

// GetWeeklyArtistChart returns the user's artist chart for a week. The
// from/to bounds come from GetWeeklyChartList; zero values select the most
// recent chart.
func (s *UserService) GetWeeklyArtistChart(ctx context.Context, user string, from, to int64) ([]Artist, error) {
	var resp struct {
		Chart struct {
			Artist oneOrMany[Artist] `json:"artist"`
		} `json:"weeklyartistchart"`
	}
	if err := s.client.get(ctx, "user.getWeeklyArtistChart", weeklyChartParams(user, from, to), &resp); err != nil {
		return nil, fmt.Errorf("user.getWeeklyArtistChart: %w", err)
	}
	return resp.Chart.Artist, nil
}

// GetWeeklyAlbumChart returns the user's album chart for a week.
func (s *UserService) GetWeeklyAlbumChart(ctx context.Context, user string, from, to int64) ([]Album, error) {
	var resp struct {
		Chart struct {
			Album oneOrMany[Album] `json:"album"`
		} `json:"weeklyalbumchart"`
	}
	if err := s.client.get(ctx, "user.getWeeklyAlbumChart", weeklyChartParams(user, from, to), &resp); err != nil {
		return nil, fmt.Errorf("user.getWeeklyAlbumChart: %w", err)
	}
	return resp.Chart.Album, nil
}

// GetWeeklyTrackChart returns the user's track chart for a week.
func (s *UserService) GetWeeklyTrackChart(ctx context.Context, user string, from, to int64) ([]Track, error) {
	var resp struct {
		Chart struct {
			Track oneOrMany[Track] `json:"track"`
		} `json:"weeklytrackchart"`
	}
	if err := s.client.get(ctx, "user.getWeeklyTrackChart", weeklyChartParams(user, from, to), &resp); err != nil {
		return nil, fmt.Errorf("user.getWeeklyTrackChart: %w", err)
	}
	return resp.Chart.Track, nil
}

// GetWeeklyChartList returns the date ranges for which weekly charts exist
// for a user.
func (s *UserService) GetWeeklyChartList(ctx context.Context, user string) ([]Chart, error) {
	var resp struct {
		WeeklyChartList struct {
			Chart oneOrMany[Chart] `json:"chart"`
		} `json:"weeklychartlist"`
	}
	if err := s.client.get(ctx, "user.getWeeklyChartList", P{"user": user}, &resp); err != nil {
		return nil, fmt.Errorf("user.getWeeklyChartList: %w", err)
	}
	return resp.WeeklyChartList.Chart, nil
}
