package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// maxBatchSize is the per-request track limit imposed by the service.
const maxBatchSize = 50

// ScrobbleTrack is a single play submission: an assertion that the user
// played a track at a given time.
type ScrobbleTrack struct {
	Artist       string
	Track        string
	Timestamp    int64 // unix time the play started
	Album        string
	AlbumArtist  string
	TrackNumber  string
	MBID         string
	Context      string
	StreamID     string
	Duration     *int64 // seconds
	ChosenByUser *bool
}

// NewScrobbleTrack returns a submission for artist and track timestamped
// now.
func NewScrobbleTrack(artist, track string) ScrobbleTrack {
	return ScrobbleTrack{Artist: artist, Track: track, Timestamp: time.Now().Unix()}
}

// Params returns the flat submission form of the track, using the
// service's camelCase field names. Absent fields are omitted.
func (t ScrobbleTrack) Params() P {
	p := P{}
	p.set("artist", t.Artist)
	p.set("track", t.Track)
	if t.Timestamp > 0 {
		ts := t.Timestamp
		p.setInt("timestamp", &ts)
	}
	p.set("album", t.Album)
	p.set("albumArtist", t.AlbumArtist)
	p.set("trackNumber", t.TrackNumber)
	p.set("mbid", t.MBID)
	p.set("context", t.Context)
	p.set("streamId", t.StreamID)
	p.setInt("duration", t.Duration)
	p.setBool("chosenByUser", t.ChosenByUser)
	return p
}

func (t *ScrobbleTrack) UnmarshalJSON(data []byte) error {
	var raw struct {
		Artist       flexText  `json:"artist"`
		Track        flexText  `json:"track"`
		Timestamp    *flexInt  `json:"timestamp"`
		Album        flexText  `json:"album"`
		AlbumArtist  flexText  `json:"albumArtist"`
		TrackNumber  flexText  `json:"trackNumber"`
		MBID         string    `json:"mbid"`
		Context      string    `json:"context"`
		StreamID     string    `json:"streamId"`
		Duration     *flexInt  `json:"duration"`
		ChosenByUser *flexBool `json:"chosenByUser"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("scrobble track: %w", err)
	}
	*t = ScrobbleTrack{
		Artist:       string(raw.Artist),
		Track:        string(raw.Track),
		Album:        string(raw.Album),
		AlbumArtist:  string(raw.AlbumArtist),
		TrackNumber:  string(raw.TrackNumber),
		MBID:         raw.MBID,
		Context:      raw.Context,
		StreamID:     raw.StreamID,
		Duration:     intPtr(raw.Duration),
		ChosenByUser: boolPtr(raw.ChosenByUser),
	}
	if raw.Timestamp != nil {
		t.Timestamp = int64(*raw.Timestamp)
	}
	return nil
}

// ScrobbleOutcome is the per-track outcome of a scrobble submission.
type ScrobbleOutcome struct {
	Artist         Corrected
	Track          Corrected
	Album          Corrected
	AlbumArtist    Corrected
	Timestamp      int64
	IgnoredMessage IgnoredMessage
}

func (o *ScrobbleOutcome) UnmarshalJSON(data []byte) error {
	var raw struct {
		Artist         Corrected      `json:"artist"`
		Track          Corrected      `json:"track"`
		Album          Corrected      `json:"album"`
		AlbumArtist    Corrected      `json:"albumArtist"`
		Timestamp      flexInt        `json:"timestamp"`
		IgnoredMessage IgnoredMessage `json:"ignoredMessage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.Artist = raw.Artist
	o.Track = raw.Track
	o.Album = raw.Album
	o.AlbumArtist = raw.AlbumArtist
	o.Timestamp = int64(raw.Timestamp)
	o.IgnoredMessage = raw.IgnoredMessage
	return nil
}

// Accepted reports whether the play was recorded.
func (o ScrobbleOutcome) Accepted() bool {
	return o.IgnoredMessage.Code == 0
}

// ScrobbleResult is the aggregate outcome of one or more scrobble batches:
// the ordered per-track outcomes plus the accepted/ignored counters.
type ScrobbleResult struct {
	Accepted  int64
	Ignored   int64
	Scrobbles []ScrobbleOutcome
}

type rawScrobbleResponse struct {
	Scrobbles struct {
		Scrobble oneOrMany[ScrobbleOutcome] `json:"scrobble"`
		Attr     struct {
			Accepted flexInt `json:"accepted"`
			Ignored  flexInt `json:"ignored"`
		} `json:"@attr"`
	} `json:"scrobbles"`
}

func (r rawScrobbleResponse) result() *ScrobbleResult {
	return &ScrobbleResult{
		Accepted:  int64(r.Scrobbles.Attr.Accepted),
		Ignored:   int64(r.Scrobbles.Attr.Ignored),
		Scrobbles: r.Scrobbles.Scrobble,
	}
}

// Chunk splits tracks into contiguous batches of at most size elements,
// preserving order. The size is clamped to the service limit of 50.
func Chunk(tracks []ScrobbleTrack, size int) [][]ScrobbleTrack {
	if size < 1 {
		size = 1
	}
	if size > maxBatchSize {
		size = maxBatchSize
	}
	var chunks [][]ScrobbleTrack
	for start := 0; start < len(tracks); start += size {
		chunks = append(chunks, tracks[start:min(start+size, len(tracks))])
	}
	return chunks
}

// Scrobble submits up to 50 plays in a single request, qualifying each
// field name with its positional index so one request carries the whole
// batch. Requires authentication.
func (s *TrackService) Scrobble(ctx context.Context, tracks []ScrobbleTrack) (*ScrobbleResult, error) {
	if len(tracks) == 0 {
		return &ScrobbleResult{}, nil
	}
	if len(tracks) > maxBatchSize {
		return nil, fmt.Errorf("track.scrobble: batch of %d exceeds the %d track limit", len(tracks), maxBatchSize)
	}

	params := P{}
	for i, t := range tracks {
		for k, v := range t.Params() {
			params[fmt.Sprintf("%s[%d]", k, i)] = v
		}
	}

	var resp rawScrobbleResponse
	if err := s.client.post(ctx, "track.scrobble", params, true, &resp); err != nil {
		return nil, fmt.Errorf("track.scrobble: %w", err)
	}
	return resp.result(), nil
}

// ScrobbleAll submits the plays in strictly sequential batches of at most
// batchSize tracks, summing the accepted/ignored counters and appending
// each batch's per-track outcomes in order. The first batch error aborts
// the run and is returned; batches already submitted stay applied, so on
// failure the first K batches may have been recorded.
func (s *TrackService) ScrobbleAll(ctx context.Context, tracks []ScrobbleTrack, batchSize int) (*ScrobbleResult, error) {
	var total *ScrobbleResult
	for i, batch := range Chunk(tracks, batchSize) {
		result, err := s.Scrobble(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i+1, err)
		}
		if total == nil {
			total = result
			continue
		}
		total.Accepted += result.Accepted
		total.Ignored += result.Ignored
		total.Scrobbles = append(total.Scrobbles, result.Scrobbles...)
	}
	if total == nil {
		total = &ScrobbleResult{}
	}
	return total, nil
}
