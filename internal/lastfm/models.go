package lastfm

import "encoding/json"

// Image is a sized artwork reference.
type Image struct {
	Size string
	URL  string
}

func (i *Image) UnmarshalJSON(data []byte) error {
	var raw struct {
		Size string   `json:"size"`
		URL  flexText `json:"url"`
		Text flexText `json:"#text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Size = raw.Size
	i.URL = string(raw.URL)
	if i.URL == "" {
		i.URL = string(raw.Text)
	}
	return nil
}

// Params returns the flat outbound form of the image.
func (i Image) Params() P {
	p := P{}
	p.set("size", i.Size)
	p.set("url", i.URL)
	return p
}

// Date is a service timestamp with its display text.
type Date struct {
	Timestamp int64
	Text      string
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw struct {
		UTS       *flexInt `json:"uts"`
		Unixtime  *flexInt `json:"unixtime"`
		Timestamp *flexInt `json:"timestamp"`
		Text      flexText `json:"#text"`
		AltText   flexText `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, ts := range []*flexInt{raw.UTS, raw.Unixtime, raw.Timestamp} {
		if ts != nil {
			d.Timestamp = int64(*ts)
			break
		}
	}
	d.Text = string(raw.Text)
	if d.Text == "" {
		d.Text = string(raw.AltText)
	}
	return nil
}

// Link is a wiki reference link.
type Link struct {
	Rel  string
	Href string
	Text string
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rel  string   `json:"rel"`
		Href string   `json:"href"`
		Text flexText `json:"#text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Rel = raw.Rel
	l.Href = raw.Href
	l.Text = string(raw.Text)
	return nil
}

// Wiki is a biography or description excerpt with its reference links.
type Wiki struct {
	Published string
	Summary   string
	Content   string
	Links     []Link
}

func (w *Wiki) UnmarshalJSON(data []byte) error {
	var raw struct {
		Published string   `json:"published"`
		Summary   string   `json:"summary"`
		Content   string   `json:"content"`
		Links     linkList `json:"links"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.Published = raw.Published
	w.Summary = raw.Summary
	w.Content = raw.Content
	w.Links = raw.Links
	return nil
}

// ListAttributes carries the page metadata attached to paginated responses.
type ListAttributes struct {
	Page       int64
	PerPage    int64
	Total      int64
	TotalPages int64
}

type rawListAttributes struct {
	Page       *flexInt `json:"page"`
	PerPage    *flexInt `json:"perPage"`
	Total      *flexInt `json:"total"`
	TotalPages *flexInt `json:"totalPages"`
}

func (a rawListAttributes) attrs() *ListAttributes {
	out := &ListAttributes{}
	if a.Page != nil {
		out.Page = int64(*a.Page)
	}
	if a.PerPage != nil {
		out.PerPage = int64(*a.PerPage)
	}
	if a.Total != nil {
		out.Total = int64(*a.Total)
	}
	if a.TotalPages != nil {
		out.TotalPages = int64(*a.TotalPages)
	}
	return out
}

// CorrectionAttributes describes how the service canonicalized the
// supplied name: the match ordinal and which parts were corrected.
type CorrectionAttributes struct {
	Index           int64
	ArtistCorrected bool
	TrackCorrected  bool
}

func (a *CorrectionAttributes) UnmarshalJSON(data []byte) error {
	var raw struct {
		Index           flexInt  `json:"index"`
		ArtistCorrected flexBool `json:"artistcorrected"`
		TrackCorrected  flexBool `json:"trackcorrected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Index = int64(raw.Index)
	a.ArtistCorrected = bool(raw.ArtistCorrected)
	a.TrackCorrected = bool(raw.TrackCorrected)
	return nil
}

// Corrected is a submitted field echoed back by a write call with a flag
// telling whether the service canonicalized it. An empty Text means the
// field was not part of the submission.
type Corrected struct {
	Text      string
	Corrected bool
}

func (c *Corrected) UnmarshalJSON(data []byte) error {
	if kind(data) == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Text = s
		return nil
	}
	var raw struct {
		Corrected flexBool `json:"corrected"`
		Text      flexText `json:"#text"`
		AltText   flexText `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Corrected = bool(raw.Corrected)
	c.Text = string(raw.Text)
	if c.Text == "" {
		c.Text = string(raw.AltText)
	}
	return nil
}

// IgnoredMessage explains why a submission was discarded. Code 0 means the
// submission was accepted.
type IgnoredMessage struct {
	Code int64
	Text string
}

func (m *IgnoredMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code flexInt  `json:"code"`
		Text flexText `json:"#text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Code = int64(raw.Code)
	m.Text = string(raw.Text)
	return nil
}

// Period is a time window for user top lists.
type Period string

// Periods accepted by the user.getTop* operations.
const (
	PeriodOverall Period = "overall"
	Period7Day    Period = "7day"
	Period1Month  Period = "1month"
	Period3Month  Period = "3month"
	Period6Month  Period = "6month"
	Period12Month Period = "12month"
)
