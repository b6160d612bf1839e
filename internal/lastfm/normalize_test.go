package lastfm

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "number", input: `42`, want: 42},
		{name: "stringified", input: `"42"`, want: 42},
		{name: "empty string is absent", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "float notation", input: `"1234.0"`, want: 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n flexInt
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if int64(n) != tt.want {
				t.Errorf("flexInt(%q) = %d, want %d", tt.input, int64(n), tt.want)
			}
		})
	}

	var n flexInt
	if err := json.Unmarshal([]byte(`"abc"`), &n); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestFlexBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: `true`, want: true},
		{input: `false`, want: false},
		{input: `"1"`, want: true},
		{input: `"0"`, want: false},
		{input: `1`, want: true},
		{input: `0`, want: false},
		{input: `""`, want: false},
		{input: `null`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var b flexBool
			if err := json.Unmarshal([]byte(tt.input), &b); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if bool(b) != tt.want {
				t.Errorf("flexBool(%q) = %v, want %v", tt.input, bool(b), tt.want)
			}
		})
	}

	var b flexBool
	if err := json.Unmarshal([]byte(`"yes"`), &b); err == nil {
		t.Error("expected error for unknown boolean form")
	}
}

func TestFlexText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain string", input: `"Queen"`, want: "Queen"},
		{name: "text wrapper", input: `{"text": "Queen"}`, want: "Queen"},
		{name: "hash text wrapper", input: `{"#text": "Queen"}`, want: "Queen"},
		{name: "empty wrapper is absent", input: `{"#text": ""}`, want: ""},
		{name: "null", input: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s flexText
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if string(s) != tt.want {
				t.Errorf("flexText(%q) = %q, want %q", tt.input, string(s), tt.want)
			}
		})
	}

	var s flexText
	if err := json.Unmarshal([]byte(`[1, 2]`), &s); err == nil {
		t.Error("expected error for array shape")
	}
}

func TestOneOrMany(t *testing.T) {
	t.Run("array stays a list", func(t *testing.T) {
		var l oneOrMany[Image]
		data := `[{"size": "small", "url": "http://a"}, {"size": "large", "url": "http://b"}]`
		if err := json.Unmarshal([]byte(data), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(l) != 2 {
			t.Fatalf("len = %d, want 2", len(l))
		}
	})

	t.Run("single object becomes a one-element list", func(t *testing.T) {
		var l oneOrMany[Image]
		data := `{"size": "small", "url": "http://a"}`
		if err := json.Unmarshal([]byte(data), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(l) != 1 {
			t.Fatalf("len = %d, want 1", len(l))
		}
		if l[0].URL != "http://a" {
			t.Errorf("URL = %q, want %q", l[0].URL, "http://a")
		}
	})

	t.Run("null is empty", func(t *testing.T) {
		var l oneOrMany[Image]
		if err := json.Unmarshal([]byte(`null`), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if l != nil {
			t.Errorf("expected nil list, got %v", l)
		}
	})
}

func TestUnwrapList(t *testing.T) {
	t.Run("unwraps keyed list", func(t *testing.T) {
		data := `{"tag": [{"name": "rock"}, {"name": "pop"}]}`
		tags, err := unwrapList[Tag]([]byte(data), "tag")
		if err != nil {
			t.Fatalf("unwrapList: %v", err)
		}
		if len(tags) != 2 || tags[0].Name != "rock" {
			t.Errorf("tags = %+v, want rock and pop", tags)
		}
	})

	t.Run("single element without array wrapper", func(t *testing.T) {
		data := `{"tag": {"name": "rock"}}`
		tags, err := unwrapList[Tag]([]byte(data), "tag")
		if err != nil {
			t.Fatalf("unwrapList: %v", err)
		}
		if len(tags) != 1 || tags[0].Name != "rock" {
			t.Errorf("tags = %+v, want single rock", tags)
		}
	})

	t.Run("missing key yields no elements", func(t *testing.T) {
		tags, err := unwrapList[Tag]([]byte(`{}`), "tag")
		if err != nil {
			t.Fatalf("unwrapList: %v", err)
		}
		if tags != nil {
			t.Errorf("expected nil, got %v", tags)
		}
	})

	t.Run("empty string wrapper yields no elements", func(t *testing.T) {
		// Some empty collections come back as "" instead of an object.
		tags, err := unwrapList[Tag]([]byte(`""`), "tag")
		if err != nil {
			t.Fatalf("unwrapList: %v", err)
		}
		if tags != nil {
			t.Errorf("expected nil, got %v", tags)
		}
	})
}

// reserialize feeds the flat params back through decoding and flattens the
// result again. A stable outbound form must survive the trip unchanged.
func reserialize[T interface{ Params() P }](t *testing.T, params P) P {
	t.Helper()
	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	return v.Params()
}

func TestParamsRoundTrip(t *testing.T) {
	rank := int64(3)
	match := 0.5
	listeners := int64(5204292)
	playcount := int64(390698025)
	duration := int64(354)
	loved := true
	chosen := false
	count := int64(101)
	reach := int64(400)
	total := int64(900)

	t.Run("artist", func(t *testing.T) {
		a := Artist{
			Name: "Queen", MBID: "m", URL: "u",
			Rank: &rank, Match: &match, Listeners: &listeners, Playcount: &playcount,
		}
		first := a.Params()
		if second := reserialize[Artist](t, first); !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %v vs %v", first, second)
		}
	})

	t.Run("track", func(t *testing.T) {
		tr := Track{
			Name: "Bohemian Rhapsody", MBID: "m", URL: "u",
			Rank: &rank, Duration: &duration, Listeners: &listeners,
			Playcount: &playcount, Match: &match, Loved: &loved,
		}
		first := tr.Params()
		if second := reserialize[Track](t, first); !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %v vs %v", first, second)
		}
	})

	t.Run("album", func(t *testing.T) {
		a := Album{
			Name: "A Night at the Opera", MBID: "m", URL: "u",
			Rank: &rank, Listeners: &listeners, Playcount: &playcount,
		}
		first := a.Params()
		if second := reserialize[Album](t, first); !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %v vs %v", first, second)
		}
	})

	t.Run("tag", func(t *testing.T) {
		tag := Tag{Name: "rock", URL: "u", Count: &count, Reach: &reach, Total: &total}
		first := tag.Params()
		if second := reserialize[Tag](t, first); !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %v vs %v", first, second)
		}
	})

	t.Run("scrobble track", func(t *testing.T) {
		st := ScrobbleTrack{
			Artist: "Queen", Track: "Bohemian Rhapsody", Timestamp: 1719000000,
			Album: "A Night at the Opera", AlbumArtist: "Queen", TrackNumber: "11",
			MBID: "m", Context: "c", StreamID: "s",
			Duration: &duration, ChosenByUser: &chosen,
		}
		first := st.Params()
		if second := reserialize[ScrobbleTrack](t, first); !reflect.DeepEqual(first, second) {
			t.Errorf("not idempotent: %v vs %v", first, second)
		}
	})
}

func TestSearchMetaPagination(t *testing.T) {
	data := `{
		"opensearch:totalResults": "105",
		"opensearch:startIndex": "30",
		"opensearch:itemsPerPage": "30"
	}`
	var meta rawSearchMeta
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	attrs := meta.attrs()
	if attrs.Page != 2 {
		t.Errorf("Page = %d, want 2", attrs.Page)
	}
	if attrs.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", attrs.TotalPages)
	}
	if attrs.Total != 105 {
		t.Errorf("Total = %d, want 105", attrs.Total)
	}
}
