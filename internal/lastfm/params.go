package lastfm

import "strconv"

// P is a flat string-keyed parameter map for a single API call. Outbound
// serialization produces P values holding only fields that are present;
// absent fields are simply not set.
type P map[string]string

// set stores v under k unless v is empty.
func (p P) set(k, v string) {
	if v != "" {
		p[k] = v
	}
}

// setInt stores v under k unless v is nil.
func (p P) setInt(k string, v *int64) {
	if v != nil {
		p[k] = strconv.FormatInt(*v, 10)
	}
}

// setFloat stores v under k unless v is nil.
func (p P) setFloat(k string, v *float64) {
	if v != nil {
		p[k] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

// setBool stores v under k as "1" or "0" unless v is nil.
func (p P) setBool(k string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		p[k] = "1"
	} else {
		p[k] = "0"
	}
}
