package lastfm

import "strings"

// rawSearchMeta is the opensearch pagination header carried by search
// responses instead of the usual @attr block.
type rawSearchMeta struct {
	TotalResults *flexInt `json:"opensearch:totalResults"`
	StartIndex   *flexInt `json:"opensearch:startIndex"`
	ItemsPerPage *flexInt `json:"opensearch:itemsPerPage"`
}

func (m rawSearchMeta) attrs() *ListAttributes {
	out := &ListAttributes{Page: 1}
	if m.TotalResults != nil {
		out.Total = int64(*m.TotalResults)
	}
	if m.ItemsPerPage != nil {
		out.PerPage = int64(*m.ItemsPerPage)
	}
	if out.PerPage > 0 {
		if m.StartIndex != nil {
			out.Page = int64(*m.StartIndex)/out.PerPage + 1
		}
		out.TotalPages = (out.Total + out.PerPage - 1) / out.PerPage
	}
	return out
}

// joinTags joins a tag list, capped at the 10 tags the service accepts per
// call.
func joinTags(tags []string) string {
	if len(tags) > 10 {
		tags = tags[:10]
	}
	return strings.Join(tags, ",")
}
