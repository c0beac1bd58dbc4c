package candidate

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/artem13815/interview/pkg/nlp"
)

// Matches reports whether the record's name or email contains the search
// term, ignoring case. An empty term matches everything.
func Matches(r Record, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return nlp.ContainsFold(r.Info.Name, search) || nlp.ContainsFold(r.Info.Email, search)
}

// Project filters, sorts and pages records, which must be in insertion
// order. Equal keys keep insertion order in both directions. The input is
// not modified.
func Project(records []Record, q Query) Page {
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, q.Search) {
			matched = append(matched, r)
		}
	}

	cmp := comparator(ParseSortKey(string(q.SortBy)))
	desc := ParseOrder(string(q.Order)) == Desc
	sort.SliceStable(matched, func(i, j int) bool {
		c := cmp(matched[i], matched[j])
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := len(matched)
	lo := min(max(q.Offset, 0), total)
	hi := total
	if q.Limit > 0 {
		hi = min(lo+q.Limit, total)
	}
	return Page{Items: matched[lo:hi], Total: total}
}

func comparator(key SortKey) func(a, b Record) int {
	switch key {
	case SortByName:
		// Collator keeps internal buffers; one per projection.
		col := collate.New(language.English, collate.IgnoreCase)
		return func(a, b Record) int { return col.CompareString(a.Info.Name, b.Info.Name) }
	case SortByDate:
		return func(a, b Record) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return func(a, b Record) int { return a.Score - b.Score }
	}
}
