package catalog

import "strings"

// Group is one category's slice of the filtered result: the category's
// display metadata plus the matching schemes in their original order.
type Group struct {
	Category Category
	Schemes  []Scheme
}

// Result is the output of FilterAndGroup: the filtered flat list and the
// same schemes regrouped by category. Groups appear in the order their first
// matching scheme was encountered, not in category declaration order.
type Result struct {
	Flat   []Scheme
	Groups []Group

	index map[CategoryID]int
}

// Group returns the group for the given category id, if any scheme in the
// result belongs to it.
func (r *Result) Group(id CategoryID) (Group, bool) {
	i, ok := r.index[id]
	if !ok {
		return Group{}, false
	}
	return r.Groups[i], true
}

// Empty reports whether nothing matched. Callers render an explicit
// "no results" state for this rather than an empty listing.
func (r *Result) Empty() bool {
	return len(r.Flat) == 0
}

// FilterAndGroup filters schemes by category selection and free-text query,
// then regroups the survivors by category.
//
// When selected is not All, only schemes of that category are retained. When
// query is non-blank after trimming, a case-insensitive substring match is
// applied across name, description, and URL template; a scheme survives if
// any of the three fields matches. Both filters are stable: schemes keep
// their relative order from the source collection.
//
// A scheme whose category id resolves to no known category still appears in
// Flat but is excluded from every group. The function is pure: it never
// mutates its inputs and rebuilds the result from scratch on every call.
func FilterAndGroup(schemes []Scheme, categories []Category, selected CategoryID, query string) *Result {
	byID := make(map[CategoryID]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	query = strings.ToLower(strings.TrimSpace(query))

	r := &Result{index: make(map[CategoryID]int)}
	for _, s := range schemes {
		if selected != All && s.Category != selected {
			continue
		}
		if query != "" && !matches(s, query) {
			continue
		}

		r.Flat = append(r.Flat, s)

		cat, known := byID[s.Category]
		if !known {
			continue
		}
		i, seen := r.index[s.Category]
		if !seen {
			i = len(r.Groups)
			r.index[s.Category] = i
			r.Groups = append(r.Groups, Group{Category: cat})
		}
		r.Groups[i].Schemes = append(r.Groups[i].Schemes, s)
	}
	return r
}

// matches reports whether the lowered query is a substring of any of the
// scheme's three text fields. query must already be lower-cased and trimmed.
func matches(s Scheme, query string) bool {
	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Description), query) ||
		strings.Contains(strings.ToLower(s.URL), query)
}
