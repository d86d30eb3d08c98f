// Package catalog provides the pure search/filter views over the schema's
// grouped dependency catalog and flat boilerplate listing. Filtering never
// mutates its inputs and is deterministic for a given (catalog, query) pair.
package catalog

import (
	"strings"

	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

// fallbackKind groups boilerplate options that omit a category.
const fallbackKind = "other"

// FilterDependencies returns the groups whose items match the query. The
// query is trimmed and case-folded; an item matches when its id, name, or
// description contains the query as a substring. Groups left empty by the
// filter are dropped; surviving groups keep their source order. An empty
// query returns the source slice untouched.
func FilterDependencies(groups []metadata.DependencyGroup, query string) []metadata.DependencyGroup {
	q := normalizeQuery(query)
	if q == "" {
		return groups
	}

	out := make([]metadata.DependencyGroup, 0, len(groups))
	for _, group := range groups {
		var matched []metadata.Dependency
		for _, dep := range group.Values {
			if matches(q, dep.ID, dep.Name, dep.Description) {
				matched = append(matched, dep)
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, metadata.DependencyGroup{Name: group.Name, Values: matched})
	}
	return out
}

// BoilerplateGroup is one kind-bucket of the boilerplate view.
type BoilerplateGroup struct {
	// Kind is the raw grouping key from the schema.
	Kind string

	// Label is the kind with each hyphen-delimited word capitalized.
	Label string

	Values []metadata.BoilerplateOption
}

// GroupBoilerplate filters the flat boilerplate listing with the same
// substring predicate as FilterDependencies, then buckets survivors by their
// Type field (falling back to "other"). Buckets appear in first-seen order.
func GroupBoilerplate(options []metadata.BoilerplateOption, query string) []BoilerplateGroup {
	q := normalizeQuery(query)

	var (
		groups []BoilerplateGroup
		index  = make(map[string]int)
	)
	for _, option := range options {
		if q != "" && !matches(q, option.ID, option.Name, option.Description) {
			continue
		}

		kind := option.Type
		if kind == "" {
			kind = fallbackKind
		}

		at, ok := index[kind]
		if !ok {
			at = len(groups)
			index[kind] = at
			groups = append(groups, BoilerplateGroup{Kind: kind, Label: KindLabel(kind)})
		}
		groups[at].Values = append(groups[at].Values, option)
	}
	return groups
}

// KindLabel renders a kind string for display: hyphen-delimited words, each
// capitalized, joined by spaces ("rest-api" becomes "Rest Api").
func KindLabel(kind string) string {
	words := strings.Split(kind, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matches builds the haystack the same way the browsing UI does: id, name,
// and description joined with spaces, case-folded.
func matches(q string, id, name, description string) bool {
	hay := strings.ToLower(id + " " + name + " " + description)
	return strings.Contains(hay, q)
}
