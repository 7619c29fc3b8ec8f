// FILE: filter.go
package debug

import "sort"

// Filters describes the four allow-list axes used to scope which records
// are accepted. A nil slice leaves that axis unchanged when passed to
// SetFilters; an empty non-nil slice clears the axis. An empty axis
// matches everything.
type Filters struct {
	Levels    []string
	Modules   []string
	Functions []string
	Tags      []string
}

// filterSet is the immutable snapshot form of the four filter axes.
type filterSet struct {
	levels    map[string]struct{}
	modules   map[string]struct{}
	functions map[string]struct{}
	tags      map[string]struct{}
}

// accept reports whether a record passes all four axes. Each non-empty
// axis must match; the tag axis matches on non-empty intersection.
func (f filterSet) accept(level Level, module, function string, tags map[string]struct{}) bool {
	if len(f.levels) > 0 {
		if _, ok := f.levels[string(level)]; !ok {
			return false
		}
	}
	if len(f.modules) > 0 {
		if _, ok := f.modules[module]; !ok {
			return false
		}
	}
	if len(f.functions) > 0 {
		if _, ok := f.functions[function]; !ok {
			return false
		}
	}
	if len(f.tags) > 0 {
		matched := false
		for tag := range tags {
			if _, ok := f.tags[tag]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// clone deep-copies the filter set for snapshot mutation.
func (f filterSet) clone() filterSet {
	return filterSet{
		levels:    cloneSet(f.levels),
		modules:   cloneSet(f.modules),
		functions: cloneSet(f.functions),
		tags:      cloneSet(f.tags),
	}
}

// makeSet builds a membership set from a string slice.
func makeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// cloneSet copies a membership set.
func cloneSet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

// setToSorted flattens a membership set to a sorted slice.
func setToSorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
