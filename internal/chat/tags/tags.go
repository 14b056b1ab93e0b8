// Package tags holds the ordered tag-set rules shared by the stores and services.
// Tags are opaque strings compared with ==, kept in insertion order, never duplicated.
package tags

import (
	"strconv"
	"strings"
)

func Contains(set []string, tag string) bool {
	for _, t := range set {
		if t == tag {
			return true
		}
	}
	return false
}

// Add appends tag when absent. The returned slice never aliases set.
func Add(set []string, tag string) ([]string, bool) {
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	if Contains(set, tag) {
		return out, false
	}
	return append(out, tag), true
}

// Remove drops the occurrence of tag, keeping the order of the rest.
func Remove(set []string, tag string) ([]string, bool) {
	out := make([]string, 0, len(set))
	removed := false
	for _, t := range set {
		if t == tag && !removed {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out, removed
}

// Normalize dedupes an initial tag list, first occurrence wins.
func Normalize(set []string) []string {
	out := make([]string, 0, len(set))
	for _, t := range set {
		out, _ = Add(out, t)
	}
	return out
}

// Matching returns the subsequence of own that appears in requested,
// in the order of own.
func Matching(own, requested []string) []string {
	if len(own) == 0 || len(requested) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(requested))
	for _, r := range requested {
		want[r] = struct{}{}
	}
	var out []string
	for _, t := range own {
		if _, ok := want[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Overlaps reports whether own shares at least one tag with requested.
func Overlaps(own, requested []string) bool {
	for _, r := range requested {
		if Contains(own, r) {
			return true
		}
	}
	return false
}

// Key encodes an ordered tag list as a map key. Each element is length
// prefixed so ["a,b"] and ["a","b"] never collide.
func Key(subset []string) string {
	var b strings.Builder
	for _, t := range subset {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}
