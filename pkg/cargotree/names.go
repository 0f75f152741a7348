package cargotree

import (
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
)

var nameSeparatorRE = regexp.MustCompile(`[,\s]+`)

// NameSet is a set of bare package names.
// The zero value is a nil map: lookups work, Add does not.
type NameSet map[string]struct{}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s NameSet) Add(name string) { s[name] = struct{}{} }

// Sorted returns the names in lexicographic order.
func (s NameSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// ExpandNames builds a NameSet from names, adding the hyphen and underscore
// spelling of each entry. Cargo normalizes "-" and "_" in crate names, so
// "serde_json" and "serde-json" refer to the same crate. Empty entries are
// ignored.
func ExpandNames(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set.Add(name)
		if strings.Contains(name, "_") {
			set.Add(strings.ReplaceAll(name, "_", "-"))
		}
		if strings.Contains(name, "-") {
			set.Add(strings.ReplaceAll(name, "-", "_"))
		}
	}
	return set
}

// SplitNames splits free-form text into names separated by any run of
// commas and whitespace.
func SplitNames(text string) []string {
	var names []string
	for _, item := range nameSeparatorRE.Split(strings.TrimSpace(text), -1) {
		if item != "" {
			names = append(names, item)
		}
	}
	return names
}

// LoadNames reads a name list file and splits it with [SplitNames].
func LoadNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitNames(string(data)), nil
}

// Whitelist returns the sorted names of all that are not in blacklist.
func Whitelist(all, blacklist NameSet) []string {
	var names []string
	for name := range all {
		if !blacklist.Has(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
