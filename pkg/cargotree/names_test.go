package cargotree

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestExpandNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"plain", []string{"serde"}, []string{"serde"}},
		{"underscore", []string{"serde_json"}, []string{"serde-json", "serde_json"}},
		{"hyphen", []string{"pin-project"}, []string{"pin-project", "pin_project"}},
		{"mixed", []string{"a-b_c"}, []string{"a-b-c", "a-b_c", "a_b_c"}},
		{"empty entries", []string{"", "log", ""}, []string{"log"}},
		{"none", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandNames(tt.input...).Sorted()
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandNames(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"serde, tokio,log", []string{"serde", "tokio", "log"}},
		{"  serde\n\ttokio  \n", []string{"serde", "tokio"}},
		{",,serde,,  ,log,", []string{"serde", "log"}},
		{"", nil},
		{" \n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := SplitNames(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("SplitNames(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLoadNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blacklist.txt")
	if err := os.WriteFile(path, []byte("serde_json, tokio\nlog\n"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := LoadNames(path)
	if err != nil {
		t.Fatalf("LoadNames() error: %v", err)
	}
	if !slices.Equal(names, []string{"serde_json", "tokio", "log"}) {
		t.Errorf("LoadNames() = %v", names)
	}

	if _, err := LoadNames(filepath.Join(dir, "nope.txt")); err == nil {
		t.Error("LoadNames(missing) should fail")
	}
}

func TestWhitelist(t *testing.T) {
	all := NameSet{}
	for _, n := range []string{"tokio", "serde-json", "app", "log"} {
		all.Add(n)
	}

	got := Whitelist(all, ExpandNames("serde_json", "log"))
	if !slices.Equal(got, []string{"app", "tokio"}) {
		t.Errorf("Whitelist() = %v, want [app tokio]", got)
	}

	if got := Whitelist(all, nil); len(got) != 4 {
		t.Errorf("Whitelist(nil) = %v, want all names", got)
	}
}
