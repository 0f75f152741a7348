package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateLevel(t *testing.T) {
	tests := []struct {
		level   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{42, false},
		{-1, true},
		{-100, true},
	}

	for _, tt := range tests {
		err := ValidateLevel(tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLevel(%d) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidLevel) {
			t.Errorf("ValidateLevel(%d) code = %v, want %v", tt.level, GetCode(err), ErrCodeInvalidLevel)
		}
	}
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "deps.txt")
	if err := os.WriteFile(file, []byte("root v1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		wantCode Code
	}{
		{"existing file", file, ""},
		{"empty path", "", ErrCodeInvalidInput},
		{"missing file", filepath.Join(dir, "missing.txt"), ErrCodeFileNotFound},
		{"directory", dir, ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFile(tt.path)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateInputFile(%q) code = %q, want %q (err: %v)", tt.path, got, tt.wantCode, err)
			}
		})
	}
}
