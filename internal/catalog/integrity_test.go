package catalog

import (
	"strings"
	"testing"
)

func TestIntegrity(t *testing.T) {
	tests := []struct {
		input string
		algo  string
		want  string
	}{
		{"", AlgoSHA256, "sha256-47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="},
		{"abc", AlgoSHA256, "sha256-ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0="},
	}

	for _, tt := range tests {
		got, err := Integrity(strings.NewReader(tt.input), tt.algo)
		if err != nil {
			t.Fatalf("Integrity(%q, %s) error: %v", tt.input, tt.algo, err)
		}
		if got != tt.want {
			t.Errorf("Integrity(%q, %s) = %q, want %q", tt.input, tt.algo, got, tt.want)
		}
	}
}

func TestIntegrity_Prefixes(t *testing.T) {
	for _, algo := range []string{AlgoSHA384, AlgoSHA512} {
		got, err := Integrity(strings.NewReader("body{}"), algo)
		if err != nil {
			t.Fatalf("Integrity(%s) error: %v", algo, err)
		}
		if !strings.HasPrefix(got, algo+"-") {
			t.Errorf("Integrity(%s) = %q, want %s- prefix", algo, got, algo)
		}
	}
}

func TestIntegrity_UnknownAlgorithm(t *testing.T) {
	if _, err := Integrity(strings.NewReader(""), "md5"); err == nil {
		t.Fatal("expected error for md5")
	}
}
