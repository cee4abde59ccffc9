package pkg

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	v := strings.TrimSpace(Version)

	if v == "" {
		t.Fatal("embedded version is empty")
	}

	if parts := strings.Split(v, "."); len(parts) != 3 {
		t.Errorf("version %q is not semantic", v)
	}
}

func TestName(t *testing.T) {
	if Name != "shortcode" {
		t.Errorf("unexpected name %q", Name)
	}
}
