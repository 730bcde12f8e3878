// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tailscale.com/types/ptr"
)

func TestNewOptionError(t *testing.T) {
	err := NewOptionError([]string{"test"}, LocationInit{Index: ptr.To(0)}, "")
	if got, want := err.Error(), DefaultErrorMessage; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	want := Location{Args: []string{"test"}, Index: 0, EndIndex: 1, Offset: 0, EndOffset: 4}
	if diff := cmp.Diff(want, err.Location); diff != "" {
		t.Errorf("Location mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	var err error = &OptionError{Message: "bad value", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	if got := err.Error(); got != "bad value" {
		t.Errorf("Error() = %q, want %q", got, "bad value")
	}
}

func TestSuggest(t *testing.T) {
	supported := []string{"--verbose", "--version", "--*", "*", "-?"}
	tests := []struct {
		name string
		want string
	}{
		{"--verbos", "--verbose"},
		{"--versi", "--version"},
		{"--xyz", ""},
		{"--", ""},
		{"*", ""},
	}
	for _, tt := range tests {
		if got := suggest(tt.name, supported); got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
