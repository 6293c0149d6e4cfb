/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"net/url"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "length", kind: "length", input: "12px", want: "12px"},
		{name: "length normalizes units", kind: "length", input: "1in", want: "96px"},
		{name: "length rejects percentage", kind: "length", input: "50%", wantErr: true},
		{name: "non-negative length rejects sign", kind: "non-negative-length", input: "-1px", wantErr: true},
		{name: "length-percentage", kind: "length-percentage", input: "50%", want: "50%"},
		{name: "length-percentage keeps em", kind: "length-percentage", input: "2em", want: "2em"},
		{name: "lp-auto", kind: "lp-auto", input: "auto", want: "auto"},
		{name: "lp-none", kind: "lp-none", input: "none", want: "none"},
		{name: "position keyword becomes percentage", kind: "position", input: "center", want: "50%"},
		{name: "angle", kind: "angle", input: "0.5turn", want: "3.141592653589793rad"},
		{name: "color", kind: "color", input: "red", want: "red"},
		{name: "image gradient corner", kind: "image", input: "linear-gradient(to right bottom, red, blue)", want: "linear-gradient(to right bottom, red, blue)"},
		{name: "image gradient side folds to an angle", kind: "image", input: "linear-gradient(to right, red, blue)", want: "linear-gradient(1.5707963267948966rad, red, blue)"},
		{name: "unknown kind", kind: "potato", input: "12px", wantErr: true},
		{name: "multiple tokens rejected", kind: "length", input: "12px 13px", wantErr: true},
		{name: "empty input rejected", kind: "length", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.kind, tt.input, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %q, want an error", got.ToCSS())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ToCSS() != tt.want {
				t.Errorf("ToCSS() = %q, want %q", got.ToCSS(), tt.want)
			}
		})
	}
}

func TestParseValueResolvesURLs(t *testing.T) {
	base, err := url.Parse("http://example.com/styles/site.css")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseValue("image", "url(a.png)", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `url("http://example.com/styles/a.png")`; got.ToCSS() != want {
		t.Errorf("ToCSS() = %q, want %q", got.ToCSS(), want)
	}
}
