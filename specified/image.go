/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import (
	"fmt"
	"net/url"
	"strings"

	"bennypowers.dev/arachim/token"
)

// Image is a specified image value per CSS-IMAGES.
type Image interface {
	isImage()
	ToCSS() string
}

// ImageURL is an image loaded from a resolved URL.
type ImageURL struct {
	URL *url.URL
}

func (ImageURL) isImage() {}

// ToCSS returns the canonical CSS text, e.g. `url("http://x/a.png")`.
func (i ImageURL) ToCSS() string {
	return fmt.Sprintf("url(%q)", i.URL.String())
}

// ParseImage parses a single image token. URL tokens are resolved
// against the given base; a "linear-gradient" function is handed to the
// gradient parser. Anything else is rejected.
func ParseImage(t token.Token, base *url.URL) (Image, error) {
	switch t.Kind {
	case token.URL:
		return ImageURL{URL: ResolveURL(t.Literal, base)}, nil
	case token.Function:
		if strings.EqualFold(t.Ident, "linear-gradient") {
			gradient, err := ParseLinearGradient(t.Args)
			if err != nil {
				return nil, err
			}
			return gradient, nil
		}
	}
	return nil, ErrInvalid
}

// ResolveURL resolves a URL literal against a base URL. Resolution
// failure yields the "about:invalid" sentinel rather than an error:
// callers need to represent an explicitly broken URL without aborting
// style resolution.
func ResolveURL(literal string, base *url.URL) *url.URL {
	var resolved *url.URL
	var err error
	if base != nil {
		resolved, err = base.Parse(literal)
	} else {
		resolved, err = url.Parse(literal)
	}
	if err != nil {
		return InvalidURL()
	}
	return resolved
}

// InvalidURL returns the sentinel URL standing in for a URL that failed
// to resolve.
func InvalidURL() *url.URL {
	return &url.URL{Scheme: "about", Opaque: "invalid"}
}
