package handler

import (
	"net/http"
	"strings"

	"github.com/munnerz/goautoneg"
)

// Media types a negotiated response can render.
const (
	MediaTypeJSON = "application/json"
	MediaTypeXML  = "application/xml"
)

var offers = []string{MediaTypeJSON, MediaTypeXML, "text/xml"}

// Negotiate picks the response media type for r from its Accept header.
// Requests without a usable preference get JSON.
func Negotiate(r *http.Request) string {
	if r == nil {
		return MediaTypeJSON
	}
	accept := strings.TrimSpace(r.Header.Get("Accept"))
	if accept == "" {
		return MediaTypeJSON
	}

	switch goautoneg.Negotiate(accept, offers) {
	case MediaTypeXML, "text/xml":
		return MediaTypeXML
	default:
		return MediaTypeJSON
	}
}
