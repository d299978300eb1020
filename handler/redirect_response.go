package handler

import "net/http"

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect responds with 303 See Other to url.
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode redirects with a specific 3xx status code.
//
// Example:
//
//	r.Get("/", handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](
//		func(handler.Context, struct{}) handler.Response {
//			return handler.RedirectWithCode("/api/ean", http.StatusFound)
//		},
//	)))
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}
