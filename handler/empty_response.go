package handler

import "net/http"

// emptyResponse is a bare status line.
type emptyResponse int

func (s emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(s))
	return nil
}

// Empty answers 204 No Content with no body and no Content-Type, whatever the
// Accept header asks for. DELETE /api/{type}/{value} and GET /api/check use it
// once the value has been accepted:
//
//	r.Delete("/{value}", handler.Wrap(handler.HandlerFunc[handler.Context, lookupRequest[barcode.EAN]](
//		func(_ handler.Context, _ lookupRequest[barcode.EAN]) handler.Response {
//			return handler.Empty()
//		}),
//		handler.WithBinder[handler.Context, lookupRequest[barcode.EAN]](binder.Path(chi.URLParam)),
//	))
func Empty() Response {
	return emptyResponse(http.StatusNoContent)
}
