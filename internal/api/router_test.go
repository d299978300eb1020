package api_test

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatishedoing/domainmodels/handler"
	"github.com/whatishedoing/domainmodels/internal/api"
	"github.com/whatishedoing/domainmodels/pkg/environment"
	"github.com/whatishedoing/domainmodels/pkg/i18n"
)

func newTestRouter(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()
	catalog, err := i18n.Default()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	r := api.NewRouter(api.Deps{
		Logger:   slog.New(slog.DiscardHandler),
		Env:      environment.Development,
		Catalog:  catalog,
		Registry: reg,
		Samples:  api.DefaultSamples(),
	})
	return r, reg
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var env handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSampleRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	cases := map[string]any{
		"/api/ean":         float64(73513537),
		"/api/isbn":        float64(9783161484100),
		"/api/countrycode": "GB",
		"/api/postcode":    "SW1 1AA",
	}
	for target, want := range cases {
		t.Run(target, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodGet, target, "", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, decode(t, rec).Data)
		})
	}
}

func TestLookupRoutes(t *testing.T) {
	t.Parallel()
	h, reg := newTestRouter(t)

	t.Run("valid values are echoed normalized", func(t *testing.T) {
		cases := map[string]any{
			"/api/ean/4006381333931":  float64(4006381333931),
			"/api/isbn/9791234567896": float64(9791234567896),
			"/api/countrycode/zwe":    "ZWE",
			"/api/postcode/sw1a1aa":   "SW1A 1AA",
			"/api/postcode/GIR%200AA": "GIR 0AA",
		}
		for target, want := range cases {
			rec := do(t, h, http.MethodGet, target, "", "")
			require.Equal(t, http.StatusOK, rec.Code, target)
			assert.Equal(t, want, decode(t, rec).Data, target)
		}
	})

	t.Run("invalid value is a bad request", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/ean/4006381333937", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "domain.ean.invalid", env.Error.Code)
		assert.Equal(t, "ean", env.Error.Field)
		assert.Contains(t, env.Error.Message, "is not a valid EAN")
		assert.Equal(t, float64(1), counterTotal(t, reg, "domainmodels_values_rejected_total"))
	})

	t.Run("isbn prefix is checked", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/isbn/73513537", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error message follows accept language", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/countrycode/G1", "", "", "Accept-Language", "de-DE,de;q=0.9")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Message, "kein gültiger Ländercode")
	})
}

func TestPostRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/ean", "application/json", `{"ean":"73513537","isbn":9783161484100}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(73513537), decode(t, rec).Data)

		rec = do(t, h, http.MethodPost, "/api/isbn", "application/json", `{"isbn":9783161484100}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(9783161484100), decode(t, rec).Data)
	})

	t.Run("xml body and xml response", func(t *testing.T) {
		t.Parallel()
		body := `<Address><CountryCode>fr</CountryCode><Postcode>m11ae</Postcode></Address>`
		rec := do(t, h, http.MethodPost, "/api/postcode", "application/xml", body, "Accept", "application/xml")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

		var env struct {
			XMLName xml.Name `xml:"response"`
			Data    string   `xml:"data"`
		}
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "M1 1AE", env.Data)
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/countrycode", "application/x-www-form-urlencoded", "country_code=de")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DE", decode(t, rec).Data)
	})

	t.Run("missing field is a validation error", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/postcode", "application/json", `{"countryCode":"GB"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "postcode", env.Error.Details[0].Field)
	})

	t.Run("null field is rejected as a domain value", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/postcode", "application/json", `{"countryCode":"GB","postcode":null}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "domain.postcode.invalid", env.Error.Code)
	})

	t.Run("invalid field", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/ean", "application/json", `{"ean":73513538}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "domain.ean.invalid", decode(t, rec).Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/api/ean", "text/plain", "73513537")
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestPutRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	t.Run("echoes the composite", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPut, "/api/isbn/7", "application/json", `{"ean":73513537,"isbn":"9791234567896"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Data api.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, uint64(73513537), env.Data.EAN.Value())
		assert.Equal(t, uint64(9791234567896), env.Data.ISBN.Value())
	})

	t.Run("xml composite", func(t *testing.T) {
		t.Parallel()
		body := `<Address><CountryCode>GB</CountryCode><Postcode>EC1A1BB</Postcode></Address>`
		rec := do(t, h, http.MethodPut, "/api/postcode/1", "application/xml", body, "Accept", "application/xml")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Postcode>EC1A 1BB</Postcode>")
	})

	t.Run("non numeric id", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPut, "/api/ean/abc", "application/json", `{"ean":73513537}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodDelete, "/api/countrycode/gb", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/postcode/QQ1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterInfrastructure(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	t.Run("request id header", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/ean", "", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/gtin", "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode(t, rec).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPatch, "/api/ean", "", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "method_not_allowed", decode(t, rec).Error.Code)
	})

	t.Run("root redirects", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/", "", "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/ean", rec.Header().Get("Location"))
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/healthz", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		t.Parallel()
		do(t, h, http.MethodGet, "/api/isbn", "", "")
		rec := do(t, h, http.MethodGet, "/metrics", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "domainmodels_http_requests_total")
	})
}

func TestReadiness(t *testing.T) {
	t.Parallel()
	h := api.NewRouter(api.Deps{
		Logger: slog.New(slog.DiscardHandler),
		Checks: []func(context.Context) error{
			func(context.Context) error { return errors.New("catalog not loaded") },
		},
	})

	rec := do(t, h, http.MethodGet, "/healthz/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func counterTotal(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestCheckRoute(t *testing.T) {
	t.Parallel()
	h, _ := newTestRouter(t)

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/check?ean=73513537&isbn=9783161484100&country_code=gb&postcode=sw1a1aa", "", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("reports every bad parameter", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/check?ean=abc&isbn=4006381333931&country_code=G1&postcode=QQ1", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)

		codes := map[string]string{}
		for _, d := range env.Error.Details {
			codes[d.Field] = d.Code
		}
		assert.Equal(t, map[string]string{
			"ean":          "domain.ean.invalid",
			"isbn":         "validation.domain_value",
			"country_code": "validation.domain_value",
			"postcode":     "validation.domain_value",
		}, codes)
	})

	t.Run("only present parameters are checked", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/check?postcode=M1+1AE", "", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAcceptedCounter(t *testing.T) {
	t.Parallel()
	h, reg := newTestRouter(t)

	do(t, h, http.MethodGet, "/api/ean/73513537", "", "")
	do(t, h, http.MethodDelete, "/api/ean/73513537", "", "")
	do(t, h, http.MethodPost, "/api/postcode", "application/json", `{"postcode":"M1 1AE"}`)
	assert.Equal(t, float64(3), counterTotal(t, reg, "domainmodels_values_accepted_total"))

	do(t, h, http.MethodGet, "/api/ean/73513538", "", "")
	do(t, h, http.MethodPost, "/api/postcode", "application/json", `{"countryCode":"GB"}`)
	assert.Equal(t, float64(3), counterTotal(t, reg, "domainmodels_values_accepted_total"))
}
