package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatishedoing/domainmodels/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
}

func TestField(t *testing.T) {
	attr := logger.Field("postcode")
	require.Equal(t, "field", attr.Key)
	assert.Equal(t, "postcode", attr.Value.String())

	assert.True(t, logger.Field("").Equal(slog.Attr{}))
}

func TestKind(t *testing.T) {
	attr := logger.Kind("isbn")
	require.Equal(t, "kind", attr.Key)
	assert.Equal(t, "isbn", attr.Value.String())
}

func TestRawValue(t *testing.T) {
	attr := logger.RawValue(uint64(73513537))
	require.Equal(t, "raw_value", attr.Key)
	assert.Equal(t, uint64(73513537), attr.Value.Any())

	assert.True(t, logger.RawValue(nil).Equal(slog.Attr{}))
}

func TestMediaType(t *testing.T) {
	attr := logger.MediaType("application/xml")
	require.Equal(t, "media_type", attr.Key)
	assert.Equal(t, "application/xml", attr.Value.String())
}
