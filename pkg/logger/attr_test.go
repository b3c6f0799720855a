package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(nil, errors.New("a"), errors.New("b"))
	assert.Equal(t, "errors", attr.Key)
	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "1", group[0].Key)
	assert.Equal(t, "2", group[1].Key)
}

func TestGroup(t *testing.T) {
	attr := logger.Group("req", logger.Method("GET"), logger.Status(200))
	assert.Equal(t, "req", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Component("fetcher"), "component", "fetcher"},
		{logger.Domain("example.com"), "domain", "example.com"},
		{logger.Method("POST"), "method", "POST"},
		{logger.URL("https://example.com"), "url", "https://example.com"},
		{logger.Reason("Missing domain"), "reason", "Missing domain"},
		{logger.Status(404), "status", int64(404)},
		{logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}
