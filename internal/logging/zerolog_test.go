package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{
		`"level":"debug"`, `"message":"dbg"`, `"a":1`,
		`"level":"info"`, `"b":"two"`,
		`"level":"warn"`,
		`"level":"error"`, `"d":4`,
	} {
		assert.Contains(t, out, s)
	}
}

func TestZerologLogger_With_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("request_id", "r-1")

	log.Info(context.Background(), "hello", "k", "v")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, `"request_id":"r-1"`)
	assert.Contains(t, line, `"k":"v"`)
	assert.Contains(t, line, `"message":"hello"`)
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, isZerolog := New(FormatZerolog, &buf).(*ZerologLogger)
	assert.True(t, isZerolog)

	_, isSlog := New(FormatSlog, &buf).(*SlogLogger)
	assert.True(t, isSlog)

	_, fallback := New("unknown", &buf).(*SlogLogger)
	assert.True(t, fallback)
}

func TestNewWithLevel_FiltersBelowLevel(t *testing.T) {
	for _, format := range []string{FormatSlog, FormatZerolog} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithLevel(format, &buf, "warn")

			l.Info(context.Background(), "quiet")
			l.Warn(context.Background(), "loud")

			assert.NotContains(t, buf.String(), "quiet")
			assert.Contains(t, buf.String(), "loud")

			buf.Reset()
			NewWithLevel(format, &buf, "debug").Debug(context.Background(), "details")
			assert.Contains(t, buf.String(), "details")

			buf.Reset()
			New(format, &buf).Debug(context.Background(), "hidden")
			assert.Empty(t, buf.String())
		})
	}
}
