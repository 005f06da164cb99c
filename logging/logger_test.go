package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseLevel(t *testing.T) {
	is := is.New(t)
	is.Equal(ParseLevel("debug"), LevelDebug)
	is.Equal(ParseLevel(" WARN "), LevelWarning)
	is.Equal(ParseLevel("error"), LevelError)
	is.Equal(ParseLevel(""), LevelInfo)
	is.Equal(ParseLevel("verbose"), LevelInfo)
}

func TestWriter_FiltersBelowMinimum(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	w := NewWriter(&buf, LevelWarning)
	ctx := context.Background()

	w.Debugf(ctx, "hidden %d", 1)
	w.Infof(ctx, "hidden %d", 2)
	w.Warningf(ctx, "cache miss for %s", "key")
	w.Errorf(ctx, "boom")

	out := buf.String()
	is.True(!strings.Contains(out, "hidden"))
	is.True(strings.Contains(out, "WARNING  cache miss for key"))
	is.True(strings.Contains(out, "ERROR    boom"))
}
