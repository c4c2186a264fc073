package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewPool_RequiresDSN(t *testing.T) {
	if _, err := NewPool(context.Background(), "", PoolOptions{}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestNewPool_InvalidDSN(t *testing.T) {
	if _, err := NewPool(context.Background(), "postgres://%zz", PoolOptions{}, zerolog.Nop()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTraceLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}
	for in, want := range cases {
		if got := traceLevel(in); got != want {
			t.Fatalf("traceLevel(%s): expected %s, got %s", in, want, got)
		}
	}
}
