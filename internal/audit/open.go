package audit

import (
	"context"
	"fmt"
	"time"
)

// Sink kinds selectable from configuration
const (
	KindNoop     = "noop"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// Options selects and configures a sink
type Options struct {
	Kind        string
	SQLitePath  string
	DatabaseURL string
	NoopDelay   time.Duration
}

// Open creates the sink described by opts. The returned close function is never nil.
func Open(ctx context.Context, opts Options) (Sink, func() error, error) {
	noClose := func() error { return nil }

	switch opts.Kind {
	case "", KindNoop:
		return NoopSink{Delay: opts.NoopDelay}, noClose, nil
	case KindSQLite:
		if opts.SQLitePath == "" {
			return nil, noClose, fmt.Errorf("sqlite audit sink requires a path")
		}
		s, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, noClose, err
		}
		return s, s.Close, nil
	case KindPostgres:
		if opts.DatabaseURL == "" {
			return nil, noClose, fmt.Errorf("postgres audit sink requires a database URL")
		}
		s, err := ConnectPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, noClose, err
		}
		return s, s.Close, nil
	default:
		return nil, noClose, fmt.Errorf("unknown audit sink %q", opts.Kind)
	}
}
