package timer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type traceKey struct{}

type traceEvent struct {
	event   string
	elapsed time.Duration
}

type trace struct {
	lock   sync.Mutex
	start  time.Time
	events []traceEvent
}

func (t *trace) record(key string, ts time.Time) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.events = append(t.events, traceEvent{
		event:   key,
		elapsed: ts.Sub(t.start),
	})
}

func traceFrom(ctx context.Context) *trace {
	if ctx == nil {
		return nil
	}
	tr, _ := ctx.Value(traceKey{}).(*trace)
	return tr
}

func WithTracing(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceKey{}, &trace{
		lock:   sync.Mutex{},
		start:  time.Now(),
		events: make([]traceEvent, 0),
	})
}

// Events returns the names of the recorded events in the order they
// completed. It returns nil when ctx carries no trace.
func Events(ctx context.Context) []string {
	tr := traceFrom(ctx)
	if tr == nil {
		return nil
	}
	tr.lock.Lock()
	defer tr.lock.Unlock()
	sorted := make([]traceEvent, len(tr.events))
	copy(sorted, tr.events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].elapsed < sorted[j].elapsed
	})
	names := make([]string, len(sorted))
	for i, e := range sorted {
		names[i] = e.event
	}
	return names
}

func LogTracingInfo(ctx context.Context, log *zap.Logger) error {
	ctxval := ctx.Value(traceKey{})
	if ctxval == nil {
		return nil
	}
	trace, ok := ctxval.(*trace)
	if !ok {
		return fmt.Errorf("expected trace but got: %v", ctxval)
	}
	trace.lock.Lock()
	defer trace.lock.Unlock()
	sb := strings.Builder{}
	sb.WriteString("====Trace====\n")
	sort.SliceStable(trace.events, func(i, j int) bool {
		return trace.events[i].elapsed < trace.events[j].elapsed
	})
	for _, e := range trace.events {
		sb.WriteString(fmt.Sprintf("\t%5dus: %s\n", e.elapsed.Microseconds(), e.event))
	}
	log.Debug(sb.String())
	return nil
}
