package obs

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsFailureWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	t.Cleanup(SetLogger(zap.New(core)))

	ctx := WithRequestID(context.Background(), "abc")

	err := errors.New("boom")
	Time(ctx, "ors.Geocode")(&err)

	entries := logs.FilterMessage("operation failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 failure entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["req_id"] != "abc" || fields["op"] != "ors.Geocode" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestTimeLogsSuccessAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	t.Cleanup(SetLogger(zap.New(core)))

	var err error
	Time(context.Background(), "noop")(&err)

	if logs.FilterMessage("operation completed").Len() != 1 {
		t.Fatalf("expected a completion entry")
	}
}
