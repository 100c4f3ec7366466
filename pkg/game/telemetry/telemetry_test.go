package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	if Enabled() {
		t.Error("Enabled() = true with no endpoint")
	}
	t.Setenv(EndpointEnv, "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() = false with an endpoint set")
	}
}

func TestNoopTracer_DoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "frame.cast_rays")
	defer span.End()
	if span.IsRecording() {
		t.Error("noop span is recording")
	}
}
