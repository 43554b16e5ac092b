package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddClosesDuplicateEvenWhenWritesFail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gc := NewGameConnections(zap.New(core))

	first := &fakeConn{}
	if !gc.Add(owner, first) {
		t.Fatal("first connection refused")
	}

	dup := &fakeConn{failWrites: true}
	if gc.Add(owner, dup) {
		t.Error("duplicate connection accepted")
	}
	if !dup.closed {
		t.Error("duplicate connection left open")
	}
	if first.closed || gc.Len() != 1 {
		t.Errorf("first closed=%v connections=%d", first.closed, gc.Len())
	}

	var got []string
	for _, e := range logs.All() {
		if e.Level != zapcore.DebugLevel || e.ContextMap()["player_id"] != owner {
			t.Errorf("unexpected entry %+v", e)
		}
		got = append(got, e.Message)
	}
	want := []string{
		"close frame to duplicate connection failed",
		"closing duplicate connection failed",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log messages (-want +got):\n%s", diff)
	}
}
