// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer completion and failure logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with timer tests
// - 2026-10-18 v0.2.0: Reduced to Stop and StopWithError

package log

import (
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("encode").WithField("bytes", 10)
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}

	timer.Stop()
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["message"] != "encode completed" || entry["operation"] != "encode" || entry["bytes"] != float64(10) {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("expected duration_ms field")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.StartTimer("decode").StopWithError(errors.New("bad escape"))

	entry := decodeLines(t, buf)[0]
	if entry["message"] != "decode failed" || entry["error"] != "bad escape" || entry["success"] != false {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
}

func TestTimerWithLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer should be filtered, got %q", buf.String())
	}

	logger.StartTimer("loud").WithLevel(LevelInfo).Stop()
	if len(decodeLines(t, buf)) != 1 {
		t.Error("info timer should be logged")
	}
}

func TestTimerWithNilLogger(t *testing.T) {
	timer := NewTimer(nil, "orphan")
	timer.Stop()
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
}
