package chunkuploader

import (
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	s := NewStats()
	if s.Average() != 0 || s.BytesPerSecond() != 0 {
		t.Error("Expected zero values for empty stats")
	}

	s.Update(2*time.Second, 100)
	s.Update(4*time.Second, 200)

	if s.FinishedCount() != 2 {
		t.Errorf("Expected 2 finished parts, got %d", s.FinishedCount())
	}
	if s.Average() != 3*time.Second {
		t.Errorf("Expected 3s average, got %s", s.Average())
	}
	if s.Bytes() != 300 {
		t.Errorf("Expected 300 bytes, got %d", s.Bytes())
	}
	if s.BytesPerSecond() != 50 {
		t.Errorf("Expected 50 B/s, got %f", s.BytesPerSecond())
	}

	s.Reset()
	if s.FinishedCount() != 0 || s.Bytes() != 0 || s.Average() != 0 {
		t.Error("Expected Reset to clear the stats")
	}
}
