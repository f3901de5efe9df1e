package chunkuploader

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewPlan_CoversFileExactly(t *testing.T) {
	sizes := []int64{
		9900,
		9999,
		10000,
		10099,
		123456789,
		999999999,
		1000000000,
		1000000001,
		2500000000,
		1000000000007,
	}

	for _, size := range sizes {
		plan, err := NewPlan(size, DefaultPartCount)
		if err != nil {
			t.Fatalf("NewPlan(%d) error: %v", size, err)
		}

		if plan.PartCount < 100 || plan.PartCount > 101 {
			t.Errorf("size %d: expected 100 or 101 parts, got %d", size, plan.PartCount)
		}
		if len(plan.Parts) != plan.PartCount {
			t.Errorf("size %d: PartCount %d but %d ranges", size, plan.PartCount, len(plan.Parts))
		}

		assertContiguous(t, plan)
	}
}

func TestNewPlan_KeepsFloorThenCeilArithmetic(t *testing.T) {
	// 150 bytes in 100 parts: 1 byte chunks, so 150 parts.
	plan, err := NewPlan(150, 100)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}

	if plan.ChunkSize != 1 {
		t.Errorf("Expected chunk size 1, got %d", plan.ChunkSize)
	}
	if plan.PartCount != 150 {
		t.Errorf("Expected 150 parts, got %d", plan.PartCount)
	}
	assertContiguous(t, plan)
}

func TestNewPlan_LargeFileScenario(t *testing.T) {
	plan, err := NewPlan(2500000000, DefaultPartCount)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}

	if plan.ChunkSize != 25000000 {
		t.Errorf("Expected chunk size 25000000, got %d", plan.ChunkSize)
	}
	if plan.PartCount != 100 {
		t.Errorf("Expected 100 parts, got %d", plan.PartCount)
	}
	for _, r := range plan.Parts {
		if r.Length != 25000000 {
			t.Errorf("Part %d: expected 25000000 bytes, got %d", r.Index, r.Length)
		}
	}
}

func TestNewPlan_LastPartIsClamped(t *testing.T) {
	plan, err := NewPlan(10099, 100)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}

	if plan.PartCount != 101 {
		t.Fatalf("Expected 101 parts, got %d", plan.PartCount)
	}
	last := plan.Parts[len(plan.Parts)-1]
	if last.Index != 101 || last.Offset != 10000 || last.Length != 99 {
		t.Errorf("Unexpected last part: %+v", last)
	}
	if last.End() != plan.TotalSize {
		t.Errorf("Last part ends at %d, expected %d", last.End(), plan.TotalSize)
	}
}

func TestNewPlan_MaxPartCount(t *testing.T) {
	plan, err := NewPlan(1000000000, MaxPartCount)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}
	if plan.PartCount != MaxPartCount {
		t.Errorf("Expected %d parts, got %d", MaxPartCount, plan.PartCount)
	}
	assertContiguous(t, plan)
}

func TestNewPlan_IsPure(t *testing.T) {
	first, err := NewPlan(1234567891, DefaultPartCount)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}
	second, err := NewPlan(1234567891, DefaultPartCount)
	if err != nil {
		t.Fatalf("NewPlan error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical plans for identical inputs")
	}
}

func TestNewPlan_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		size      int64
		partCount int
	}{
		{name: "zero size", size: 0, partCount: 100},
		{name: "negative size", size: -1, partCount: 100},
		{name: "zero part count", size: 1000, partCount: 0},
		{name: "negative part count", size: 1000, partCount: -5},
		{name: "size smaller than part count", size: 99, partCount: 100},
		{name: "part count above the limit", size: 1000000000, partCount: 10001},
		{name: "rounding pushes the part count above the limit", size: 19999, partCount: 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.size, tt.partCount)
			if !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("Expected ErrInvalidPlan, got %v", err)
			}
		})
	}
}

func assertContiguous(t *testing.T, plan Plan) {
	t.Helper()

	var next, sum int64
	for i, r := range plan.Parts {
		if r.Index != i+1 {
			t.Errorf("size %d: range %d has index %d", plan.TotalSize, i, r.Index)
		}
		if r.Offset != next {
			t.Errorf("size %d: part %d starts at %d, expected %d", plan.TotalSize, r.Index, r.Offset, next)
		}
		if r.Length <= 0 || r.Length > plan.ChunkSize {
			t.Errorf("size %d: part %d has length %d (chunk size %d)", plan.TotalSize, r.Index, r.Length, plan.ChunkSize)
		}
		next = r.End()
		sum += r.Length
	}

	if sum != plan.TotalSize {
		t.Errorf("size %d: parts sum to %d", plan.TotalSize, sum)
	}
	if next != plan.TotalSize {
		t.Errorf("size %d: last part ends at %d", plan.TotalSize, next)
	}
	if plan.ChunkSize*int64(plan.PartCount-1) >= plan.TotalSize || plan.TotalSize > plan.ChunkSize*int64(plan.PartCount) {
		t.Errorf("size %d: chunk size %d and part count %d do not bound the size", plan.TotalSize, plan.ChunkSize, plan.PartCount)
	}
}
