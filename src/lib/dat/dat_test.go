package dat

import (
	"errors"
	"testing"
)

func TestNewShapeChecks(t *testing.T) {
	if _, err := New([]int32{0, 1}, []int32{0}); err == nil {
		t.Error("accepted mismatched arrays")
	}
	if _, err := New([]int32{}, []int32{}); err == nil {
		t.Error("accepted rootless arrays")
	}
	if _, err := New([]int32{0}, []int32{-1}); err != nil {
		t.Errorf("rejected minimal valid arrays: %v", err)
	}
}

func TestAccessorBounds(t *testing.T) {
	d, err := MakeFromLines([]string{"ab"})
	if err != nil {
		t.Fatal(err)
	}

	for _, idx := range []int{-1, d.Size(), d.Size() + 10} {
		if _, err := d.BaseAt(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("BaseAt(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if _, err := d.CheckAt(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CheckAt(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}

	for idx := 0; idx < d.Size(); idx++ {
		if _, err := d.BaseAt(idx); err != nil {
			t.Errorf("BaseAt(%d) error = %v", idx, err)
		}
		if _, err := d.CheckAt(idx); err != nil {
			t.Errorf("CheckAt(%d) error = %v", idx, err)
		}
	}
}
