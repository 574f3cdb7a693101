package nixos

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFakeListGenerations(t *testing.T) {
	fake := NewFake(1, 2, 3, 5, 7)

	generations, err := fake.ListGenerations()
	if err != nil {
		t.Fatalf("ListGenerations failed: %v", err)
	}

	want := []Generation{{1}, {2}, {3}, {5}, {7}}
	if !reflect.DeepEqual(generations, want) {
		t.Errorf("Expected %v, got %v", want, generations)
	}
}

func TestFakeCurrentGeneration(t *testing.T) {
	fake := NewFakeWithCurrent([]int{1, 2, 3}, 2)

	current, err := fake.CurrentGeneration()
	if err != nil {
		t.Fatalf("CurrentGeneration failed: %v", err)
	}
	if current != 2 {
		t.Errorf("Expected current 2, got %d", current)
	}
}

func TestFakeDefaultsCurrentToNewest(t *testing.T) {
	current, err := NewFake(3, 9, 5).CurrentGeneration()
	if err != nil {
		t.Fatal(err)
	}
	if current != 9 {
		t.Errorf("Expected current 9, got %d", current)
	}
}

func TestFakeDeleteGenerations(t *testing.T) {
	fake := NewFakeWithCurrent([]int{1, 2, 3, 4, 5}, 5)

	if err := fake.DeleteGenerations([]int{1, 3}); err != nil {
		t.Fatalf("DeleteGenerations failed: %v", err)
	}

	if !fake.WasDeleted(1) || !fake.WasDeleted(3) {
		t.Error("Generations 1 and 3 should be deleted")
	}
	if fake.WasDeleted(2) {
		t.Error("Generation 2 should not be deleted")
	}

	remaining, err := fake.ListGenerations()
	if err != nil {
		t.Fatal(err)
	}
	want := []Generation{{2}, {4}, {5}}
	if !reflect.DeepEqual(remaining, want) {
		t.Errorf("Expected %v, got %v", want, remaining)
	}
}

func TestFakeRejectsDeletingCurrent(t *testing.T) {
	fake := NewFakeWithCurrent([]int{1, 2, 3}, 3)

	err := fake.DeleteGenerations([]int{3})
	if err == nil {
		t.Fatal("Expected error when deleting current generation")
	}
	if !strings.Contains(err.Error(), "current generation") {
		t.Errorf("Unexpected error: %v", err)
	}
	if fake.WasDeleted(3) {
		t.Error("Current generation must not be marked deleted")
	}
}

func TestFakeRejectsUnknownGeneration(t *testing.T) {
	fake := NewFakeWithCurrent([]int{1, 2}, 2)

	if err := fake.DeleteGenerations([]int{7}); err == nil {
		t.Fatal("Expected error when deleting unknown generation")
	}

	// A batch with one bad number deletes nothing.
	if err := fake.DeleteGenerations([]int{1, 7}); err == nil {
		t.Fatal("Expected error for batch containing unknown generation")
	}
	if fake.WasDeleted(1) {
		t.Error("Failed batch must not partially delete")
	}
}

func TestFakeFailDeletes(t *testing.T) {
	fake := NewFake(1, 2, 3).FailDeletes()

	err := fake.DeleteGenerations([]int{1})
	if !errors.Is(err, ErrDeleteFailed) {
		t.Errorf("Expected ErrDeleteFailed, got %v", err)
	}
}
