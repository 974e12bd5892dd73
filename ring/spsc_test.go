// Copyright 2025 niwciu@gmail.com
// Licensed under the Apache License, Version 2.0.

// spsc_test.go — tests for the lock-free single-producer/single-consumer ring.
package ring

import (
	"runtime"
	"testing"
)

func TestSPSC_Correctness(t *testing.T) {
	r := NewSPSC[int](16)
	for i := 0; i < 16; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue failed at %d", i)
		}
	}
	if !r.IsFull() {
		t.Error("Expected ring full")
	}
	if r.Enqueue(99) {
		t.Error("Enqueue on full ring must fail")
	}
	for i := 0; i < 16; i++ {
		val, ok := r.Dequeue()
		if !ok || val != i {
			t.Fatalf("Expected %d, got %d (ok=%v)", i, val, ok)
		}
	}
	if !r.IsEmpty() {
		t.Error("Expected ring empty after full cycle")
	}
	if _, ok := r.Dequeue(); ok {
		t.Error("Dequeue on empty ring must fail")
	}
}

func TestSPSC_CapacityRounding(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 1000: 1024}
	for asked, want := range cases {
		if got := NewSPSC[int](asked).Cap(); got != want {
			t.Errorf("NewSPSC(%d).Cap() = %d, want %d", asked, got, want)
		}
	}
}

// TestSPSC_OrderedDelivery runs one producer goroutine against one consumer
// and checks every value arrives exactly once, in order.
func TestSPSC_OrderedDelivery(t *testing.T) {
	const items = 100000
	r := NewSPSC[int](128)

	go func() {
		for i := 0; i < items; i++ {
			for !r.Enqueue(i) {
				runtime.Gosched()
			}
		}
	}()

	next := 0
	for next < items {
		val, ok := r.Dequeue()
		if !ok {
			runtime.Gosched()
			continue
		}
		if val != next {
			t.Fatalf("Out-of-order delivery: expected %d, got %d", next, val)
		}
		next++
	}
	if !r.IsEmpty() {
		t.Error("Expected ring empty after consuming all items")
	}
}
