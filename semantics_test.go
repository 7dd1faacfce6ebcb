// Copyright 2025 The flow-control Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Behavioral checks of the statements the expander generates. Each test
// body is the exact expansion of a shorthand, written out by hand, so the
// collected values pin down what an expanded program observes.

package flowcontrol_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGuardedBreakInnerLoop(t *testing.T) {
	// Expansion of break_if(inner_n == 3) in the inner loop.
	var got [][2]int
	for outer_n := 1; outer_n < 3; outer_n++ {
		for inner_n := 1; inner_n < 5; inner_n++ {
			if inner_n == 3 {
				break
			}
			got = append(got, [2]int{outer_n, inner_n})
		}
	}
	want := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestGuardedBreakLabeledLoop(t *testing.T) {
	// Expansion of break_if(inner_n == 3, outer) in the inner loop.
	var got [][2]int
outer:
	for outer_n := 1; outer_n < 3; outer_n++ {
		for inner_n := 1; inner_n < 5; inner_n++ {
			if inner_n == 3 {
				break outer
			}
			got = append(got, [2]int{outer_n, inner_n})
		}
	}
	want := [][2]int{{1, 1}, {1, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestGuardedContinueInnerLoop(t *testing.T) {
	// Expansion of continue_if(inner_n == 3) in the inner loop.
	var got [][2]int
	for outer_n := 1; outer_n < 3; outer_n++ {
		for inner_n := 1; inner_n < 5; inner_n++ {
			if inner_n == 3 {
				continue
			}
			got = append(got, [2]int{outer_n, inner_n})
		}
	}
	want := [][2]int{
		{1, 1}, {1, 2}, {1, 4},
		{2, 1}, {2, 2}, {2, 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestGuardedContinueLabeledLoop(t *testing.T) {
	// Expansion of continue_if(inner_n == 3, outer) in the inner loop.
	var got [][2]int
outer:
	for outer_n := 1; outer_n < 3; outer_n++ {
		for inner_n := 1; inner_n < 5; inner_n++ {
			if inner_n == 3 {
				continue outer
			}
			got = append(got, [2]int{outer_n, inner_n})
		}
	}
	want := [][2]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestGuardedReturn(t *testing.T) {
	// Expansion of return_if(n == 5) in a function literal.
	var got []int
	func() {
		for n := 1; n < 10; n++ {
			if n == 5 {
				return
			}
			got = append(got, n)
		}
	}()
	want := []int{1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestGuardedReturnValue(t *testing.T) {
	// Expansion of return_if(n == 5, "early return").
	getValue := func() string {
		for n := 1; n < 10; n++ {
			if n == 5 {
				return "early return"
			}
		}
		return "return after loop"
	}
	if got, want := getValue(), "early return"; got != want {
		t.Errorf("getValue() = %q, want %q", got, want)
	}
}

func TestPredicateEvaluatedOncePerReach(t *testing.T) {
	// The predicate is the condition of the generated if statement, so a
	// side-effecting predicate runs exactly as often as control reaches
	// the invocation site.
	evals := 0
	pred := func(n int) bool {
		evals++
		return n == 3
	}
	runs := 0
	for n := 1; n < 5; n++ {
		if pred(n) {
			break
		}
		runs++
	}
	if evals != 3 {
		t.Errorf("predicate evaluated %d times, want 3", evals)
	}
	if runs != 2 {
		t.Errorf("loop body ran %d times after the guard, want 2", runs)
	}
}
