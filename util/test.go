package util

import (
	"github.com/google/go-cmp/cmp"
	"github.com/hauke96/sigolo/v2"
	"math"
	"reflect"
	"sort"
	"testing"
)

func AssertEqual(t *testing.T, expected any, actual any) {
	if diff := cmp.Diff(expected, actual); diff != "" {
		sigolo.Errorb(1, "Expect to be equal (-expected +actual):\n%s", diff)
		t.Fail()
	}
}

// AssertSameElements compares both lists regardless of their order.
func AssertSameElements(t *testing.T, expected []int, actual []int) {
	expectedSorted := append([]int{}, expected...)
	actualSorted := append([]int{}, actual...)
	sort.Ints(expectedSorted)
	sort.Ints(actualSorted)

	if diff := cmp.Diff(expectedSorted, actualSorted); diff != "" {
		sigolo.Errorb(1, "Expect same elements (-expected +actual):\n%s", diff)
		t.Fail()
	}
}

func AssertApprox[T float32 | float64](t *testing.T, expected T, actual T, accuracy T) {
	if math.Abs(float64(expected-actual)) > float64(accuracy) {
		sigolo.Errorb(1, "Expect %v to be within %v of %v", actual, accuracy, expected)
		t.Fail()
	}
}

func AssertNil(t *testing.T, value any) {
	if value != nil && !reflect.ValueOf(value).IsNil() {
		sigolo.Errorb(1, "Expect to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertNotNil(t *testing.T, value any) {
	if value == nil || reflect.ValueOf(value).IsNil() {
		sigolo.Errorb(1, "Expect NOT to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertError(t *testing.T, expectedMessage string, err error) {
	if err == nil {
		sigolo.Errorb(1, "Expected error with message: %s\nActual error: nil", expectedMessage)
		t.Fail()
		return
	}
	if expectedMessage != err.Error() {
		sigolo.Errorb(1, "Expected message: %s\nActual error message: %s", expectedMessage, err.Error())
		t.Fail()
	}
}

func AssertTrue(t *testing.T, b bool) {
	if !b {
		sigolo.Errorb(1, "Expected true but got false")
		t.Fail()
	}
}

func AssertFalse(t *testing.T, b bool) {
	if b {
		sigolo.Errorb(1, "Expected false but got true")
		t.Fail()
	}
}
