package testutil

import (
	"fmt"
	"reflect"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
)

/*
	'actual' should be an `error`; 'expected' should be an
	`*errors.ErrorClass`; we check that the error is under the umbrella
	of the class.
*/
func ShouldBeErrorClass(actual interface{}, expected ...interface{}) string {
	err, ok := actual.(error)
	if !ok {
		return fmt.Sprintf("You must provide an `error` as the first argument to this assertion; got `%T`", actual)
	}

	if len(expected) != 1 {
		return "You must provide one spacemonkey `ErrorClass` as the expectation parameter to this assertion."
	}
	class, ok := expected[0].(*errors.ErrorClass)
	if !ok {
		return "You must provide a spacemonkey `ErrorClass` as the expectation parameter to this assertion."
	}

	// checking if this is nil is surprisingly complicated due to https://golang.org/doc/faq#nil_error
	if reflect.ValueOf(err).IsNil() {
		return fmt.Sprintf("Expected error to be of class %q but it was nil!", class.String())
	}

	spaceClass := errors.GetClass(err)
	if spaceClass.Is(class) {
		return ""
	}
	return fmt.Sprintf("Expected error to be of class %q but it had %q instead!  (Full message: %s)", class.String(), spaceClass.String(), err.Error())
}

/*
	'actual' should be a `func()`; 'expected' should be an
	`*errors.ErrorClass`; we run the function and check that it panics
	with an error under the umbrella of the class.
*/
func ShouldPanicWith(actual interface{}, expected ...interface{}) string {
	fn, ok := actual.(func())
	if !ok {
		return fmt.Sprintf("You must provide a `func()` as the first argument to this assertion; got `%T`", actual)
	}

	if len(expected) != 1 {
		return "You must provide one spacemonkey `ErrorClass` as the expectation parameter to this assertion."
	}
	errClass, ok := expected[0].(*errors.ErrorClass)
	if !ok {
		return "You must provide a spacemonkey `ErrorClass` as the expectation parameter to this assertion."
	}

	var caught error
	try.Do(
		fn,
	).CatchAll(func(err error) {
		caught = err
	}).Done()

	if caught == nil {
		return fmt.Sprintf("Expected a panic of class %q but no error was raised!", errClass.String())
	}
	spaceClass := errors.GetClass(caught)
	if spaceClass.Is(errClass) {
		return ""
	}
	return fmt.Sprintf("Expected a panic of class %q but it had %q instead!  (Full message: %s)", errClass.String(), spaceClass.String(), caught.Error())
}
