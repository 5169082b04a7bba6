package service

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRetryOperation(t *testing.T) {

	Convey("Operation succeeding first time resolves immediately", t, func() {
		calls := 0
		result, err := RetryOperation(context.Background(), func() (string, error) {
			calls++
			return "done", nil
		}, time.Millisecond, 5)

		So(err, ShouldBeNil)
		So(result, ShouldEqual, "done")
		So(calls, ShouldEqual, 1)
	})

	Convey("Operation succeeding on attempt k resolves with its result", t, func() {
		calls := 0
		result, err := RetryOperation(context.Background(), func() (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("not yet")
			}
			return "done", nil
		}, time.Millisecond, 5)

		So(err, ShouldBeNil)
		So(result, ShouldEqual, "done")
		So(calls, ShouldEqual, 3)
	})

	Convey("Exhausted attempts propagate the final error", t, func() {
		calls := 0
		lastErr := errors.New("still failing")
		_, err := RetryOperation(context.Background(), func() (string, error) {
			calls++
			return "", lastErr
		}, time.Millisecond, 4)

		So(err, ShouldEqual, lastErr)
		So(calls, ShouldEqual, 4)
	})

	Convey("Cancelled context stops the retry loop between attempts", t, func() {
		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		_, err := RetryOperation(ctx, func() (string, error) {
			calls++
			cancel()
			return "", errors.New("not yet")
		}, time.Minute, 30)

		So(err, ShouldEqual, context.Canceled)
		So(calls, ShouldEqual, 1)
	})
}
