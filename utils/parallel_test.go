package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.viam.com/test"
	gutils "go.viam.com/utils"
)

func TestRunInParallel(t *testing.T) {
	wait100ms := func(ctx context.Context) error {
		gutils.SelectContextOrWait(ctx, 100*time.Millisecond)
		return ctx.Err()
	}

	elapsed, err := RunInParallel(context.Background(), []SimpleFunc{wait100ms, wait100ms})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, elapsed, test.ShouldBeLessThan, 300*time.Millisecond)
	test.That(t, elapsed, test.ShouldBeGreaterThan, 90*time.Millisecond)

	errFunc := func(ctx context.Context) error {
		return errors.New("bad")
	}

	_, err = RunInParallel(context.Background(), []SimpleFunc{wait100ms, wait100ms, errFunc})
	test.That(t, err, test.ShouldNotBeNil)

	panicFunc := func(ctx context.Context) error {
		panic(1)
	}

	_, err = RunInParallel(context.Background(), []SimpleFunc{panicFunc})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGetInParallel(t *testing.T) {
	fs := make([]FloatFunc, 0, 4)
	for i := 0; i < 4; i++ {
		val := float64(i)
		fs = append(fs, func(ctx context.Context) (float64, error) {
			return val * val, nil
		})
	}

	_, results, err := GetInParallel(context.Background(), fs)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, results, test.ShouldResemble, []float64{0, 1, 4, 9})

	fs = append(fs, func(ctx context.Context) (float64, error) {
		return 0, errors.New("worker five failed")
	})
	_, _, err = GetInParallel(context.Background(), fs)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "worker five failed")
}
