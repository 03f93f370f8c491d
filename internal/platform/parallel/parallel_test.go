// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parallel_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/taibuivan/locallibrary/internal/platform/parallel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

/*
TestRun_AllSucceed verifies every task runs and results are visible after Run returns.
*/
func TestRun_AllSucceed(t *testing.T) {
	var first, second string

	err := parallel.Run(context.Background(),
		func(context.Context) error { first = "author"; return nil },
		func(context.Context) error { second = "books"; return nil },
	)

	assert.NoError(t, err)
	assert.Equal(t, "author", first)
	assert.Equal(t, "books", second)
}

/*
TestRun_NoTasks returns nil without doing anything.
*/
func TestRun_NoTasks(t *testing.T) {
	assert.NoError(t, parallel.Run(context.Background()))
}

/*
TestRun_ShortCircuit cancels the siblings when one task fails.
*/
func TestRun_ShortCircuit(t *testing.T) {
	boom := errors.New("lookup failed")
	var cancelled atomic.Bool

	err := parallel.Run(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		},
	)

	assert.ErrorIs(t, err, boom)
	assert.True(t, cancelled.Load())
}

/*
TestRun_WaitsForAll does not return before the slowest task finishes.
*/
func TestRun_WaitsForAll(t *testing.T) {
	var done atomic.Int32

	err := parallel.Run(context.Background(),
		func(context.Context) error { time.Sleep(20 * time.Millisecond); done.Add(1); return nil },
		func(context.Context) error { done.Add(1); return nil },
		func(context.Context) error { time.Sleep(10 * time.Millisecond); done.Add(1); return nil },
	)

	assert.NoError(t, err)
	assert.EqualValues(t, 3, done.Load())
}

/*
TestRun_ParentCancelled propagates the caller's cancellation to the tasks.
*/
func TestRun_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := parallel.Run(ctx, func(ctx context.Context) error { return ctx.Err() })
	assert.ErrorIs(t, err, context.Canceled)
}
