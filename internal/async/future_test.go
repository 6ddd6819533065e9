package async_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MrJamesThe3rd/valueplus/internal/async"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFuture_SettlesOnce(t *testing.T) {
	f, settle := async.New[int]()

	settle(1, nil)
	settle(2, errors.New("late"))

	got, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFuture_WaitHonoursContext(t *testing.T) {
	f, settle := async.New[string]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	settle("late", nil)

	got, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}

func TestResolved(t *testing.T) {
	boom := errors.New("boom")
	f := async.Resolved(0, boom)

	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future should already be done")
	}

	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestThen(t *testing.T) {
	f, settle := async.New[int]()
	next := async.Then(f, func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}

		return strconv.Itoa(v * 2), nil
	})

	settle(21, nil)

	got, err := next.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}
