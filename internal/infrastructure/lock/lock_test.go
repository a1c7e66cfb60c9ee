package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Acquire(t *testing.T) {
	ctx := context.Background()
	manager := NewManager()

	t.Run("ロックを取得できる", func(t *testing.T) {
		lock, err := manager.Acquire(ctx, "test-key-1")
		require.NoError(t, err)
		require.NotNil(t, lock)
		defer lock.Release(ctx)
	})

	t.Run("同じキーのロックは取得できない", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "test-key-2")
		require.NoError(t, err)
		defer lock1.Release(ctx)

		lock2, err := manager.Acquire(ctx, "test-key-2")
		assert.ErrorIs(t, err, ErrLockNotAcquired)
		assert.Nil(t, lock2)
	})

	t.Run("別のキーなら同時に取得できる", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "screening-a")
		require.NoError(t, err)
		defer lock1.Release(ctx)

		lock2, err := manager.Acquire(ctx, "screening-b")
		require.NoError(t, err)
		defer lock2.Release(ctx)
	})

	t.Run("解放後は再取得できる", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "test-key-3")
		require.NoError(t, err)

		require.NoError(t, lock1.Release(ctx))

		lock2, err := manager.Acquire(ctx, "test-key-3")
		require.NoError(t, err)
		defer lock2.Release(ctx)
	})

	t.Run("二重解放はエラー", func(t *testing.T) {
		lock, err := manager.Acquire(ctx, "test-key-4")
		require.NoError(t, err)

		require.NoError(t, lock.Release(ctx))
		assert.ErrorIs(t, lock.Release(ctx), ErrLockNotOwned)
	})

	t.Run("リトライで取得できる", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "test-key-5")
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			lock1.Release(ctx)
		}()

		lock2, err := manager.AcquireWithRetry(ctx, "test-key-5", 10, 20*time.Millisecond)
		require.NoError(t, err)
		defer lock2.Release(ctx)
	})

	t.Run("リトライ上限を超えると失敗する", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "test-key-6")
		require.NoError(t, err)
		defer lock1.Release(ctx)

		lock2, err := manager.AcquireWithRetry(ctx, "test-key-6", 2, time.Millisecond)
		assert.ErrorIs(t, err, ErrLockNotAcquired)
		assert.Nil(t, lock2)
	})

	t.Run("コンテキストキャンセルでリトライを打ち切る", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "test-key-7")
		require.NoError(t, err)
		defer lock1.Release(ctx)

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err = manager.AcquireWithRetry(cancelCtx, "test-key-7", 5, 10*time.Millisecond)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
