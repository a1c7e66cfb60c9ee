package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLockNotAcquired = errors.New("ロックを取得できませんでした")
	ErrLockNotOwned    = errors.New("ロックの所有者ではありません")
)

// Manager はキー単位のプロセス内ロックを管理する。
// 上映ごとの「空席確認と座席更新」をひとつのクリティカルセクションに
// まとめるために使う
type Manager struct {
	mu    sync.Mutex
	locks map[string]string // key -> 所有トークン
}

func NewManager() *Manager {
	return &Manager{locks: make(map[string]string)}
}

// Lock は取得済みのロックを表す
type Lock struct {
	manager *Manager
	key     string
	token   string
}

// Acquire はロックを取得する。既に保持されている場合は ErrLockNotAcquired を返す
func (m *Manager) Acquire(ctx context.Context, key string) (*Lock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, held := m.locks[key]; held {
		return nil, ErrLockNotAcquired
	}
	token := uuid.New().String()
	m.locks[key] = token
	return &Lock{manager: m, key: key, token: token}, nil
}

// AcquireWithRetry はリトライ付きでロックを取得する
func (m *Manager) AcquireWithRetry(ctx context.Context, key string, maxRetries int, retryDelay time.Duration) (*Lock, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lock, err := m.Acquire(ctx, key)
		if err == nil {
			return lock, nil
		}
		lastErr = err
		if !errors.Is(err, ErrLockNotAcquired) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, lastErr
}

// Release はロックを解放する。所有トークンが一致する場合のみ解放される
func (l *Lock) Release(ctx context.Context) error {
	l.manager.mu.Lock()
	defer l.manager.mu.Unlock()

	if token, held := l.manager.locks[l.key]; !held || token != l.token {
		return ErrLockNotOwned
	}
	delete(l.manager.locks, l.key)
	return nil
}
