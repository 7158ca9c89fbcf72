// Package utils
package utils

import (
	"sync"
	"time"
)

// CachedValue lazily produces a value and keeps it for cachedTime; a zero cachedTime caches forever
type CachedValue[T any] struct {
	generateTime time.Time
	cachedData   *T
	mu           sync.RWMutex
	cachedTime   time.Duration
	getter       func() *T
}

func NewCachedValue[T any](cachedTime time.Duration, getter func() *T) *CachedValue[T] {
	return &CachedValue[T]{cachedTime: cachedTime, getter: getter}
}

func (cachedValue *CachedValue[T]) fresh() bool {
	if cachedValue.cachedData == nil {
		return false
	}
	return cachedValue.cachedTime <= 0 || time.Since(cachedValue.generateTime) <= cachedValue.cachedTime
}

func (cachedValue *CachedValue[T]) GetValue() *T {
	cachedValue.mu.RLock()
	if cachedValue.fresh() {
		defer cachedValue.mu.RUnlock()
		return cachedValue.cachedData
	}
	cachedValue.mu.RUnlock()

	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()

	if cachedValue.fresh() {
		return cachedValue.cachedData
	}

	cachedValue.cachedData = cachedValue.getter()
	cachedValue.generateTime = time.Now()

	return cachedValue.cachedData
}

func (cachedValue *CachedValue[T]) Invalidate() {
	cachedValue.mu.Lock()
	defer cachedValue.mu.Unlock()
	cachedValue.cachedData = nil
}
