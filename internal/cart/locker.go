package cart

import "sync"

// Locker serializes cart mutations per user key. Lock blocks until the key
// is free and returns the matching unlock.
type Locker interface {
	Lock(key string) (unlock func())
}

// NopLocker applies no serialization. Two concurrent mutations of the same
// cart can both read the old lines and the later Put wins, so an Add may be
// lost. Single-request behavior is unaffected.
type NopLocker struct{}

func (NopLocker) Lock(string) func() { return func() {} }

// KeyedLocker holds one mutex per key while anyone is waiting on it and
// drops it afterwards, so idle users cost nothing.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*refMutex)}
}

func (l *KeyedLocker) Lock(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &refMutex{}
		l.locks[key] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.Unlock()

			l.mu.Lock()
			m.refs--
			if m.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}

func (l *KeyedLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
