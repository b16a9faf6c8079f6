package client

import (
	"strings"
	"sync"
)

// MemoryStorage is the fallback favorites store used when the sqlite
// database cannot be opened. Contents do not survive the process.
type MemoryStorage struct {
	mu    sync.RWMutex
	codes []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{codes: []string{}}
}

func (m *MemoryStorage) Add(code string) error {
	code = strings.ToUpper(code)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.codes {
		if c == code {
			return nil
		}
	}
	m.codes = append(m.codes, code)

	return nil
}

func (m *MemoryStorage) Remove(code string) error {
	code = strings.ToUpper(code)

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.codes {
		if c == code {
			m.codes = append(m.codes[:i], m.codes[i+1:]...)
			break
		}
	}

	return nil
}

func (m *MemoryStorage) Has(code string) (bool, error) {
	code = strings.ToUpper(code)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.codes {
		if c == code {
			return true, nil
		}
	}

	return false, nil
}

func (m *MemoryStorage) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.codes))
	copy(out, m.codes)

	return out, nil
}

func (m *MemoryStorage) Replace(codes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.codes = make([]string, 0, len(codes))
	for _, code := range codes {
		m.codes = append(m.codes, strings.ToUpper(code))
	}

	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.codes = []string{}

	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
