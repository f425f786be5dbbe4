package clock

import (
	"sync"
	"time"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Real реальный провайдер времени для production
type Real struct{}

// Now возвращает текущее время
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed управляемые часы для тестов
type Fixed struct {
	mu      sync.Mutex
	current time.Time
}

// NewFixed создает часы, остановленные на указанном моменте
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// Now возвращает зафиксированный момент
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Set переставляет часы на указанный момент
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	f.current = t
	f.mu.Unlock()
}

// Advance сдвигает часы вперед и возвращает новое время
func (f *Fixed) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
	return f.current
}
