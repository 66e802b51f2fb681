package readmodel

import "sync"

// Generation монотонный счётчик поколений сканирования.
// Каждое сканирование получает новое поколение при старте; результат
// фиксируется, только если поколение старше последнего зафиксированного.
type Generation struct {
	counter uint64     // монотонно возрастающий счетчик
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// NewGeneration создает счётчик поколений, начинающий с нуля
func NewGeneration() *Generation {
	return &Generation{}
}

// Next увеличивает счетчик и возвращает новое поколение.
// Вызывается при старте каждого сканирования.
func (g *Generation) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	return g.counter
}

// Current возвращает текущее значение счетчика без его изменения.
func (g *Generation) Current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.counter
}
