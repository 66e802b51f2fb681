package readmodel

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/gophcert/internal/models"
)

// Collection идентифицирует материализованную коллекцию
type Collection string

const (
	CollectionOwned     Collection = "owned"     // ссылки на заявленные сертификаты
	CollectionDetails   Collection = "details"   // детали заявленных сертификатов
	CollectionTemplates Collection = "templates" // шаблоны issuer'а
	CollectionIssued    Collection = "issued"    // выпущенные сертификаты
)

// Model хранит материализованные коллекции одного аккаунта.
// Коллекции являются кэшем: они верны только на момент последней
// успешной синхронизации.
type Model struct {
	gen       *Generation
	committed map[Collection]uint64
	state     Snapshot
	mu        sync.RWMutex
	now       func() time.Time
}

// New создает пустую модель для аккаунта
func New(account models.Address) *Model {
	return &Model{
		gen:       NewGeneration(),
		committed: make(map[Collection]uint64),
		state:     Snapshot{Account: account, Details: map[string]models.Certificate{}},
		now:       time.Now,
	}
}

// Begin выдаёт поколение для нового сканирования
func (m *Model) Begin() uint64 {
	return m.gen.Next()
}

// Account returns the account the model is bound to.
func (m *Model) Account() models.Address {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Account
}

// Committed возвращает поколение последней фиксации коллекции
func (m *Model) Committed(c Collection) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.committed[c]
}

// commit фиксирует результат, если поколение свежее последнего зафиксированного.
// Вызывается под m.mu.
func (m *Model) commit(c Collection, gen uint64, apply func()) bool {
	if gen <= m.committed[c] {
		return false
	}
	m.committed[c] = gen
	apply()
	m.state.SyncedAt = m.now()
	return true
}

// CommitOwned заменяет список ссылок. Возвращает false для устаревшего поколения.
func (m *Model) CommitOwned(gen uint64, refs []models.CertRef) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commit(CollectionOwned, gen, func() {
		m.state.Owned = slices.Clone(refs)
	})
}

// CommitDetails заменяет карту деталей по ключу CertRef.Key().
func (m *Model) CommitDetails(gen uint64, details map[string]models.Certificate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commit(CollectionDetails, gen, func() {
		m.state.Details = maps.Clone(details)
		if m.state.Details == nil {
			m.state.Details = map[string]models.Certificate{}
		}
	})
}

// CommitTemplates заменяет список шаблонов; nil очищает коллекцию.
func (m *Model) CommitTemplates(gen uint64, templates []models.Template) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commit(CollectionTemplates, gen, func() {
		m.state.Templates = slices.Clone(templates)
	})
}

// CommitIssued заменяет список выпущенных сертификатов; nil очищает коллекцию.
func (m *Model) CommitIssued(gen uint64, issued []models.IssuedCert) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commit(CollectionIssued, gen, func() {
		m.state.Issued = slices.Clone(issued)
	})
}

// Snapshot возвращает копию текущего состояния
func (m *Model) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// Templates returns a copy of the materialized templates.
func (m *Model) Templates() []models.Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.state.Templates)
}

// TemplateName ищет имя шаблона по индексу (best-effort).
func (m *Model) TemplateName(index uint64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.TemplateName(index)
}

// Load восстанавливает коллекции из сохранённого снимка.
// Снимок другого аккаунта игнорируется.
func (m *Model) Load(s *Snapshot) bool {
	if s == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.Account != m.state.Account {
		return false
	}
	m.state = *s.clone()
	if m.state.Details == nil {
		m.state.Details = map[string]models.Certificate{}
	}
	return true
}

// Reset отбрасывает все коллекции. Сканирования, начатые до Reset,
// больше не могут зафиксировать результат.
func (m *Model) Reset() {
	current := m.gen.Current()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range []Collection{CollectionOwned, CollectionDetails, CollectionTemplates, CollectionIssued} {
		if m.committed[c] < current {
			m.committed[c] = current
		}
	}
	m.state = Snapshot{Account: m.state.Account, Details: map[string]models.Certificate{}}
}
