package readmodel

import (
	"maps"
	"slices"
	"time"

	"github.com/iudanet/gophcert/internal/models"
)

// Snapshot неизменяемая копия материализованных коллекций аккаунта.
// Сохраняется в локальное хранилище и отображается в режиме --offline.
type Snapshot struct {
	SyncedAt  time.Time                     `json:"synced_at"`
	Details   map[string]models.Certificate `json:"details"`
	Account   models.Address                `json:"account"`
	Owned     []models.CertRef              `json:"owned"`
	Templates []models.Template             `json:"templates"`
	Issued    []models.IssuedCert           `json:"issued"`
}

// TemplateName ищет имя шаблона по индексу. Отсутствие шаблона не ошибка:
// имя шаблона только украшает сертификат.
func (s *Snapshot) TemplateName(index uint64) (string, bool) {
	if index >= uint64(len(s.Templates)) {
		return "", false
	}
	return s.Templates[index].Name, true
}

// Detail возвращает детали заявленного сертификата, если они загружены
func (s *Snapshot) Detail(ref models.CertRef) (models.Certificate, bool) {
	cert, ok := s.Details[ref.Key()]
	return cert, ok
}

func (s *Snapshot) clone() *Snapshot {
	return &Snapshot{
		SyncedAt:  s.SyncedAt,
		Account:   s.Account,
		Owned:     slices.Clone(s.Owned),
		Details:   maps.Clone(s.Details),
		Templates: slices.Clone(s.Templates),
		Issued:    slices.Clone(s.Issued),
	}
}
