package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс синхронизатора read-model
type Service interface {
	// SyncOwned пересобирает ссылки на заявленные сертификаты и их детали
	SyncOwned(ctx context.Context) error

	// SyncTemplates пересобирает шаблоны issuer'а.
	// Ошибки сканирования не возвращаются: коллекция очищается.
	SyncTemplates(ctx context.Context)

	// SyncIssued пересобирает выпущенные сертификаты.
	// При ошибке коллекция очищается, ошибка возвращается.
	SyncIssued(ctx context.Context) error

	// SyncAll последовательно выполняет все три сканирования
	SyncAll(ctx context.Context) error

	// CertificateCount читает свежее число выпущенных аккаунтом сертификатов
	CertificateCount(ctx context.Context) (uint64, error)

	// Snapshot возвращает копию материализованных коллекций
	Snapshot() *readmodel.Snapshot

	// Restore загружает сохранённый снимок в модель
	Restore(ctx context.Context) error

	// Discard отбрасывает коллекции и сохранённый снимок
	Discard(ctx context.Context) error
}

// service реализует Service для одного аккаунта
type service struct {
	views     *chain.Views
	model     *readmodel.Model
	snapshots storage.SnapshotStorage
	logger    *slog.Logger
}

// NewService creates a synchronizer bound to the model's account.
// snapshots may be nil, then nothing is persisted.
func NewService(views *chain.Views, model *readmodel.Model, snapshots storage.SnapshotStorage, logger *slog.Logger) Service {
	return &service{
		views:     views,
		model:     model,
		snapshots: snapshots,
		logger:    logger.With("account", model.Account().String()),
	}
}

// SyncOwned выполняет двухфазное сканирование ссылок аккаунта-получателя:
// сначала полный список ссылок в порядке индексов, затем детали каждой
// уникальной ссылки. Ошибка сканирования ссылок ничего не фиксирует.
// Ошибка загрузки деталей фиксирует только список ссылок, предыдущие
// детали остаются видимыми.
func (s *service) SyncOwned(ctx context.Context) error {
	account := s.model.Account()
	gen := s.model.Begin()
	log := s.logger.With("collection", readmodel.CollectionOwned, "generation", gen)
	log.Debug("Starting scan")

	count, err := s.views.RecipientCertCount(ctx, account)
	if err != nil {
		log.Warn("Scan failed", "error", err)
		return fmt.Errorf("failed to count owned certificates: %w", err)
	}

	refs := make([]models.CertRef, 0, count)
	for i := uint64(0); i < count; i++ {
		ref, err := s.views.RecipientCertRef(ctx, account, i)
		if err != nil {
			log.Warn("Scan failed", "index", i, "error", err)
			return fmt.Errorf("failed to get owned certificate ref %d: %w", i, err)
		}
		refs = append(refs, ref)
	}

	if !s.model.CommitOwned(gen, refs) {
		log.Debug("Discarding stale scan result")
		return nil
	}

	// Вторая фаза: детали по уникальным ссылкам
	details := make(map[string]models.Certificate, len(refs))
	for _, ref := range refs {
		key := ref.Key()
		if _, ok := details[key]; ok {
			continue
		}
		cert, err := s.views.Certificate(ctx, ref.Issuer, ref.Index)
		if err != nil {
			log.Warn("Detail fetch failed", "ref", key, "error", err)
			s.persist(ctx)
			return fmt.Errorf("failed to get certificate %s: %w", key, err)
		}
		details[key] = cert
	}

	if !s.model.CommitDetails(gen, details) {
		log.Debug("Discarding stale detail result")
		return nil
	}

	log.Info("Scan completed", "count", len(refs), "details", len(details))
	s.persist(ctx)
	return nil
}

// SyncTemplates сканирует шаблоны issuer'а. Шаблоны только подписывают
// сертификаты, поэтому при любой ошибке коллекция становится пустой.
func (s *service) SyncTemplates(ctx context.Context) {
	gen := s.model.Begin()
	log := s.logger.With("collection", readmodel.CollectionTemplates, "generation", gen)
	log.Debug("Starting scan")

	templates, err := s.scanTemplates(ctx)
	if err != nil {
		log.Warn("Scan failed, clearing templates", "error", err)
		templates = nil
	}

	if !s.model.CommitTemplates(gen, templates) {
		log.Debug("Discarding stale scan result")
		return
	}

	log.Info("Scan completed", "count", len(templates))
	s.persist(ctx)
}

func (s *service) scanTemplates(ctx context.Context) ([]models.Template, error) {
	account := s.model.Account()

	isIssuer, err := s.views.IsIssuer(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to check issuer: %w", err)
	}
	// Большинство аккаунтов только получатели: это не ошибка
	if !isIssuer {
		return nil, nil
	}

	count, err := s.views.TemplateCount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}

	templates := make([]models.Template, 0, count)
	for i := uint64(0); i < count; i++ {
		tmpl, err := s.views.Template(ctx, account, i)
		if err != nil {
			return nil, fmt.Errorf("failed to get template %d: %w", i, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// SyncIssued сканирует сертификаты, выпущенные аккаунтом
func (s *service) SyncIssued(ctx context.Context) error {
	gen := s.model.Begin()
	log := s.logger.With("collection", readmodel.CollectionIssued, "generation", gen)
	log.Debug("Starting scan")

	issued, scanErr := s.scanIssued(ctx)
	if scanErr != nil {
		log.Warn("Scan failed, clearing issued certificates", "error", scanErr)
		issued = nil
	}

	if !s.model.CommitIssued(gen, issued) {
		log.Debug("Discarding stale scan result")
		return scanErr
	}

	if scanErr == nil {
		log.Info("Scan completed", "count", len(issued))
	}
	s.persist(ctx)
	return scanErr
}

func (s *service) scanIssued(ctx context.Context) ([]models.IssuedCert, error) {
	account := s.model.Account()

	count, err := s.views.CertificateCount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to count issued certificates: %w", err)
	}

	issued := make([]models.IssuedCert, 0, count)
	for i := uint64(0); i < count; i++ {
		cert, err := s.views.Certificate(ctx, account, i)
		if err != nil {
			return nil, fmt.Errorf("failed to get issued certificate %d: %w", i, err)
		}
		issued = append(issued, models.IssuedCert{Index: i, Cert: cert})
	}
	return issued, nil
}

// SyncAll выполняет сканирования последовательно, не параллельно
func (s *service) SyncAll(ctx context.Context) error {
	ownedErr := s.SyncOwned(ctx)
	s.SyncTemplates(ctx)
	issuedErr := s.SyncIssued(ctx)
	return errors.Join(ownedErr, issuedErr)
}

// CertificateCount читает свежий счётчик, минуя материализованные коллекции
func (s *service) CertificateCount(ctx context.Context) (uint64, error) {
	count, err := s.views.CertificateCount(ctx, s.model.Account())
	if err != nil {
		return 0, fmt.Errorf("failed to count issued certificates: %w", err)
	}
	return count, nil
}

// Snapshot returns a copy of the materialized collections.
func (s *service) Snapshot() *readmodel.Snapshot {
	return s.model.Snapshot()
}

// Restore загружает сохранённый снимок аккаунта
func (s *service) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return storage.ErrSnapshotNotFound
	}
	snapshot, err := s.snapshots.GetSnapshot(ctx, s.model.Account())
	if err != nil {
		return err
	}
	if !s.model.Load(snapshot) {
		return fmt.Errorf("snapshot belongs to another account: %s", snapshot.Account)
	}
	return nil
}

// Discard очищает модель и удаляет снимок (disconnect)
func (s *service) Discard(ctx context.Context) error {
	s.model.Reset()
	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.DeleteSnapshot(ctx, s.model.Account()); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// persist сохраняет снимок; ошибка сохранения не прерывает синхронизацию
func (s *service) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveSnapshot(ctx, s.model.Snapshot()); err != nil {
		s.logger.Warn("Failed to save snapshot", "error", err)
	}
}
