package mutation

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/iudanet/gophcert/internal/client/chain"
	clientsync "github.com/iudanet/gophcert/internal/client/sync"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/validation"
	"github.com/iudanet/gophcert/pkg/api"
)

// Result итог успешной мутации
type Result struct {
	// ResyncErr ошибка повторной синхронизации после подтверждения.
	// Транзакция при этом применена.
	ResyncErr    error
	LastIssued   *models.LastIssued
	Notification Notification
	TxHash       string
	Version      uint64
}

// Orchestrator выполняет мутации по схеме:
// валидация → отправка → подтверждение → ресинхронизация → сброс формы.
// Одновременно выполняется не более одной операции.
type Orchestrator struct {
	gateway    chain.Gateway
	sync       clientsync.Service
	notifier   Notifier
	logger     *slog.Logger
	observer   func(State)
	lastIssued *models.LastIssued
	module     chain.Module
	account    models.Address
	state      State
	template   TemplateForm
	claim      ClaimForm
	issue      IssueForm
	mu         sync.Mutex
	busy       bool
}

// Option настраивает Orchestrator
type Option func(*Orchestrator)

// WithNotifier задаёт получателя уведомлений
func WithNotifier(n Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = n
	}
}

// WithStateObserver подписывает на переходы состояний
func WithStateObserver(fn func(State)) Option {
	return func(o *Orchestrator) {
		o.observer = fn
	}
}

// NewOrchestrator creates an orchestrator for the given account.
func NewOrchestrator(gateway chain.Gateway, module chain.Module, account models.Address, syncService clientsync.Service, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		gateway: gateway,
		module:  module,
		account: account,
		sync:    syncService,
		logger:  logger,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.notifier == nil {
		o.notifier = LogNotifier{Logger: logger}
	}
	return o
}

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Busy сообщает, выполняется ли операция
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

// SetTemplateForm заполняет форму шаблона
func (o *Orchestrator) SetTemplateForm(f TemplateForm) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.template = f
}

// TemplateForm returns the current template form input.
func (o *Orchestrator) TemplateForm() TemplateForm {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.template
}

// SetIssueForm заполняет форму выпуска сертификата
func (o *Orchestrator) SetIssueForm(f IssueForm) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.issue = f
}

// IssueForm returns the current issue form input.
func (o *Orchestrator) IssueForm() IssueForm {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.issue
}

// SetClaimForm заполняет форму заявки на сертификат
func (o *Orchestrator) SetClaimForm(f ClaimForm) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.claim = f
}

// ClaimForm returns the current claim form input.
func (o *Orchestrator) ClaimForm() ClaimForm {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.claim
}

// LastIssued возвращает последний выпущенный сертификат до его скрытия
func (o *Orchestrator) LastIssued() *models.LastIssued {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lastIssued == nil {
		return nil
	}
	li := *o.lastIssued
	return &li
}

// DismissLastIssued скрывает баннер последнего выпуска
func (o *Orchestrator) DismissLastIssued() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastIssued = nil
}

// CreateTemplate создает шаблон из формы шаблона
func (o *Orchestrator) CreateTemplate(ctx context.Context) (*Result, error) {
	if err := o.acquire(); err != nil {
		return nil, err
	}

	form := o.TemplateForm()
	name := validation.NormalizeText(form.Name)
	description := validation.NormalizeText(form.Description)
	if name == "" {
		return nil, o.fail(invalid("name", "Enter a template name"))
	}
	if err := validation.ValidateText("name", name, true); err != nil {
		return nil, o.fail(invalid("", err.Error()))
	}
	if err := validation.ValidateText("description", description, false); err != nil {
		return nil, o.fail(invalid("", err.Error()))
	}

	res, err := o.execute(ctx, o.module.CreateTemplate(name, description))
	if err != nil {
		return nil, o.fail(err)
	}

	o.transition(StateResyncing)
	o.sync.SyncTemplates(ctx)

	res.Notification = templateCreated(name)
	o.finish(func() { o.template = TemplateForm{} }, res)
	return res, nil
}

// IssueCertificate выпускает сертификат из формы выпуска.
// Индекс нового сертификата выводится из свежего счётчика как count-1:
// квитанция транзакции не содержит назначенного индекса.
func (o *Orchestrator) IssueCertificate(ctx context.Context) (*Result, error) {
	if err := o.acquire(); err != nil {
		return nil, err
	}

	form := o.IssueForm()
	recipient := validation.NormalizeText(form.Recipient)
	studentName := validation.NormalizeText(form.StudentName)
	className := validation.NormalizeText(form.ClassName)
	grades := validation.NormalizeText(form.Grades)

	if recipient == "" || studentName == "" {
		return nil, o.fail(invalid("", "Fill recipient address and student name"))
	}
	if validation.ValidateAddress(recipient) != nil {
		return nil, o.fail(invalid("recipient", "Invalid recipient address"))
	}
	for _, f := range []struct{ name, value string }{
		{"student name", studentName},
		{"class name", className},
		{"grades", grades},
	} {
		if err := validation.ValidateText(f.name, f.value, false); err != nil {
			return nil, o.fail(invalid("", err.Error()))
		}
	}
	templateIndex, err := validation.ParseIndex(form.TemplateIndex)
	if err != nil || templateIndex >= uint64(len(o.sync.Snapshot().Templates)) {
		return nil, o.fail(invalid("template", "Invalid template index"))
	}

	req := o.module.IssueCertificate(templateIndex, models.Address(recipient), studentName, className, grades)
	res, err := o.execute(ctx, req)
	if err != nil {
		return nil, o.fail(err)
	}

	o.transition(StateResyncing)
	var resyncErrs []error
	if err := o.sync.SyncIssued(ctx); err != nil {
		resyncErrs = append(resyncErrs, err)
	}
	count, err := o.sync.CertificateCount(ctx)
	if err != nil {
		resyncErrs = append(resyncErrs, err)
	} else {
		index := uint64(0)
		if count > 0 {
			index = count - 1
		}
		res.LastIssued = &models.LastIssued{Issuer: o.account, RecipientName: studentName, Index: index}
		res.Notification = certificateIssued(index, studentName)
	}
	if res.LastIssued == nil {
		res.Notification = Notification{Title: "Certificate issued"}
	}
	res.ResyncErr = errors.Join(resyncErrs...)

	o.finish(func() {
		o.issue = IssueForm{TemplateIndex: form.TemplateIndex}
		if res.LastIssued != nil {
			li := *res.LastIssued
			o.lastIssued = &li
		}
	}, res)
	return res, nil
}

// ClaimCertificate заявляет сертификат из формы заявки.
// Повторные заявки локально не отсекаются: их отклоняет ledger.
func (o *Orchestrator) ClaimCertificate(ctx context.Context) (*Result, error) {
	if err := o.acquire(); err != nil {
		return nil, err
	}

	form := o.ClaimForm()
	issuer := validation.NormalizeText(form.Issuer)
	if issuer == "" || validation.NormalizeText(form.Index) == "" {
		return nil, o.fail(invalid("", "Enter issuer address and certificate index"))
	}
	if validation.ValidateAddress(issuer) != nil {
		return nil, o.fail(invalid("issuer", "Invalid issuer address"))
	}
	index, err := validation.ParseIndex(form.Index)
	if err != nil {
		return nil, o.fail(invalid("index", "Invalid certificate index"))
	}

	res, err := o.execute(ctx, o.module.ClaimCertificate(models.Address(issuer), index))
	if err != nil {
		return nil, o.fail(err)
	}

	o.transition(StateResyncing)
	res.ResyncErr = o.sync.SyncOwned(ctx)

	res.Notification = certificateClaimed()
	o.finish(func() { o.claim = ClaimForm{} }, res)
	return res, nil
}

// execute отправляет транзакцию и ждёт её подтверждения.
// Ошибки шлюза возвращаются как есть.
func (o *Orchestrator) execute(ctx context.Context, req api.SubmitRequest) (*Result, error) {
	o.transition(StateSubmitting)
	o.logger.Debug("Submitting transaction", "function", req.Function)

	receipt, err := o.gateway.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	o.transition(StateConfirming)
	confirmed, err := o.gateway.WaitForTransaction(ctx, receipt.Hash)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Transaction confirmed", "hash", confirmed.Hash, "version", confirmed.Version)
	return &Result{TxHash: confirmed.Hash, Version: confirmed.Version}, nil
}

// acquire захватывает флаг занятости и переводит автомат в Validating
func (o *Orchestrator) acquire() error {
	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return ErrBusy
	}
	o.busy = true
	o.mu.Unlock()

	o.transition(StateValidating)
	return nil
}

func (o *Orchestrator) transition(s State) {
	o.mu.Lock()
	o.state = s
	observer := o.observer
	o.mu.Unlock()

	if observer != nil {
		observer(s)
	}
}

// fail проходит через Failed обратно в Idle; введённые данные сохраняются
func (o *Orchestrator) fail(err error) error {
	o.transition(StateFailed)
	if !IsValidation(err) {
		o.logger.Warn("Operation failed", "error", err)
	}
	o.release()
	return err
}

// finish сбрасывает форму, уведомляет пользователя и освобождает флаг
func (o *Orchestrator) finish(reset func(), res *Result) {
	o.mu.Lock()
	reset()
	o.mu.Unlock()

	if res.ResyncErr != nil {
		o.logger.Warn("Resync after mutation failed", "error", res.ResyncErr)
	}
	o.notifier.Notify(res.Notification)
	o.release()
}

func (o *Orchestrator) release() {
	o.transition(StateIdle)
	o.mu.Lock()
	o.busy = false
	o.mu.Unlock()
}
