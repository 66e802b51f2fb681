package mutation

// State состояние конечного автомата мутации
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirming State = "confirming"
	StateResyncing  State = "resyncing"
	StateFailed     State = "failed"
)
