// Package transfer implements the chapter-unlock balance transfer: debit the reader,
// optionally credit the beneficiary, then record the receipt. Each step is a state of
// an explicit machine so that every partial failure has a defined outcome.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/repository"
	"novelhub/internal/errors"

	"github.com/google/uuid"
)

// State is a node of the transfer state machine.
type State string

const (
	StateIdle              State = "IDLE"
	StateCheckingDuplicate State = "CHECKING_DUPLICATE"
	StateDeducting         State = "DEDUCTING"
	StateCrediting         State = "CREDITING"
	StateRecording         State = "RECORDING"
	StateDone              State = "DONE"
	StateFailed            State = "FAILED"
	StateCompensateCredit  State = "COMPENSATE_CREDIT"
	StateCompensateDeduct  State = "COMPENSATE_DEDUCT"
)

// Reason classifies why a transfer failed. Reasons are for diagnostics only.
type Reason string

const (
	ReasonDuplicateCheckFailed Reason = "duplicate-check-failed"
	ReasonDeductFailed         Reason = "deduct-failed"
	ReasonBeneficiaryNotFound  Reason = "beneficiary-not-found"
	ReasonCreditFailed         Reason = "credit-failed"
	ReasonRecordFailed         Reason = "record-failed"
	ReasonCompensationFailed   Reason = "compensation-failed"
)

// Error reports a failed transfer. Err is the step failure; CompensationErr is set
// when undoing the already applied steps also failed.
type Error struct {
	Reason          Reason
	State           State
	Err             error
	CompensationErr error
}

func (e *Error) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("transfer %s at %s: %v (compensation: %v)", e.Reason, e.State, e.Err, e.CompensationErr)
	}

	return fmt.Sprintf("transfer %s at %s: %v", e.Reason, e.State, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Plan describes one unlock. A nil BeneficiaryID or a zero Share selects the
// non-revenue variant, which skips CREDITING.
type Plan struct {
	ReaderID      uuid.UUID
	NovelID       uuid.UUID
	ChapterNumber int
	Cost          int64
	BeneficiaryID *uuid.UUID
	Share         int64
}

func (p Plan) sharesRevenue() bool {
	return p.BeneficiaryID != nil && *p.BeneficiaryID != uuid.Nil && p.Share > 0
}

// Outcome is the result of a successful run.
type Outcome struct {
	Unlock          *entity.ChapterUnlock
	AlreadyUnlocked bool
	Credited        int64
	Trace           []State
}

// Machine executes plans against a repository scope.
type Machine struct {
	compensate bool
	logger     *slog.Logger
	newID      func() uuid.UUID
	now        func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithCompensation makes the machine undo applied steps itself when a later step
// fails. Leave it off when the repositories share a transaction that is rolled back.
func WithCompensation() Option {
	return func(m *Machine) {
		m.compensate = true
	}
}

// WithLogger sets the logger for transition and failure logs.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithIDGenerator overrides receipt id generation.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(m *Machine) {
		m.newID = fn
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(m *Machine) {
		m.now = fn
	}
}

// New creates a Machine.
func New(opts ...Option) *Machine {
	m := &Machine{
		logger: slog.New(slog.DiscardHandler),
		newID:  uuid.New,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// run carries the per-invocation state of the machine.
type run struct {
	m        *Machine
	plan     Plan
	profiles repository.ProfileRepository
	state    State
	trace    []State
	deducted bool
	credited bool
}

// Run drives plan from IDLE to DONE or FAILED. On failure it returns *Error.
func (m *Machine) Run(ctx context.Context, repos repository.RepositoryFactory, plan Plan) (*Outcome, error) {
	profiles := repos.NewProfileRepository()
	unlocks := repos.NewUnlockRepository()

	r := &run{m: m, plan: plan, profiles: profiles}
	r.enter(ctx, StateIdle)

	r.enter(ctx, StateCheckingDuplicate)
	existing, err := unlocks.Find(ctx, plan.ReaderID, plan.NovelID, plan.ChapterNumber)
	switch {
	case err == nil:
		r.enter(ctx, StateDone)

		return &Outcome{Unlock: existing, AlreadyUnlocked: true, Trace: r.trace}, nil
	case !errors.Is(err, repository.ErrUnlockNotFound):
		return nil, r.fail(ctx, ReasonDuplicateCheckFailed, err)
	}

	r.enter(ctx, StateDeducting)
	if err := profiles.DebitCoins(ctx, plan.ReaderID, plan.Cost); err != nil {
		return nil, r.fail(ctx, ReasonDeductFailed, err)
	}
	r.deducted = true

	if plan.sharesRevenue() {
		r.enter(ctx, StateCrediting)
		if reason, err := r.credit(ctx); err != nil {
			return nil, r.fail(ctx, reason, err)
		}
		r.credited = true
	}

	r.enter(ctx, StateRecording)
	receipt := &entity.ChapterUnlock{
		ID:            m.newID(),
		ProfileID:     plan.ReaderID,
		NovelID:       plan.NovelID,
		ChapterNumber: plan.ChapterNumber,
		Cost:          plan.Cost,
		CreatedAt:     m.now(),
	}
	if err := unlocks.Create(ctx, receipt); err != nil {
		return nil, r.fail(ctx, ReasonRecordFailed, err)
	}

	r.enter(ctx, StateDone)

	outcome := &Outcome{Unlock: receipt, Trace: r.trace}
	if r.credited {
		outcome.Credited = plan.Share
	}

	return outcome, nil
}

// credit verifies the beneficiary and adds the share to its balance.
func (r *run) credit(ctx context.Context) (Reason, error) {
	beneficiaryID := *r.plan.BeneficiaryID

	beneficiary, err := r.profiles.FindByID(ctx, beneficiaryID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ReasonBeneficiaryNotFound, err
		}

		return ReasonCreditFailed, err
	}
	if !beneficiary.Role.CanReceiveRevenue() {
		return ReasonBeneficiaryNotFound, errors.Errorf("profile %s has role %s", beneficiaryID, beneficiary.Role)
	}

	if err := r.profiles.CreditCoins(ctx, beneficiaryID, r.plan.Share); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ReasonBeneficiaryNotFound, err
		}

		return ReasonCreditFailed, err
	}

	return "", nil
}

// fail moves the machine to FAILED, compensating first when enabled.
func (r *run) fail(ctx context.Context, reason Reason, cause error) error {
	failedAt := r.state
	transferErr := &Error{Reason: reason, State: failedAt, Err: cause}

	if r.m.compensate && (r.deducted || r.credited) {
		if compErr := r.compensateApplied(ctx); compErr != nil {
			transferErr.CompensationErr = compErr
			transferErr.Reason = ReasonCompensationFailed
		}
	}

	r.enter(ctx, StateFailed)

	level := slog.LevelWarn
	if transferErr.CompensationErr != nil {
		level = slog.LevelError
	}
	r.m.logger.LogAttrs(ctx, level, "Chapter unlock transfer failed",
		slog.String("reason", string(transferErr.Reason)),
		slog.String("state", string(failedAt)),
		slog.Any("readerID", r.plan.ReaderID),
		slog.Any("novelID", r.plan.NovelID),
		slog.Int("chapterNumber", r.plan.ChapterNumber),
		slog.Int64("cost", r.plan.Cost),
		slog.Any("error", cause),
		slog.Any("compensationError", transferErr.CompensationErr),
	)

	return transferErr
}

// compensateApplied undoes applied steps in reverse order. The reader refund is
// attempted even if reverting the beneficiary credit fails.
func (r *run) compensateApplied(ctx context.Context) error {
	// Compensation must still run when the caller's context is already cancelled.
	ctx = context.WithoutCancel(ctx)

	var errs []error
	if r.credited {
		r.enter(ctx, StateCompensateCredit)
		if err := r.profiles.DebitCoins(ctx, *r.plan.BeneficiaryID, r.plan.Share); err != nil {
			errs = append(errs, errors.Wrap(err, "revert beneficiary credit"))
		} else {
			r.credited = false
		}
	}

	if r.deducted {
		r.enter(ctx, StateCompensateDeduct)
		if err := r.profiles.CreditCoins(ctx, r.plan.ReaderID, r.plan.Cost); err != nil {
			errs = append(errs, errors.Wrap(err, "refund reader"))
		} else {
			r.deducted = false
		}
	}

	return errors.Join(errs...)
}

func (r *run) enter(ctx context.Context, state State) {
	r.state = state
	r.trace = append(r.trace, state)
	r.m.logger.LogAttrs(ctx, slog.LevelDebug, "Chapter unlock transfer state",
		slog.String("state", string(state)),
		slog.Any("readerID", r.plan.ReaderID),
		slog.Int("chapterNumber", r.plan.ChapterNumber),
	)
}
