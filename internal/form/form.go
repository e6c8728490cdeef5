package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrFormClosed         = errors.New("the form is closed")
	ErrFormBusy           = errors.New("the form cannot be changed while it is being submitted")
	ErrSubmissionInFlight = errors.New("the form is already being submitted")
)

// State is the lifecycle state of a form.
type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
)

// Mode defines if a form creates a new transaction or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// SubmissionError is returned when the finance API rejected the submission.
// The draft is kept so that the user can correct it and retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("the transaction could not be saved: %s", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Submitter saves transactions. It is implemented by client.TransactionService.
type Submitter interface {
	Create(ctx context.Context, request client.TransactionRequest) (client.Transaction, error)
	Update(ctx context.Context, id string, request client.TransactionRequest) (client.Transaction, error)
}

var _ Submitter = client.TransactionService{}

// Form is a transaction form that owns its draft exclusively.
//
// At most one submission is in flight at any time. While it is, the draft
// cannot be changed and further submissions are rejected.
type Form struct {
	mu sync.Mutex

	id            uuid.UUID
	mode          Mode
	transactionID string
	state         State
	draft         Draft
	errors        FieldErrors
	categories    []client.Category
	lastActive    time.Time
}

// NewCreate opens a form for a new transaction.
func NewCreate(today types.Date) *Form {
	return &Form{
		id:         uuid.New(),
		mode:       ModeCreate,
		state:      StateOpen,
		draft:      NewDraft(today),
		lastActive: time.Now(),
	}
}

// NewEdit opens a form to edit the transaction.
func NewEdit(t client.Transaction) *Form {
	return &Form{
		id:            uuid.New(),
		mode:          ModeEdit,
		transactionID: t.ID,
		state:         StateOpen,
		draft:         Hydrate(t),
		lastActive:    time.Now(),
	}
}

// ID returns the ID of the form.
func (f *Form) ID() uuid.UUID {
	return f.id
}

// SetCategories sets the categories the draft is validated against.
//
// Without categories, the category is only checked for presence.
func (f *Form) SetCategories(categories []client.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.categories = categories
}

// Apply applies the event to the draft.
func (f *Form) Apply(e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateClosed:
		return ErrFormClosed
	case StateSubmitting:
		return ErrFormBusy
	}

	f.draft = Reduce(f.draft, e)
	return nil
}

// Submit validates the draft and saves it with the submitter.
//
// If the draft is invalid, FieldErrors is returned and nothing is sent.
// If the submitter fails, a *SubmissionError is returned and the form
// stays open with the draft unchanged. On success, the form is closed.
//
// The lock is not held while the submitter runs. Callers should pass a
// context that is not cancelled when the caller goes away, a submission
// cannot be cancelled once started.
func (f *Form) Submit(ctx context.Context, s Submitter) (client.Transaction, error) {
	f.mu.Lock()

	switch f.state {
	case StateClosed:
		f.mu.Unlock()
		return client.Transaction{}, ErrFormClosed
	case StateSubmitting:
		f.mu.Unlock()
		return client.Transaction{}, ErrSubmissionInFlight
	}

	f.state = StateValidating

	var (
		valid ValidDraft
		errs  FieldErrors
	)
	if f.categories != nil {
		valid, errs = ValidateWithCategories(f.draft, f.categories)
	} else {
		valid, errs = Validate(f.draft)
	}

	if errs != nil {
		f.errors = errs
		f.state = StateOpen
		f.mu.Unlock()
		return client.Transaction{}, errs
	}

	request, err := ToRequest(valid)
	if err != nil {
		f.state = StateOpen
		f.mu.Unlock()
		return client.Transaction{}, err
	}

	f.errors = nil
	f.state = StateSubmitting
	mode, id := f.mode, f.transactionID
	f.mu.Unlock()

	var t client.Transaction
	if mode == ModeEdit {
		t, err = s.Update(ctx, id, request)
	} else {
		t, err = s.Create(ctx, request)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		log.Debug().Err(err).Str("form", f.id.String()).Msg("submission failed")
		f.state = StateOpen
		return client.Transaction{}, &SubmissionError{Err: err}
	}

	f.state = StateClosed
	return t, nil
}

// Cancel closes the form and discards the draft.
func (f *Form) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrFormBusy
	}

	f.state = StateClosed
	f.draft = Draft{}
	f.errors = nil
	return nil
}

// Snapshot is a consistent view of a form at one point in time.
type Snapshot struct {
	ID            uuid.UUID
	Mode          Mode
	State         State
	TransactionID string
	Draft         Draft
	Errors        FieldErrors
	Categories    []client.Category
}

// Snapshot returns the current state of the form.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}

	return Snapshot{
		ID:            f.id,
		Mode:          f.mode,
		State:         f.state,
		TransactionID: f.transactionID,
		Draft:         f.draft,
		Errors:        errs,
		Categories:    f.categories,
	}
}

// touch marks the form as used.
func (f *Form) touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastActive = now
}

// idleSince reports whether the form has not been used since t.
// Forms being submitted are never idle.
func (f *Form) idleSince(t time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state != StateSubmitting && f.lastActive.Before(t)
}
