package app

import (
	"context"
	"fmt"

	"github.com/randomtoy/kinun-go/internal/domain"
	"github.com/randomtoy/kinun-go/internal/ports"
)

// State is a step of the diagnosis flow.
type State int

const (
	StateIntro State = iota
	StateForm
	StateResult
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateForm:
		return "form"
	case StateResult:
		return "result"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Features toggles the optional share collaborators.
type Features struct {
	QR        bool
	Clipboard bool
}

// QRView is what the share modal shows. Text is empty when the encoder
// failed, in which case FallbackURL points at a hosted QR image.
type QRView struct {
	AddFriendURL string
	Text         string
	FallbackURL  string
}

// Session drives one user through intro, form and result, and owns the
// current result between submit and retry. It is not safe for concurrent use.
type Session struct {
	svc       *DiagnosisService
	form      FormOptions
	features  Features
	clipboard ports.Clipboard
	qr        ports.QREncoder

	state   State
	current *Result
}

// NewSession creates a session in StateIntro. A nil collaborator disables
// its feature regardless of the flag.
func NewSession(svc *DiagnosisService, form FormOptions, features Features, cb ports.Clipboard, qr ports.QREncoder) *Session {
	if cb == nil {
		features.Clipboard = false
	}
	if qr == nil {
		features.QR = false
	}
	return &Session{
		svc:       svc,
		form:      form,
		features:  features,
		clipboard: cb,
		qr:        qr,
		state:     StateIntro,
	}
}

func (s *Session) State() State         { return s.state }
func (s *Session) Options() FormOptions { return s.form }
func (s *Session) Features() Features   { return s.features }

// Open moves from the intro to the form.
func (s *Session) Open() error {
	if s.state != StateIntro {
		return fmt.Errorf("open from %s: %w", s.state, domain.ErrInvalidTransition)
	}
	s.state = StateForm
	return nil
}

// Submit validates in and, on success, stores the result and shows it.
// On any validation error the session stays on the form.
func (s *Session) Submit(in FormInput) (Result, error) {
	if s.state != StateForm {
		return Result{}, fmt.Errorf("submit from %s: %w", s.state, domain.ErrInvalidTransition)
	}
	year, month, day, err := s.form.Parse(in)
	if err != nil {
		return Result{}, err
	}
	res, err := s.svc.Diagnose(year, month, day)
	if err != nil {
		return Result{}, err
	}
	s.current = &res
	s.state = StateResult
	return res, nil
}

// Retry discards the current result and returns to the form.
func (s *Session) Retry() error {
	if s.state != StateResult {
		return fmt.Errorf("retry from %s: %w", s.state, domain.ErrInvalidTransition)
	}
	s.current = nil
	s.state = StateForm
	return nil
}

func (s *Session) Current() (Result, bool) {
	if s.current == nil {
		return Result{}, false
	}
	return *s.current, true
}

// Preview returns the share message for the current result.
func (s *Session) Preview() (string, error) {
	res, ok := s.Current()
	if !ok {
		return "", domain.ErrNoResult
	}
	return res.Message, nil
}

// Copy puts the share message on the clipboard. Failure is reported as
// domain.ErrCopyFailed and leaves the session untouched.
func (s *Session) Copy(ctx context.Context) error {
	if !s.features.Clipboard {
		return fmt.Errorf("clipboard: %w", domain.ErrFeatureDisabled)
	}
	msg, err := s.Preview()
	if err != nil {
		return err
	}
	if err := s.clipboard.Copy(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCopyFailed, err)
	}
	return nil
}

// QR renders the add-friend link for the share modal.
func (s *Session) QR() (QRView, error) {
	if !s.features.QR {
		return QRView{}, fmt.Errorf("qr: %w", domain.ErrFeatureDisabled)
	}
	res, ok := s.Current()
	if !ok {
		return QRView{}, domain.ErrNoResult
	}
	view := QRView{AddFriendURL: res.AddFriendURL}
	text, err := s.qr.Text(res.AddFriendURL)
	if err != nil {
		view.FallbackURL = s.svc.Links().QRFallbackURL()
		return view, nil
	}
	view.Text = text
	return view, nil
}
