package app

import (
	"fmt"

	"github.com/randomtoy/kinun-go/internal/domain"
	"github.com/randomtoy/kinun-go/internal/line"
)

// Result is a diagnosis with everything needed to render and share it.
type Result struct {
	Diagnosis    domain.Diagnosis
	TypeName     string
	Message      string
	MessageURL   string
	AddFriendURL string
}

// DiagnosisService turns birth dates into shareable results.
type DiagnosisService struct {
	links line.Links
}

func NewDiagnosisService(links line.Links) *DiagnosisService {
	return &DiagnosisService{links: links}
}

// Diagnose validates the date before computing anything; calendar-invalid
// input returns domain.ErrInvalidDate.
func (s *DiagnosisService) Diagnose(year, month, day int) (Result, error) {
	date, err := domain.NewBirthDate(year, month, day)
	if err != nil {
		return Result{}, fmt.Errorf("birth date: %w", err)
	}
	return s.render(domain.Diagnose(date)), nil
}

func (s *DiagnosisService) render(dx domain.Diagnosis) Result {
	msg := domain.FormatMessage(dx.Archetype, dx.Date)
	return Result{
		Diagnosis:    dx,
		TypeName:     domain.TypeName(dx.Archetype),
		Message:      msg,
		MessageURL:   s.links.MessageURL(msg),
		AddFriendURL: s.links.AddFriendURL(),
	}
}

func (s *DiagnosisService) Archetypes() []domain.Archetype {
	return domain.Catalog()
}

func (s *DiagnosisService) Links() line.Links {
	return s.links
}
