package app_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/domain"
	"github.com/randomtoy/kinun-go/internal/line"
)

func testService(t *testing.T) *app.DiagnosisService {
	t.Helper()
	links, err := line.New(line.DefaultAccountID)
	if err != nil {
		t.Fatalf("line.New: %v", err)
	}
	return app.NewDiagnosisService(links)
}

func TestDiagnose_Success(t *testing.T) {
	svc := testService(t)

	res, err := svc.Diagnose(1990, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Diagnosis.Archetype.Index != 8 {
		t.Errorf("expected index 8, got %d", res.Diagnosis.Archetype.Index)
	}
	if res.TypeName != "【大海のクジラ】タイプ" {
		t.Errorf("unexpected type name: %s", res.TypeName)
	}
	if res.AddFriendURL != "https://line.me/R/ti/p/@042rsqoj" {
		t.Errorf("unexpected add friend url: %s", res.AddFriendURL)
	}

	u, err := url.Parse(res.MessageURL)
	if err != nil {
		t.Fatalf("parse message url: %v", err)
	}
	if got := u.Query().Get("text"); got != res.Message {
		t.Errorf("decoded text %q != message %q", got, res.Message)
	}
}

func TestDiagnose_InvalidDate(t *testing.T) {
	svc := testService(t)

	_, err := svc.Diagnose(2001, 2, 30)
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestArchetypes(t *testing.T) {
	svc := testService(t)
	if n := len(svc.Archetypes()); n != domain.StemCount {
		t.Fatalf("expected %d archetypes, got %d", domain.StemCount, n)
	}
}
