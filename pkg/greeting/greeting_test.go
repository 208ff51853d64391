package greeting

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatLunarNewYear(t *testing.T) {
	got, err := Format("2024-02-10")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "今天是2024年2月10日，星期六，农历正月初一（初一）"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormatFullMoonMarker(t *testing.T) {
	got, err := Format("2024-02-24")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(got, "（十五）") {
		t.Fatalf("Format = %q, want the 十五 marker", got)
	}
}

func TestFormatSolarTerm(t *testing.T) {
	got, err := Format("2024-02-04")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(got, "节气立春") {
		t.Fatalf("Format = %q, want the 立春 solar term", got)
	}
}

func TestFormatOrdinaryDayHasNoMarkers(t *testing.T) {
	got, err := Format("2024-03-01")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(got, "（") || strings.Contains(got, "节气") {
		t.Fatalf("Format = %q, want no marker or solar term", got)
	}
}

func TestFormatRejectsBadInput(t *testing.T) {
	_, err := Format("02/10/2024")
	if err == nil {
		t.Fatalf("expected error for non-ISO input")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}
