package analyze

import (
	"testing"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

func TestResolveDeadlineText(t *testing.T) {
	// 2024-01-17 is a Wednesday.
	base := time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"today", "today", time.Date(2024, 1, 17, 17, 0, 0, 0, time.UTC)},
		{"eod", "eod", time.Date(2024, 1, 17, 17, 0, 0, 0, time.UTC)},
		{"tomorrow", "tomorrow", time.Date(2024, 1, 18, 17, 0, 0, 0, time.UTC)},
		{"this week resolves to friday", "this week", time.Date(2024, 1, 19, 17, 0, 0, 0, time.UTC)},
		{"by friday", "by friday", time.Date(2024, 1, 19, 17, 0, 0, 0, time.UTC)},
		{"next week", "next week", time.Date(2024, 1, 24, 17, 0, 0, 0, time.UTC)},
		{"in N days keeps time of day", "in 3 days", time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)},
		{"in N weeks keeps time of day", "in 2 weeks", time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)},
		{"explicit date", "1/20/2024", time.Date(2024, 1, 20, 17, 0, 0, 0, time.UTC)},
		{"explicit date no year", "3/5", time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)},
		{"two digit year below pivot", "1/20/24", time.Date(2024, 1, 20, 17, 0, 0, 0, time.UTC)},
		{"two digit year above pivot", "1/20/99", time.Date(1999, 1, 20, 17, 0, 0, 0, time.UTC)},
		{"upcoming monday", "monday", time.Date(2024, 1, 22, 17, 0, 0, 0, time.UTC)},
		{"same weekday rolls a full week", "wednesday", time.Date(2024, 1, 24, 17, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDeadlineText(tt.text, base)
			if !ok {
				t.Fatalf("ResolveDeadlineText(%q) not resolved", tt.text)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDeadlineText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDeadlineText_FridayBase(t *testing.T) {
	// "this week" on a Friday is still that same Friday.
	friday := time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC)
	got, ok := ResolveDeadlineText("this week", friday)
	if !ok {
		t.Fatal("not resolved")
	}
	want := time.Date(2024, 1, 19, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveDeadlineText_Unresolvable(t *testing.T) {
	base := time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC)
	for _, text := range []string{"in 3 months", "before the meeting", "soonish", ""} {
		if _, ok := ResolveDeadlineText(text, base); ok {
			t.Errorf("ResolveDeadlineText(%q) resolved, want unresolved", text)
		}
	}
}

func TestResolveDeadlineText_ExplicitDateIdempotent(t *testing.T) {
	// The same calendar phrase must resolve identically regardless of the
	// reference time.
	bases := []time.Time{
		time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC),
	}
	want := time.Date(2024, 1, 20, 17, 0, 0, 0, time.UTC)
	for _, base := range bases {
		got, ok := ResolveDeadlineText("1/20/2024", base)
		if !ok || !got.Equal(want) {
			t.Errorf("base %v: got %v (%v), want %v", base, got, ok, want)
		}
	}
}

func TestAnalyzeDeadlines_ExplicitWins(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("finish by 1/20/2024, ideally tomorrow", nil)

	if clues.Deadlines.Type != models.DeadlineExplicit {
		t.Errorf("type = %q, want explicit", clues.Deadlines.Type)
	}
	if clues.Deadlines.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", clues.Deadlines.Confidence)
	}
	if clues.Deadlines.OriginalText != "1/20/2024" {
		t.Errorf("original text = %q", clues.Deadlines.OriginalText)
	}
	want := time.Date(2024, 1, 20, 17, 0, 0, 0, time.UTC)
	if clues.Deadlines.ExtractedDate == nil || !clues.Deadlines.ExtractedDate.Equal(want) {
		t.Errorf("extracted date = %v, want %v", clues.Deadlines.ExtractedDate, want)
	}
}

func TestAnalyzeDeadlines_UnresolvableFallsThrough(t *testing.T) {
	// "in 3 months" matches a relative rule but cannot be resolved; the day
	// reference later in the message should win instead.
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("maybe in 3 months, or monday at the latest", nil)

	want := time.Date(2024, 1, 22, 17, 0, 0, 0, time.UTC)
	if clues.Deadlines.ExtractedDate == nil || !clues.Deadlines.ExtractedDate.Equal(want) {
		t.Errorf("extracted date = %v, want %v", clues.Deadlines.ExtractedDate, want)
	}
	if clues.Deadlines.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", clues.Deadlines.Confidence)
	}
}

func TestAnalyzeDeadlines_Default(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("no dates here", nil)

	if clues.Deadlines.ExtractedDate != nil {
		t.Errorf("extracted date = %v, want nil", clues.Deadlines.ExtractedDate)
	}
	if clues.Deadlines.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1", clues.Deadlines.Confidence)
	}
	if clues.Deadlines.Type != models.DeadlineImplied {
		t.Errorf("type = %q, want implied", clues.Deadlines.Type)
	}
}
