package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-01-01", want: New(2023, time.January, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2023-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSub(t *testing.T) {
	t0 := New(2023, time.January, 1)
	testCases := []struct {
		d    Date
		want int
	}{
		{d: t0, want: 0},
		{d: t0.Add(1), want: 1},
		{d: New(2024, time.January, 1), want: 365},
		{d: t0.Add(-2), want: -2},
	}
	for _, tc := range testCases {
		if got := tc.d.Sub(t0); got != tc.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tc.d, t0, got, tc.want)
		}
	}
}

func TestAddNormalizes(t *testing.T) {
	d := New(2023, time.December, 31).Add(1)
	if want := New(2024, time.January, 1); d != want {
		t.Errorf("Add(1) = %v, want %v", d, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2023, time.January, 1), New(2023, time.January, 31))
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Errorf("Range %v must include its bounds", r)
	}
	if r.Contains(r.From.Add(-1)) {
		t.Errorf("Range %v must not include %v", r, r.From.Add(-1))
	}
	if r.Contains(r.To.Add(1)) {
		t.Errorf("Range %v must not include %v", r, r.To.Add(1))
	}
}
