package content

import (
	"math"
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "millions", in: 2500000, want: "2.5M"},
		{name: "exact million", in: 1000000, want: "1.0M"},
		{name: "thousands", in: 1500, want: "1.5K"},
		{name: "exact thousand", in: 1000, want: "1.0K"},
		{name: "small integer", in: 45, want: "45"},
		{name: "zero", in: 0, want: "0"},
		{name: "fraction below thousand", in: 98.7, want: "98.7"},
		{name: "just below thousand", in: 999, want: "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatEntryDisplay(t *testing.T) {
	t.Parallel()

	t.Run("large target is abbreviated", func(t *testing.T) {
		t.Parallel()
		s := StatEntry{Value: 2500000, Suffix: "+"}
		if got := s.Display(1250000); got != "1.3M+" && got != "1.2M+" {
			t.Errorf("unexpected display %q", got)
		}
		if got := s.Display(0); got != "0+" {
			t.Errorf("expected 0+, got %q", got)
		}
		if got := s.Final(); got != "2.5M+" {
			t.Errorf("expected 2.5M+, got %q", got)
		}
	})

	t.Run("small target stays integral", func(t *testing.T) {
		t.Parallel()
		s := StatEntry{Value: 98.7, Suffix: "%"}
		if got := s.Final(); got != "98%" {
			t.Errorf("expected 98%%, got %q", got)
		}
	})

	t.Run("prefix is kept", func(t *testing.T) {
		t.Parallel()
		s := StatEntry{Value: 45, Prefix: "~"}
		if got := s.Display(12); got != "~12" {
			t.Errorf("expected ~12, got %q", got)
		}
	})
}

func TestStatEntryFinalOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"negative settles on zero", -5, "0"},
		{"NaN settles on zero", math.NaN(), "0"},
		{"infinite saturates", math.Inf(1), "9223372036854.8M"},
		{"beyond int64 saturates", 1e20, "9223372036854.8M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StatEntry{Value: tt.value}.Final()
			if got != tt.want {
				t.Errorf("Final() = %q, want %q", got, tt.want)
			}
			if strings.HasPrefix(got, "-") {
				t.Errorf("Final() went negative: %q", got)
			}
		})
	}
}

func TestFormatVolume(t *testing.T) {
	t.Parallel()

	if got := FormatVolume(1450); got != "1,450cc" {
		t.Errorf("FormatVolume(1450) = %q, want %q", got, "1,450cc")
	}
	if got := FormatVolume(980); got != "980cc" {
		t.Errorf("FormatVolume(980) = %q, want %q", got, "980cc")
	}
}
