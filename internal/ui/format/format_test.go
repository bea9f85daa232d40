package format

import (
	"math"
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "integer", in: 58849, want: "58849"},
		{name: "negative integer", in: -12, want: "-12"},
		{name: "fraction", in: 2.3456789, want: "2.346"},
		{name: "small", in: 0.0000125, want: "1.25e-05"},
		{name: "large", in: 123456789.5, want: "1.235e+08"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "inf", in: math.Inf(1), want: "+Inf"},
		{name: "negative inf", in: math.Inf(-1), want: "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.in); got != tt.want {
				t.Fatalf("Number(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		span time.Duration
		want string
	}{
		{span: time.Hour, want: "01-02 15:04"},
		{span: 2 * 24 * time.Hour, want: "01-02 15:04"},
		{span: 30 * 24 * time.Hour, want: "2006-01-02"},
		{span: 5 * 365 * 24 * time.Hour, want: "2006-01"},
	}

	for _, tt := range tests {
		if got := TimeLayout(tt.span); got != tt.want {
			t.Fatalf("TimeLayout(%v) = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestUnixLabel(t *testing.T) {
	sec := float64(time.Date(2020, 2, 29, 12, 30, 0, 0, time.UTC).Unix())
	if got := UnixLabel(sec, "2006-01-02 15:04"); got != "2020-02-29 12:30" {
		t.Fatalf("UnixLabel() = %q", got)
	}
	if got := UnixLabel(math.NaN(), "2006"); got != "" {
		t.Fatalf("UnixLabel(NaN) = %q, want empty", got)
	}
}
