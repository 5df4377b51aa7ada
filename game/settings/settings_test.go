package settings

import (
	"errors"
	"testing"
)

func TestDefaultsWithinRanges(t *testing.T) {
	defaults := Defaults()
	for _, f := range Fields {
		value := f.Get(&defaults)
		if value < f.Min || value > f.Max {
			t.Fatalf("default %s=%f outside [%f,%f]", f.Name, value, f.Min, f.Max)
		}
	}
}

func TestFieldNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields {
		if seen[f.Name] {
			t.Fatalf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestFieldAccessorsRoundTrip(t *testing.T) {
	s := Defaults()
	for _, f := range Fields {
		f.Set(&s, f.Max)
		if got := f.Get(&s); got != f.Max {
			t.Fatalf("%s: set %f, got back %f", f.Name, f.Max, got)
		}
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	err := Validate(map[string]float64{"fire_damage_base": 51})
	var rangeErr *ValidationError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if rangeErr.Field != "fire_damage_base" || rangeErr.Min != 1 || rangeErr.Max != 50 {
		t.Fatalf("unexpected error payload: %+v", rangeErr)
	}
}

func TestValidateRejectsUnknownField(t *testing.T) {
	err := Validate(map[string]float64{"nonexistent": 1})
	var unknownErr *UnknownFieldError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
}

func TestValidateWholeUpdateRejected(t *testing.T) {
	// One bad field rejects the batch even when others are valid.
	err := Validate(map[string]float64{
		"fire_damage_base":   20,
		"fire_spread_chance": 1.5,
	})
	if err == nil {
		t.Fatal("expected rejection")
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	if err := Validate(map[string]float64{"fire_spread_chance": 0}); err != nil {
		t.Fatalf("minimum must be accepted: %v", err)
	}
	if err := Validate(map[string]float64{"fire_spread_chance": 1}); err != nil {
		t.Fatalf("maximum must be accepted: %v", err)
	}
}

func TestValuesAndRangesCoverRegistry(t *testing.T) {
	values := Values(Defaults())
	ranges := Ranges()
	if len(values) != len(Fields) || len(ranges) != len(Fields) {
		t.Fatalf("expected %d entries, got %d values and %d ranges", len(Fields), len(values), len(ranges))
	}
	for _, f := range Fields {
		if _, ok := values[f.Name]; !ok {
			t.Fatalf("missing value for %s", f.Name)
		}
		if _, ok := ranges[f.Name]; !ok {
			t.Fatalf("missing range for %s", f.Name)
		}
	}
}
