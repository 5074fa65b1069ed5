package placement

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/kimjansheden/logo/pkg/edge"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   edge.Proximity
		want Directive
	}{
		{"nothing", edge.Proximity{}, Directive{Below, Centered}},
		{"bottom", edge.Proximity{Bottom: true}, Directive{Above, Centered}},
		{"left", edge.Proximity{Left: true}, Directive{Below, LeftAligned}},
		{"right", edge.Proximity{Right: true}, Directive{Below, RightAligned}},
		{"bottom left", edge.Proximity{Bottom: true, Left: true}, Directive{Above, LeftAligned}},
		{"bottom right", edge.Proximity{Bottom: true, Right: true}, Directive{Above, RightAligned}},
		{"left wins over right", edge.Proximity{Left: true, Right: true}, Directive{Below, LeftAligned}},
		{"all three", edge.Proximity{Bottom: true, Left: true, Right: true}, Directive{Above, LeftAligned}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveFromClasses(t *testing.T) {
	tests := []struct {
		classes string
		want    Directive
	}{
		{"fixed bottom-0 left-0", Directive{Above, LeftAligned}},
		{"fixed bottom-0 right-0", Directive{Above, RightAligned}},
		{"fixed top-0 left-0", Directive{Below, LeftAligned}},
		{"fixed top-0 right-0", Directive{Below, RightAligned}},
		{"fixed sm:bottom-4 md:right-6 lg:left-2", Directive{Above, LeftAligned}},
		{"fixed bottom-5 left-10", Directive{Above, Centered}},
		{"h-8 w-8", Directive{Below, Centered}},
		{"", Directive{Below, Centered}},
	}

	for _, tt := range tests {
		t.Run(tt.classes, func(t *testing.T) {
			p := edge.Detect(strings.Fields(tt.classes), edge.DefaultTolerances())
			if got := Resolve(p); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.classes, got, tt.want)
			}
		})
	}
}

func TestDirectiveClasses(t *testing.T) {
	tests := []struct {
		d    Directive
		want []string
	}{
		{Directive{Below, Centered}, []string{"top-full", "mt-2", "left-1/2", "-translate-x-1/2"}},
		{Directive{Above, LeftAligned}, []string{"bottom-full", "mb-2", "left-0"}},
		{Directive{Above, RightAligned}, []string{"bottom-full", "mb-2", "right-0"}},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Classes(); !slices.Equal(got, tt.want) {
				t.Errorf("Classes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassesAreFresh(t *testing.T) {
	d := Directive{Above, LeftAligned}
	first := d.Classes()
	first[0] = "mutated"
	if got := d.Classes()[0]; got != "bottom-full" {
		t.Errorf("Classes()[0] = %q after mutating an earlier result", got)
	}
}

func TestStrings(t *testing.T) {
	if s := (Directive{Above, RightAligned}).String(); s != "above/right" {
		t.Errorf("String() = %q, want %q", s, "above/right")
	}
	if s := (Directive{}).String(); s != "below/center" {
		t.Errorf("zero Directive String() = %q, want %q", s, "below/center")
	}
}

func TestDirectiveJSON(t *testing.T) {
	for _, d := range []Directive{
		{Below, Centered},
		{Above, LeftAligned},
		{Above, RightAligned},
	} {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("json.Marshal(%v) error: %v", d, err)
		}
		var got Directive
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) error: %v", data, err)
		}
		if got != d {
			t.Errorf("decoded %s as %v, want %v", data, got, d)
		}
	}

	var d Directive
	if err := json.Unmarshal([]byte(`{"vertical":"sideways"}`), &d); err == nil {
		t.Error("unknown vertical placement should fail to decode")
	}
}
