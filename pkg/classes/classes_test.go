package classes

import (
	"slices"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		token string
		want  Category
	}{
		{"fixed", Positioning},
		{"absolute", Positioning},
		{"relative", Positioning},
		{"static", Positioning},
		{"sticky", Positioning},
		{"bottom-4", Offset},
		{"top-0", Offset},
		{"left-10", Offset},
		{"right-0", Offset},
		{"inset-0", Offset},
		{"z-10", Offset},
		{"block", Display},
		{"hidden", Display},
		{"inline-flex", Display},
		{"flow-root", Display},
		{"sm:inline-block", Display},
		{"lg:flex", Display},
		{"2xl:grid", Display},
		{"mt-auto", Spacing},
		{"mb-4", Spacing},
		{"m-2", Spacing},
		{"mx-auto", Spacing},
		{"px-2", Spacing},
		{"py-1", Spacing},
		{"p-4", Spacing},
		{"self-end", Spacing},
		{"justify-self-end", Spacing},
		{"place-self-center", Spacing},
		{"h-16", Subject},
		{"w-16", Subject},
		{"opacity-80", Subject},
		{"sm:h-12", Subject},
		{"fixd", Subject},
		{"Fixed", Subject},
		{"blocky", Subject},
		{"xs:block", Subject},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := CategoryOf(tt.token); got != tt.want {
				t.Errorf("CategoryOf(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantContainer []string
		wantSubject   []string
	}{
		{
			name:          "positioning to container",
			input:         "fixed bottom-4 right-4",
			wantContainer: []string{"fixed", "bottom-4", "right-4"},
		},
		{
			name:          "absolute with size",
			input:         "absolute top-0 left-0 h-20 w-20 z-10",
			wantContainer: []string{"absolute", "top-0", "left-0", "z-10"},
			wantSubject:   []string{"h-20", "w-20"},
		},
		{
			name:          "flex and spacing",
			input:         "mt-auto mb-4 self-end",
			wantContainer: []string{"mt-auto", "mb-4", "self-end"},
		},
		{
			name:          "mixed",
			input:         "fixed top-4 left-4 h-16 w-16 mt-2",
			wantContainer: []string{"fixed", "top-4", "left-4", "mt-2"},
			wantSubject:   []string{"h-16", "w-16"},
		},
		{
			name:        "responsive sizes stay on image",
			input:       "h-4 w-4 sm:h-12 sm:w-12 md:h-16 md:w-16",
			wantSubject: []string{"h-4", "w-4", "sm:h-12", "sm:w-12", "md:h-16", "md:w-16"},
		},
		{
			name:          "irregular whitespace",
			input:         "  h-8   w-8  mt-4  ",
			wantContainer: []string{"mt-4"},
			wantSubject:   []string{"h-8", "w-8"},
		},
		{
			name:          "tabs and newlines",
			input:         "fixed\th-8\n\tm-2",
			wantContainer: []string{"fixed", "m-2"},
			wantSubject:   []string{"h-8"},
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if !slices.Equal(got.Container, tt.wantContainer) {
				t.Errorf("Container = %v, want %v", got.Container, tt.wantContainer)
			}
			if !slices.Equal(got.Subject, tt.wantSubject) {
				t.Errorf("Subject = %v, want %v", got.Subject, tt.wantSubject)
			}
		})
	}
}

func TestClassifyPartition(t *testing.T) {
	inputs := []string{
		"",
		"fixed bottom-0 m-2",
		"  a  b   c ",
		"block hidden sm:inline-block md:block lg:flex h-8 opacity-50 foo",
		"self-start justify-self-end place-self-center ring-2 rounded-full",
	}

	for _, in := range inputs {
		r := Classify(in)
		tokens := Tokenize(in)

		if r.Len() != len(tokens) {
			t.Errorf("Classify(%q): %d tokens classified, want %d", in, r.Len(), len(tokens))
		}
		for _, c := range r.Container {
			if slices.Contains(r.Subject, c) {
				t.Errorf("Classify(%q): %q in both container and subject", in, c)
			}
		}
		again := Classify(in)
		if !slices.Equal(r.Container, again.Container) || !slices.Equal(r.Subject, again.Subject) {
			t.Errorf("Classify(%q) not idempotent: %+v vs %+v", in, r, again)
		}
	}
}

func TestTrimResponsive(t *testing.T) {
	tests := map[string]string{
		"md:block":  "block",
		"2xl:flex":  "flex",
		"block":     "block",
		"hover:h-8": "hover:h-8",
		"sm:":       "",
	}
	for in, want := range tests {
		if got := TrimResponsive(in); got != want {
			t.Errorf("TrimResponsive(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if Spacing.String() != "spacing" {
		t.Errorf("Spacing.String() = %q", Spacing.String())
	}
	if Category(99).String() != "unknown" {
		t.Errorf("Category(99).String() = %q", Category(99).String())
	}
	if Subject.IsContainer() {
		t.Error("Subject.IsContainer() = true")
	}
	if !Offset.IsContainer() {
		t.Error("Offset.IsContainer() = false")
	}
}

func TestExplain(t *testing.T) {
	got := Explain(" fixed  h-8 md:block ")
	want := []Token{
		{Value: "fixed", Category: Positioning},
		{Value: "h-8", Category: Subject},
		{Value: "md:block", Category: Display},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Explain() = %v, want %v", got, want)
	}
	if len(Explain("")) != 0 {
		t.Error("Explain(\"\") should be empty")
	}
}

func TestCategoryUnmarshalText(t *testing.T) {
	for c := Subject; c <= Spacing; c++ {
		text, _ := c.MarshalText()
		var got Category
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != c {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, c)
		}
	}
	var c Category
	if err := c.UnmarshalText([]byte("margin")); err == nil {
		t.Error("unknown name should fail")
	}
}
