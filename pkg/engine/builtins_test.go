package engine

import (
	"testing"

	zygo "github.com/glycerine/zygomys/zygo"
)

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple keyword", `(brick :plates 3)`, `(brick "__kw_plates" 3)`},
		{"hyphenated keyword", `(brick :studs-x 2)`, `(brick "__kw_studs-x" 2)`},
		{"keyword in string untouched", `(set-export-dir ":keep")`, `(set_export_dir ":keep")`},
		{"assignment preserved", `(def x := 3)`, `(def x := 3)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreprocessKebabIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"function name", `(corner-brick 1 2)`, `(corner_brick 1 2)`},
		{"chained hyphens", `(brick-series 4 8)`, `(brick_series 4 8)`},
		{"minus stays minus", `(- 4 2)`, `(- 4 2)`},
		{"subtraction stays", `(brick (- x 1) y)`, `(brick (- x 1) y)`},
		{"string untouched", `"stay-hyphenated"`, `"stay-hyphenated"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreprocessComments(t *testing.T) {
	in := "; a comment with :keyword and kebab-case\n(brick 1 1)"
	want := "// a comment with :keyword and kebab-case\n(brick 1 1)"
	if got := preprocessSource(in); got != want {
		t.Errorf("preprocessSource = %q, want %q", got, want)
	}
}

func TestParseArgsSeparatesKeywords(t *testing.T) {
	args := []zygo.Sexp{
		&zygo.SexpInt{Val: 2},
		&zygo.SexpStr{S: "__kw_plates"},
		&zygo.SexpInt{Val: 3},
		&zygo.SexpInt{Val: 4},
	}

	pa := parseArgs(args)
	if len(pa.positional) != 2 {
		t.Fatalf("positional = %d, want 2", len(pa.positional))
	}
	if _, ok := pa.kw["plates"]; !ok {
		t.Fatal("missing plates keyword")
	}

	n, err := toInt(pa.kw["plates"])
	if err != nil || n != 3 {
		t.Errorf("plates = %d, %v", n, err)
	}
}

func TestParseArgsTrailingKeywordIsFlag(t *testing.T) {
	pa := parseArgs([]zygo.Sexp{&zygo.SexpStr{S: "__kw_floor-studs"}})
	v, ok := pa.kw["floor-studs"]
	if !ok {
		t.Fatal("missing flag keyword")
	}
	b, err := toBool(v)
	if err != nil || !b {
		t.Errorf("trailing keyword should read as true flag, got %v, %v", b, err)
	}
}

func TestToInt(t *testing.T) {
	if n, err := toInt(&zygo.SexpInt{Val: 42}); err != nil || n != 42 {
		t.Errorf("toInt(int) = %d, %v", n, err)
	}
	if n, err := toInt(&zygo.SexpFloat{Val: 3.0}); err != nil || n != 3 {
		t.Errorf("toInt(integral float) = %d, %v", n, err)
	}
	if _, err := toInt(&zygo.SexpFloat{Val: 3.5}); err == nil {
		t.Error("toInt should reject fractional values")
	}
	if _, err := toInt(&zygo.SexpStr{S: "3"}); err == nil {
		t.Error("toInt should reject strings")
	}
}

func TestToKeywordString(t *testing.T) {
	if s, err := toKeywordString(&zygo.SexpStr{S: "__kw_lego"}); err != nil || s != "lego" {
		t.Errorf("toKeywordString(keyword) = %q, %v", s, err)
	}
	if s, err := toKeywordString(&zygo.SexpStr{S: "duplo"}); err != nil || s != "duplo" {
		t.Errorf("toKeywordString(plain) = %q, %v", s, err)
	}
	if _, err := toKeywordString(&zygo.SexpInt{Val: 1}); err == nil {
		t.Error("toKeywordString should reject non-strings")
	}
}
