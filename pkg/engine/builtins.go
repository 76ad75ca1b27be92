package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/dvriend/brickforge/pkg/brick"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms brick script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: brick-series -> brick_series
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as a true flag.
				result.kw[name] = &zygo.SexpBool{Val: true}
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toInt extracts an int from a Sexp (SexpInt or an integral SexpFloat).
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == float64(int(v.Val)) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_lego) and plain strings ("lego").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// intArg reads an integer argument by keyword name, falling back to the
// positional argument at pos, then to def. Required arguments use def < 0
// together with a validation error from the spec itself.
func intArg(pa kwArgs, key string, pos, def int) (int, error) {
	if v, ok := pa.kw[key]; ok {
		n, err := toInt(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}
	if pos >= 0 && pos < len(pa.positional) {
		n, err := toInt(pa.positional[pos])
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}
	return def, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the brick DSL builtins into a zygomys
// environment. The builtins append validated specs and settings to the
// provided batch during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, batch *brick.Batch) {

	// add validates a spec and appends it, returning its derived name so
	// scripts can print or collect it.
	add := func(fn string, spec brick.Spec) (zygo.Sexp, error) {
		if err := spec.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		batch.Add(spec)
		return &zygo.SexpStr{S: spec.Name()}, nil
	}

	// -----------------------------------------------------------------------
	// (brick :studs-x 2 :studs-y 4 :plates 3)
	// (brick 2 4 3)
	// -----------------------------------------------------------------------
	env.AddFunction("brick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Regular
		var err error
		if s.StudsX, err = intArg(pa, "studs-x", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick: %w", err)
		}
		if s.StudsY, err = intArg(pa, "studs-y", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick: %w", err)
		}
		if s.Plates, err = intArg(pa, "plates", 2, 3); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick: %w", err)
		}
		return add("brick", s)
	})

	// -----------------------------------------------------------------------
	// (corner-brick :left-length 4 :left-width 2 :bottom-length 2 :bottom-height 2 :plates 3)
	//
	// Note: registered as "corner_brick" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts corner-brick to
	// corner_brick in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("corner_brick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Corner
		var err error
		if s.LeftLength, err = intArg(pa, "left-length", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("corner-brick: %w", err)
		}
		if s.LeftWidth, err = intArg(pa, "left-width", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("corner-brick: %w", err)
		}
		if s.BottomLength, err = intArg(pa, "bottom-length", 2, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("corner-brick: %w", err)
		}
		if s.BottomHeight, err = intArg(pa, "bottom-height", 3, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("corner-brick: %w", err)
		}
		if s.Plates, err = intArg(pa, "plates", 4, 3); err != nil {
			return zygo.SexpNull, fmt.Errorf("corner-brick: %w", err)
		}
		return add("corner-brick", s)
	})

	// -----------------------------------------------------------------------
	// (holed-brick :hole-x 2 :hole-y 2 :side-x 1 :side-y 1 :plates 3)
	// -----------------------------------------------------------------------
	env.AddFunction("holed_brick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Holed
		var err error
		if s.HoleX, err = intArg(pa, "hole-x", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("holed-brick: %w", err)
		}
		if s.HoleY, err = intArg(pa, "hole-y", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("holed-brick: %w", err)
		}
		if s.SideX, err = intArg(pa, "side-x", 2, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("holed-brick: %w", err)
		}
		if s.SideY, err = intArg(pa, "side-y", 3, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("holed-brick: %w", err)
		}
		if s.Plates, err = intArg(pa, "plates", 4, 3); err != nil {
			return zygo.SexpNull, fmt.Errorf("holed-brick: %w", err)
		}
		return add("holed-brick", s)
	})

	// -----------------------------------------------------------------------
	// (pocket :studs-x 6 :studs-y 6 :inner-height 3 :floor-height 1 :floor-studs true)
	// -----------------------------------------------------------------------
	env.AddFunction("pocket", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Pocket
		var err error
		if s.StudsX, err = intArg(pa, "studs-x", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("pocket: %w", err)
		}
		if s.StudsY, err = intArg(pa, "studs-y", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("pocket: %w", err)
		}
		if s.InnerHeight, err = intArg(pa, "inner-height", 2, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("pocket: %w", err)
		}
		if s.FloorHeight, err = intArg(pa, "floor-height", 3, 1); err != nil {
			return zygo.SexpNull, fmt.Errorf("pocket: %w", err)
		}
		if v, ok := pa.kw["floor-studs"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("pocket: floor-studs: %w", err)
			}
			s.FloorStuds = b
		}
		return add("pocket", s)
	})

	// -----------------------------------------------------------------------
	// (slope-brick :studs-x 2 :studs-y 2 :plates 3 :top-studs 1)
	// -----------------------------------------------------------------------
	env.AddFunction("slope_brick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Slope
		var err error
		if s.StudsX, err = intArg(pa, "studs-x", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("slope-brick: %w", err)
		}
		if s.StudsY, err = intArg(pa, "studs-y", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("slope-brick: %w", err)
		}
		if s.Plates, err = intArg(pa, "plates", 2, 3); err != nil {
			return zygo.SexpNull, fmt.Errorf("slope-brick: %w", err)
		}
		if s.TopStuds, err = intArg(pa, "top-studs", 3, 1); err != nil {
			return zygo.SexpNull, fmt.Errorf("slope-brick: %w", err)
		}
		return add("slope-brick", s)
	})

	// -----------------------------------------------------------------------
	// (brick-series :studs-x 4 :max-studs-y 8 :plates 1)
	//
	// Expands immediately into one brick per length from studs-x up to
	// max-studs-y.
	// -----------------------------------------------------------------------
	env.AddFunction("brick_series", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var s brick.Series
		var err error
		if s.StudsX, err = intArg(pa, "studs-x", 0, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick-series: %w", err)
		}
		if s.MaxStudsY, err = intArg(pa, "max-studs-y", 1, 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick-series: %w", err)
		}
		if s.Plates, err = intArg(pa, "plates", 2, 3); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick-series: %w", err)
		}
		if err := batch.AddSeries(s); err != nil {
			return zygo.SexpNull, fmt.Errorf("brick-series: %w", err)
		}
		return &zygo.SexpInt{Val: int64(s.MaxStudsY - s.StudsX + 1)}, nil
	})

	// -----------------------------------------------------------------------
	// (set-export-dir "./out")
	// -----------------------------------------------------------------------
	env.AddFunction("set_export_dir", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("set-export-dir requires exactly 1 argument, got %d", len(args))
		}
		dir, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-export-dir: %w", err)
		}
		batch.ExportDir = dir
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (set-format :stl) or (set-format "3mf")
	// -----------------------------------------------------------------------
	env.AddFunction("set_format", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("set-format requires exactly 1 argument, got %d", len(args))
		}
		f, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-format: %w", err)
		}
		batch.Format = f
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (set-system :lego) or (set-system :duplo)
	// -----------------------------------------------------------------------
	env.AddFunction("set_system", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("set-system requires exactly 1 argument, got %d", len(args))
		}
		sys, err := toKeywordString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-system: %w", err)
		}
		if _, ok := brick.SystemByName(sys); !ok {
			return zygo.SexpNull, fmt.Errorf("set-system: unknown system %q", sys)
		}
		batch.System = sys
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (set-resolution 150)
	// -----------------------------------------------------------------------
	env.AddFunction("set_resolution", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("set-resolution requires exactly 1 argument, got %d", len(args))
		}
		n, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("set-resolution: %w", err)
		}
		if n <= 0 {
			return zygo.SexpNull, fmt.Errorf("set-resolution: resolution must be positive, got %d", n)
		}
		batch.Resolution = n
		return zygo.SexpNull, nil
	})
}
