package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Validate checks that every field holds a usable CSS value. All problems are
// reported together.
func (c ExperimentConfig) Validate() error {
	errz := []error{}

	if err := validateFontColor(c.FontColor); err != nil {
		errz = append(errz, err)
	}
	if err := validateFontSize(c.FontSize); err != nil {
		errz = append(errz, err)
	}
	if err := validateFontFamily(c.FontFamily); err != nil {
		errz = append(errz, err)
	}

	if len(errz) > 0 {
		return fmt.Errorf("%w: %w", ErrFailedToValidateConfig, errors.Join(errz...))
	}
	return nil
}

func validateFontColor(value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(ErrMissingRequiredField, KeyFontColor, value)
	}
	if _, err := ParseColor(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidColor, KeyFontColor, err)
	}
	return nil
}

// lengthUnits are the CSS length units accepted for font-size
var lengthUnits = map[string]struct{}{
	"px": {}, "em": {}, "rem": {}, "ex": {}, "ch": {}, "lh": {}, "rlh": {},
	"pt": {}, "pc": {}, "in": {}, "cm": {}, "mm": {}, "q": {},
	"vw": {}, "vh": {}, "vmin": {}, "vmax": {},
	"svh": {}, "lvh": {}, "dvh": {}, "svw": {}, "lvw": {}, "dvw": {},
}

// sizeKeywords are the absolute and relative font-size keywords
var sizeKeywords = map[string]struct{}{
	"xx-small": {}, "x-small": {}, "small": {}, "medium": {}, "large": {},
	"x-large": {}, "xx-large": {}, "xxx-large": {}, "larger": {}, "smaller": {},
	"math": {},
}

// mathFunctions are the CSS functions accepted as a font-size value
var mathFunctions = map[string]struct{}{
	"calc": {}, "min": {}, "max": {}, "clamp": {},
}

func validateFontSize(value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(ErrMissingRequiredField, KeyFontSize, value)
	}

	toks, err := significantTokens(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFontSize, KeyFontSize, err)
	}
	if len(toks) > 0 && toks[0].Type == scanner.TokenFunction {
		return validateMathFunction(toks, value)
	}
	// an explicit plus sign is allowed on numeric values
	if len(toks) == 2 && toks[0].Type == scanner.TokenChar && toks[0].Value == "+" && isNumeric(toks[1]) {
		toks = toks[1:]
	}
	if len(toks) != 1 {
		return fieldError(ErrInvalidFontSize, KeyFontSize, value)
	}

	tok := toks[0]
	switch tok.Type {
	case scanner.TokenDimension, scanner.TokenPercentage:
		return checkLength(tok, value)
	case scanner.TokenNumber:
		// unitless lengths are only valid for zero
		if strings.Trim(tok.Value, "0.") != "" {
			return fmt.Errorf("%w: %s: missing unit on %q", ErrInvalidFontSize, KeyFontSize, value)
		}
		return nil
	case scanner.TokenIdent:
		kw := strings.ToLower(tok.Value)
		if _, ok := sizeKeywords[kw]; ok {
			return nil
		}
		if _, ok := globalKeywords[kw]; ok {
			return nil
		}
	}

	return fieldError(ErrInvalidFontSize, KeyFontSize, value)
}

// validateMathFunction accepts calc(), min(), max() and clamp() expressions
// built from lengths, percentages, numbers and arithmetic operators, with
// balanced parentheses and nothing after the closing one.
func validateMathFunction(toks []*scanner.Token, value string) error {
	depth := 0
	for i, tok := range toks {
		switch tok.Type {
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
			if _, ok := mathFunctions[name]; !ok {
				return fmt.Errorf("%w: %s: unsupported function %q", ErrInvalidFontSize, KeyFontSize, name)
			}
			depth++
		case scanner.TokenDimension, scanner.TokenPercentage:
			if err := checkLength(tok, value); err != nil {
				return err
			}
		case scanner.TokenNumber:
		case scanner.TokenChar:
			switch tok.Value {
			case "(":
				depth++
			case ")":
				depth--
			case "+", "-", "*", "/", ",":
			default:
				return fieldError(ErrInvalidFontSize, KeyFontSize, value)
			}
		default:
			return fieldError(ErrInvalidFontSize, KeyFontSize, value)
		}

		if depth < 0 || (depth == 0 && i != len(toks)-1) {
			return fieldError(ErrInvalidFontSize, KeyFontSize, value)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %s: unbalanced parentheses in %q", ErrInvalidFontSize, KeyFontSize, value)
	}
	return nil
}

// checkLength validates a dimension or percentage token. The tokenizer never
// folds a sign into the number, so negative values arrive as a separate "-".
func checkLength(tok *scanner.Token, value string) error {
	if tok.Type == scanner.TokenPercentage {
		return nil
	}
	_, unit := splitDimension(tok.Value)
	if _, ok := lengthUnits[strings.ToLower(unit)]; !ok {
		return fmt.Errorf("%w: %s: unknown length unit %q", ErrInvalidFontSize, KeyFontSize, unit)
	}
	return nil
}

func isNumeric(tok *scanner.Token) bool {
	switch tok.Type {
	case scanner.TokenDimension, scanner.TokenPercentage, scanner.TokenNumber:
		return true
	}
	return false
}

// validateFontFamily accepts a comma separated list where each family is a
// quoted string or a run of identifiers (e.g. Times New Roman, sans-serif).
func validateFontFamily(value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(ErrMissingRequiredField, KeyFontFamily, value)
	}

	s := scanner.New(value)
	expectFamily := true
	inIdents := false
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if expectFamily {
				return fmt.Errorf("%w: %s: trailing comma in %q", ErrInvalidFontFamily, KeyFontFamily, value)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%w: %s: %s", ErrInvalidFontFamily, KeyFontFamily, tok.Value)
		case scanner.TokenS:
			continue
		case scanner.TokenString:
			if !expectFamily || len(tok.Value) <= 2 {
				return fieldError(ErrInvalidFontFamily, KeyFontFamily, value)
			}
			expectFamily = false
			inIdents = false
		case scanner.TokenIdent:
			if !expectFamily && !inIdents {
				return fieldError(ErrInvalidFontFamily, KeyFontFamily, value)
			}
			expectFamily = false
			inIdents = true
		case scanner.TokenChar:
			if tok.Value != "," || expectFamily {
				return fieldError(ErrInvalidFontFamily, KeyFontFamily, value)
			}
			expectFamily = true
			inIdents = false
		default:
			return fieldError(ErrInvalidFontFamily, KeyFontFamily, value)
		}
	}
}

// significantTokens returns every token of value except whitespace
func significantTokens(value string) ([]*scanner.Token, error) {
	s := scanner.New(value)
	toks := []*scanner.Token{}
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return toks, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("unexpected input at column %d: %s", tok.Column, tok.Value)
		case scanner.TokenS:
			continue
		default:
			toks = append(toks, tok)
		}
	}
}

// splitDimension splits a dimension token such as "1.5rem" into "1.5" and "rem"
func splitDimension(v string) (string, string) {
	i := strings.IndexFunc(v, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i < 0 {
		return v, ""
	}
	return v[:i], v[i:]
}
