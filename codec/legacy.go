package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseLegacy parses the whitespace-delimited legacy text layout.
//
// The first skip tokens form a positional header and are discarded; at least
// skip tokens must be present. Every remaining token is parsed as a
// single-precision literal and widened to float64. A trailing f, F, d or D
// type suffix is accepted. Non-numeric and non-finite tokens, and tokens
// with digit separators, fail with ErrMalformedEncoding.
func ParseLegacy(s string, skip int) ([]float64, error) {
	tokens := strings.Fields(s)
	if len(tokens) < skip {
		return nil, fmt.Errorf("%w: expected at least %d header tokens, got %d", ErrMalformedEncoding, skip, len(tokens))
	}

	values := make([]float64, 0, len(tokens)-skip)
	for i, tok := range tokens[skip:] {
		f, err := parseFloat32(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %w", ErrMalformedEncoding, skip+i, tok, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: token %d %q is not finite", ErrMalformedEncoding, skip+i, tok)
		}
		values = append(values, f)
	}
	return values, nil
}

func parseFloat32(tok string) (float64, error) {
	if strings.ContainsRune(tok, '_') {
		return 0, errors.New("digit separators are not allowed")
	}
	if n := len(tok); n > 1 {
		switch tok[n-1] {
		case 'f', 'F', 'd', 'D':
			tok = tok[:n-1]
		}
	}
	return strconv.ParseFloat(tok, 32)
}
