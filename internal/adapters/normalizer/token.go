package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/pool"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// TokenNormalizer implements the preprocessing applied before token
// alignment: collapse whitespace runs to single spaces, upper-case, and trim
// both ends.
type TokenNormalizer struct{}

// NewTokenNormalizer creates a new token normalizer.
func NewTokenNormalizer() ports.Normalizer {
	return &TokenNormalizer{}
}

// Normalize collapses internal whitespace, upper-cases, and trims the text.
func (n *TokenNormalizer) Normalize(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// FastTokenNormalizer offers the same normalization with a precomputed
// decision table for ASCII characters and pooled builders, for callers that
// normalize in a hot loop.
type FastTokenNormalizer struct {
	// Precomputed ASCII decisions.
	// 0 = keep as is
	// 1 = whitespace
	// 2 = convert to upper case
	asciiTable [128]byte

	builderPool *pool.StringBuilderPool
}

// NewFastTokenNormalizer creates a new fast token normalizer.
func NewFastTokenNormalizer() ports.Normalizer {
	n := &FastTokenNormalizer{
		builderPool: pool.NewStringBuilderPool(),
	}
	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r':
			n.asciiTable[i] = 1
		case b >= 'a' && b <= 'z':
			n.asciiTable[i] = 2
		default:
			n.asciiTable[i] = 0
		}
	}
	return n
}

// Normalize collapses internal whitespace, upper-cases, and trims the text.
func (n *FastTokenNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// Fast path for pure ASCII, which covers the English-only strings the
	// aligner feeds in.
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}
	if !asciiOnly {
		return strings.ToUpper(strings.Join(strings.Fields(text), " "))
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)
	sb.Grow(len(text))

	pendingSpace := false
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch n.asciiTable[b] {
		case 1:
			// Defer the space until the next word so the result stays trimmed.
			if sb.Len() > 0 {
				pendingSpace = true
			}
		case 2:
			if pendingSpace {
				sb.WriteByte(' ')
				pendingSpace = false
			}
			sb.WriteByte(b - ('a' - 'A'))
		default:
			if pendingSpace {
				sb.WriteByte(' ')
				pendingSpace = false
			}
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
