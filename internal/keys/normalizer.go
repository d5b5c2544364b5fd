package keys

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/feral-file/ff-artbot/internal/domain"
)

// maxAliasDepth bounds alias chains that do not cycle
const maxAliasDepth = 16

// letters that do not decompose under NFD
var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O",
	"ß", "ss",
	"ð", "d", "Ð", "D",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
	"ı", "i",
)

// Normalizer maps display names to canonical lookup keys
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a normalizer with the given alias table.
// Alias sources are stripped the same way lookup keys are.
func NewNormalizer(aliases map[string]string) *Normalizer {
	table := make(map[string]string, len(aliases))
	for from, to := range aliases {
		key := strip(from)
		if key == "" {
			continue
		}
		table[key] = to
	}
	return &Normalizer{aliases: table}
}

// Normalize returns the lookup key of raw. On an alias cycle the
// smallest key of the cycle is returned so every member agrees.
func (n *Normalizer) Normalize(raw string) string {
	key, _ := n.Resolve(raw)
	return key
}

// Resolve is Normalize that also reports alias cycles and chains deeper than the bound
func (n *Normalizer) Resolve(raw string) (string, error) {
	key, alnum := stripKey(raw)
	if !alnum {
		return key, nil
	}

	var path []string
	seen := make(map[string]int)
	for {
		target, ok := n.aliases[key]
		if !ok {
			return key, nil
		}
		if at, looped := seen[key]; looped {
			return minKey(path[at:]), fmt.Errorf("%w: %s", domain.ErrAliasCycle, strings.Join(append(path[at:], key), " -> "))
		}
		if len(path) >= maxAliasDepth {
			return key, fmt.Errorf("%w: chain from %q exceeds %d aliases", domain.ErrAliasCycle, raw, maxAliasDepth)
		}
		seen[key] = len(path)
		path = append(path, key)

		next, nextAlnum := stripKey(target)
		if !nextAlnum {
			return next, nil
		}
		key = next
	}
}

// Validate checks every alias in the table for cycles
func (n *Normalizer) Validate() error {
	for from := range n.aliases {
		if _, err := n.Resolve(from); err != nil {
			return err
		}
	}
	return nil
}

// Deburr removes diacritics from s
func Deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		return s
	}
	return out
}

func strip(raw string) string {
	key, _ := stripKey(raw)
	return key
}

// stripKey returns the alphanumeric key of raw. When raw has no
// alphanumeric characters it falls back to the lowercased name
// without whitespace and reports false.
func stripKey(raw string) (string, bool) {
	lowered := strings.ToLower(Deburr(raw))

	var b strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		return b.String(), true
	}

	return strings.Join(strings.Fields(lowered), ""), false
}

func minKey(keys []string) string {
	smallest := keys[0]
	for _, k := range keys[1:] {
		if k < smallest {
			smallest = k
		}
	}
	return smallest
}
