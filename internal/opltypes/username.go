package opltypes

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	hiraganaStart = 0x3041
	hiraganaEnd   = 0x3096
	katakanaStart = 0x30A1
)

// hiraToKataChar shifts a Hiragana code point to its Katakana equivalent;
// any other character passes through unchanged.
func hiraToKataChar(r rune) rune {
	if r >= hiraganaStart && r <= hiraganaEnd {
		return r + (katakanaStart - hiraganaStart)
	}
	return r
}

func hiraToKata(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(hiraToKataChar(r))
	}
	return b.String()
}

// isUsernameException reports whether a character is silently dropped
// rather than transliterated when building a username.
func isUsernameException(r rune) bool {
	switch r {
	case ' ', '\\', '#', '.', '-', '\'':
		return true
	default:
		return false
	}
}

// explicitAccentFold is the hand-maintained table of accented Latin
// letters (and the few multi-character and non-decomposing cases like ß,
// æ, þ, ð/đ, ı, and the Turkish combining dot above) that a generic
// Unicode decomposition either gets wrong or can't reach at all — ported
// directly from usernames.rs's convert_to_ascii match arms.
var explicitAccentFold = map[rune]string{
	'á': "a", 'ä': "a", 'å': "a", 'ą': "a", 'ã': "a", 'à': "a", 'â': "a", 'ā': "a",
	'ắ': "a", 'ấ': "a", 'ầ': "a", 'ặ': "a", 'ạ': "a", 'ă': "a", 'ả': "a", 'ậ': "a", 'ằ': "a",
	'æ': "ae",
	'ć': "c", 'ç': "c", 'č': "c", 'ĉ': "c", 'ċ': "c",
	'đ': "d", 'ð': "d", 'ď': "d",
	'é': "e", 'ê': "e", 'ë': "e", 'è': "e", 'ě': "e", 'ę': "e", 'ē': "e",
	'ế': "e", 'ễ': "e", 'ể': "e", 'ề': "e", 'ệ': "e", 'ė': "e", 'ə': "e",
	'ğ': "g", 'ģ': "g",
	'î': "i", 'í': "i", 'ï': "i", 'ì': "i", 'ї': "i", 'ī': "i", 'ĩ': "i", 'ị': "i", 'ı': "i",
	'ķ': "k",
	'ľ': "l", 'ĺ': "l", 'ļ': "l", 'ŀ': "l", 'ł': "l",
	'ñ': "n", 'ń': "n", 'ň': "n", 'ņ': "n",
	'ø': "o", 'ô': "o", 'ö': "o", 'ó': "o", 'ő': "o", 'õ': "o", 'ò': "o", 'ỗ': "o",
	'ọ': "o", 'ơ': "o", 'ồ': "o", 'ớ': "o", 'ố': "o", 'ō': "o", 'ŏ': "o", 'ờ': "o", 'ộ': "o",
	'ř': "r",
	'ß': "ss",
	'š': "s", 'ś': "s", 'ș': "s", 'ş': "s",
	'ț': "t", 'ť': "t", 'ţ': "t",
	'þ': "th",
	'ü': "u", 'ů': "u", 'ú': "u", 'ù': "u", 'ū': "u", 'ű': "u", 'ư': "u",
	'ứ': "u", 'ũ': "u", 'ữ': "u", 'ự': "u", 'ừ': "u", 'ử': "u",
	'ý': "y", 'ỳ': "y", 'ỹ': "y", 'ỷ': "y",
	'ž': "z", 'ż': "z", 'ź': "z",
	'̇': "", // Turkish combining dot above.
}

// stripCombiningMarks runs golang.org/x/text's NFD decomposition and then
// drops the resulting combining marks, handling any accented letter the
// explicit table above doesn't enumerate (e.g. future additions to the
// corpus's name set) without growing the table further.
func stripCombiningMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// MakeUsername computes the ASCII (or, for Japanese names, "ea-"
// prefixed) canonical username for a display name, per spec.md's
// Username glossary entry.
func MakeUsername(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if ContainsWritingSystem(name) == Japanese {
		return makeJapaneseUsername(name), nil
	}
	return convertToASCII(name)
}

func makeJapaneseUsername(name string) string {
	kata := hiraToKata(name)
	var b strings.Builder
	b.WriteString("ea-")
	for _, r := range kata {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteString(strconv.Itoa(int(r)))
	}
	return b.String()
}

func convertToASCII(name string) (string, error) {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case isUsernameException(r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			if repl, ok := explicitAccentFold[r]; ok {
				b.WriteString(repl)
				continue
			}
			folded := stripCombiningMarks(string(r))
			if folded != "" && folded != string(r) && isPlainASCIIWord(folded) {
				b.WriteString(folded)
				continue
			}
			return "", fmt.Errorf("unknown character %q in %q", r, lower)
		}
	}
	return b.String(), nil
}

func isPlainASCIIWord(s string) bool {
	for _, r := range s {
		if r >= unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}
