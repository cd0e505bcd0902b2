package textproc

import "bytes"

// suffixRule rewrites a trailing suffix when the remaining stem satisfies the
// step's measure condition.
type suffixRule struct {
	suffix      string
	replacement string
}

// Rules are ordered so that a longer suffix is tested before any suffix it ends with.
var step2Rules = []suffixRule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
}

var step3Rules = []suffixRule{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

var step4Suffixes = []string{
	"al", "ance", "ence", "er", "ic", "able", "ible", "ant",
	"ement", "ment", "ent", "ion", "ou", "ism", "ate", "iti",
	"ous", "ive", "ize",
}

// Stem reduces a lowercase ASCII word to its Porter stem using the rule set of
// Porter's 1980 paper. Words of one or two letters are returned unchanged, as in
// the reference implementation.
func Stem(word string) string {
	if len(word) <= 2 {
		return word
	}

	w := []byte(word)
	w = step1a(w)
	w = step1b(w)
	w = step1c(w)
	w = applyRules(w, step2Rules, 0)
	w = applyRules(w, step3Rules, 0)
	w = step4(w)
	w = step5a(w)
	w = step5b(w)
	return string(w)
}

// isConsonant reports whether w[i] is a consonant. A 'y' is a consonant at the
// start of a word or after a vowel.
func isConsonant(w []byte, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(w, i-1)
	default:
		return true
	}
}

// measure returns m in the form [C](VC){m}[V].
func measure(w []byte) int {
	n := len(w)
	i := 0
	for i < n && isConsonant(w, i) {
		i++
	}

	m := 0
	for i < n {
		for i < n && !isConsonant(w, i) {
			i++
		}
		if i >= n {
			break
		}
		for i < n && isConsonant(w, i) {
			i++
		}
		m++
	}
	return m
}

func containsVowel(w []byte) bool {
	for i := range w {
		if !isConsonant(w, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(w []byte) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && isConsonant(w, n-1)
}

// endsCVC reports consonant-vowel-consonant at the end, where the final
// consonant is not w, x or y.
func endsCVC(w []byte) bool {
	n := len(w)
	if n < 3 || !isConsonant(w, n-1) || isConsonant(w, n-2) || !isConsonant(w, n-3) {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

func hasSuffix(w []byte, suffix string) bool {
	return bytes.HasSuffix(w, []byte(suffix))
}

func replaceSuffix(w []byte, suffix, replacement string) []byte {
	return append(w[:len(w)-len(suffix)], replacement...)
}

func step1a(w []byte) []byte {
	switch {
	case hasSuffix(w, "sses"):
		return w[:len(w)-2]
	case hasSuffix(w, "ies"):
		return w[:len(w)-2]
	case hasSuffix(w, "ss"):
		return w
	case hasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func step1b(w []byte) []byte {
	if hasSuffix(w, "eed") {
		if measure(w[:len(w)-3]) > 0 {
			return w[:len(w)-1]
		}
		return w
	}

	var stem []byte
	switch {
	case hasSuffix(w, "ed"):
		stem = w[:len(w)-2]
	case hasSuffix(w, "ing"):
		stem = w[:len(w)-3]
	default:
		return w
	}
	if !containsVowel(stem) {
		return w
	}

	switch {
	case hasSuffix(stem, "at"), hasSuffix(stem, "bl"), hasSuffix(stem, "iz"):
		return append(stem, 'e')
	case endsDoubleConsonant(stem):
		switch stem[len(stem)-1] {
		case 'l', 's', 'z':
			return stem
		}
		return stem[:len(stem)-1]
	case measure(stem) == 1 && endsCVC(stem):
		return append(stem, 'e')
	}
	return stem
}

func step1c(w []byte) []byte {
	if hasSuffix(w, "y") && containsVowel(w[:len(w)-1]) {
		w[len(w)-1] = 'i'
	}
	return w
}

// applyRules rewrites the first matching suffix when the stem measure exceeds
// minMeasure. Only the first match is considered.
func applyRules(w []byte, rules []suffixRule, minMeasure int) []byte {
	for _, r := range rules {
		if !hasSuffix(w, r.suffix) {
			continue
		}
		if measure(w[:len(w)-len(r.suffix)]) > minMeasure {
			return replaceSuffix(w, r.suffix, r.replacement)
		}
		return w
	}
	return w
}

func step4(w []byte) []byte {
	for _, suffix := range step4Suffixes {
		if !hasSuffix(w, suffix) {
			continue
		}
		stem := w[:len(w)-len(suffix)]
		if measure(stem) <= 1 {
			return w
		}
		if suffix == "ion" && !hasSuffix(stem, "s") && !hasSuffix(stem, "t") {
			return w
		}
		return stem
	}
	return w
}

func step5a(w []byte) []byte {
	if !hasSuffix(w, "e") {
		return w
	}
	stem := w[:len(w)-1]
	m := measure(stem)
	if m > 1 || (m == 1 && !endsCVC(stem)) {
		return stem
	}
	return w
}

func step5b(w []byte) []byte {
	if hasSuffix(w, "l") && endsDoubleConsonant(w) && measure(w) > 1 {
		return w[:len(w)-1]
	}
	return w
}
