package localize

import (
	"strings"
	"unicode/utf8"
)

// punctuationMarks are the characters after which JoinText only adds a space.
var punctuationMarks = runeSet(
	// common
	'.', ',', ';', ':', '!', '?', ')', ']', '}', '"', '\'',
	'，', '、', '！', '？', '“', '”', '‘', '’', '】', '》', '）', '・',
	// less common
	'‽', '❞', '❝', '⁇', '⁈', '❕', '❔', '⁉', '※',
	'⟩', '❯', '❭', '〉', '⌉', '⌋', '⦄', '⦆', '⦈', '⦊', '⦌', '⦎',
)

func runeSet(runes ...rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return set
}

// JoinText joins free-text fragments into one string. Blank fragments are
// dropped and exact duplicates removed, keeping first-seen order. A fragment
// is separated from the previous one by a space when the previous one ends
// in punctuation, and by ". " otherwise.
//
// The boolean is false when no fragment survived filtering.
func JoinText(texts []string) (string, bool) {
	seen := make(map[string]struct{}, len(texts))
	filtered := make([]string, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		// Some episodes share the exact same description.
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		filtered = append(filtered, text)
	}

	if len(filtered) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(filtered[0])
	last, _ := utf8.DecodeLastRuneInString(filtered[0])
	for _, text := range filtered[1:] {
		if _, ok := punctuationMarks[last]; ok {
			b.WriteByte(' ')
		} else {
			b.WriteString(". ")
		}
		b.WriteString(text)
		last, _ = utf8.DecodeLastRuneInString(text)
	}

	out := b.String()
	if len(filtered) > 1 {
		out = strings.TrimRight(out, " \t\r\n")
	}
	return out, true
}
