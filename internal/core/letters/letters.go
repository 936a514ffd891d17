// Package letters answers, for each distinct letter of one word, whether it
// occurs in another word.
package letters

import (
	"errors"
	"regexp"
	"strings"
)

// Answer tokens.
const (
	Yes = "да"
	No  = "нет"
)

// About is the task statement shown by `anketa letters --about`.
const About = "Даны два слова. Для каждой буквы первого слова определить, входит ли она во второе слово. " +
	"Повторяющиеся буквы первого слова не рассматривать. Например, если заданные слова процессор и информация, " +
	"то для букв первого из них ответом должно быть: нет да да да нет нет."

// ErrInvalidWord is returned for input that is not a single Latin or
// Cyrillic word. Its text is the message shown to the user.
var ErrInvalidWord = errors.New("Ошибка")

var wordPattern = regexp.MustCompile(`^[a-zA-Zа-яА-Я]+$`)

// ValidWord reports whether s consists only of Latin and Cyrillic letters.
func ValidWord(s string) bool {
	return wordPattern.MatchString(s)
}

// Distinct returns the runes of s in first-occurrence order, without repeats.
func Distinct(s string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// Check reports "да " or "нет " for every distinct letter of a, in
// first-occurrence order, depending on whether it occurs in b. Comparison is
// case sensitive. The trailing space is part of the result.
func Check(a, b string) string {
	var sb strings.Builder
	for _, r := range Distinct(a) {
		if strings.ContainsRune(b, r) {
			sb.WriteString(Yes)
		} else {
			sb.WriteString(No)
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// CheckWords validates both words before running Check.
func CheckWords(a, b string) (string, error) {
	if !ValidWord(a) || !ValidWord(b) {
		return "", ErrInvalidWord
	}
	return Check(a, b), nil
}
