package letters

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{name: "repeated letters are reported once", a: "ааббв", b: "в", want: "нет нет да "},
		{name: "task example", a: "процессор", b: "информация", want: "нет да да да нет нет "},
		{name: "same word", a: "Ало", b: "Ало", want: "да да да "},
		{name: "case sensitive", a: "Aa", b: "a", want: "нет да "},
		{name: "latin", a: "hello", b: "world", want: "нет нет да да "},
		{name: "empty first word", a: "", b: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.a, tt.b); got != tt.want {
				t.Errorf("Check(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "процессор", want: true},
		{in: "Hello", want: true},
		{in: "смесьMix", want: true},
		{in: "", want: false},
		{in: "two words", want: false},
		{in: "abc1", want: false},
		{in: "ёж", want: false},
	}
	for _, tt := range tests {
		if got := ValidWord(tt.in); got != tt.want {
			t.Errorf("ValidWord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckWords(t *testing.T) {
	got, err := CheckWords("процессор", "информация")
	if err != nil {
		t.Fatalf("CheckWords failed: %v", err)
	}
	if got != "нет да да да нет нет " {
		t.Errorf("CheckWords = %q", got)
	}

	if _, err := CheckWords("abc", "12"); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("err = %v, want ErrInvalidWord", err)
	}
	if ErrInvalidWord.Error() != "Ошибка" {
		t.Errorf("message = %q", ErrInvalidWord.Error())
	}
}

func TestDistinct(t *testing.T) {
	if got := string(Distinct("процессор")); got != "процес" {
		t.Errorf("Distinct = %q, want %q", got, "процес")
	}
}
