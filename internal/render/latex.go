package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedFormula indicates LaTeX source that cannot be typeset.
// Renderers recover from it locally by showing an error indicator; the
// formula source itself is always preserved.
var ErrMalformedFormula = errors.New("render: malformed formula")

// CheckFormula performs a syntactic check of LaTeX source: balanced
// groups, matched \begin/\end environments, and no dangling backslash.
// It deliberately does not know the full command vocabulary; anything a
// typesetter might accept passes.
func CheckFormula(latex string) error {
	if strings.TrimSpace(latex) == "" {
		return fmt.Errorf("%w: empty formula", ErrMalformedFormula)
	}

	var envs []string
	depth := 0
	runes := []rune(latex)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			if i == len(runes)-1 {
				return fmt.Errorf("%w: dangling backslash", ErrMalformedFormula)
			}
			next := runes[i+1]
			if !unicode.IsLetter(next) {
				i++ // escaped symbol such as \{ or \%
				continue
			}
			cmd, end := readCommand(runes, i+1)
			i = end - 1
			switch cmd {
			case "begin", "end":
				name, ok := readGroup(runes, end)
				if !ok {
					return fmt.Errorf("%w: \\%s without environment name", ErrMalformedFormula, cmd)
				}
				if cmd == "begin" {
					envs = append(envs, name)
					break
				}
				if len(envs) == 0 || envs[len(envs)-1] != name {
					return fmt.Errorf("%w: unmatched \\end{%s}", ErrMalformedFormula, name)
				}
				envs = envs[:len(envs)-1]
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unbalanced closing brace", ErrMalformedFormula)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed brace(s)", ErrMalformedFormula, depth)
	}
	if len(envs) != 0 {
		return fmt.Errorf("%w: unclosed environment %q", ErrMalformedFormula, envs[len(envs)-1])
	}
	return nil
}

// readCommand reads a command name starting at from and returns it with
// the index just past its end.
func readCommand(runes []rune, from int) (string, int) {
	end := from
	for end < len(runes) && unicode.IsLetter(runes[end]) {
		end++
	}
	return string(runes[from:end]), end
}

// readGroup reads a {name} group starting at from.
func readGroup(runes []rune, from int) (string, bool) {
	if from >= len(runes) || runes[from] != '{' {
		return "", false
	}
	end := from + 1
	for end < len(runes) && runes[end] != '}' {
		end++
	}
	if end == len(runes) {
		return "", false
	}
	return string(runes[from+1 : end]), true
}
