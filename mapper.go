// File: hoplite/mapper.go
package hoplite

import "strings"

// ParamMapper proposes node keys to try for a field's lookup name.
// Sources spell keys differently (snake_case files, UPPER_SNAKE
// environment variables); mappers bridge the spelling without the
// caller renaming fields. Mappers run in registration order and the
// first candidate present in the node wins.
type ParamMapper interface {
	Candidates(name string) []string
}

type exactMapper struct{}

func (exactMapper) Candidates(name string) []string {
	return []string{name}
}

type snakeCaseMapper struct{}

func (snakeCaseMapper) Candidates(name string) []string {
	return []string{camelToSnake(name, '_', false)}
}

type kebabCaseMapper struct{}

func (kebabCaseMapper) Candidates(name string) []string {
	return []string{camelToSnake(name, '-', false)}
}

type upperSnakeMapper struct{}

func (upperSnakeMapper) Candidates(name string) []string {
	return []string{camelToSnake(name, '_', true)}
}

func defaultMappers() []ParamMapper {
	return []ParamMapper{
		exactMapper{},
		snakeCaseMapper{},
		kebabCaseMapper{},
		upperSnakeMapper{},
	}
}

// camelToSnake splits on case boundaries and joins with sep:
// "ListenAddr" -> "listen_addr", "HTTPPort" -> "http_port". Existing
// separators are normalized to sep.
func camelToSnake(name string, sep byte, upper bool) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			sb.WriteByte(sep)
			continue
		case isUpperASCII(r):
			boundary := i > 0 &&
				(!isUpperASCII(runes[i-1]) && runes[i-1] != '_' && runes[i-1] != '-' ||
					i+1 < len(runes) && isUpperASCII(runes[i-1]) && !isUpperASCII(runes[i+1]) && runes[i+1] != '_' && runes[i+1] != '-')
			if boundary {
				sb.WriteByte(sep)
			}
		}
		if upper {
			sb.WriteRune(toUpperASCII(r))
		} else {
			sb.WriteRune(toLowerASCII(r))
		}
	}
	return sb.String()
}

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }

func toLowerASCII(r rune) rune {
	if isUpperASCII(r) {
		return r + ('a' - 'A')
	}
	return r
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// candidateKeys runs every mapper over name and returns the deduped
// candidate list in mapper order.
func candidateKeys(name string, mappers []ParamMapper) []string {
	seen := make(map[string]bool, len(mappers))
	var keys []string
	for _, m := range mappers {
		for _, c := range m.Candidates(name) {
			if c != "" && !seen[c] {
				seen[c] = true
				keys = append(keys, c)
			}
		}
	}
	return keys
}
