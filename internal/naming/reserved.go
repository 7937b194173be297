package naming

import (
	"go/token"
	"strings"
)

// phpReserved lists the identifiers the generated PHP classes may not use.
var phpReserved = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"__halt_compiler", "abstract", "and", "array", "as", "break", "callable",
		"case", "catch", "class", "clone", "const", "continue", "declare",
		"default", "die", "do", "echo", "else", "elseif", "empty", "enddeclare",
		"endfor", "endforeach", "endif", "endswitch", "endwhile", "enum", "eval",
		"exit", "extends", "false", "final", "finally", "fn", "for", "foreach",
		"function", "global", "goto", "if", "implements", "include",
		"include_once", "instanceof", "insteadof", "interface", "isset", "list",
		"match", "namespace", "new", "or", "parent", "print", "private",
		"protected", "public", "readonly", "require", "require_once", "return",
		"self", "static", "switch", "throw", "trait", "true", "try", "unset",
		"use", "var", "while", "xor", "yield",
		"__class__", "__dir__", "__file__", "__function__", "__line__",
		"__method__", "__namespace__", "__trait__",
	} {
		phpReserved[w] = struct{}{}
	}
}

// ReservedBy returns the ecosystem that reserves name ("go" or "php"), or ""
// when the name is free. Only the last path segment is checked, ignoring case.
func ReservedBy(name string) string {
	base := strings.ToLower(Base(name))
	if base == "" {
		return ""
	}
	if token.IsKeyword(base) {
		return "go"
	}
	if _, ok := phpReserved[base]; ok {
		return "php"
	}
	return ""
}
