// Package naming derives the canonical identifiers of a generated
// resource: controller, request, view and model names.
//
// All functions are pure. A resource name may be nested ("Admin/User");
// the path is kept in derived class paths while Base returns the last
// segment for simple identifiers.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for name resolution.
var (
	// ErrEmptyName indicates the resource name is empty after normalization.
	ErrEmptyName = errors.New("naming: resource name is empty")

	// ErrReservedName indicates the resource name is a reserved identifier.
	ErrReservedName = errors.New("naming: resource name is reserved")

	// ErrInvalidName indicates a segment of the resource name is not a class identifier.
	ErrInvalidName = errors.New("naming: resource name is not a valid identifier")
)

var (
	// segmentChars are the characters a raw segment may contain. Dashes,
	// underscores and spaces separate words and are folded away.
	segmentChars = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

	// identifierPattern matches a normalized segment.
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// InvalidNameError reports a resource name segment that cannot become a
// class name.
type InvalidNameError struct {
	Name    string
	Segment string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("the name %q is not a valid class name: segment %q must start with a letter and contain only letters, digits, dashes or underscores", e.Name, e.Segment)
}

// Unwrap returns ErrInvalidName.
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// ReservedNameError reports a resource name that collides with a reserved word.
type ReservedNameError struct {
	Name      string
	Ecosystem string // "go" or "php"
}

// Error implements the error interface.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("the name %q is reserved by %s", e.Name, ecosystemLabel(e.Ecosystem))
}

// Unwrap returns ErrReservedName.
func (e *ReservedNameError) Unwrap() error {
	return ErrReservedName
}

func ecosystemLabel(eco string) string {
	switch eco {
	case "go":
		return "Go"
	case "php":
		return "PHP"
	default:
		return eco
	}
}

// Identifiers is the set of names derived from a resource and a method.
type Identifiers struct {
	Name       string // normalized resource name, e.g. "Admin/User"
	Method     string // normalized method suffix, e.g. "Index"; empty when absent
	Controller string // "Admin/UserIndexController"
	Request    string // "Admin/UserIndexRequest"
	View       string // "Admin/UserIndex"
	Base       string // "User"
}

// ControllerClass returns the controller class name without its path.
func (id Identifiers) ControllerClass() string {
	return Base(id.Controller)
}

// RequestClass returns the request class name without its path.
func (id Identifiers) RequestClass() string {
	return Base(id.Request)
}

// Resolve normalizes name and method and derives every identifier.
// It fails with ErrEmptyName, an *InvalidNameError or a *ReservedNameError.
func Resolve(name, method string) (Identifiers, error) {
	n, err := Normalize(name)
	if err != nil {
		return Identifiers{}, err
	}
	m := NormalizeMethod(method)
	return Identifiers{
		Name:       n,
		Method:     m,
		Controller: n + m + "Controller",
		Request:    n + m + "Request",
		View:       n + m,
		Base:       Base(n),
	}, nil
}

// Normalize trims the name, converts backslashes to slashes, capitalizes
// every segment and strips a trailing "Controller" suffix. Segments keep
// their casing ("APIKey" stays "APIKey") unless they contain word
// separators, which are StudlyCased ("user_profile" becomes "UserProfile").
func Normalize(name string) (string, error) {
	raw := strings.TrimSpace(norm.NFC.String(name))
	raw = strings.Trim(strings.ReplaceAll(raw, `\`, "/"), "/")

	var segments []string
	for seg := range strings.SplitSeq(raw, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		n, ok := normalizeSegment(seg)
		if !ok {
			return "", &InvalidNameError{Name: name, Segment: seg}
		}
		segments = append(segments, n)
	}
	if len(segments) == 0 {
		return "", ErrEmptyName
	}

	last := segments[len(segments)-1]
	if trimmed := strings.TrimSuffix(last, "Controller"); trimmed != "" {
		segments[len(segments)-1] = trimmed
	}

	n := strings.Join(segments, "/")
	if eco := ReservedBy(n); eco != "" {
		return "", &ReservedNameError{Name: name, Ecosystem: eco}
	}
	return n, nil
}

func normalizeSegment(seg string) (string, bool) {
	if !segmentChars.MatchString(seg) {
		return "", false
	}
	if strings.ContainsAny(seg, "_- ") {
		seg = Studly(seg)
	} else {
		seg = strings.ToUpper(seg[:1]) + seg[1:]
	}
	return seg, identifierPattern.MatchString(seg)
}

// NormalizeMethod capitalizes the first letter of method and lower-cases
// the rest, so "INDEX", "index" and "Index" all yield "Index".
func NormalizeMethod(method string) string {
	m := cases.Lower(language.Und).String(strings.TrimSpace(method))
	if m == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(m)
	return cases.Upper(language.Und).String(string(r)) + m[size:]
}

// Base returns the last path segment of name.
func Base(name string) string {
	name = strings.TrimRight(name, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Dir returns name without its last segment, or "" for a flat name.
func Dir(name string) string {
	name = strings.TrimRight(name, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i]
	}
	return ""
}

// Studly converts s to StudlyCase ("user_profile" -> "UserProfile").
func Studly(s string) string {
	return strcase.ToCamel(s)
}

// Camel converts s to lowerCamelCase ("UserProfile" -> "userProfile").
func Camel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Snake converts s to snake_case.
func Snake(s string) string {
	return strcase.ToSnake(s)
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return strcase.ToKebab(s)
}

// Plural returns the English plural of s, preserving its case style.
func Plural(s string) string {
	return inflection.Plural(s)
}

// Namespace joins root and the directory part of class with the PHP
// namespace separator, dropping the final segment of class.
func Namespace(root, class string) string {
	full := strings.Trim(strings.ReplaceAll(root, `\`, "/"), "/")
	if dir := Dir(class); dir != "" {
		if full != "" {
			full += "/"
		}
		full += dir
	}
	return strings.ReplaceAll(full, "/", `\`)
}

// Qualified returns the fully qualified PHP class name of class under root.
func Qualified(root, class string) string {
	full := strings.Trim(strings.ReplaceAll(root, `\`, "/"), "/")
	if full != "" {
		full += "/"
	}
	return strings.ReplaceAll(full+class, "/", `\`)
}
