// Package naming validates and canonicalizes project and package names.
package naming

import (
	"regexp"
	"strings"
)

var (
	validPackageName = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)

	whitespaceRun  = regexp.MustCompile(`\s+`)
	leadingDotOrUS = regexp.MustCompile(`^[._]`)
	invalidRun     = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// FormatTargetDir trims surrounding whitespace and strips trailing slashes.
// A nil input yields nil.
func FormatTargetDir(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := FormatTargetDirString(*raw)
	return &s
}

// FormatTargetDirString is FormatTargetDir for plain strings.
func FormatTargetDirString(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// IsValidPackageName reports whether name is an acceptable package.json name,
// optionally scoped (@scope/name).
func IsValidPackageName(name string) bool {
	return validPackageName.MatchString(name)
}

// ToValidPackageName coerces name into the package name grammar. It never fails;
// the result can still be invalid (e.g. empty) for degenerate inputs.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUS.ReplaceAllString(s, "")
	return invalidRun.ReplaceAllString(s, "-")
}
