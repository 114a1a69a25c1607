package registry

import "golang.org/x/mod/semver"

// Versions are stored without the "v" prefix ("2.0.0", "2.0.0-coc");
// golang.org/x/mod/semver wants one, so comparisons add it.

// ValidVersion reports whether v is a full major.minor.patch semantic
// version, optionally with a pre-release suffix. Shorthand forms like
// "1.0" are rejected so stored version strings stay canonical.
func ValidVersion(v string) bool {
	vv := "v" + v
	return semver.IsValid(vv) && semver.Canonical(vv) == vv
}

// CompareVersions returns -1, 0 or +1 ordering a against b by semantic
// version precedence. Pre-release variants sort below their release,
// so "2.0.0-coc" < "2.0.0".
func CompareVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}
