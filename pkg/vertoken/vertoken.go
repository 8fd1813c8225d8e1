package vertoken

import (
	"strings"

	version2 "github.com/hashicorp/go-version"
)

const unknownVersion = "Unknown"

// Tokens splits a raw service version into its comparable pieces.
// The string is split on '-' and '_' and every piece that carries no
// digit is dropped, so "7.2p1-rc3" keeps "7.2p1" and "rc3" while
// "openssh" alone yields nothing. An empty result means no reliable
// match is possible for this service.
func Tokens(version string) []string {
	if version == "" || version == unknownVersion {
		return nil
	}

	tokens := []string{}
	for _, t := range strings.FieldsFunc(version, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		if hasDigit(t) {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

// Canonical normalizes a clean release version for use in search
// queries, e.g. "v1.2.3" becomes "1.2.3". Versions that go-version
// cannot parse, or that carry a pre-release suffix such as "7.2p1",
// pass through verbatim.
func Canonical(version string) string {
	v, err := version2.NewVersion(version)
	if err != nil || v.Prerelease() != "" {
		return version
	}
	return v.String()
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
