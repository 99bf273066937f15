package util

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// UTS-46 with transitional=false and useSTD3AsciiRules=true, the profile
// ENS names are registered under.
var ensProfile = idna.New(
	idna.Transitional(false),
	idna.StrictDomainName(true),
	idna.MapForLookup(),
)

// NormalizeName maps name to its normalized form so that visually equal
// names produce the same namehash.
func NormalizeName(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	normalized, err := ensProfile.ToUnicode(name)
	if err != nil {
		return "", fmt.Errorf("couldn't normalize %q: %w", name, err)
	}
	return normalized, nil
}

// WithTLD appends "."+tld to names that don't contain a dot yet.
// An empty tld leaves the name untouched.
func WithTLD(name, tld string) string {
	if tld == "" || name == "" || strings.Contains(name, ".") {
		return name
	}
	return name + "." + strings.TrimPrefix(tld, ".")
}

// CheckTLD returns an error unless name ends with "."+tld.
func CheckTLD(name, tld string) error {
	tld = strings.TrimPrefix(tld, ".")
	if !strings.HasSuffix(name, "."+tld) || len(name) == len(tld)+1 {
		return fmt.Errorf("%q: the name format must be ***.%s", name, tld)
	}
	return nil
}

const namePunctuation = "()\",;:'"

// ScanForNames splits para on white space and strips the punctuation names
// usually come wrapped in when they are pasted from prose or lists.
func ScanForNames(para string) []string {
	result := []string{}
	for _, field := range strings.Fields(para) {
		name := strings.Trim(field, namePunctuation)
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}

// ScanForContentHashes returns every 0x-prefixed token found in para. A
// token runs until white space or punctuation, so non-hex characters stay
// in it and decoding can report them.
func ScanForContentHashes(para string) []string {
	re := regexp.MustCompile(`0[xX][^\s,;:'"()]*`)
	result := re.FindAllString(para, -1)
	if result == nil {
		return []string{}
	}
	return result
}
