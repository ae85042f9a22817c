package answers

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// canonicalVersion accepts versions with or without the leading "v".
func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// CheckVersion compares a document's catalog version against the running
// catalog. An empty version is accepted. The returned error is advisory.
func CheckVersion(docVersion, catalogVersion string) error {
	if docVersion == "" {
		return nil
	}
	dv := canonicalVersion(docVersion)
	if !semver.IsValid(dv) {
		return fmt.Errorf("catalog version %q is not a semantic version", docVersion)
	}
	cv := canonicalVersion(catalogVersion)
	if semver.Major(dv) != semver.Major(cv) {
		return fmt.Errorf("document targets catalog %s, running %s", dv, cv)
	}
	return nil
}
