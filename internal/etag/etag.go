// Package etag encodes resource versions as weak entity tags of the form W/"<version>".
package etag

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmitrijs2005/fuelcost/internal/common"
)

// InvalidVersion is returned by TryParseVersion for a malformed etag. No
// stored row ever has this version, so a conditional write using it fails
// as a precondition mismatch.
const InvalidVersion int64 = -1

var weakPattern = regexp.MustCompile(`^W/"(\d+)"$`)

// VersionEtag is an immutable version marker.
type VersionEtag struct {
	version int64
}

// Of returns the etag for version.
func Of(version int64) VersionEtag {
	return VersionEtag{version: version}
}

// Format returns the textual etag for version.
func Format(version int64) string {
	return Of(version).String()
}

func (e VersionEtag) Version() int64 {
	return e.version
}

// Increment returns the etag expected after one more successful write.
func (e VersionEtag) Increment() VersionEtag {
	return VersionEtag{version: e.version + 1}
}

func (e VersionEtag) String() string {
	return `W/"` + strconv.FormatInt(e.version, 10) + `"`
}

// Parse accepts exactly W/"<digits>".
func Parse(s string) (VersionEtag, error) {
	if m := weakPattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return Of(v), nil
		}
	}
	return VersionEtag{}, fmt.Errorf("%w: invalid or missing etag: %q", common.ErrInvalidArgument, s)
}

// ParseOptional treats an empty string as "no precondition" (ok == false)
// and otherwise defers to Parse.
func ParseOptional(s string) (e VersionEtag, ok bool, err error) {
	if s == "" {
		return VersionEtag{}, false, nil
	}
	e, err = Parse(s)
	if err != nil {
		return VersionEtag{}, false, err
	}
	return e, true, nil
}

// ParseOptionalVersion is ParseOptional returning the bare version, nil
// meaning no precondition.
func ParseOptionalVersion(s string) (*int64, error) {
	e, ok, err := ParseOptional(s)
	if err != nil || !ok {
		return nil, err
	}
	v := e.Version()
	return &v, nil
}

// TryParseVersion returns nil for an empty etag, the version for a well
// formed one and InvalidVersion for anything else.
func TryParseVersion(s string) *int64 {
	if s == "" {
		return nil
	}
	v := InvalidVersion
	if e, err := Parse(s); err == nil {
		v = e.Version()
	}
	return &v
}
