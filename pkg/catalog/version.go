package catalog

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the catalog format written by Encode. Documents declare
// their own version and are accepted when it satisfies ^SchemaVersion.
const SchemaVersion = "1.0.0"

// ErrIncompatibleVersion is returned for documents outside ^SchemaVersion.
var ErrIncompatibleVersion = errors.New("catalog: incompatible version")

// IsCompatible reports whether a document version can be read.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, fmt.Errorf("catalog: invalid schema version: %w", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("catalog: invalid version %q: %w", version, err)
	}
	return constraint.Check(v), nil
}

func checkVersion(version, source string) error {
	if version == "" {
		return fmt.Errorf("catalog: %s: version is required", source)
	}
	ok, err := IsCompatible(version)
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", source, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s: version %s is not compatible with %s", ErrIncompatibleVersion, source, version, SchemaVersion)
	}
	return nil
}
