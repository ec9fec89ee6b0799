package blockpi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// VersionMajor represents the current major version of blockpi.
	VersionMajor = 0
	// VersionMinor represents the current minor version of blockpi.
	VersionMinor = 3
	// VersionPatch represents the current patch version of blockpi.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the blockpi version string.
	// It must not contain spaces. If empty, no tag is appended to the version
	// string.
	VersionTag = ""
)

// Version provides a stringified version of the current blockpi version.
var Version string

// init performs global initialization.
func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}

// ParseVersion parses a version string of the form produced by Version. Any tag
// component is returned separately.
func ParseVersion(version string) (uint64, uint64, uint64, string, error) {
	// Split off any tag.
	var tag string
	if index := strings.IndexByte(version, '-'); index != -1 {
		version, tag = version[:index], version[index+1:]
		if tag == "" {
			return 0, 0, 0, "", errors.New("empty version tag")
		}
	}

	// Split the numeric components.
	components := strings.Split(version, ".")
	if len(components) != 3 {
		return 0, 0, 0, "", errors.Errorf("invalid version component count: %d", len(components))
	}

	// Parse the numeric components.
	var values [3]uint64
	for i, component := range components {
		value, err := strconv.ParseUint(component, 10, 32)
		if err != nil {
			return 0, 0, 0, "", errors.Wrap(err, "unable to parse version component")
		}
		values[i] = value
	}

	// Success.
	return values[0], values[1], values[2], tag, nil
}
