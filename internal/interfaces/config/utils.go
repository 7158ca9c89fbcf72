// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/utils"
	"os"
	"path/filepath"
	"strings"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

func createFileWithContent(filePath string, content []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, global.DefaultDirectoryPermission); err != nil {
		return err
	}
	return os.WriteFile(filePath, content, global.DefaultFilePermissions)
}

// cachedContent reads filePath, seeding it with fallback on first use
func cachedContent(logger log.LoggerInterface, filePath string, fallback []byte) ([]byte, error) {
	if content, err := os.ReadFile(filePath); err == nil {
		return content, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("file read error: %w", err)
	}

	logger.InfoF("%s not found, writing built-in default", filePath)

	if err := createFileWithContent(filePath, fallback); err != nil {
		return nil, fmt.Errorf("file write error: %w", err)
	}
	return fallback, nil
}

func checkPort(port uint) *ValidResult {
	if port == 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type Version struct {
	major   int
	minor   int
	patch   int
	version string
}

func newVersion(version string) (*Version, error) {
	versions := strings.Split(version, ".")
	if len(versions) != 3 {
		return nil, errors.New("invalid version string")
	}
	parts := make([]int, 3)
	for i, v := range versions {
		parts[i] = utils.StrToInt(v, -1)
		if parts[i] < 0 {
			return nil, fmt.Errorf("invalid version component %q", v)
		}
	}
	return &Version{major: parts[0], minor: parts[1], patch: parts[2], version: version}, nil
}

func (v *Version) checkVersion(version *Version) checkVersionResult {
	if v.major != version.major {
		return MajorUnmatch
	}
	if v.minor != version.minor {
		return MinorUnmatch
	}
	if v.patch != version.patch {
		return PatchUnmatch
	}
	return AllMatch
}

func (v *Version) String() string {
	return v.version
}
