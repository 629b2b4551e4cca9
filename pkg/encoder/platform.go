package encoder

import (
	"runtime"
	"sort"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
)

// Platform identifies an encoder build
type Platform string

const (
	PlatformWin32   Platform = "win32"
	PlatformLinux32 Platform = "linux32"
	PlatformLinux64 Platform = "linux64"
	PlatformOSX     Platform = "osx"
)

// DefaultBinaries is the built-in resolution table, relative to the
// working directory
var DefaultBinaries = map[Platform]string{
	PlatformWin32:   `img2dds\win32\img2dds.exe`,
	PlatformLinux32: "./img2dds/linux32/img2dds",
	PlatformLinux64: "./img2dds/linux64/img2dds",
	PlatformOSX:     "./img2dds/osx/img2dds",
}

// PlatformFor maps a Go OS/architecture pair to an encoder platform
func PlatformFor(goos, goarch string) (Platform, bool) {
	switch goos {
	case "windows":
		return PlatformWin32, true
	case "darwin":
		return PlatformOSX, true
	case "linux", "freebsd", "openbsd", "netbsd":
		switch goarch {
		case "386", "arm", "mips", "mipsle":
			return PlatformLinux32, true
		default:
			return PlatformLinux64, true
		}
	}
	return "", false
}

// CurrentPlatform returns the platform of the running binary
func CurrentPlatform() (Platform, bool) {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

// Resolve returns the encoder binary for a platform. Entries in overrides,
// keyed by platform name, replace the built-in table.
func Resolve(p Platform, overrides map[string]string) (string, error) {
	if path := strings.TrimSpace(overrides[string(p)]); path != "" {
		return path, nil
	}
	if path, ok := DefaultBinaries[p]; ok {
		return path, nil
	}

	var known []string
	for k := range DefaultBinaries {
		known = append(known, string(k))
	}
	sort.Strings(known)
	return "", errors.Newf(errors.ErrEncoderResolve, "no encoder binary for platform %q (known: %s)",
		p, strings.Join(known, ", "))
}

// ResolveCurrent resolves the binary for the running platform. An explicit
// path always wins.
func ResolveCurrent(explicit string, overrides map[string]string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	p, ok := CurrentPlatform()
	if !ok {
		return "", errors.Newf(errors.ErrEncoderResolve, "unsupported platform %s/%s; set encoder.path",
			runtime.GOOS, runtime.GOARCH)
	}
	return Resolve(p, overrides)
}
