// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package environment

import (
	"fmt"
	"runtime"
)

// HostTarget guesses the rustup target triple for the host the process
// is running on, used as Config.Target's default when neither a flag,
// msrv.hcl, nor an environment variable named one explicitly. Covers
// the handful of OS/arch pairs rustup itself ships prebuilt toolchains
// for; anything else is left for the caller to reject or prompt for.
func HostTarget() (string, error) {
	arch, ok := archTriple[runtime.GOARCH]
	if !ok {
		return "", fmt.Errorf("unsupported architecture %q", runtime.GOARCH)
	}

	switch runtime.GOOS {
	case "linux":
		return arch + "-unknown-linux-gnu", nil
	case "darwin":
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	case "freebsd":
		return arch + "-unknown-freebsd", nil
	default:
		return "", fmt.Errorf("unsupported operating system %q", runtime.GOOS)
	}
}

var archTriple = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "i686",
	"arm":   "armv7",
}
