package utils

import (
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	develBuildVersion  = "(devel)"
	vcsRevisionSetting = "vcs.revision"
	vcsModifiedSetting = "vcs.modified"
	shortRevisionWidth = 12
	dirtyRevisionMark  = "-dirty"
)

// Version is set at link time with -ldflags "-X github.com/temirov/trr/internal/utils.Version=v1.2.3".
var Version = EmptyString

var readBuildInfo = debug.ReadBuildInfo

// GetApplicationVersion determines the application version.
// The link-time Version wins, then the module version, then the VCS revision stamped by the Go toolchain.
func GetApplicationVersion() string {
	if strings.TrimSpace(Version) != EmptyString {
		return strings.TrimSpace(Version)
	}
	buildInfo, buildInfoAvailable := readBuildInfo()
	if !buildInfoAvailable || buildInfo == nil {
		return unknownVersion
	}
	if buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != develBuildVersion {
		return buildInfo.Main.Version
	}
	return revisionFromSettings(buildInfo.Settings)
}

func revisionFromSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, setting := range settings {
		switch setting.Key {
		case vcsRevisionSetting:
			revision = setting.Value
		case vcsModifiedSetting:
			modified = setting.Value == "true"
		}
	}
	if revision == EmptyString {
		return unknownVersion
	}
	if len(revision) > shortRevisionWidth {
		revision = revision[:shortRevisionWidth]
	}
	if modified {
		revision += dirtyRevisionMark
	}
	return revision
}
