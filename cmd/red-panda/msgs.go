package redpanda

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Invite some red pandas into your environment"
	MsgInstallShort     = "Install selected features into a directory"
	MsgFullInstallShort = "Install every feature into a directory"
	MsgListShort        = "List all available features"
	MsgListLong         = "List prints every feature red-panda can install, in the order full-install uses."
	MsgConfigShort      = "Print the effective configuration as TOML"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Status messages
	MsgListing         = "Listing all features ..."
	MsgInstallFinished = "[O] Installed %d feature(s): %s"
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgConfigSource    = "# loaded from %s\n"
	MsgConfigDefaults  = "# built-in defaults and environment only\n"
	MsgVersionFormat   = "red-panda %s (commit %s, built %s)\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/red-panda/config.toml)"
	MsgFlagDryRun   = "Resolve and print the plan without changing anything"
	MsgFlagNoBanner = "Do not print the banner"
	MsgFlagFeatures = "Feature to install (repeatable, comma-separated)"

	// Errors
	MsgErrNoCommand = "no command specified"
)

// Long messages (embedded from files)
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/full-install-long.txt
	msgFullInstallLongRaw string
	MsgFullInstallLong    = strings.TrimSpace(msgFullInstallLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
