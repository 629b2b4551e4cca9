package ddsbatch

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Convert game textures to DDS in place"
	MsgLintShort     = "Check a rule set for mistakes"
	MsgClassifyShort = "Show how texture paths would be converted"
	MsgProfilesShort = "List or show the built-in rule profiles"
	MsgVersionShort  = "Print version information"

	// Status messages
	MsgNoImages       = "No images found under %s"
	MsgLintClean      = "%s: no issues"
	MsgPressEnter     = "Press Enter to exit..."
	MsgDryRunNotice   = "DRY RUN - no encoder was run and no file was deleted"
	MsgAllFailedTitle = "Every conversion failed."
	MsgAllFailedBody  = "The encoder at %q never succeeded. Check that it exists and runs on this platform, or set --encoder / encoder.path."

	// Error messages
	MsgErrConfig      = "failed to load configuration: %w"
	MsgErrRules       = "failed to load rules: %w"
	MsgErrEncoder     = "failed to locate encoder: %w"
	MsgErrFormat      = "invalid output format: %w"
	MsgErrBatchFailed = "%d of %d conversions failed"
	MsgErrLint        = "rule set %s has %d error(s)"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/ddsbatch/config.toml)"
	MsgFlagFormat      = "Output format: auto, term, text, json, yaml"
	MsgFlagProfile     = "Built-in rule profile (see 'profiles')"
	MsgFlagRules       = "Rules file (.toml or .yaml), overrides --profile"
	MsgFlagModelScale  = "Rescale factor for model textures"
	MsgFlagNormalScale = "Rescale factor for model normal maps"
	MsgFlagAnchor      = "Directory name the texture paths are relative to"
	MsgFlagWorkers     = "Concurrent encoder invocations (0 = number of CPUs)"
	MsgFlagTimeout     = "Time limit for one encoder invocation (0 = none)"
	MsgFlagEncoder     = "Path to the img2dds binary"
	MsgFlagDryRun      = "Show encoder invocations without running them or deleting anything"
	MsgFlagNoPrompt    = "Do not wait for Enter before exiting on Windows"
	MsgFlagShow        = "Print the named profile as TOML"
)

// MsgRootLong is the root command help
const MsgRootLong = `ddsbatch walks a game asset tree (default ./GameData), decides for every
PNG, JPG, TGA and MBM image how it should be encoded, runs the img2dds
encoder on it and DELETES the source image when the encoder succeeds.

There is no backup. Run with --dry-run first, and keep a copy of the tree.

Which images are skipped, treated as model textures, normal maps or kept
readable is decided by a rule set: a built-in profile (--profile) or a rules
file (--rules). See 'ddsbatch topics rules'.`
