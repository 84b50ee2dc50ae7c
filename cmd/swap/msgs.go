package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Atomically swap two files or directories"
	MsgRootLong = `swap exchanges two filesystem entries (files or directories) in place,
without a copy step, using a three-rename maneuver where every rename is
a single atomic directory-entry update.

By default items move to each other's directories, keeping their own
names. With --name-swap the items are renamed to each other's names but
stay in their original directories.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgGenConfigShort  = "Write the default config file"

	// Status messages
	MsgSwapSuccess   = "Swap successful!"
	MsgDryRunHeader  = "Would perform the following renames:"
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgConfigWritten = "Wrote default config to %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNameSwap = "Swap names instead of locations"
	MsgFlagDryRun   = "Preview the renames without executing them"
)
