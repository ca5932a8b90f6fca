package buildinfo

// Version is stamped in at build time via ldflags.
var Version = "dev"

// Commit is stamped in at build time via ldflags.
var Commit = "none"

// Date is stamped in at build time via ldflags.
var Date = "unknown"
