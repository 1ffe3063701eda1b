package version

// Version is the tool version, overridable at build time via -ldflags.
var Version = "0.1.0"
