package version

// Version is stamped by the release build via -ldflags.
var Version = "0.1.0-dev"
