// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Named observer sites, YAML config, projection debug export
// 0.2.0 - VSOP87 planet positions, ecliptic path trace, moon phase crescent
// 0.1.0 - Initial release: embedded star catalog, precession, stereographic SVG stamp
