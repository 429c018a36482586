// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Live sun clock (watch), place book, JSON export
// 0.2.0 - Sun state classifier and day periods, solar midnight
// 0.1.0 - Initial release: Julian dates, dawn/dusk/noon for a place and day
