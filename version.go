// Package pbxpatch carries metadata shared across the pbxpatch tool.
package pbxpatch

// Version is the current pbxpatch release.
const Version = "0.3.0"
