// Package core provides the interfaces file operations are written against.
//
// This package defines the contract a storage backend must implement so that
// the fileops package can run the same operations against the local disk or
// an in-memory tree.
//
// # Design Philosophy
//
//   - Zero dependencies: Only uses Go standard library
//   - Interface composition: Small focused interfaces compose into larger contracts
//   - Stdlib compatibility: Extends fs.FS and fs.File rather than replacing them
//   - Optional capabilities: Use type assertions for provider-specific features
//
// # Interface Hierarchy
//
// The main FS interface is composed of four sub-interfaces:
//
//   - ReadFS: Read-only operations (Open, Stat, ReadDir, ReadFile, Exists)
//   - WriteFS: Write operations (Create, WriteFile, MkdirAll)
//   - ManageFS: File management (Remove, Rename)
//   - ChrootFS: Scoped filesystem views (Chroot)
//
// Optional interfaces for provider-specific capabilities:
//
//   - MetadataFS: Metadata operations (Lstat, Chmod, Chtimes)
//   - TimesFS: Access, change and birth timestamps
//
// # Checking Optional Capabilities
//
//	if tfs, ok := filesystem.(core.TimesFS); ok {
//	    ts, err := tfs.Times("file.txt")
//	    created := ts.Created()
//	}
//
// # Stdlib Compatibility
//
// The FS interface embeds fs.FS, so a Chroot view can be handed to any
// function accepting fs.FS, such as glob matchers:
//
//	view, err := filesystem.Chroot("/var/log")
//	matches, err := doublestar.Glob(view, "*.log")
//
// # Provider Implementations
//
// This package contains only interface definitions and the Copy helper.
// Concrete implementations live in github.com/jmgilman/fileops/fs/billy.
package core
