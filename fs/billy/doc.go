// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps osfs and MemoryFS wraps memfs. Both also implement
// core.MetadataFS and core.TimesFS, which the fileops package uses to carry
// permissions and timestamps across copies and to report creation times.
//
// Usage:
//
//	// Local filesystem, names resolved like the os package does
//	local := billy.NewLocal()
//	data, err := local.ReadFile("config.json")
//
//	// Local filesystem confined to a directory
//	sandbox := billy.NewLocal(billy.WithRoot("/srv/data"))
//
//	// In-memory filesystem for tests
//	mem := billy.NewMemory()
//	err := mem.WriteFile("temp.txt", []byte("data"), 0o644)
//
// # Chroot
//
// Chroot returns a view whose names all resolve inside the given directory.
// The directory must already exist.
//
// # Thread Safety
//
// LocalFS is safe for concurrent use by multiple goroutines. MemoryFS keeps
// its tree in unsynchronized maps and must not be mutated concurrently.
// File handles are never safe for concurrent use.
package billy
