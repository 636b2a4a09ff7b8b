package fileops

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jmgilman/fileops/errors"
)

// DefaultPattern matches every non-hidden entry of a directory.
const DefaultPattern = "*"

// ListFiles returns the entries of directory matching the glob pattern,
// sorted. Each match is appended to directory as given, without cleaning
// it, so "./data" yields "./data/a.txt". An empty directory lists the
// working directory and yields bare names.
//
// Patterns use doublestar syntax: "*", "?", "[...]", "{a,b}" and "**".
// Braces and backslashes are therefore pattern syntax, and a file literally
// named "{x}.txt" is only matched by a pattern that escapes them, such as
// `\{x\}.txt`.
func (c Checked) ListFiles(directory, pattern string) ([]string, error) {
	dir := directory
	if dir == "" {
		dir = "."
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	pattern = filepath.ToSlash(pattern)

	if !doublestar.ValidatePattern(pattern) {
		err := errors.Newf(errors.CodeInvalidPattern, "invalid glob pattern %q", pattern)
		return nil, errors.WithOp(err, OpListFiles, directory)
	}

	info, err := c.ops.fs.Stat(dir)
	if err != nil {
		return nil, errors.FromOS(OpListFiles, directory, err)
	}
	if !info.IsDir() {
		return nil, errors.WithOp(errors.New(errors.CodeNotDirectory, "not a directory"), OpListFiles, directory)
	}

	view, err := c.ops.fs.Chroot(dir)
	if err != nil {
		return nil, errors.FromOS(OpListFiles, directory, err)
	}

	matches, err := doublestar.Glob(view, pattern)
	if err != nil {
		return nil, errors.FromOS(OpListFiles, directory, err)
	}

	// Hidden entries only show up when the pattern asks for them.
	showHidden := hasDotSegment(pattern)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !showHidden && hasDotSegment(m) {
			continue
		}
		out = append(out, joinListed(directory, filepath.FromSlash(m)))
	}
	sort.Strings(out)
	return out, nil
}

// hasDotSegment reports whether some slash-separated segment of s starts
// with a dot, ignoring "." and "..".
func hasDotSegment(s string) bool {
	for _, seg := range strings.Split(s, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}

// joinListed appends name to directory the way a shell glob reports it: a
// separator is inserted only when directory does not already end in one.
func joinListed(directory, name string) string {
	switch {
	case directory == "":
		return name
	case strings.HasSuffix(directory, "/"), strings.HasSuffix(directory, string(filepath.Separator)):
		return directory + name
	default:
		return directory + string(filepath.Separator) + name
	}
}
