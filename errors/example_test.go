package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/fileops/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeNotRegular, "path is a directory")
	fmt.Println(err.Error())
	// Output: [NOT_REGULAR_FILE] path is a directory
}

func ExampleFromOS() {
	err := errors.FromOS("read_file", "notes.txt", fs.ErrNotExist)
	fmt.Println(err.Code(), err.Category())
	fmt.Println(err)
	// Output:
	// NOT_FOUND EXISTENCE
	// read_file notes.txt: [NOT_FOUND] no such file or directory: file does not exist
}

func ExampleWithContext() {
	err := errors.New(errors.CodeNotFound, "source missing")
	err = errors.WithOp(err, "copy_file", "a.txt")
	err = errors.WithContext(err, "dst", "b.txt")

	fmt.Printf("%s %s -> %s\n", err.Op(), err.Path(), err.Context()["dst"])
	// Output: copy_file a.txt -> b.txt
}

func ExampleGetCategory() {
	err := errors.New(errors.CodeNoSpace, "disk full")
	fmt.Println(errors.GetCategory(err))
	// Output: RESOURCE
}
