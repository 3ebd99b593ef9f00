package scanner

import (
	"io"
	"os"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func MustReadFile(filename string) string {
	f, err := os.Open(filename)
	check(err)
	defer f.Close()
	src, err := io.ReadAll(f)
	check(err)
	return string(src)
}
