package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/tools/txtar"
)

func ParseTxtar(src []byte, filename string) *Archive {
	tar := txtar.Parse(src)

	ar := &Archive{}
	ar.Filename = filename
	ar.Tar = tar

	line := countLines(tar.Comment)
	for _, f := range tar.Files {
		line++ // file header line
		ar.Lines = append(ar.Lines, line)
		line += countLines(f.Data)
	}
	return ar
}

func ParseTxtarFile(filename string) (*Archive, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseTxtar(src, filename), nil
}

//----------

type Archive struct {
	Tar      *txtar.Archive
	Filename string // for errors
	Lines    []int  // Tar.Files[] line position in src
}

func (ar *Archive) Error(err error, i int) error {
	return errors.Wrapf(err, "%s:%d", ar.Filename, ar.Lines[i]+1)
}

//----------

// Runs fn for each file with the input extension that has a matching ".out" file.
func RunArchive2(t *testing.T, ar *Archive, inExt string,
	fn func(t2 *testing.T, name string, input, output []byte) error,
) {
	RunArchive(t, ar, []string{inExt, ".out"},
		func(t2 *testing.T, name string, data [][]byte) error {
			return fn(t2, name, data[0], data[1])
		},
	)
}

// Expects n files named in filesExts args
func RunArchive(t *testing.T, ar *Archive, filesExts []string,
	fn func(t2 *testing.T, name string, datas [][]byte) error,
) {
	t.Helper()

	// map files
	fm := map[string]txtar.File{}
	for _, file := range ar.Tar.Files {
		if _, ok := fm[file.Name]; ok {
			t.Fatalf("file already defined: %v", file.Name)
		}
		fm[file.Name] = file
	}

	for fi, file := range ar.Tar.Files {
		// run only files that match the first ext
		if filepath.Ext(file.Name) != filesExts[0] {
			continue
		}

		datas := [][]byte{file.Data}
		for _, ext := range filesExts[1:] {
			f, ok := fm[replaceExt(file.Name, ext)]
			if !ok {
				t.Logf("warning: missing %q for %v", ext, file.Name)
				break
			}
			datas = append(datas, f.Data)
		}
		if len(datas) != len(filesExts) {
			continue
		}

		name := filepath.Base(file.Name)
		ok2 := t.Run(name, func(t2 *testing.T) {
			err := fn(t2, name, datas)
			if err != nil {
				t2.Fatal(ar.Error(err, fi))
			}
		})
		if !ok2 {
			break // stop on first failed test
		}
	}
}

//----------

// Trims spaces of each line and removes empty lines. Useful to compare outputs.
func TrimLineSpaces(str string) string {
	u := []string{}
	for _, s := range strings.Split(str, "\n") {
		s = strings.TrimSpace(s)
		if s != "" {
			u = append(u, s)
		}
	}
	return strings.Join(u, "\n")
}

//----------

func countLines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}

func replaceExt(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}
