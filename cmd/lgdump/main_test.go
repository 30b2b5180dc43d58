package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abYaml = `
size: [200, 200]
root:
  layout: relative
  children:
    - name: a
      kind: rectangle
      size: [50, 20]
      item: {relative: [alignParentRight, above b]}
    - name: b
      kind: rectangle
      size: [30, 20]
      item: {relative: [alignParentBottom, alignLeft a, alignRight a]}
`

func writeTemp(t *testing.T, name, src string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	return fn
}

func TestRun(t *testing.T) {
	fn := writeTemp(t, "ab.yaml", abYaml)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run([]string{fn}, out, errOut)
	require.NoError(t, err)
	assert.Equal(t, "a: (150,160)-(200,180)\nb: (150,180)-(200,200)\n", out.String())
}

func TestRunSize(t *testing.T) {
	fn := writeTemp(t, "ab.yaml", abYaml)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run([]string{"-size", "100x50", fn}, out, errOut)
	require.NoError(t, err)
	assert.Equal(t, "a: (50,10)-(100,30)\nb: (50,30)-(100,50)\n", out.String())
}

func TestRunDump(t *testing.T) {
	fn := writeTemp(t, "ab.yaml", abYaml)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run([]string{"-dump", fn}, out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "alignParentRight")
	assert.Contains(t, out.String(), "a: (150,160)-(200,180)")
}

func TestRunErrors(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	assert.Error(t, run([]string{}, out, errOut))
	assert.Error(t, run([]string{"-size", "abc", "x.yaml"}, out, errOut))
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, out, errOut))

	fn := writeTemp(t, "ab.json", "{}")
	assert.Error(t, run([]string{fn}, out, errOut))

	cyc := `
root:
  layout: relative
  children:
    - {name: a, kind: rectangle, size: [1, 1], item: {relative: [leftOf b]}}
    - {name: b, kind: rectangle, size: [1, 1], item: {relative: [leftOf a]}}
`
	fn = writeTemp(t, "cyc.yaml", cyc)
	assert.NotPanics(t, func() {
		err := run([]string{fn}, out, errOut)
		assert.ErrorContains(t, err, "dependency cycle")
	})
}
