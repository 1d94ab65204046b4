/*
File : gplc/internal/driver/driver_test.go
*/
package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gplang/gplc/internal/driver"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCompile_HelloWorldProducesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeSource(t, dir, "hello.gpl", `func main() { println("Hello, World!"); }`)

	res := driver.Compile(driver.Options{InputPath: in})
	require.Empty(t, res.Diagnostics)
	require.Equal(t, filepath.Join(dir, "hello.cs"), res.OutputPath)

	contents, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `println("Hello, World!");`)
}

func TestCompile_TypeErrorProducesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeSource(t, dir, "bad.gpl", `func main() { let x: Int = "hello"; }`)

	res := driver.Compile(driver.Options{InputPath: in})
	require.Empty(t, res.OutputPath)
	require.NotEmpty(t, res.Diagnostics)
	assert.Contains(t, res.Diagnostics[0].Category, "Type error")
	assert.Contains(t, res.Diagnostics[0].String(), "Cannot initialize variable 'x' of type Int with value of type String")

	_, err := os.Stat(filepath.Join(dir, "bad.cs"))
	assert.True(t, os.IsNotExist(err), "no output file should be written on a compile error")
}

func TestCompile_SyntaxErrorShortCircuitsAnalysis(t *testing.T) {
	dir := t.TempDir()
	in := writeSource(t, dir, "syn.gpl", `func main() { let x; }`)

	res := driver.Compile(driver.Options{InputPath: in})
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, "Syntax error", res.Diagnostics[0].Category)
}

func TestCompile_MissingInputFileIsInternalError(t *testing.T) {
	res := driver.Compile(driver.Options{InputPath: "/nonexistent/path.gpl"})
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, "Internal compiler error", res.Diagnostics[0].Category)
}

func TestCompile_RespectsExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := writeSource(t, dir, "hello.gpl", `func main() { println("hi"); }`)
	out := filepath.Join(dir, "custom.cs")

	res := driver.Compile(driver.Options{InputPath: in, OutputPath: out})
	require.Empty(t, res.Diagnostics)
	assert.Equal(t, out, res.OutputPath)
}

func TestDefaultOutputPath_ReplacesExtensionWithCS(t *testing.T) {
	assert.Equal(t, "/tmp/program.cs", driver.DefaultOutputPath("/tmp/program.gpl"))
	assert.Equal(t, "/tmp/program.cs", driver.DefaultOutputPath("/tmp/program"))
}

func TestCompile_IsDeterministic(t *testing.T) {
	dir := t.TempDir()
	in := writeSource(t, dir, "det.gpl", `func add(x: Int, y: Int) -> Int { return x + y; }
		func main() { println(toString(add(2, 3))); }`)

	first := driver.Compile(driver.Options{InputPath: in, OutputPath: filepath.Join(dir, "a.cs")})
	second := driver.Compile(driver.Options{InputPath: in, OutputPath: filepath.Join(dir, "b.cs")})
	require.Empty(t, first.Diagnostics)
	require.Empty(t, second.Diagnostics)

	a, _ := os.ReadFile(first.OutputPath)
	b, _ := os.ReadFile(second.OutputPath)
	assert.Equal(t, string(a), string(b))
}
