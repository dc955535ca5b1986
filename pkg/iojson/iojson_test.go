package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestMarshalError(t *testing.T) {
	out := MarshalError("bad board", map[string]any{"file": "a.json"})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "bad board", e.Message)
	assert.Equal(t, "a.json", e.Data["file"])
}

func TestMarshalError_Unmarshalable(t *testing.T) {
	out := MarshalError(`quote " here`, map[string]any{"ch": make(chan int)})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, `quote " here`, e.Message)
	assert.Contains(t, e.Data, "json_error")
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "oops", nil))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.Contains(t, buf.String(), `"message": "oops"`)
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, sample{Name: "a", Count: 2}))
	assert.Contains(t, out.String(), "\n  \"count\": 2")
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "error marshaling in iojson.Write")
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, sample{Name: "a", Count: 1}))
	require.NoError(t, WriteLine(&buf, sample{Name: "b", Count: 2}))

	assert.Equal(t, "{\"name\":\"a\",\"count\":1}\n{\"name\":\"b\",\"count\":2}\n", buf.String())

	require.Error(t, WriteLine(&buf, make(chan int)))
}

func TestFileReader(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "in.json")
	yamlPath := filepath.Join(dir, "in.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"j","count":3}`), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: y\ncount: 4\n"), 0o644))

	tests := []struct {
		path string
		want sample
	}{
		{jsonPath, sample{Name: "j", Count: 3}},
		{yamlPath, sample{Name: "y", Count: 4}},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			var fr FileReader[sample]
			fr.SetPath(tt.path)
			assert.Equal(t, tt.path, fr.Path())

			got, err := fr.Read()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileReader_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))

	var fr FileReader[sample]
	fr.SetPath(filepath.Join(dir, "missing.json"))
	_, err := fr.Read()
	require.ErrorContains(t, err, "open file")

	fr.SetPath(bad)
	_, err = fr.Read()
	require.ErrorContains(t, err, "decode JSON")
}

func TestFileReader_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(`{"name":"pipe","count":9}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	t.Cleanup(func() { _ = r.Close() })

	fr := FileReader[sample]{Stdin: r}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "pipe", Count: 9}, got)
}

func TestFileReader_Flag(t *testing.T) {
	var fr FileReader[sample]
	f := fr.Flag()
	assert.Equal(t, "file", f.Name)
	assert.Equal(t, []string{"f"}, f.Aliases)
}

func TestIsYAML(t *testing.T) {
	assert.True(t, IsYAML("boards/a.yaml"))
	assert.True(t, IsYAML("a.YML"))
	assert.False(t, IsYAML("a.json"))
	assert.False(t, IsYAML("yaml"))
}

func TestDecode(t *testing.T) {
	got, err := DecodeYAML[sample](strings.NewReader("name: y\ncount: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "y", Count: 2}, got)

	_, err = DecodeJSON[sample](strings.NewReader(`{"count": "x"}`))
	require.ErrorContains(t, err, "decode JSON")
}
