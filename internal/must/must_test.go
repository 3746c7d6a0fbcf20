package must

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	t.Run("with a serializable value", func(t *testing.T) {
		data := MarshalJSON(map[string]int{"antani": 17})
		if string(data) != `{"antani":17}` {
			t.Fatal("unexpected output", string(data))
		}
	})

	t.Run("with an unserializable value", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		_ = MarshalJSON(make(chan int))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("with a parsable document", func(t *testing.T) {
		var value map[string]int
		UnmarshalJSON([]byte(`{"antani":17}`), &value)
		if diff := cmp.Diff(map[string]int{"antani": 17}, value); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an unparsable document", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		var value map[string]int
		UnmarshalJSON([]byte(`{`), &value)
	})
}

func TestWriteAndReadFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "file.txt")
		WriteFile(filename, []byte("antani"), 0600)
		if string(ReadFile(filename)) != "antani" {
			t.Fatal("unexpected content")
		}
	})

	t.Run("ReadFile panics on a missing file", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		_ = ReadFile(filepath.Join(t.TempDir(), "missing"))
	})
}
