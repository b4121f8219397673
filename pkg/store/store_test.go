package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/contactbook/contactbook/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "db", "records.json")
	f := store.NewFile[record](path)
	assert.Equal(t, path, f.Path())

	t.Run("Load missing file", func(t *testing.T) {
		_, err := f.Load(ctx)
		assert.ErrorIs(t, err, store.ErrNotExist)
	})

	t.Run("Save creates directories and indents", func(t *testing.T) {
		err := f.Save(ctx, []record{{ID: "b", Name: "Bob"}, {ID: "a", Name: "Ann"}})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want := "[\n  {\n    \"id\": \"b\",\n    \"name\": \"Bob\"\n  },\n  {\n    \"id\": \"a\",\n    \"name\": \"Ann\"\n  }\n]\n"
		assert.Equal(t, want, string(data))
	})

	t.Run("Load preserves order", func(t *testing.T) {
		got, err := f.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	})

	t.Run("Save nil writes empty array", func(t *testing.T) {
		require.NoError(t, f.Save(ctx, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))

		got, err := f.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFile_Malformed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"garbage": "not json",
		"object":  `{"id":"a"}`,
		"null":    "null",
		"empty":   "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "records.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0600))

			_, err := store.NewFile[record](path).Load(ctx)
			assert.ErrorIs(t, err, store.ErrMalformed)
		})
	}
}

func TestFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "records.json")
	f := store.NewFile[record](path)

	assert.ErrorIs(t, f.Save(ctx, []record{{ID: "a"}}), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = f.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(store.EnvPath, "/custom/contacts.json")
	assert.Equal(t, "explicit.json", store.ResolvePath("explicit.json"))
	assert.Equal(t, "/custom/contacts.json", store.ResolvePath(""))

	t.Setenv(store.EnvPath, "")
	assert.Equal(t, store.DefaultPath, store.ResolvePath(""))
}
