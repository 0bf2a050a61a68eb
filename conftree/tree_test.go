package conftree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/ragenv/conftree"
)

func sampleTree() *conftree.Tree {
	return conftree.New(map[string]conftree.Value{
		"enabled":  conftree.Bool(true),
		"answer":   conftree.String("yes"),
		"name":     conftree.String("nomic-embed-text"),
		"port":     conftree.Int(11434),
		"ratio":    conftree.Float(0.25),
		"whole":    conftree.Number("768.0"),
		"numeric":  conftree.String("42"),
		"empty":    conftree.Null(),
		"list":     conftree.Array(conftree.Int(1), conftree.Int(2)),
		"section":  conftree.Object(map[string]conftree.Value{"url": conftree.String("http://x")}),
		"mistyped": conftree.String("abc"),
	})
}

func TestTree_Has(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.Has("name"))
	assert.False(t, tree.Has("missing"))
	assert.False(t, tree.Has("empty"), "null counts as missing")
}

func TestTree_GetBool(t *testing.T) {
	tree := sampleTree()

	v, err := tree.GetBool("enabled")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = tree.GetBool("answer")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = tree.GetBool("name")
	assert.ErrorIs(t, err, conftree.ErrWrongType)

	_, err = tree.GetBool("missing")
	assert.ErrorIs(t, err, conftree.ErrKeyNotFound)
}

func TestTree_GetString(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		key  string
		want string
	}{
		{key: "name", want: "nomic-embed-text"},
		{key: "port", want: "11434"},
		{key: "enabled", want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, err := tree.GetString(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	_, err := tree.GetString("section")
	assert.ErrorIs(t, err, conftree.ErrWrongType)

	_, err = tree.GetString("list")
	assert.ErrorIs(t, err, conftree.ErrWrongType)

	_, err = tree.GetString("empty")
	assert.ErrorIs(t, err, conftree.ErrKeyNotFound)
}

func TestTree_GetInt(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name    string
		key     string
		want    int
		wantErr error
	}{
		{name: "integer", key: "port", want: 11434},
		{name: "integral float", key: "whole", want: 768},
		{name: "numeric string", key: "numeric", want: 42},
		{name: "fraction", key: "ratio", wantErr: conftree.ErrWrongType},
		{name: "word", key: "mistyped", wantErr: conftree.ErrWrongType},
		{name: "bool", key: "enabled", wantErr: conftree.ErrWrongType},
		{name: "object", key: "section", wantErr: conftree.ErrWrongType},
		{name: "missing", key: "missing", wantErr: conftree.ErrKeyNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tree.GetInt(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestTree_GetFloat(t *testing.T) {
	tree := sampleTree()

	v, err := tree.GetFloat("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-9)

	v, err = tree.GetFloat("port")
	require.NoError(t, err)
	assert.InDelta(t, 11434.0, v, 1e-9)

	_, err = tree.GetFloat("mistyped")
	assert.ErrorIs(t, err, conftree.ErrWrongType)
}

func TestTree_GetTree(t *testing.T) {
	tree := sampleTree()

	sub, err := tree.GetTree("section")
	require.NoError(t, err)
	url, err := sub.GetString("url")
	require.NoError(t, err)
	assert.Equal(t, "http://x", url)

	_, err = tree.GetTree("name")
	assert.ErrorIs(t, err, conftree.ErrWrongType)

	_, err = tree.GetTree("missing")
	assert.ErrorIs(t, err, conftree.ErrKeyNotFound)
}
