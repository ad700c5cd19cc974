package stringx_test

import (
	"testing"

	"github.com/123jimin/tooltool/stringx"
	"gotest.tools/v3/assert"
)

func TestChunk(t *testing.T) {
	assert.DeepEqual(t, stringx.Chunk("abcdef", 2), []string{"ab", "cd", "ef"})
	assert.DeepEqual(t, stringx.Chunk("abcde", 2), []string{"ab", "cd", "e"})
	assert.DeepEqual(t, stringx.Chunk("ab", 5), []string{"ab"})
	assert.Assert(t, stringx.Chunk("", 3) == nil)
}

func TestChunk_RuneSafe(t *testing.T) {
	assert.DeepEqual(t, stringx.Chunk("héllo", 2), []string{"hé", "ll", "o"})
	assert.DeepEqual(t, stringx.Chunk("日本語", 2), []string{"日本", "語"})
}

func TestCrop(t *testing.T) {
	assert.Equal(t, stringx.Crop("hello world", 8, "..."), "hello...")
	assert.Equal(t, stringx.Crop("hello", 8, "..."), "hello")
	assert.Equal(t, stringx.Crop("hello", 5, "..."), "hello")
	assert.Equal(t, stringx.Crop("hello world", 2, "..."), "..")
	assert.Equal(t, stringx.Crop("日本語テスト", 4, "…"), "日本語…")
}

func TestIndexAll(t *testing.T) {
	assert.DeepEqual(t, stringx.IndexAll("abcabcabc", "abc"), []int{0, 3, 6})
	assert.DeepEqual(t, stringx.IndexAll("aaaa", "aa"), []int{0, 2}) // non-overlapping
	assert.Assert(t, stringx.IndexAll("abc", "x") == nil)
	assert.Assert(t, stringx.IndexAll("abc", "") == nil)
}
