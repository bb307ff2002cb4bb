package scanner

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cases use forward slashes")
	}

	cases := []struct {
		root     string
		expected string
	}{
		{"/home/me/proj", "proj"},
		{"/home/me/proj/", "proj"},
		{"/home/me/proj//", "proj"},
		{"/home/me/proj/.", "proj"},
		{"proj/./.", "proj"},
		{"relative", "relative"},
		{"/", "/"},
		{"", ""},
		{".", "."},
		{"./", "./"},
		{"..", ".."},
		{"/home/..", "/home/.."},
		{"/.", "/."},
		{"/tmp/bad\xffdir", "bad\uFFFDdir"},
	}

	for _, tc := range cases {
		t.Run(tc.root, func(t *testing.T) {
			assert.Equal(t, tc.expected, rootName(tc.root))
		})
	}
}

func TestDisplayString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("plain", displayString("plain"))
	assert.Equal("héllo wörld", displayString("héllo wörld"))
	assert.Equal("\uFFFD", displayString("\xff"))
	assert.Equal("a\uFFFD\uFFFDb", displayString("a\xff\xfeb"))
	assert.Equal("already \uFFFD", displayString("already \uFFFD"))

	// truncated sequences count as one replacement each
	assert.Equal("a\uFFFDb", displayString("a\xe2\x82b"))
	assert.Equal("a\uFFFDb", displayString("a\xf0\x9f\x98b"))
	assert.Equal("\uFFFD\u20ac", displayString("\xe2\x82\xe2\x82\xac"))
	assert.Equal("x\uFFFD", displayString("x\xf0\x9f"))
	// bytes that cannot follow the lead are replaced on their own
	assert.Equal("\uFFFD\uFFFD\uFFFD", displayString("\xed\xa0\x80"))
	assert.Equal("\uFFFD\uFFFD\uFFFD", displayString("\xf0\x80\x80"))
	assert.Equal("\uFFFDA", displayString("\xc3A"))
}

func TestJoinPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cases use forward slashes")
	}
	assert := assert.New(t)

	assert.Equal("src", joinPath("", "src"))
	assert.Equal("/src", joinPath("/", "src"))
	assert.Equal("proj/src", joinPath("proj", "src"))
	assert.Equal("proj/src", joinPath("proj/", "src"))
	assert.Equal("proj/./src", joinPath("proj/.", "src"))
}

func TestIsExcluded(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"node_modules", "target", "dist", ".git", ".svn", ".hg", "__pycache__", ".next", ".nuxt", "build", ".idea", "."} {
		assert.True(IsExcluded(name), name)
	}
	for _, name := range []string{"src", "Build", "Target", "NODE_MODULES", "dist-old", "builds", "git"} {
		assert.False(IsExcluded(name), name)
	}
	assert.Len(ExcludedNames(), 10)
}
