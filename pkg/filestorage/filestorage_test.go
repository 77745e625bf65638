package filestorage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoKeyIsUniquePerCall(t *testing.T) {
	first := PhotoKey("mic.jpg")
	second := PhotoKey("mic.jpg")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "equipment-photos/"))
	assert.True(t, strings.HasSuffix(first, "-mic.jpg"))
}

func TestPhotoKeySanitizesFileName(t *testing.T) {
	key := PhotoKey("../../etc/pass wd.png")

	assert.True(t, strings.HasPrefix(key, "equipment-photos/"))
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, " ")
	assert.True(t, strings.HasSuffix(key, "-pass_wd.png"))
}
