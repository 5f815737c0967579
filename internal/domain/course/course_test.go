package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourse_BuyPath(t *testing.T) {
	assert.Equal(t, "/buy/65f1c0ffee", Course{ID: "65f1c0ffee"}.BuyPath())
	assert.Equal(t, "/buy/a%2Fb", Course{ID: "a/b"}.BuyPath())
}

func TestClone(t *testing.T) {
	src := []Course{{ID: "a", Title: "X"}, {ID: "b", Title: "Y"}}
	dst := Clone(src)
	dst[0].Title = "changed"

	assert.Equal(t, "X", src[0].Title)
	assert.Len(t, dst, 2)
	assert.NotNil(t, Clone(nil))
	assert.Empty(t, Clone(nil))
}
