package validate

import (
	"strings"
	"testing"

	"Memora/pkg/response"

	"github.com/stretchr/testify/assert"
)

type commentInput struct {
	Content string `validate:"notblank,maxrunes=5"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(commentInput{Content: "你好世界"}))

	err := Struct(commentInput{Content: "   "})
	assert.True(t, response.IsKind(err, response.KindValidation))
	assert.Equal(t, "content is required", err.Error())

	err = Struct(commentInput{Content: strings.Repeat("a", 6)})
	assert.True(t, response.IsKind(err, response.KindValidation))
	assert.Contains(t, err.Error(), "at most 5")
}
