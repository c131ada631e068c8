package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPositiveInt64(t *testing.T) {
	cases := map[string]struct {
		value int64
		ok    bool
	}{
		"42":    {42, true},
		"1":     {1, true},
		"0":     {0, false},
		"-3":    {0, false},
		"abc":   {0, false},
		"":      {0, false},
		"9.5":   {0, false},
		"00017": {17, true},
	}

	for input, expected := range cases {
		value, ok := ToPositiveInt64(input)
		assert.Equal(t, expected.ok, ok, input)
		assert.Equal(t, expected.value, value, input)
	}
}
