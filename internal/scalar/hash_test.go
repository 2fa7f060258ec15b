package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	assert.Equal(t, Hash(1, 2, 3), Hash(1, 2, 3))
	assert.NotEqual(t, Hash(1, 2, 3), Hash(3, 2, 1))
	assert.NotEqual(t, Hash(1), Hash(1, 0))
	assert.Equal(t, Hash(0), Hash(Real(math.Copysign(0, -1))))
}
