package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulationSize(t *testing.T) {
	assert.Equal(t, 0, Population{}.Size())
	assert.Equal(t, 0, Population(nil).Size())

	pop := Population{
		{0.1, 0.2},
		{0.3, 0.4},
		{0.5, 0.6},
	}
	assert.Equal(t, 3, pop.Size())
}
