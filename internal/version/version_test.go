package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, "acibeam v"+Version+" (commit unknown, built unknown)", Info())
}
