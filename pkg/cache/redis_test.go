package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "pta", Key())
	assert.Equal(t, "pta:announcements:student:42", Key("announcements", "student", "42"))
}
