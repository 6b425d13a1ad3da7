package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%hope%", SearchPattern("hope"))
	// An empty term matches every row in the searchable status set.
	assert.Equal(t, "%%", SearchPattern(""))
	// User input is bound as a parameter, so SQL metacharacters stay inert.
	assert.Equal(t, "%'; DROP TABLE Users; --%", SearchPattern("'; DROP TABLE Users; --"))
}
