package mappingstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colorcode-go/subiso/mappingstore"
)

func TestAddDeduplicatesBySortedVertexSet(t *testing.T) {
	s := mappingstore.NewStore()

	assert.True(t, s.Add(&mappingstore.Result{Mapping: []int{5, 2, 9}}))
	// Same vertex set, different pattern-to-host assignment: still a dup.
	assert.False(t, s.Add(&mappingstore.Result{Mapping: []int{9, 5, 2}}))
	assert.True(t, s.Add(&mappingstore.Result{Mapping: []int{1, 2, 3}}))

	assert.Equal(t, 2, s.Size())
	assert.Len(t, s.Results(), 2)
}

func TestNewStoreIsEmpty(t *testing.T) {
	s := mappingstore.NewStore()
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Results())
}
