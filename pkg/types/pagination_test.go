package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 3, 10)
	assert.Equal(t, uint64(25), p.Total)
	assert.Equal(t, uint64(3), p.Page)
	assert.Equal(t, uint64(10), p.Limit)
	assert.Equal(t, uint64(3), p.TotalPages)

	p = NewPagination(0, 1, 20)
	assert.Equal(t, uint64(0), p.TotalPages)

	p = NewPagination(20, 1, 20)
	assert.Equal(t, uint64(1), p.TotalPages)
}
