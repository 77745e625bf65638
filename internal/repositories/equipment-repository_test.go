package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gear-tracker/pkg/utils"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "sm58", escapeLike("sm58"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
}

func TestBaseSelectMatchesSearchMetacharactersLiterally(t *testing.T) {
	r := &EquipmentRepository{}

	sql, args, err := r.baseSelect("org-1", utils.ListParams{Search: "100%_"}).
		Columns("COUNT(e.id)").
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "ILIKE")
	assert.Contains(t, args, `%100\%\_%`)
	assert.NotContains(t, args, "%100%_%")
}

func TestOrderClauseFallsBackToNameSort(t *testing.T) {
	assert.Equal(t, "e.name ASC, e.id ASC", orderClause(utils.ListParams{SortBy: "nope"}))
	assert.Equal(t, "e.purchase_price DESC, e.id ASC", orderClause(utils.ListParams{SortBy: "purchasePrice", SortOrder: "desc"}))
}
