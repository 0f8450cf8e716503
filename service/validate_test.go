package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/models"
)

func TestValidateEntry(t *testing.T) {
	assert.NoError(t, ValidateEntry(100, "进货款"))

	err := ValidateEntry(0, "x")
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)

	assert.Error(t, ValidateEntry(-5, "x"))
	assert.Error(t, ValidateEntry(100, ""))
	assert.Error(t, ValidateEntry(100, "   "))
	assert.Error(t, ValidateEntry(100, strings.Repeat("a", 201)))
	assert.NoError(t, ValidateEntry(100, strings.Repeat("a", 200)))
}

func TestValidateToGive(t *testing.T) {
	assert.NoError(t, ValidateToGive("Ali", 100, models.ToGiveStatusUnpaid))
	assert.NoError(t, ValidateToGive("Ali", 100, models.ToGiveStatusPaid))

	assert.Error(t, ValidateToGive("", 100, models.ToGiveStatusUnpaid))
	assert.Error(t, ValidateToGive(strings.Repeat("n", 101), 100, models.ToGiveStatusUnpaid))
	assert.Error(t, ValidateToGive("Ali", 0, models.ToGiveStatusUnpaid))
	assert.Error(t, ValidateToGive("Ali", 100, "paid"))
	assert.Error(t, ValidateToGive("Ali", 100, "Returned"))
}

func TestValidateDebt(t *testing.T) {
	assert.NoError(t, ValidateDebt("Bilal", 500, models.DebtStatusNotReturned))
	assert.NoError(t, ValidateDebt("Bilal", 500, models.DebtStatusReturned))

	assert.Error(t, ValidateDebt("Bilal", -1, models.DebtStatusReturned))
	assert.Error(t, ValidateDebt("Bilal", 500, "Unpaid"))
}

func TestValidateStock(t *testing.T) {
	assert.NoError(t, ValidateStock("手机壳", "红色", 3, 1000, models.StockStatusInStock))
	// 单价允许为0（赠品入库）
	assert.NoError(t, ValidateStock("赠品", "", 1, 0, models.StockStatusReserved))

	assert.Error(t, ValidateStock("", "", 1, 10, models.StockStatusInStock))
	assert.Error(t, ValidateStock(strings.Repeat("a", 101), "", 1, 10, models.StockStatusInStock))
	assert.Error(t, ValidateStock("x", strings.Repeat("a", 501), 1, 10, models.StockStatusInStock))
	assert.Error(t, ValidateStock("x", "", 0, 10, models.StockStatusInStock))
	assert.Error(t, ValidateStock("x", "", 1, -0.01, models.StockStatusInStock))
	assert.Error(t, ValidateStock("x", "", 1, 10, "in stock"))
}
