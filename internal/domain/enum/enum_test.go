package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetContains(t *testing.T) {
	assert.True(t, PaymentMethods.Contains("pix"))
	assert.True(t, PaymentMethods.Contains("convenio"))
	assert.False(t, PaymentMethods.Contains("cheque"))
	assert.False(t, PaymentMethods.Contains(""))

	assert.True(t, Specialties.Contains("ortodontia"))
	assert.False(t, Specialties.Contains("Ortodontia"), "membership is case sensitive")

	assert.True(t, EmployeeRoles.Contains("recepcionista"))
	assert.False(t, EmployeeRoles.Contains("doctor"))

	assert.True(t, Procedures.Contains("canal"))
	assert.False(t, Procedures.Contains("raio_x"))

	assert.True(t, BrazilianStates.Contains("SP"))
	assert.False(t, BrazilianStates.Contains("sp"))
	assert.False(t, BrazilianStates.Contains("XX"))
}

func TestSetValues(t *testing.T) {
	values := PaymentMethods.Values()
	assert.Equal(t, "dinheiro", values[0], "declaration order is preserved")
	assert.Len(t, values, 6)

	assert.Len(t, BrazilianStates.Values(), 27)
	assert.Len(t, Specialties.Values(), 8)
}

func TestSetValuesMatchContains(t *testing.T) {
	for _, set := range []Set{PaymentMethods, Specialties, EmployeeRoles, Procedures, BrazilianStates} {
		for _, code := range set.Values() {
			assert.True(t, set.Contains(code))
		}
	}
}
