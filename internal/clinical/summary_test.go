package clinical

import (
	"testing"

	"dental-clinic-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputeSummary(t *testing.T) {
	data := entity.JSON{
		KeyChiefComplaint:  "Dor de dente",
		KeyKnownConditions: []string{"doencas_renais", "asma"},
	}

	assert.Equal(t, "Dor de dente, Doencas renais, Asma", ComputeSummary(data))
}

func TestComputeSummary_ConditionsAfterJSONBRoundTrip(t *testing.T) {
	// jsonb columns come back as []interface{}, not []string.
	data := entity.JSON{
		KeyChiefComplaint:  "Sangramento gengival",
		KeyKnownConditions: []interface{}{"diabetes", "hipertensao_arterial"},
	}

	assert.Equal(t, "Sangramento gengival, Diabetes, Hipertensao arterial", ComputeSummary(data))
}

func TestComputeSummary_PartialPayloads(t *testing.T) {
	assert.Equal(t, "", ComputeSummary(entity.JSON{}))

	assert.Equal(t, "Dor de dente", ComputeSummary(entity.JSON{
		KeyChiefComplaint: "Dor de dente",
	}))

	assert.Equal(t, "Asma", ComputeSummary(entity.JSON{
		KeyChiefComplaint:  "",
		KeyKnownConditions: []string{"", "asma"},
	}))

	// Non-string junk in the conditions array is skipped, not an error.
	assert.Equal(t, "Asma", ComputeSummary(entity.JSON{
		KeyKnownConditions: []interface{}{42, "asma", nil},
	}))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Doencas renais", Humanize("doencas_renais"))
	assert.Equal(t, "Asma", Humanize("asma"))
	assert.Equal(t, "HIV positivo", Humanize("HIV_positivo"))
	assert.Equal(t, "", Humanize(""))
}
