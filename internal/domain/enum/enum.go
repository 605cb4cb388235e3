// Package enum holds the fixed vocabulary tables of the product: payment
// methods, dental specialties, employee roles, clinical procedures and
// Brazilian state codes. The sets are built once at init and validated by
// membership test.
package enum

// Set is an immutable membership set over string codes. The exported
// variables below are populated at init and must not be mutated afterwards.
type Set struct {
	values []string
	index  map[string]struct{}
}

func newSet(values ...string) Set {
	index := make(map[string]struct{}, len(values))
	for _, v := range values {
		index[v] = struct{}{}
	}
	return Set{values: values, index: index}
}

// Contains reports whether code belongs to the set.
func (s Set) Contains(code string) bool {
	_, ok := s.index[code]
	return ok
}

// Values returns the codes in declaration order. Callers must not mutate
// the returned slice.
func (s Set) Values() []string {
	return s.values
}

var (
	// PaymentMethods accepted at the front desk.
	PaymentMethods = newSet(
		"dinheiro",
		"cartao_credito",
		"cartao_debito",
		"pix",
		"boleto",
		"convenio",
	)

	// Specialties a doctor profile can carry.
	Specialties = newSet(
		"clinico_geral",
		"ortodontia",
		"endodontia",
		"periodontia",
		"implantodontia",
		"odontopediatria",
		"cirurgia_bucomaxilofacial",
		"protese_dentaria",
	)

	// EmployeeRoles for non-clinical staff.
	EmployeeRoles = newSet(
		"recepcionista",
		"auxiliar",
		"gerente",
		"financeiro",
	)

	// Procedures bookable on an appointment.
	Procedures = newSet(
		"avaliacao",
		"limpeza",
		"restauracao",
		"extracao",
		"canal",
		"clareamento",
		"manutencao_aparelho",
		"implante",
		"protese",
	)

	// BrazilianStates by two-letter code.
	BrazilianStates = newSet(
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
		"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
		"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	)
)
