package brasilapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegimeRecenteLatestYearWins(t *testing.T) {
	c := &CompanyResponse{
		RegimeTributario: []*RegimeEntry{
			{Ano: 2022, FormaDeTributacao: "LUCRO PRESUMIDO"},
			{Ano: 2024, FormaDeTributacao: "LUCRO REAL"},
			{Ano: 2023, FormaDeTributacao: "LUCRO PRESUMIDO"},
		},
	}

	assert.Equal(t, "LUCRO REAL", c.RegimeRecente())
}

func TestRegimeRecenteStableOnTies(t *testing.T) {
	c := &CompanyResponse{
		RegimeTributario: []*RegimeEntry{
			{Ano: 2024, FormaDeTributacao: "LUCRO PRESUMIDO"},
			{Ano: 2024, FormaDeTributacao: "LUCRO REAL"},
		},
	}

	assert.Equal(t, "LUCRO PRESUMIDO", c.RegimeRecente())
}

func TestRegimeRecenteSimplesFallback(t *testing.T) {
	c := &CompanyResponse{OpcaoPeloSimples: true}
	assert.Equal(t, SimplesNacional, c.RegimeRecente())

	// Explicit history beats the flag.
	c.RegimeTributario = []*RegimeEntry{{Ano: 2021, FormaDeTributacao: "LUCRO REAL"}}
	assert.Equal(t, "LUCRO REAL", c.RegimeRecente())
}

func TestRegimeRecenteEmpty(t *testing.T) {
	c := &CompanyResponse{}
	assert.Equal(t, "", c.RegimeRecente())
}

func TestRegimeRecenteDoesNotReorderInput(t *testing.T) {
	c := &CompanyResponse{
		RegimeTributario: []*RegimeEntry{
			{Ano: 2020, FormaDeTributacao: "SIMPLES NACIONAL"},
			{Ano: 2024, FormaDeTributacao: "LUCRO REAL"},
		},
	}
	_ = c.RegimeRecente()

	assert.Equal(t, 2020, c.RegimeTributario[0].Ano)
}

func TestTelefoneFallback(t *testing.T) {
	c := &CompanyResponse{DddTelefone1: "1133334444", DddTelefone2: "1155556666"}
	assert.Equal(t, "1133334444", c.Telefone())

	c.DddTelefone1 = ""
	assert.Equal(t, "1155556666", c.Telefone())

	c.DddTelefone2 = ""
	assert.Equal(t, "", c.Telefone())
}
