package brasilapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCNPJ(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/11222333000181", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cnpj":"11222333000181","razao_social":"Devedora LTDA","descricao_situacao_cadastral":"ATIVA","qsa":[{"nome_socio":"Maria"}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	company, err := client.GetByCNPJ(context.Background(), "11222333000181")
	require.NoError(t, err)

	assert.Equal(t, "Devedora LTDA", company.RazaoSocial)
	assert.Equal(t, "ATIVA", company.DescricaoSituacaoCadastral)
	require.Len(t, company.QuadroSocietario, 1)
	assert.Equal(t, "Maria", company.QuadroSocietario[0].NomeSocio)
}

func TestGetByCNPJUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"CNPJ não encontrado."}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.GetByCNPJ(context.Background(), "11222333000181")
	require.Error(t, err)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, http.StatusNotFound, lookupErr.StatusCode)
	assert.Contains(t, lookupErr.Detail, "encontrado")
}

func TestGetByCNPJTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.GetByCNPJ(context.Background(), "11222333000181")
	require.Error(t, err)

	var lookupErr *LookupError
	assert.False(t, errors.As(err, &lookupErr))
}
