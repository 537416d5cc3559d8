package service

import (
	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
)

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}

func toLeadResponse(lead *entity.Lead) *contract.LeadResponse {
	return &contract.LeadResponse{
		ID:               lead.ID,
		Cnpj:             lead.Cnpj,
		NomeDevedor:      lead.NomeDevedor,
		NomeFantasia:     lead.NomeFantasia,
		ValorTotalDivida: lead.ValorTotalDivida,
		Status:           string(lead.Status),
		Municipio:        lead.Municipio,
		Uf:               lead.Uf,
		EmpresaID:        lead.EmpresaID,
		CreatedAt:        utils.FormatEpoch(lead.CreatedAt),
		UpdatedAt:        utils.FormatEpoch(lead.UpdatedAt),
	}
}

func toLeadDetailResponse(lead *entity.Lead) *contract.LeadDetailResponse {
	detail := &contract.LeadDetailResponse{
		LeadResponse: *toLeadResponse(lead),
		Atividades:   make([]*contract.AtividadeResponse, len(lead.Atividades)),
		Lembretes:    make([]*contract.LembreteResponse, len(lead.Lembretes)),
	}

	if lead.Empresa != nil {
		detail.Empresa = toEmpresaResponse(lead.Empresa)
	}
	for i, atividade := range lead.Atividades {
		detail.Atividades[i] = toAtividadeResponse(atividade)
	}
	for i, lembrete := range lead.Lembretes {
		detail.Lembretes[i] = toLembreteResponse(lembrete)
	}
	if lead.Negocio != nil {
		detail.Negocio = toNegocioResponse(lead.Negocio)
	}
	return detail
}

func toEmpresaResponse(empresa *entity.Empresa) *contract.EmpresaResponse {
	resp := &contract.EmpresaResponse{
		ID:                    empresa.ID,
		Cnpj:                  empresa.Cnpj,
		RazaoSocial:           empresa.RazaoSocial,
		NomeFantasia:          empresa.NomeFantasia,
		SituacaoCadastral:     empresa.SituacaoCadastral,
		DataSituacaoCadastral: empresa.DataSituacaoCadastral,
		Logradouro:            empresa.Logradouro,
		Numero:                empresa.Numero,
		Bairro:                empresa.Bairro,
		Cep:                   empresa.Cep,
		Municipio:             empresa.Municipio,
		Uf:                    empresa.Uf,
		CapitalSocial:         empresa.CapitalSocial,
		Telefone:              empresa.Telefone,
		Porte:                 empresa.Porte,
		NaturezaJuridica:      empresa.NaturezaJuridica,
		CnaeFiscalDescricao:   empresa.CnaeFiscalDescricao,
		DataInicioAtividade:   empresa.DataInicioAtividade,
		RegimeTributario:      empresa.RegimeTributario,
		CnaesSecundarios:      make([]contract.CnaeResponse, len(empresa.CnaesSecundarios)),
		Socios:                make([]*contract.SocioResponse, len(empresa.Socios)),
		Contatos:              make([]*contract.ContatoResponse, len(empresa.Contatos)),
	}

	if empresa.EnrichedAt > 0 {
		resp.EnrichedAt = utils.FormatEpoch(empresa.EnrichedAt)
	}
	for i, cnae := range empresa.CnaesSecundarios {
		resp.CnaesSecundarios[i] = contract.CnaeResponse{Codigo: cnae.Codigo, Descricao: cnae.Descricao}
	}
	for i, socio := range empresa.Socios {
		resp.Socios[i] = &contract.SocioResponse{
			ID:                   socio.ID,
			NomeSocio:            socio.NomeSocio,
			QualificacaoSocio:    socio.QualificacaoSocio,
			DataEntradaSociedade: socio.DataEntradaSociedade,
			Documento:            socio.Documento,
		}
	}
	for i, contato := range empresa.Contatos {
		resp.Contatos[i] = toContatoResponse(contato)
	}
	return resp
}

func toNegocioResponse(negocio *entity.Negocio) *contract.NegocioResponse {
	resp := &contract.NegocioResponse{
		ID:              negocio.ID,
		LeadID:          negocio.LeadID,
		ValorFechado:    negocio.ValorFechado,
		ValorEscritorio: negocio.ValorEscritorio,
		ValorOutraParte: negocio.ValorOutraParte,
		ValorRecebido:   negocio.ValorRecebido,
		Propostas:       make([]*contract.PropostaResponse, len(negocio.Propostas)),
		CreatedAt:       utils.FormatEpoch(negocio.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(negocio.UpdatedAt),
	}

	if negocio.DataFechamento != nil {
		formatted := utils.FormatEpoch(*negocio.DataFechamento)
		resp.DataFechamento = &formatted
	}
	for i, proposta := range negocio.Propostas {
		resp.Propostas[i] = toPropostaResponse(proposta)
	}
	return resp
}

func toPropostaResponse(proposta *entity.Proposta) *contract.PropostaResponse {
	resp := &contract.PropostaResponse{
		ID:             proposta.ID,
		NegocioID:      proposta.NegocioID,
		Objeto:         proposta.Objeto,
		Escopo:         proposta.Escopo,
		Valores:        proposta.Valores,
		CaminhoArquivo: proposta.CaminhoArquivo,
		NomeArquivo:    proposta.NomeArquivo,
		CreatedAt:      utils.FormatEpoch(proposta.CreatedAt),
	}

	if proposta.Validade != nil {
		formatted := utils.FormatEpoch(*proposta.Validade)
		resp.Validade = &formatted
	}
	return resp
}

func toAtividadeResponse(atividade *entity.Atividade) *contract.AtividadeResponse {
	return &contract.AtividadeResponse{
		ID:        atividade.ID,
		LeadID:    atividade.LeadID,
		Conteudo:  atividade.Conteudo,
		CreatedAt: utils.FormatEpoch(atividade.CreatedAt),
	}
}

func toLembreteResponse(lembrete *entity.Lembrete) *contract.LembreteResponse {
	return &contract.LembreteResponse{
		ID:        lembrete.ID,
		LeadID:    lembrete.LeadID,
		Descricao: lembrete.Descricao,
		Data:      utils.FormatEpoch(lembrete.Data),
		Concluido: lembrete.Concluido,
		CreatedAt: utils.FormatEpoch(lembrete.CreatedAt),
	}
}

func toContatoResponse(contato *entity.Contato) *contract.ContatoResponse {
	return &contract.ContatoResponse{
		ID:         contato.ID,
		EmpresaID:  contato.EmpresaID,
		Nome:       contato.Nome,
		Cargo:      contato.Cargo,
		Telefone:   contato.Telefone,
		Email:      contato.Email,
		Observacao: contato.Observacao,
		CreatedAt:  utils.FormatEpoch(contato.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(contato.UpdatedAt),
	}
}

func toConfigResponse(config *entity.Configuracao) *contract.ConfigResponse {
	return &contract.ConfigResponse{
		ID:          config.ID,
		NomeEmpresa: config.NomeEmpresa,
		Cnpj:        config.Cnpj,
		Endereco:    config.Endereco,
		Email:       config.Email,
		Telefone:    config.Telefone,
		LogoUrl:     config.LogoUrl,
		UpdatedAt:   utils.FormatEpoch(config.UpdatedAt),
	}
}
