package service

import (
	"context"
	"errors"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/infrastructure/brasilapi"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
)

type RegistryClient interface {
	GetByCNPJ(ctx context.Context, cnpj string) (*brasilapi.CompanyResponse, error)
}

type EmpresaRepository interface {
	FindByCnpj(cnpj string) (*entity.Empresa, error)
	UpsertWithSocios(tx *gorm.DB, empresa *entity.Empresa) error
}

type EnrichmentService struct {
	DB          *gorm.DB
	Guard       *policy.OwnershipGuard
	EmpresaRepo EmpresaRepository
	LeadRepo    LeadRepository
	Registry    RegistryClient

	// beforeLeadLink runs inside the reconciliation transaction, after
	// the empresa upsert and before the lead is linked. Tests inject
	// failures here to exercise the rollback path.
	beforeLeadLink func(tx *gorm.DB) error
}

func NewEnrichmentService(
	db *gorm.DB,
	guard *policy.OwnershipGuard,
	empresaRepo EmpresaRepository,
	leadRepo LeadRepository,
	registry RegistryClient,
) *EnrichmentService {
	return &EnrichmentService{
		DB:          db,
		Guard:       guard,
		EmpresaRepo: empresaRepo,
		LeadRepo:    leadRepo,
		Registry:    registry,
	}
}

// Enrich verifies a lead's CNPJ against the federal registry and
// reconciles the result into the shared empresa record.
//
// Outcomes:
//   - registry unreachable or non-2xx: the lead is discarded and the
//     upstream status is surfaced as the error;
//   - registration not ATIVA: the lead is discarded, which is a
//     successful (non-error) outcome;
//   - ATIVA: empresa upsert, wholesale socio replacement and lead
//     linking commit in a single transaction.
//
// The discard write deliberately happens outside the transaction so a
// later failure never resurrects the lead.
func (e *EnrichmentService) Enrich(ctx context.Context, actor *entity.User, leadID int64) (*contract.VerifyLeadResponse, apierror.ErrorResponse) {
	lead, err := e.Guard.Lead(e.DB, leadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	cnpj := utils.NormalizeCNPJ(lead.Cnpj)
	if len(cnpj) != utils.CNPJLength {
		return nil, apierror.InvalidCNPJError
	}

	company, err := e.Registry.GetByCNPJ(ctx, cnpj)
	if err != nil {
		e.discard(lead)

		var lookupErr *brasilapi.LookupError
		if errors.As(err, &lookupErr) {
			log.Warnf("registry rejected cnpj %s: %v", cnpj, err)
			return nil, apierror.NewRegistryError(lookupErr.StatusCode, "")
		}
		log.Errorf("registry lookup failed for cnpj %s: %v", cnpj, err)
		return nil, apierror.RegistryFailedError
	}

	if company.DescricaoSituacaoCadastral != entity.SituacaoAtiva {
		e.discard(lead)
		return &contract.VerifyLeadResponse{
			Status: string(entity.StatusDescartado),
			Motivo: "Situação cadastral: " + company.DescricaoSituacaoCadastral,
		}, nil
	}

	empresa := buildEmpresa(cnpj, company)
	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if txerr := e.EmpresaRepo.UpsertWithSocios(tx, empresa); txerr != nil {
			return txerr
		}
		if e.beforeLeadLink != nil {
			if txerr := e.beforeLeadLink(tx); txerr != nil {
				return txerr
			}
		}
		return tx.Model(&entity.Lead{}).
			Where("id = ?", lead.ID).
			Updates(map[string]any{
				"empresa_id": empresa.ID,
				"status":     entity.StatusVerificado,
				"updated_at": utils.NowUTC(),
			}).Error
	})
	if err != nil {
		log.Errorf("failed to reconcile empresa for lead %d: %v", lead.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.VerifyLeadResponse{
		Status:  string(entity.StatusVerificado),
		Empresa: toEmpresaResponse(empresa),
	}, nil
}

// discard marks the lead DESCARTADO outside any transaction; failing to
// persist the discard is logged but never masks the primary outcome.
func (e *EnrichmentService) discard(lead *entity.Lead) {
	if _, err := e.LeadRepo.UpdateStatus(lead.ID, lead.UserID, entity.StatusDescartado); err != nil {
		log.Errorf("failed to discard lead %d: %v", lead.ID, err)
	}
}

func buildEmpresa(cnpj string, company *brasilapi.CompanyResponse) *entity.Empresa {
	cnaes := make([]entity.CnaeSecundario, 0, len(company.CnaesSecundarios))
	for _, cnae := range company.CnaesSecundarios {
		cnaes = append(cnaes, entity.CnaeSecundario{Codigo: cnae.Codigo, Descricao: cnae.Descricao})
	}

	socios := make([]*entity.Socio, len(company.QuadroSocietario))
	for i, socio := range company.QuadroSocietario {
		socios[i] = &entity.Socio{
			NomeSocio:            socio.NomeSocio,
			QualificacaoSocio:    socio.QualificacaoSocio,
			DataEntradaSociedade: socio.DataEntradaSociedade,
			Documento:            socio.CnpjCpfDoSocio,
		}
	}

	return &entity.Empresa{
		Cnpj:                  cnpj,
		RazaoSocial:           company.RazaoSocial,
		NomeFantasia:          company.NomeFantasia,
		SituacaoCadastral:     company.DescricaoSituacaoCadastral,
		DataSituacaoCadastral: company.DataSituacaoCadastral,
		Logradouro:            company.Logradouro,
		Numero:                company.Numero,
		Bairro:                company.Bairro,
		Cep:                   company.Cep,
		Municipio:             company.Municipio,
		Uf:                    company.Uf,
		CapitalSocial:         company.CapitalSocial,
		Telefone:              company.Telefone(),
		Porte:                 company.Porte,
		NaturezaJuridica:      company.NaturezaJuridica,
		CnaeFiscalDescricao:   company.CnaeFiscalDescricao,
		DataInicioAtividade:   company.DataInicioAtividade,
		RegimeTributario:      company.RegimeRecente(),
		CnaesSecundarios:      cnaes,
		Socios:                socios,
		EnrichedAt:            utils.NowUTC(),
	}
}
