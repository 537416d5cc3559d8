package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

type NegocioRepository interface {
	FindByLeadID(leadID int64) (*entity.Negocio, error)
	Save(negocio *entity.Negocio) error
}

// PipelineService moves leads through the sales pipeline and manages
// the 1:1 deal record hanging off each lead.
type PipelineService struct {
	DB          *gorm.DB
	Guard       *policy.OwnershipGuard
	LeadRepo    LeadRepository
	NegocioRepo NegocioRepository
	Validate    *validator.Validate
}

func NewPipelineService(
	db *gorm.DB,
	guard *policy.OwnershipGuard,
	leadRepo LeadRepository,
	negocioRepo NegocioRepository,
	validate *validator.Validate,
) *PipelineService {
	return &PipelineService{
		DB:          db,
		Guard:       guard,
		LeadRepo:    leadRepo,
		NegocioRepo: negocioRepo,
		Validate:    validate,
	}
}

// SetStatus applies a manual pipeline transition. Any member of the
// status enum may be set from any other; only enrichment restricts its
// own automated transitions.
func (p *PipelineService) SetStatus(actor *entity.User, leadID int64, req *contract.UpdateLeadStatusRequest) (*contract.LeadResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	status := entity.LeadStatus(req.Status)
	if !entity.ValidLeadStatus(status) {
		return nil, apierror.InvalidStatusError
	}

	updated, err := p.LeadRepo.UpdateStatus(leadID, actor.ID, status)
	if err != nil {
		log.Errorf("failed to update lead %d status: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	if !updated {
		return nil, apierror.NotFoundError
	}

	lead, err := p.Guard.Lead(p.DB, leadID, actor.ID)
	if err != nil || lead == nil {
		log.Errorf("failed to reload lead %d after status update: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	return toLeadResponse(lead), nil
}

// EnsureNegocio returns the lead's deal record, creating a zero-valued
// one on first use. Safe to call repeatedly.
func (p *PipelineService) EnsureNegocio(actor *entity.User, leadID int64) (*entity.Negocio, apierror.ErrorResponse) {
	lead, err := p.Guard.Lead(p.DB, leadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	negocio, err := p.NegocioRepo.FindByLeadID(lead.ID)
	if err != nil {
		log.Errorf("failed to fetch negocio for lead %d: %v", lead.ID, err)
		return nil, apierror.InternalServerError
	}
	if negocio != nil {
		return negocio, nil
	}

	now := utils.NowUTC()
	negocio = &entity.Negocio{
		ID:        uid.Generate(),
		LeadID:    lead.ID,
		UserID:    actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = p.NegocioRepo.Save(negocio); err != nil {
		log.Errorf("failed to create negocio for lead %d: %v", lead.ID, err)
		return nil, apierror.InternalServerError
	}
	return negocio, nil
}

// EnsureNegocioResponse is the handler-facing variant of EnsureNegocio.
func (p *PipelineService) EnsureNegocioResponse(actor *entity.User, leadID int64) (*contract.NegocioResponse, apierror.ErrorResponse) {
	negocio, apierr := p.EnsureNegocio(actor, leadID)
	if apierr != nil {
		return nil, apierr
	}
	return toNegocioResponse(negocio), nil
}

func (p *PipelineService) UpdateNegocio(actor *entity.User, negocioID int64, req *contract.UpdateNegocioRequest) (*contract.NegocioResponse, apierror.ErrorResponse) {
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	negocio, err := p.Guard.Negocio(p.DB, negocioID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve negocio %d ownership: %v", negocioID, err)
		return nil, apierror.InternalServerError
	}
	if negocio == nil {
		return nil, apierror.NotFoundError
	}

	if req.ValorFechado != nil {
		negocio.ValorFechado = *req.ValorFechado
	}
	if req.ValorEscritorio != nil {
		negocio.ValorEscritorio = *req.ValorEscritorio
	}
	if req.ValorOutraParte != nil {
		negocio.ValorOutraParte = *req.ValorOutraParte
	}
	if req.ValorRecebido != nil {
		negocio.ValorRecebido = *req.ValorRecebido
	}
	if req.DataFechamento != nil {
		negocio.DataFechamento = req.DataFechamento
	}

	negocio.UpdatedAt = utils.NowUTC()
	if err = p.NegocioRepo.Save(negocio); err != nil {
		log.Errorf("failed to update negocio %d: %v", negocioID, err)
		return nil, apierror.InternalServerError
	}
	return toNegocioResponse(negocio), nil
}
