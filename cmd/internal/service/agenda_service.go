package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

type AtividadeRepository interface {
	Save(atividade *entity.Atividade) error
}

type LembreteRepository interface {
	Save(lembrete *entity.Lembrete) error
	DeleteOwned(id, userID int64) (bool, error)
	FindUpcoming(userID int64) ([]*repository.UpcomingReminder, error)
}

// AgendaService manages the activity log and follow-up reminders
// attached to leads.
type AgendaService struct {
	DB            *gorm.DB
	Guard         *policy.OwnershipGuard
	AtividadeRepo AtividadeRepository
	LembreteRepo  LembreteRepository
	Validate      *validator.Validate
}

func NewAgendaService(
	db *gorm.DB,
	guard *policy.OwnershipGuard,
	atividadeRepo AtividadeRepository,
	lembreteRepo LembreteRepository,
	validate *validator.Validate,
) *AgendaService {
	return &AgendaService{
		DB:            db,
		Guard:         guard,
		AtividadeRepo: atividadeRepo,
		LembreteRepo:  lembreteRepo,
		Validate:      validate,
	}
}

func (a *AgendaService) AddAtividade(actor *entity.User, req *contract.CreateAtividadeRequest) (*contract.AtividadeResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	lead, err := a.Guard.Lead(a.DB, req.LeadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", req.LeadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	atividade := &entity.Atividade{
		ID:        uid.Generate(),
		LeadID:    lead.ID,
		Conteudo:  req.Conteudo,
		CreatedAt: utils.NowUTC(),
	}
	if err = a.AtividadeRepo.Save(atividade); err != nil {
		log.Errorf("failed to save atividade: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAtividadeResponse(atividade), nil
}

func (a *AgendaService) AddLembrete(actor *entity.User, req *contract.CreateLembreteRequest) (*contract.LembreteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	lead, err := a.Guard.Lead(a.DB, req.LeadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", req.LeadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	lembrete := &entity.Lembrete{
		ID:        uid.Generate(),
		LeadID:    lead.ID,
		Descricao: req.Descricao,
		Data:      req.Data,
		CreatedAt: utils.NowUTC(),
	}
	if err = a.LembreteRepo.Save(lembrete); err != nil {
		log.Errorf("failed to save lembrete: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLembreteResponse(lembrete), nil
}

// UpdateLembrete flips the completion flag or reschedules the reminder,
// whichever fields the request carries.
func (a *AgendaService) UpdateLembrete(actor *entity.User, lembreteID int64, req *contract.UpdateLembreteRequest) (*contract.LembreteResponse, apierror.ErrorResponse) {
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	lembrete, err := a.Guard.Lembrete(a.DB, lembreteID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lembrete %d ownership: %v", lembreteID, err)
		return nil, apierror.InternalServerError
	}
	if lembrete == nil {
		return nil, apierror.NotFoundError
	}

	if req.Concluido != nil {
		lembrete.Concluido = *req.Concluido
	}
	if req.Data != nil {
		lembrete.Data = *req.Data
	}

	if err = a.LembreteRepo.Save(lembrete); err != nil {
		log.Errorf("failed to update lembrete %d: %v", lembreteID, err)
		return nil, apierror.InternalServerError
	}
	return toLembreteResponse(lembrete), nil
}

func (a *AgendaService) DeleteLembrete(actor *entity.User, lembreteID int64) apierror.ErrorResponse {
	deleted, err := a.LembreteRepo.DeleteOwned(lembreteID, actor.ID)
	if err != nil {
		log.Errorf("failed to delete lembrete %d: %v", lembreteID, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NotFoundError
	}
	return nil
}

// Upcoming lists the actor's pending reminders, soonest first.
func (a *AgendaService) Upcoming(actor *entity.User) ([]*contract.UpcomingLembreteResponse, apierror.ErrorResponse) {
	reminders, err := a.LembreteRepo.FindUpcoming(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch upcoming reminders: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UpcomingLembreteResponse, len(reminders))
	for i, reminder := range reminders {
		resp[i] = &contract.UpcomingLembreteResponse{
			ID:          reminder.ID,
			LeadID:      reminder.LeadID,
			NomeDevedor: reminder.NomeDevedor,
			Descricao:   reminder.Descricao,
			Data:        utils.FormatEpoch(reminder.Data),
		}
	}
	return resp, nil
}
