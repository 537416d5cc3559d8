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

type ContatoRepository interface {
	Save(contato *entity.Contato) error
	DeleteOwned(id, userID int64) (bool, error)
}

// ContatoService manages the people attached to an empresa. Contacts
// hang off the shared empresa record, so every operation re-proves the
// empresa is reachable through one of the actor's leads.
type ContatoService struct {
	DB          *gorm.DB
	Guard       *policy.OwnershipGuard
	ContatoRepo ContatoRepository
	Validate    *validator.Validate
}

func NewContatoService(
	db *gorm.DB,
	guard *policy.OwnershipGuard,
	contatoRepo ContatoRepository,
	validate *validator.Validate,
) *ContatoService {
	return &ContatoService{
		DB:          db,
		Guard:       guard,
		ContatoRepo: contatoRepo,
		Validate:    validate,
	}
}

func (s *ContatoService) Create(actor *entity.User, req *contract.CreateContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	empresa, err := s.Guard.Empresa(s.DB, req.EmpresaID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve empresa %d reachability: %v", req.EmpresaID, err)
		return nil, apierror.InternalServerError
	}
	if empresa == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	contato := &entity.Contato{
		ID:         uid.Generate(),
		EmpresaID:  empresa.ID,
		Nome:       req.Nome,
		Cargo:      req.Cargo,
		Telefone:   req.Telefone,
		Email:      req.Email,
		Observacao: req.Observacao,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.ContatoRepo.Save(contato); err != nil {
		log.Errorf("failed to save contato: %v", err)
		return nil, apierror.InternalServerError
	}
	return toContatoResponse(contato), nil
}

func (s *ContatoService) Update(actor *entity.User, contatoID int64, req *contract.UpdateContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	contato, err := s.Guard.Contato(s.DB, contatoID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve contato %d ownership: %v", contatoID, err)
		return nil, apierror.InternalServerError
	}
	if contato == nil {
		return nil, apierror.NotFoundError
	}

	if req.Nome != nil {
		contato.Nome = *req.Nome
	}
	if req.Cargo != nil {
		contato.Cargo = *req.Cargo
	}
	if req.Telefone != nil {
		contato.Telefone = *req.Telefone
	}
	if req.Email != nil {
		contato.Email = *req.Email
	}
	if req.Observacao != nil {
		contato.Observacao = *req.Observacao
	}

	contato.UpdatedAt = utils.NowUTC()
	if err = s.ContatoRepo.Save(contato); err != nil {
		log.Errorf("failed to update contato %d: %v", contatoID, err)
		return nil, apierror.InternalServerError
	}
	return toContatoResponse(contato), nil
}

func (s *ContatoService) Delete(actor *entity.User, contatoID int64) apierror.ErrorResponse {
	deleted, err := s.ContatoRepo.DeleteOwned(contatoID, actor.ID)
	if err != nil {
		log.Errorf("failed to delete contato %d: %v", contatoID, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NotFoundError
	}
	return nil
}
