package service

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/policy"
	"prospecta/cmd/internal/infrastructure/aws/storage"
	"prospecta/cmd/internal/infrastructure/pdfgen"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

type PropostaRepository interface {
	FindByLeadOwned(leadID, userID int64) ([]*entity.Proposta, error)
	Save(proposta *entity.Proposta) error
	Delete(proposta *entity.Proposta) error
}

// PropostaService generates, uploads and removes proposal documents.
// Documents live in object storage; the database row is the source of
// truth and the object is a dependent artifact.
type PropostaService struct {
	DB           *gorm.DB
	Guard        *policy.OwnershipGuard
	ConfigRepo   ConfiguracaoRepository
	PropostaRepo PropostaRepository
	Pipeline     *PipelineService
	Storage      storage.ObjectStorage
	Validate     *validator.Validate

	logoClient *resty.Client
}

func NewPropostaService(
	db *gorm.DB,
	guard *policy.OwnershipGuard,
	configRepo ConfiguracaoRepository,
	propostaRepo PropostaRepository,
	pipeline *PipelineService,
	objectStorage storage.ObjectStorage,
	validate *validator.Validate,
) *PropostaService {
	return &PropostaService{
		DB:           db,
		Guard:        guard,
		ConfigRepo:   configRepo,
		PropostaRepo: propostaRepo,
		Pipeline:     pipeline,
		Storage:      objectStorage,
		Validate:     validate,
		logoClient:   resty.New().SetTimeout(10 * time.Second),
	}
}

// Generate renders a proposal PDF for the lead, stores it and records
// it under the lead's deal. Requires the tenant branding to exist.
func (s *PropostaService) Generate(actor *entity.User, req *contract.GenerateProposalRequest) (*contract.PropostaResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	config, err := s.ConfigRepo.FindByUserID(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch configuracao: %v", err)
		return nil, apierror.InternalServerError
	}
	if config == nil {
		return nil, apierror.ConfigNotFoundError
	}

	lead, err := s.Guard.Lead(s.DB, req.LeadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", req.LeadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	negocio, apierr := s.Pipeline.EnsureNegocio(actor, lead.ID)
	if apierr != nil {
		return nil, apierr
	}

	document, err := pdfgen.RenderProposal(pdfgen.ProposalInput{
		Client: pdfgen.ClientInfo{
			NomeDevedor: lead.NomeDevedor,
			Cnpj:        utils.FormatCNPJ(lead.Cnpj),
		},
		Branding: pdfgen.Branding{NomeEmpresa: config.NomeEmpresa},
		Content: pdfgen.ProposalContent{
			Objeto:   req.Objeto,
			Escopo:   req.Escopo,
			Valores:  req.Valores,
			Validade: time.UnixMilli(req.Validade).UTC().Format("02/01/2006"),
		},
		Logo: s.fetchLogo(config.LogoUrl),
	})
	if err != nil {
		log.Errorf("failed to render proposal pdf: %v", err)
		return nil, apierror.InternalServerError
	}

	key := "propostas/" + uuid.NewString() + ".pdf"
	url, err := s.Storage.Upload(context.Background(), key, document)
	if err != nil {
		log.Errorf("failed to upload proposal: %v", err)
		return nil, apierror.InternalServerError
	}

	proposta := &entity.Proposta{
		ID:             uid.Generate(),
		NegocioID:      negocio.ID,
		Objeto:         req.Objeto,
		Escopo:         req.Escopo,
		Valores:        req.Valores,
		Validade:       &req.Validade,
		CaminhoArquivo: url,
		NomeArquivo:    "Proposta - " + lead.NomeDevedor + ".pdf",
		CreatedAt:      utils.NowUTC(),
	}
	if err = s.PropostaRepo.Save(proposta); err != nil {
		log.Errorf("failed to save proposta: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPropostaResponse(proposta), nil
}

// Upload attaches an externally produced PDF to the lead's deal.
func (s *PropostaService) Upload(actor *entity.User, leadID int64, fileHeader *multipart.FileHeader) (*contract.PropostaResponse, apierror.ErrorResponse) {
	if fileHeader.Size > contract.MaxProposalFileSizeBytes {
		return nil, apierror.NewSimple(413, "Proposal file exceeds the maximum of %d bytes", contract.MaxProposalFileSizeBytes)
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return nil, apierror.UnsupportedMediaError
	}

	negocio, apierr := s.Pipeline.EnsureNegocio(actor, leadID)
	if apierr != nil {
		return nil, apierr
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open proposal upload: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read proposal upload: %v", err)
		return nil, apierror.InternalServerError
	}

	key := "propostas/" + uuid.NewString() + ".pdf"
	url, err := s.Storage.Upload(context.Background(), key, data)
	if err != nil {
		log.Errorf("failed to upload proposal: %v", err)
		return nil, apierror.InternalServerError
	}

	proposta := &entity.Proposta{
		ID:             uid.Generate(),
		NegocioID:      negocio.ID,
		CaminhoArquivo: url,
		NomeArquivo:    fileHeader.Filename,
		CreatedAt:      utils.NowUTC(),
	}
	if err = s.PropostaRepo.Save(proposta); err != nil {
		log.Errorf("failed to save proposta: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPropostaResponse(proposta), nil
}

func (s *PropostaService) ListByLead(actor *entity.User, leadID int64) ([]*contract.PropostaResponse, apierror.ErrorResponse) {
	lead, err := s.Guard.Lead(s.DB, leadID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve lead %d ownership: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}

	propostas, err := s.PropostaRepo.FindByLeadOwned(leadID, actor.ID)
	if err != nil {
		log.Errorf("failed to list propostas for lead %d: %v", leadID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PropostaResponse, len(propostas))
	for i, proposta := range propostas {
		resp[i] = toPropostaResponse(proposta)
	}
	return resp, nil
}

// Delete removes the proposal row. The storage object is deleted
// best-effort: a stale object is preferable to a dangling row.
func (s *PropostaService) Delete(actor *entity.User, propostaID int64) apierror.ErrorResponse {
	proposta, err := s.Guard.Proposta(s.DB, propostaID, actor.ID)
	if err != nil {
		log.Errorf("failed to resolve proposta %d ownership: %v", propostaID, err)
		return apierror.InternalServerError
	}
	if proposta == nil {
		return apierror.NotFoundError
	}

	if proposta.CaminhoArquivo != "" {
		if err = s.Storage.Delete(context.Background(), proposta.CaminhoArquivo); err != nil {
			log.Warnf("failed to delete proposal object %s: %v", proposta.CaminhoArquivo, err)
		}
	}

	if err = s.PropostaRepo.Delete(proposta); err != nil {
		log.Errorf("failed to delete proposta %d: %v", propostaID, err)
		return apierror.InternalServerError
	}
	return nil
}

// fetchLogo best-effort downloads the tenant logo; a broken logo never
// fails the proposal.
func (s *PropostaService) fetchLogo(url string) []byte {
	if url == "" || !strings.HasSuffix(strings.ToLower(url), ".png") {
		return nil
	}

	resp, err := s.logoClient.R().Get(url)
	if err != nil || resp.IsError() {
		log.Warnf("failed to fetch logo %s: %v", url, err)
		return nil
	}
	return resp.Body()
}
