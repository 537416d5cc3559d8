package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/infrastructure/aws/storage"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

var validLogoTypes = []string{".png", ".jpg", ".jpeg", ".webp"}

type ConfiguracaoRepository interface {
	FindByUserID(userID int64) (*entity.Configuracao, error)
	Save(config *entity.Configuracao) error
}

// ConfigService manages the per-tenant branding row used on generated
// proposals.
type ConfigService struct {
	ConfigRepo ConfiguracaoRepository
	Storage    storage.ObjectStorage
	Validate   *validator.Validate
}

func NewConfigService(
	configRepo ConfiguracaoRepository,
	objectStorage storage.ObjectStorage,
	validate *validator.Validate,
) *ConfigService {
	return &ConfigService{
		ConfigRepo: configRepo,
		Storage:    objectStorage,
		Validate:   validate,
	}
}

// Get returns the actor's settings, creating a placeholder row on first
// access so the client always has something to render.
func (s *ConfigService) Get(actor *entity.User) (*contract.ConfigResponse, apierror.ErrorResponse) {
	config, apierr := s.ensureConfig(actor)
	if apierr != nil {
		return nil, apierr
	}
	return toConfigResponse(config), nil
}

func (s *ConfigService) Update(actor *entity.User, req *contract.UpdateConfigRequest) (*contract.ConfigResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	config, apierr := s.ensureConfig(actor)
	if apierr != nil {
		return nil, apierr
	}

	if req.NomeEmpresa != nil {
		config.NomeEmpresa = *req.NomeEmpresa
	}
	if req.Cnpj != nil {
		config.Cnpj = utils.NormalizeCNPJ(*req.Cnpj)
	}
	if req.Endereco != nil {
		config.Endereco = *req.Endereco
	}
	if req.Email != nil {
		config.Email = *req.Email
	}
	if req.Telefone != nil {
		config.Telefone = *req.Telefone
	}

	config.UpdatedAt = utils.NowUTC()
	if err := s.ConfigRepo.Save(config); err != nil {
		log.Errorf("failed to update configuracao: %v", err)
		return nil, apierror.InternalServerError
	}
	return toConfigResponse(config), nil
}

// UploadLogo stores the tenant logo under a fixed per-user key, so a
// re-upload overwrites the previous object and the saved URL stays
// pointing at the latest image.
func (s *ConfigService) UploadLogo(actor *entity.User, fileHeader *multipart.FileHeader) (*contract.ConfigResponse, apierror.ErrorResponse) {
	if fileHeader.Size > contract.MaxLogoFileSizeBytes {
		return nil, apierror.NewSimple(413, "Logo file exceeds the maximum of %d bytes", contract.MaxLogoFileSizeBytes)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !isValidLogoType(ext) {
		return nil, apierror.UnsupportedMediaError
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open logo upload: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read logo upload: %v", err)
		return nil, apierror.InternalServerError
	}

	config, apierr := s.ensureConfig(actor)
	if apierr != nil {
		return nil, apierr
	}

	key := fmt.Sprintf("logos/%d%s", actor.ID, ext)
	url, err := s.Storage.Upload(context.Background(), key, data)
	if err != nil {
		log.Errorf("failed to upload logo: %v", err)
		return nil, apierror.InternalServerError
	}

	config.LogoUrl = url
	config.UpdatedAt = utils.NowUTC()
	if err = s.ConfigRepo.Save(config); err != nil {
		log.Errorf("failed to save logo url: %v", err)
		return nil, apierror.InternalServerError
	}
	return toConfigResponse(config), nil
}

func (s *ConfigService) ensureConfig(actor *entity.User) (*entity.Configuracao, apierror.ErrorResponse) {
	config, err := s.ConfigRepo.FindByUserID(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch configuracao: %v", err)
		return nil, apierror.InternalServerError
	}
	if config != nil {
		return config, nil
	}

	config = &entity.Configuracao{
		ID:          uid.Generate(),
		UserID:      actor.ID,
		NomeEmpresa: "Minha Empresa",
		UpdatedAt:   utils.NowUTC(),
	}
	if err = s.ConfigRepo.Save(config); err != nil {
		log.Errorf("failed to create default configuracao: %v", err)
		return nil, apierror.InternalServerError
	}
	return config, nil
}

func isValidLogoType(ext string) bool {
	for _, valid := range validLogoTypes {
		if ext == valid {
			return true
		}
	}
	return false
}
