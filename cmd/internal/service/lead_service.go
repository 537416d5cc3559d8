package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/xuri/excelize/v2"

	"prospecta/cmd/internal/contract"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/domain/database/repository"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/apierror"
	"prospecta/cmd/internal/utils/uid"
)

// sortColumns whitelists the client-facing sort keys against real
// columns. Anything else falls back to the default ordering.
var sortColumns = map[string]string{
	"valorTotalDivida": "valor_total_divida",
	"nomeDevedor":      "nome_devedor",
	"status":           "status",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

type LeadRepository interface {
	Search(q *repository.LeadSearch) ([]*entity.Lead, int64, error)
	FindDetailedOwned(id, userID int64) (*entity.Lead, error)
	FindAllByUser(userID int64) ([]*entity.Lead, error)
	Save(lead *entity.Lead) error
	UpdateStatus(id, userID int64, status entity.LeadStatus) (bool, error)
	BulkUpsert(leads []*entity.Lead) error
	Locations(userID int64) ([]*repository.Location, error)
}

type DefaultLeadService struct {
	LeadRepo LeadRepository
	Validate *validator.Validate
}

func NewLeadService(leadRepo LeadRepository, validate *validator.Validate) *DefaultLeadService {
	return &DefaultLeadService{
		LeadRepo: leadRepo,
		Validate: validate,
	}
}

// Search lists the actor's portfolio page. Unknown sort keys quietly
// fall back to debt value descending, the default board ordering.
func (l *DefaultLeadService) Search(actor *entity.User, search, status, sortBy, sortOrder string, page int) (*contract.LeadSearchResponse, apierror.ErrorResponse) {
	if status != "" && !entity.ValidLeadStatus(entity.LeadStatus(status)) {
		return nil, apierror.InvalidStatusError
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		column = "valor_total_divida"
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}

	leads, total, err := l.LeadRepo.Search(&repository.LeadSearch{
		UserID:    actor.ID,
		Search:    search,
		Status:    entity.LeadStatus(status),
		SortBy:    column,
		SortOrder: order,
		Page:      page,
	})
	if err != nil {
		log.Errorf("failed to search leads: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LeadResponse, len(leads))
	for i, lead := range leads {
		resp[i] = toLeadResponse(lead)
	}

	if page < 1 {
		page = 1
	}
	return &contract.LeadSearchResponse{
		Leads:    resp,
		Total:    total,
		Page:     page,
		PageSize: repository.SearchPageSize,
	}, nil
}

func (l *DefaultLeadService) Create(actor *entity.User, req *contract.CreateLeadRequest) (*contract.LeadResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	lead := &entity.Lead{
		ID:               uid.Generate(),
		Cnpj:             utils.NormalizeCNPJ(req.Cnpj),
		NomeDevedor:      req.NomeDevedor,
		NomeFantasia:     req.NomeFantasia,
		ValorTotalDivida: req.ValorTotalDivida,
		Status:           entity.StatusAVerificar,
		Municipio:        req.Municipio,
		Uf:               strings.ToUpper(req.Uf),
		UserID:           actor.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := l.LeadRepo.Save(lead); err != nil {
		log.Errorf("failed to save lead: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLeadResponse(lead), nil
}

func (l *DefaultLeadService) GetDetailed(actor *entity.User, leadID int64) (*contract.LeadDetailResponse, apierror.ErrorResponse) {
	lead, err := l.LeadRepo.FindDetailedOwned(leadID, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch lead %d: %v", leadID, err)
		return nil, apierror.InternalServerError
	}
	if lead == nil {
		return nil, apierror.NotFoundError
	}
	return toLeadDetailResponse(lead), nil
}

// Import upserts a batch of parsed spreadsheet rows keyed on
// (cnpj, user). Rows without a plausible CNPJ are skipped and counted,
// never failing the batch.
func (l *DefaultLeadService) Import(actor *entity.User, req *contract.ImportLeadsRequest) (*contract.ImportLeadsResponse, apierror.ErrorResponse) {
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	var leads []*entity.Lead
	skipped := 0

	for _, row := range req.Leads {
		cnpj := utils.NormalizeCNPJ(row.Cnpj)
		nome := strings.TrimSpace(row.NomeDevedor)
		if len(cnpj) != utils.CNPJLength || nome == "" {
			skipped++
			continue
		}

		leads = append(leads, &entity.Lead{
			ID:               uid.Generate(),
			Cnpj:             cnpj,
			NomeDevedor:      nome,
			NomeFantasia:     strings.TrimSpace(row.NomeFantasia),
			ValorTotalDivida: row.ValorTotalDivida,
			Status:           entity.StatusAVerificar,
			Municipio:        strings.TrimSpace(row.Municipio),
			Uf:               strings.ToUpper(strings.TrimSpace(row.Uf)),
			UserID:           actor.ID,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := l.LeadRepo.BulkUpsert(leads); err != nil {
		log.Errorf("failed to import leads: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.ImportLeadsResponse{
		Imported: len(leads),
		Skipped:  skipped,
	}, nil
}

var exportHeader = []string{"CNPJ", "Nome do Devedor", "Nome Fantasia",
	"Valor Total da Dívida", "Status", "Município", "UF", "Criado em"}

// Export renders the actor's full portfolio as an XLSX workbook.
func (l *DefaultLeadService) Export(actor *entity.User) ([]byte, apierror.ErrorResponse) {
	leads, err := l.LeadRepo.FindAllByUser(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch leads for export: %v", err)
		return nil, apierror.InternalServerError
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for i, lead := range leads {
		row := i + 2
		values := []any{
			utils.FormatCNPJ(lead.Cnpj),
			lead.NomeDevedor,
			lead.NomeFantasia,
			lead.ValorTotalDivida,
			string(lead.Status),
			lead.Municipio,
			lead.Uf,
			utils.FormatEpoch(lead.CreatedAt),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		log.Errorf("failed to write export workbook: %v", err)
		return nil, apierror.InternalServerError
	}
	return buf.Bytes(), nil
}

func (l *DefaultLeadService) Locations(actor *entity.User) ([]*contract.LocationResponse, apierror.ErrorResponse) {
	locations, err := l.LeadRepo.Locations(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch lead locations: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LocationResponse, len(locations))
	for i, loc := range locations {
		resp[i] = &contract.LocationResponse{Municipio: loc.Municipio, Uf: loc.Uf}
	}
	return resp, nil
}

// ExportFilename is the attachment name for the portfolio download.
func ExportFilename() string {
	return fmt.Sprintf("leads-%s.xlsx", utils.FormatEpoch(utils.NowUTC())[:10])
}
