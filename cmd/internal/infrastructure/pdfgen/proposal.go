package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 15.0
	bodySize    = 11.0
	titleSize   = 18.0
	sectionSize = 13.0
)

// ClientInfo is the subset of lead data printed on the proposal header.
type ClientInfo struct {
	NomeDevedor string
	Cnpj        string
}

// Branding is the issuer identity shown on the document footer.
type Branding struct {
	NomeEmpresa string
}

// ProposalContent holds the free-form sections typed by the user.
// Validade must already be formatted for display (dd/mm/yyyy).
type ProposalContent struct {
	Objeto   string
	Escopo   string
	Valores  string
	Validade string
}

// ProposalInput aggregates everything needed to render a proposal.
type ProposalInput struct {
	Client   ClientInfo
	Branding Branding
	Content  ProposalContent
	// Logo is an optional PNG image rendered at the top right.
	Logo []byte
}

// RenderProposal builds a single-page service proposal PDF and returns
// the raw document bytes.
func RenderProposal(in ProposalInput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	if len(in.Logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(in.Logo))
		pdf.ImageOptions("logo", pageW-pageMargin-30, pageMargin, 30, 0, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(contentW, 10, tr("Proposta de Serviços Jurídicos"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", bodySize)
	client := in.Client.NomeDevedor
	if client == "" {
		client = "Não informado"
	}
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Para: %s", client)), "", 1, "L", false, 0, "")
	if in.Client.Cnpj != "" {
		pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("CNPJ: %s", in.Client.Cnpj)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Data de Emissão: %s", time.Now().Format("02/01/2006"))), "", 1, "L", false, 0, "")
	if in.Content.Validade != "" {
		pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Válida até: %s", in.Content.Validade)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	section := func(title, body string) {
		pdf.SetFont("Helvetica", "B", sectionSize)
		pdf.CellFormat(contentW, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", bodySize)
		pdf.MultiCell(contentW, 5.5, tr(body), "", "L", false)
		pdf.Ln(6)
	}

	section("1. Objeto da Proposta", in.Content.Objeto)
	section("2. Escopo dos Serviços", in.Content.Escopo)
	section("3. Valores e Forma de Pagamento", in.Content.Valores)

	issuer := in.Branding.NomeEmpresa
	if issuer == "" {
		issuer = "Sua Empresa"
	}
	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("%s - Todos os direitos reservados.", issuer)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render proposal pdf: %w", err)
	}
	return buf.Bytes(), nil
}
