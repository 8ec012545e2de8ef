// Package pdf renders a quote into the fixed-layout proposal document the
// company sends to clients.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"acm_e_letras/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// Filename is the download name for a quote document.
func Filename(q entities.Quote) string {
	return fmt.Sprintf("orcamento-%s.pdf", q.QuoteNumber)
}

// Render produces the single-page A4 proposal: branding, supply description,
// totals, payment conditions, warranty boilerplate and the company footer.
func Render(q entities.Quote, materials []entities.Material, logoDataURI string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	drawLogo(doc, logoDataURI)

	doc.SetXY(100, 18)
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(95, 10, tr("ORÇAMENTO"), "", 1, "R", false, 0, "")
	doc.SetX(100)
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(95, 6, tr(q.CompanyName), "", 1, "R", false, 0, "")

	doc.SetY(55)
	doc.SetFont("Helvetica", "", 10)
	description := tr("Fornecimento de mão de obra especializada para produção e instalação de: ") +
		tr(supplyDescription(q, materials))
	doc.MultiCell(180, 5, description, "", "L", false)

	doc.Ln(12)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(180, 7, tr(fmt.Sprintf("Valor total: R$ %s", FormatBRL(q.Total))), "", 1, "L", false, 0, "")
	doc.CellFormat(180, 7, tr("Prazo: a combinar"), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(180, 5, tr("Condições de pagamento: cartão de crédito em até 10x sem juros.\n"+
		"50% sinal e o restante na entrega.\n"+
		"À vista com 10% de desconto."), "", "L", false)

	doc.Ln(10)
	section(doc, tr, "Observações adicionais:",
		"A Instalação de nossos produtos depende das condições climáticas. É necessário que o clima esteja "+
			"estável para que a instalação ocorra. Em caso de mau tempo, reagendaremos a instalação conforme a "+
			"disponibilidade da nossa agenda.")
	section(doc, tr, "Garantia:",
		"Todos os produtos fabricados e instalados pela ACM e Letras, possuem garantia de 01 ano, exceto os "+
			"componentes elétricos como Led, refletores, fontes, lâmpadas etc... estes possuem garantia de 3 meses.\n"+
			"A ACM e Letras declara nula e sem efeito de garantia, caso os materiais descritos nesta proposta venham "+
			"a sofrer danos causados por agentes da natureza (sol, raios, inundações, desabamento, incêndio, "+
			"vendavais etc...) e outros acidentes, vandalismo, colisão, manuseio de forma incorreta ou por pessoas "+
			"não autorizadas.\n"+
			"Importante lembrar que para manter a segurança e vida útil das estruturas metálicas, o cliente deverá "+
			"fazer a manutenção preventiva anualmente.")
	section(doc, tr, "Importante:",
		"- Esta proposta não contempla documentações ou projetos técnicos para regulamentação junto à prefeitura "+
			"ou demais órgãos competentes.\n"+
			"- O fornecimento de Munck ou plataforma de elevação não está incluso neste orçamento.\n"+
			"- A ACM e Letras Comunicação Visual se isenta de qualquer responsabilidade em relação.")

	drawFooter(doc, tr)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// supplyDescription lists the quoted materials, with dimensions for
// area-priced pieces. Items whose material was deleted are skipped here; the
// financial totals still include them.
func supplyDescription(q entities.Quote, materials []entities.Material) string {
	byID := make(map[string]entities.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	parts := make([]string, 0, len(q.Items))
	for _, it := range q.Items {
		m, ok := byID[it.MaterialID]
		if !ok {
			continue
		}
		if it.PricingType == entities.PricingPerArea {
			parts = append(parts, fmt.Sprintf("%s %sm x %sm", m.Name, formatDim(it.Width), formatDim(it.Height)))
			continue
		}
		parts = append(parts, m.Name)
	}
	return strings.Join(parts, ", ")
}

func section(doc *gofpdf.Fpdf, tr func(string) string, title, body string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(180, 6, tr(title), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 8.5)
	doc.MultiCell(180, 4.2, tr(body), "", "L", false)
	doc.Ln(3)
}

func drawLogo(doc *gofpdf.Fpdf, dataURI string) {
	img, kind, ok := decodeDataURI(dataURI)
	if !ok {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: kind, ReadDpi: true}
	doc.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(img))
	doc.ImageOptions("company-logo", 15, 15, 50, 0, false, opts, 0, "")
}

func drawFooter(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetY(-55)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(180, 4.5, tr("ACM e Letras Comunicação Visual Ltda."), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 8.5)
	for _, line := range []string{
		"CNPJ: 60.007.991/0001-66",
		"Endereço: Avenida Santana, 1199",
		"Email: acmletras@gmail.com",
		"Telefone: (19) 99124-3112",
		"Site: www.acmeletras.com.br",
	} {
		doc.CellFormat(180, 4.2, tr(line), "", 1, "R", false, 0, "")
	}
}

// decodeDataURI extracts the image bytes and the gofpdf image type from a
// data URI. Anything unparseable means no logo.
func decodeDataURI(uri string) ([]byte, string, bool) {
	if uri == "" {
		return nil, "", false
	}
	head, payload, found := strings.Cut(uri, ",")
	if !found || !strings.HasPrefix(head, "data:image/") || !strings.HasSuffix(head, ";base64") {
		return nil, "", false
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(head, "data:image/"), ";base64")
	var kind string
	switch mime {
	case "png":
		kind = "PNG"
	case "jpeg", "jpg":
		kind = "JPG"
	default:
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	return raw, kind, true
}

// FormatBRL renders a value with pt-BR separators ("1.234,56"). Rounding
// happens only here, at display time.
func FormatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart, decPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

func formatDim(v *float64) string {
	if v == nil {
		return "0"
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", *v), "0"), ".")
}
