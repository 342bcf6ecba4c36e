package export

import (
	"fmt"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	brandName     = "NexLead"
	footerMessage = "Thank you for considering NexLead services."
	dateLayout    = "01/02/2006"
)

// Layout positions are expressed in points from the top of the page.
const (
	pageHeight      = 792.0
	pageTop         = 50.0
	contentBottom   = pageHeight - pageTop
	itemsTop        = 320.0
	itemsHeading    = 30.0
	pageBreakAfter  = 700.0
	itemBaseHeight  = 40.0
	addonLineHeight = 20.0
	totalsOffset    = 20.0
	totalsHeight    = 70.0
	notesOffset     = 100.0
	notesHeight     = 40.0

	pointToMM = 25.4 / 72
)

var brandColor = &props.Color{Red: 107, Green: 70, Blue: 193}

type blockKind int

const (
	blockHeader blockKind = iota
	blockItem
	blockTotals
	blockNotes
)

type placement struct {
	Kind   blockKind
	Page   int
	Y      float64
	Height float64
	Item   int
}

// planQuotation walks the document with a vertical cursor and decides on
// which page, and at what height, every block lands. A new page starts
// whenever the cursor is past pageBreakAfter before a block is written, or
// when the block would run below contentBottom. A block taller than a whole
// page is still placed at the top of its own page.
func planQuotation(v entities.QuotationView) []placement {
	plan := []placement{{Kind: blockHeader, Page: 0, Y: pageTop, Height: itemsTop + itemsHeading - pageTop}}
	pg := 0
	cursor := itemsTop + itemsHeading

	breakIfFull := func(h float64) {
		if cursor > pageBreakAfter || (cursor > pageTop && cursor+h > contentBottom) {
			pg++
			cursor = pageTop
		}
	}

	for i, item := range v.ItemViews {
		h := itemBaseHeight + addonLineHeight*float64(len(item.Addons))
		breakIfFull(h)
		plan = append(plan, placement{Kind: blockItem, Page: pg, Y: cursor, Height: h, Item: i})
		cursor += h
	}

	cursor += totalsOffset
	breakIfFull(totalsHeight)
	plan = append(plan, placement{Kind: blockTotals, Page: pg, Y: cursor, Height: totalsHeight})

	if v.Notes != "" {
		cursor += notesOffset
		breakIfFull(notesHeight)
		plan = append(plan, placement{Kind: blockNotes, Page: pg, Y: cursor, Height: notesHeight})
	}
	return plan
}

func validateForExport(v entities.QuotationView) error {
	if v.CreatedAt.IsZero() {
		return fmt.Errorf("%w: creation date", interfaces.ErrIncompleteQuotation)
	}
	if v.ValidUntil.IsZero() {
		return fmt.Errorf("%w: validity date", interfaces.ErrIncompleteQuotation)
	}
	for i, item := range v.ItemViews {
		if item.Service == nil {
			return fmt.Errorf("%w: service %q of item %d", interfaces.ErrIncompleteQuotation, item.ServiceID, i+1)
		}
	}
	return nil
}

// QuotationPDF renders a resolved quotation as a PDF document.
func (e *DocumentExporter) QuotationPDF(v entities.QuotationView) ([]byte, error) {
	if err := validateForExport(v); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithTopMargin(pageTop * pointToMM).
		WithLeftMargin(pageTop * pointToMM).
		WithRightMargin(pageTop * pointToMM).
		Build()
	m := maroto.New(cfg)

	plan := planQuotation(v)
	pages := make([][]core.Row, plan[len(plan)-1].Page+1)
	bottom := make([]float64, len(pages))
	for i := range bottom {
		bottom[i] = pageTop
	}

	for _, p := range plan {
		if gap := p.Y - bottom[p.Page]; gap > 0 {
			pages[p.Page] = append(pages[p.Page], row.New(gap*pointToMM))
		}
		pages[p.Page] = append(pages[p.Page], e.blockRows(v, p)...)
		bottom[p.Page] = p.Y + p.Height
	}
	last := len(pages) - 1
	pages[last] = append(pages[last], footerRows()...)

	for _, rows := range pages {
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quotation pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (e *DocumentExporter) blockRows(v entities.QuotationView, p placement) []core.Row {
	switch p.Kind {
	case blockHeader:
		return headerRows(v)
	case blockItem:
		return itemRows(p.Item, v.ItemViews[p.Item])
	case blockTotals:
		return totalsRows(v.Quotation)
	case blockNotes:
		return notesRows(v.Notes)
	}
	return nil
}

func line(height float64, s string, style props.Text) core.Row {
	return row.New(height * pointToMM).Add(col.New(12).Add(text.New(s, style)))
}

func headerRows(v entities.QuotationView) []core.Row {
	body := props.Text{Size: 12}
	rows := []core.Row{
		line(30, brandName, props.Text{Size: 24, Style: fontstyle.Bold, Color: brandColor}),
		line(40, "Quotation", body),
		line(30, "Quotation #"+v.Number, props.Text{Size: 16}),
		line(20, "Date: "+v.CreatedAt.Format(dateLayout), body),
		line(40, "Valid Until: "+v.ValidUntil.Format(dateLayout), body),
		line(25, "Client Information", props.Text{Size: 14}),
		line(20, "Name: "+v.ClientName, body),
	}

	if v.ClientEmail != "" {
		rows = append(rows, line(20, "Email: "+v.ClientEmail, body))
	} else {
		rows = append(rows, row.New(20*pointToMM))
	}
	if v.ClientPhone != "" {
		rows = append(rows, line(45, "Phone: "+v.ClientPhone, body))
	} else {
		rows = append(rows, row.New(45*pointToMM))
	}
	return append(rows, line(itemsHeading, "Services & Add-ons", props.Text{Size: 14}))
}

func itemRows(idx int, item entities.QuotationItemView) []core.Row {
	indented := props.Text{Size: 12, Left: 20 * pointToMM}
	rows := []core.Row{
		line(20, fmt.Sprintf("%d. %s", idx+1, item.Service.Name), props.Text{Size: 12, Style: fontstyle.Bold}),
		line(20, "Price: "+money(item.Service.BasePrice), indented),
	}
	for _, addon := range item.Addons {
		rows = append(rows, line(addonLineHeight, fmt.Sprintf("+ %s: %s", addon.Name, money(addon.Price)), indented))
	}
	return rows
}

func totalsRows(q entities.Quotation) []core.Row {
	right := func(height float64, s string, style props.Text) core.Row {
		return row.New(height*pointToMM).Add(col.New(7), col.New(5).Add(text.New(s, style)))
	}
	body := props.Text{Size: 12}
	return []core.Row{
		right(20, "Subtotal: "+money(q.Subtotal), body),
		right(30, "Discount: -"+money(q.Discount), body),
		right(20, "Total: "+money(q.Total), props.Text{Size: 14, Style: fontstyle.Bold}),
	}
}

func notesRows(notes string) []core.Row {
	body := props.Text{Size: 12}
	return []core.Row{
		line(20, "Notes:", body),
		row.New().Add(col.New(12).Add(text.New(notes, body))),
	}
}

func footerRows() []core.Row {
	return []core.Row{
		row.New(20 * pointToMM),
		line(20, footerMessage, props.Text{Size: 10, Align: align.Center}),
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
