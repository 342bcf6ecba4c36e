package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleView(items int, addonsPerItem int) entities.QuotationView {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	v := entities.QuotationView{
		Quotation: entities.Quotation{
			ID:         "q1",
			Number:     "NEX-1714564800000-5",
			ClientName: "Acme",
			Subtotal:   300,
			Discount:   45,
			Total:      255,
			CreatedAt:  created,
			ValidUntil: created.Add(entities.QuotationValidity),
		},
	}
	for i := 0; i < items; i++ {
		iv := entities.QuotationItemView{
			QuotationItem: entities.QuotationItem{ServiceID: "s1", Quantity: 1, Price: 100},
			Service:       &entities.Service{ID: "s1", Name: "Website", BasePrice: 100},
		}
		for j := 0; j < addonsPerItem; j++ {
			iv.Addons = append(iv.Addons, entities.Addon{ID: "a1", Name: "SEO", Price: 20})
		}
		v.ItemViews = append(v.ItemViews, iv)
	}
	return v
}

func TestPlanQuotation_SinglePage(t *testing.T) {
	v := sampleView(2, 1)
	v.Notes = "Call before Friday"
	plan := planQuotation(v)

	require.Len(t, plan, 5)
	assert.Equal(t, blockHeader, plan[0].Kind)
	assert.Equal(t, 350.0, plan[1].Y)
	assert.Equal(t, 410.0, plan[2].Y)
	assert.Equal(t, blockTotals, plan[3].Kind)
	assert.Equal(t, 490.0, plan[3].Y)
	assert.Equal(t, blockNotes, plan[4].Kind)
	assert.Equal(t, 590.0, plan[4].Y)
	for _, p := range plan {
		assert.Equal(t, 0, p.Page)
	}
}

func TestPlanQuotation_BreaksPages(t *testing.T) {
	// 350 + 9*40 = 710 puts the tenth item past the break line.
	v := sampleView(10, 0)
	plan := planQuotation(v)

	items := plan[1:11]
	assert.Equal(t, 0, items[8].Page)
	assert.Equal(t, 670.0, items[8].Y)
	assert.Equal(t, 1, items[9].Page)
	assert.Equal(t, pageTop, items[9].Y)

	totals := plan[11]
	assert.Equal(t, blockTotals, totals.Kind)
	assert.Equal(t, 1, totals.Page)
	assert.Equal(t, pageTop+itemBaseHeight+totalsOffset, totals.Y)
}

func TestPlanQuotation_TotalsAndNotesBreak(t *testing.T) {
	// Items end at 690, totals at 710 moves to a fresh page.
	v := sampleView(1, 15)
	v.Notes = "n"
	plan := planQuotation(v)

	assert.Equal(t, 340.0, plan[1].Height)
	totals := plan[2]
	assert.Equal(t, 1, totals.Page)
	assert.Equal(t, pageTop, totals.Y)
	notes := plan[3]
	assert.Equal(t, 1, notes.Page)
	assert.Equal(t, pageTop+notesOffset, notes.Y)
}

func TestPlanQuotation_ItemThatWouldOverflowMovesToNextPage(t *testing.T) {
	// Eight plain items end at 670; a ninth with five add-ons needs 140 and
	// would reach 810, past the bottom of a Letter page.
	v := sampleView(9, 0)
	for j := 0; j < 5; j++ {
		v.ItemViews[8].Addons = append(v.ItemViews[8].Addons, entities.Addon{ID: "a1", Name: "SEO", Price: 20})
	}
	plan := planQuotation(v)

	last := plan[9]
	assert.Equal(t, blockItem, last.Kind)
	assert.Equal(t, 140.0, last.Height)
	assert.Equal(t, 1, last.Page)
	assert.Equal(t, pageTop, last.Y)

	totals := plan[10]
	assert.Equal(t, 1, totals.Page)
	assert.Equal(t, pageTop+140+totalsOffset, totals.Y)

	for _, p := range plan {
		assert.LessOrEqual(t, p.Y+p.Height, contentBottom)
	}

	_, err := NewDocumentExporter().QuotationPDF(v)
	require.NoError(t, err)
}

func TestDocumentExporter_QuotationPDF(t *testing.T) {
	e := NewDocumentExporter()

	t.Run("renders pdf", func(t *testing.T) {
		v := sampleView(12, 2)
		v.ClientEmail = "buyer@acme.com"
		v.Notes = "Includes onboarding"
		out, err := e.QuotationPDF(v)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("missing service", func(t *testing.T) {
		v := sampleView(2, 0)
		v.ItemViews[1].Service = nil
		_, err := e.QuotationPDF(v)
		assert.True(t, errors.Is(err, interfaces.ErrIncompleteQuotation))
		assert.Contains(t, err.Error(), "item 2")
	})

	t.Run("missing dates", func(t *testing.T) {
		v := sampleView(1, 0)
		v.ValidUntil = time.Time{}
		_, err := e.QuotationPDF(v)
		assert.ErrorIs(t, err, interfaces.ErrIncompleteQuotation)
	})
}

func TestDocumentExporter_AnalyticsXLSX(t *testing.T) {
	report := entities.AnalyticsReport{
		TotalQuotations: 3,
		TotalRevenue:    1250.5,
		PopularServices: []entities.ServicePopularity{{ServiceID: "s1", ServiceName: "Website", Count: 3}},
		QuotationsByAgent: []entities.AgentPerformance{
			{AgentID: "u1", AgentName: "=cmd()", Count: 3, Revenue: 1250.5},
		},
		RecentQuotations: []entities.RecentQuotation{{
			ID: "q1", Number: "NEX-1-1", ClientName: "Acme", Total: 500,
			Status:    entities.QuotationStatusDraft,
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			CreatedBy: &entities.UserSummary{ID: "u1", Name: "Ana"},
		}},
	}

	out, err := NewDocumentExporter().AnalyticsXLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, servicesSheet, agentsSheet, recentSheet}, f.GetSheetList())

	v, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	name, err := f.GetCellValue(agentsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "'=cmd()", name)

	creator, err := f.GetCellValue(recentSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", creator)
}
