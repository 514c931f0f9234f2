// Package pdf implementa el reporte resumen de la plataforma con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Usuarios | Tiendas | Calificaciones               │
//	│  DISTRIBUCIÓN: cantidad por estrella (1..5)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: mejores tiendas                                      │
//	│  TABLA: tiendas peor calificadas                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportRenderer implementa ports.ReportRenderer.
type MarotoReportRenderer struct {
	author string
}

// NewMarotoReportRenderer author aparece en los metadatos del PDF.
func NewMarotoReportRenderer(author string) *MarotoReportRenderer {
	return &MarotoReportRenderer{author: author}
}

// RenderSummary genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderSummary(report *dto.SummaryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Platform summary", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(countsRow(report))
	m.AddRows(distributionRows(report.Distribution)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TOP RATED STORES"))
	m.AddRows(rankingRows(report.TopStores)...)
	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("LOWEST RATED STORES"))
	m.AddRows(rankingRows(report.LowRatedStores)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report *dto.SummaryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Store Rating Platform", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Summary report", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// countsRow tres tarjetas: usuarios, tiendas y calificaciones.
func countsRow(report *dto.SummaryReport) core.Row {
	card := func(title string, lines ...string) core.Col {
		c := col.New(4).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}))
		for i, l := range lines {
			c.Add(text.New(l, props.Text{Size: 8, Top: float64(8 + i*5)}))
		}
		return c
	}
	u, s, r := report.Users, report.Stores, report.Ratings
	return row.New(36).Add(
		card("USERS",
			fmt.Sprintf("Total: %d", u.TotalUsers),
			fmt.Sprintf("Active: %d", u.ActiveUsers),
			fmt.Sprintf("Normal / Owners / Admins: %d / %d / %d", u.NormalUsers, u.StoreOwners, u.AdminUsers),
			fmt.Sprintf("New (30d / 7d): %d / %d", u.NewUsersLast30Days, u.NewUsersLast7Days),
		),
		card("STORES",
			fmt.Sprintf("Total: %d", s.TotalStores),
			fmt.Sprintf("Active / Inactive: %d / %d", s.ActiveStores, s.InactiveStores),
			fmt.Sprintf("Verified: %d", s.VerifiedStores),
			fmt.Sprintf("New (30d / 7d): %d / %d", s.NewStoresLast30Days, s.NewStoresLast7Days),
		),
		card("RATINGS",
			fmt.Sprintf("Total: %d", r.Total),
			fmt.Sprintf("Average: %.1f", r.Average),
			fmt.Sprintf("Min / Max: %d / %d", r.Min, r.Max),
		),
	)
}

// distributionRows una fila por valor con una barra de texto proporcional.
func distributionRows(dist []dto.RatingValueCount) []core.Row {
	var max int64
	for _, d := range dist {
		if d.Count > max {
			max = d.Count
		}
	}
	rows := []core.Row{sectionTitle("DISTRIBUTION")}
	for _, d := range dist {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("|", int(d.Count*40/max))
		}
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d star", d.Rating), props.Text{Size: 8, Top: 1})),
			col.New(8).Add(text.New(bar, props.Text{Size: 8, Top: 1, Color: colorPrimary})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", d.Count), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
	})))
}

func rankingRows(stores []dto.StoreRankResponse) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	rows := []core.Row{row.New(6).Add(
		h("#", 1, align.Center),
		h("Store", 7, align.Left),
		h("Ratings", 2, align.Right),
		h("Average", 2, align.Right),
	)}
	if len(stores) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("No data", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for i, s := range stores {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(7).Add(text.New(s.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.RatingCount), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%.1f", s.AverageRating), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}
