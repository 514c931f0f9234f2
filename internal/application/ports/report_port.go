package ports

import "github.com/pankaj-shinde04/store-rating/internal/application/dto"

// ReportRenderer genera el PDF del resumen de la plataforma.
type ReportRenderer interface {
	RenderSummary(report *dto.SummaryReport) ([]byte, error)
}
