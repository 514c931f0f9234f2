package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/pankaj-shinde04/store-rating/internal/application/analytics"
)

// DashboardHandler tarjetas del panel de administración, estadísticas y reporte PDF.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// Stats devuelve las tarjetas del panel (totales, promedio, altas recientes, pendientes).
// GET /api/admin/stats
//
// @Summary      Resumen del panel de administración
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.AdminStatsResponse}
// @Router       /api/admin/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.AdminStats(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// RatingStatistics distribución, actividad diaria y rankings de tiendas.
// GET /api/admin/ratings/statistics
//
// @Summary      Estadísticas de calificaciones
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.RatingStatisticsResponse}
// @Router       /api/admin/ratings/statistics [get]
func (h *DashboardHandler) RatingStatistics(c *fiber.Ctx) error {
	out, err := h.uc.RatingStatistics(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// SummaryPDF descarga el reporte resumen.
// GET /api/admin/reports/summary.pdf
//
// @Summary      Reporte PDF de la plataforma
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/admin/reports/summary.pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	pdf, err := h.report.Summary(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="summary.pdf"`)
	return c.Send(pdf)
}
