package handler

import (
	"net/http"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/service"
	"github.com/maesedev/dealership-project/internal/timeutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// GetByDate godoc
// @Summary Obtiene el reporte diario de una fecha (zona horaria Bogota)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/reports/date/{date} [get]
func (h *ReportsHandler) GetByDate(c *gin.Context) {
	date, err := timeutil.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
		return
	}
	resp, err := h.svc.GetByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary Lista reportes con paginacion y rango de fechas opcional
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Tamano de pagina"
// @Param from query string false "Fecha inicial YYYY-MM-DD"
// @Param to query string false "Fecha final YYYY-MM-DD"
// @Success 200 {object} dto.ReportListResponse
// @Router /v1/reports [get]
func (h *ReportsHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	reports, err := h.svc.List(c.Request.Context(), skip, limit, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReportListResponse{
		Reports: reports,
		Total:   len(reports),
		Page:    skip/limit + 1,
		Limit:   limit,
	})
}

func (h *ReportsHandler) ListProfitable(c *gin.Context) {
	reports, err := h.svc.ListProfitable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReportListResponse{
		Reports: reports,
		Total:   len(reports),
		Page:    1,
		Limit:   len(reports),
	})
}

func (h *ReportsHandler) Stats(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Stats(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PDF godoc
// @Summary Descarga el resumen imprimible de un reporte
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID de reporte"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/reports/{id}/pdf [get]
func (h *ReportsHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	raw, err := h.svc.RenderPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reporte-`+id.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}

// dateRange parses optional from/to query dates. Writes the error response
// itself on bad input.
func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if raw := c.Query("from"); raw != "" {
		d, err := timeutil.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("from invalido, use YYYY-MM-DD"))
			return nil, nil, false
		}
		from = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := timeutil.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("to invalido, use YYYY-MM-DD"))
			return nil, nil, false
		}
		to = &d
	}
	return from, to, true
}
