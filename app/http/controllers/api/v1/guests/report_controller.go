package guests

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"casamento/app/repositories"
	"casamento/pkg/report"
	"casamento/pkg/response"
)

// ReportController serves the confirmation statistics and exports.
type ReportController struct {
	guests *repositories.GuestRepository
}

// NewReportController builds the controller.
func NewReportController() *ReportController {
	return &ReportController{
		guests: repositories.NewGuestRepository(),
	}
}

// Stats returns the aggregate confirmation counters.
func (rc *ReportController) Stats(c *gin.Context) {
	all, err := rc.guests.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível calcular as estatísticas")
		return
	}

	response.Data(c, report.BuildStats(all))
}

// Export streams the guest report. format=csv gives the group-level table;
// format=xlsx (the default) gives the two-sheet spreadsheet.
func (rc *ReportController) Export(c *gin.Context) {
	all, err := rc.guests.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível gerar o relatório")
		return
	}

	// The guest list is small, so both formats are assembled in memory and
	// sent in one shot; a failure never leaks a half-written 200.
	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, all); err != nil {
			response.ServerError(c, err, "Não foi possível gerar o relatório")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="convidados.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		f, err := report.BuildXLSX(all)
		if err != nil {
			response.ServerError(c, err, "Não foi possível gerar o relatório")
			return
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			response.ServerError(c, err, "Não foi possível gerar o relatório")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="convidados.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		response.Abort400(c, "Formato desconhecido, use csv ou xlsx")
	}
}
