package guests

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	gormlogger "gorm.io/gorm/logger"

	"casamento/app/models/guest"
	"casamento/app/repositories"
	"casamento/pkg/database"
)

func setupReportTestDB(t *testing.T) {
	t.Helper()

	database.Connect(sqlite.Open(":memory:"), gormlogger.Default.LogMode(gormlogger.Silent))
	require.NoError(t, database.AutoMigrate([]interface{}{&guest.Guest{}}))

	repo := repositories.NewGuestRepository()
	for i, g := range []guest.Guest{
		{Name: "João", Spouse: "Maria", IsConfirmed: true, SpouseConfirmation: true},
		{Name: "Rita"},
	} {
		g.ID = uuid.New().String()
		g.Token = uuid.New().String()
		g.ConfirmationCode = []string{"123456", "654321"}[i]
		g.Children = guest.NameList{}
		g.Companions = guest.NameList{}
		g.ChildrenConfirmations = guest.ConfirmationMap{}
		g.CompanionsConfirmations = guest.ConfirmationMap{}
		require.NoError(t, repo.Create(context.Background(), &g))
	}
}

func exportRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/v1/guests/report"+query, nil)

	NewReportController().Export(c)
	return w
}

func TestExportCSVSendsOneCompleteBody(t *testing.T) {
	setupReportTestDB(t)

	w := exportRequest(t, "?format=csv")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "convidados.csv")

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err, "body must be a single well-formed CSV, never a truncated stream")
	require.Len(t, records, 3)
	assert.Equal(t, "João", records[1][0])
	assert.Equal(t, "Confirmado", records[1][4])
	assert.Equal(t, "Pendente", records[2][4])
}

func TestExportXLSXSendsOneCompleteWorkbook(t *testing.T) {
	setupReportTestDB(t)

	w := exportRequest(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "convidados.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err, "body must open as a complete workbook")
	defer f.Close()
	assert.ElementsMatch(t, []string{"Grupos", "Pessoas"}, f.GetSheetList())
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	setupReportTestDB(t)

	w := exportRequest(t, "?format=pdf")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
