package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"healthpulse-api/internal/survey"

	"github.com/xuri/excelize/v2"
)

var generalHeader = []string{
	"full_name", "dob", "age", "gender", "adhar_number", "diseases",
	"education", "caste", "pregnant_woman_present", "mobile_no", "kids_info", "created_at",
}

var ancHeader = []string{
	"full_name", "dob", "age", "gender", "adhar_number", "mobile_no",
	"lmp_date", "children_no", "pregnancy_month", "anc_visits",
	"tetanus_injection", "iron_supplements", "sam_status", "mam_status",
	"thalassemia_status", "created_at",
}

// Download renders the requested dataset with the same search filter
// the listing endpoints apply, as xlsx (default) or csv.
func (ds *DashboardService) Download(req DownloadRequest) (contentType, filename string, out []byte, err error) {
	ts := time.Now().Format("20060102_150405")

	switch req.Dataset {
	case "general":
		rows, err := ds.SearchGeneral(req.Search)
		if err != nil {
			return "", "", nil, err
		}
		records := make([][]string, 0, len(rows))
		for _, r := range rows {
			records = append(records, generalRecord(r))
		}
		return renderExport(req.Format, fmt.Sprintf("general_surveys_%s", ts), generalHeader, records)
	case "anc":
		rows, err := ds.SearchANC(req.Search)
		if err != nil {
			return "", "", nil, err
		}
		records := make([][]string, 0, len(rows))
		for _, r := range rows {
			records = append(records, ancRecord(r))
		}
		return renderExport(req.Format, fmt.Sprintf("anc_surveys_%s", ts), ancHeader, records)
	default:
		return "", "", nil, fmt.Errorf("unknown dataset %q", req.Dataset)
	}
}

func generalRecord(r survey.GeneralSurvey) []string {
	return []string{
		r.FullName, r.DOB, strconv.Itoa(r.Age), r.Gender, r.AdharNumber,
		strings.Join(r.Diseases, ", "), r.Education, r.Caste,
		r.PregnantWomanPresent, r.MobileNo, r.KidsInfo,
		r.CreatedAt.Format(time.RFC3339),
	}
}

func ancRecord(r survey.ANCSurvey) []string {
	return []string{
		r.FullName, r.DOB, strconv.Itoa(r.Age), r.Gender, r.AdharNumber,
		r.MobileNo, r.LMPDate, strconv.Itoa(r.ChildrenNo),
		strconv.Itoa(r.PregnancyMonth), strconv.Itoa(r.ANCVisits),
		r.TetanusInjection, r.IronSupplements, r.SAMStatus, r.MAMStatus,
		r.ThalassemiaStatus, r.CreatedAt.Format(time.RFC3339),
	}
}

func renderExport(format, base string, header []string, records [][]string) (string, string, []byte, error) {
	if format == "csv" {
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		_ = w.Write(header)
		for _, rec := range records {
			_ = w.Write(rec)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", "", nil, err
		}
		return "text/csv; charset=utf-8", base + ".csv", buf.Bytes(), nil
	}

	f := excelize.NewFile()
	const sheet = "Export"
	f.SetSheetName("Sheet1", sheet)

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	_ = f.SetSheetRow(sheet, "A1", &headerRow)

	for i, rec := range records {
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", base + ".xlsx", buf.Bytes(), nil
}
