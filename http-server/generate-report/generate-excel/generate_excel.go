package generate_excel

import (
	"log/slog"
	"net/http"
	"net/url"

	"salary-calculator/http-server/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportExporter interface {
	Export() ([]byte, string, error)
}

type TemplateProvider interface {
	Template() ([]byte, string, error)
}

func GenerateReportExcel(log *slog.Logger, gen ReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		excelBytes, fileName, err := gen.Export()
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		writeXLSX(w, fileName, excelBytes)
	}
}

// GenerateTemplate - шаблон импорта с именами дилеров выбранного объекта.
func GenerateTemplate(log *slog.Logger, gen TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateTemplate"

		excelBytes, fileName, err := gen.Template()
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		writeXLSX(w, fileName, excelBytes)
	}
}

// имя файла кириллицей, поэтому filename* по RFC 5987
func writeXLSX(w http.ResponseWriter, fileName string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
	w.Write(data)
}
