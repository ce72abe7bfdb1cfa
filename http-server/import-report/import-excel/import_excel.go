package import_excel

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
	importxls "salary-calculator/internal/service/import-excel"
)

const maxUploadSize = 10 << 20

type TurnoverImporter interface {
	ImportTurnovers(r io.Reader) (importxls.Result, error)
}

// ImportExcel принимает xlsx в multipart-поле "file". Ошибки формата листа
// отдаются 200 с success=false, чтобы UI показал текст как есть.
func ImportExcel(log *slog.Logger, importer TurnoverImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.import.ImportExcel"

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, _, err := r.FormFile("file")
		if err != nil {
			log.Warn("no file in request", slog.String("op", op), slog.String("error", err.Error()))
			response.Error(w, r, http.StatusBadRequest, "Моля, избери Excel файл!")
			return
		}
		defer file.Close()

		res, err := importer.ImportTurnovers(file)
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, res)
	}
}
