package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"salary-calculator/http-server/admin/reset"
	"salary-calculator/http-server/calculate"
	getdealers "salary-calculator/http-server/dealers/get"
	removedealer "salary-calculator/http-server/dealers/remove"
	savedealer "salary-calculator/http-server/dealers/save"
	generate_excel "salary-calculator/http-server/generate-report/generate-excel"
	import_excel "salary-calculator/http-server/import-report/import-excel"
	getlocations "salary-calculator/http-server/locations/get"
	removelocation "salary-calculator/http-server/locations/remove"
	savelocation "salary-calculator/http-server/locations/save"
	selectlocation "salary-calculator/http-server/session/update"
	getstate "salary-calculator/http-server/state/get"
	"salary-calculator/internal/config"
	"salary-calculator/internal/service/session"
)

func routes(cfg config.Config, log *slog.Logger, sess *session.Session) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins, // фронтенд на vite / dev-сервере
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/state", getstate.GetState(log, sess))

	// Обекты
	router.Get("/api/locations", getlocations.GetLocations(log, sess))
	router.Post("/api/locations", savelocation.SaveLocation(log, sess))
	router.Delete("/api/locations/{id}", removelocation.DeleteLocation(log, sess))
	router.Post("/api/session/location", selectlocation.SelectLocation(log, sess))

	// Дилеры выбранного объекта
	router.Get("/api/dealers", getdealers.GetDealers(log, sess))
	router.Post("/api/dealers", savedealer.SaveDealer(log, sess))
	router.Delete("/api/dealers/{id}", removedealer.DeleteDealer(log, sess))

	// Расчёт
	router.Post("/api/calculate", calculate.CalculateSalaries(log, sess))
	router.Post("/api/clear", calculate.ClearInputs(log, sess))

	// Excel
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, sess))
	router.Get("/api/import/template", generate_excel.GenerateTemplate(log, sess))
	router.Post("/api/import/excel", import_excel.ImportExcel(log, sess))

	router.Post("/api/reset", reset.ResetAll(log, sess))

	// Статика UI
	frontendDir := cfg.StaticDir
	if _, err := os.Stat(frontendDir); err != nil {
		log.Warn("Папка фронтенда не найдена, только API", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.FileServer(http.Dir(frontendDir))
	router.Handle("/assets/*", fileServer)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
