package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shahd3/iCare/internal/service"
)

type Server struct {
	mx                *chi.Mux
	remindersService  service.RemindersServiceI
	adherenceService  service.AdherenceServiceI
	reconcilerService service.ReconcilerI
	pharmacyFinder    PharmacyFinderI
}

type ServicesList struct {
	RemindersService  service.RemindersServiceI
	AdherenceService  service.AdherenceServiceI
	ReconcilerService service.ReconcilerI
	PharmacyFinder    PharmacyFinderI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		remindersService:  servicesOptions.RemindersService,
		adherenceService:  servicesOptions.AdherenceService,
		reconcilerService: servicesOptions.ReconcilerService,
		pharmacyFinder:    servicesOptions.PharmacyFinder,
	}
}

func (s *Server) Routes() *chi.Mux {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/reminders", s.CreateReminder)
		r.Get("/reminders", s.GetReminders)
		r.Delete("/reminders/{id}", s.DeleteReminder)
		r.Post("/reminders/{id}/taken", s.RecordTaken)
		r.Post("/reconcile", s.TriggerReconcile)
		r.Get("/pharmacies/nearby", s.NearbyPharmacies)
	})
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
