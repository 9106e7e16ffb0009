package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/internal/service"
	"github.com/Shahd3/iCare/pkg/entity"
	"github.com/Shahd3/iCare/pkg/httputil"
)

type CreateReminderRequest struct {
	MedName    string   `json:"med_name"`
	Dosage     string   `json:"dosage"`
	Time       string   `json:"time"`
	Recurrence string   `json:"recurrence"`
	Days       []string `json:"days"`
}

type GetRemindersResponse struct {
	Reminders []*entity.Reminder `json:"reminders"`
}

type NearbyPharmaciesResponse struct {
	Pharmacies []entity.Pharmacy `json:"pharmacies"`
}

func (s *Server) CreateReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateReminderRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create reminder error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reminder, err := s.remindersService.Create(ctx, &service.CreateReminderRequest{
		MedName:    req.MedName,
		Dosage:     req.Dosage,
		Time:       req.Time,
		Recurrence: entity.Recurrence(req.Recurrence),
		Days:       req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReminderExists):
			logger.Error("create reminder error: attempt to create existed reminder")
			httputil.WriteErrorResponse(w, http.StatusConflict, "reminder already exists", nil)
		case errors.Is(err, errorvalues.ErrNoDaysSelected):
			logger.Error("create reminder error: weekly without days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "weekly reminder needs at least one weekday", nil)
		default:
			logger.Error("create reminder error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create reminder", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"reminder_id": reminder.ID.String()})
	logger.Info("reminder created")
}

func (s *Server) GetReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reminders, err := s.remindersService.List(ctx)
	if err != nil {
		logger.Error("getting reminders list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting reminders list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRemindersResponse{
		Reminders: reminders,
	})
	logger.Info("reminders provided")
}

func (s *Server) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reminder deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reminder id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.remindersService.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReminderNotFound):
			logger.Error("reminder deletion error: unexist reminder")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reminder doesn't exist", nil)
		default:
			logger.Error("reminder deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting reminder", nil)
		}
		return
	}
	logger.Info("reminder deleted")
}

// RecordTaken is the tap acknowledgment route. Unlike reconciliation,
// failures here must be visible: the user expects the tap to register.
func (s *Server) RecordTaken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	idOrName := r.PathValue("id")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.adherenceService.RecordTaken(ctx, idOrName)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReminderNotFound):
			logger.Error("record taken error: unexist reminder")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reminder doesn't exist", nil)
		default:
			logger.Error("record taken error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "tap wasn't recorded", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("taken event handled")
}

func (s *Server) TriggerReconcile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	changed, err := s.reconcilerService.Reconcile(ctx)
	if err != nil {
		logger.Error("manual reconcile error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "reconciliation failed, will retry on next pass", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"changed": changed})
	logger.Info("manual reconcile finished")
}

func (s *Server) NearbyPharmacies(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid lat query param", nil)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid lon query param", nil)
		return
	}
	radius, err := strconv.Atoi(r.URL.Query().Get("radius"))
	if err != nil || radius < 1 || radius > 50000 {
		radius = 3000
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	pharmacies, err := s.pharmacyFinder.Nearby(ctx, lat, lon, radius)
	if err != nil {
		logger.Error("pharmacy lookup error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "couldn't load nearby pharmacies", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NearbyPharmaciesResponse{
		Pharmacies: pharmacies,
	})
	logger.Info("pharmacies provided")
}
