package walks

import (
	"encoding/json"
	"net/http"
	"time"

	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/walks/window", windowHandler(svc))
	r.Post("/animals/{animalID}/walks", scheduleWalkHandler(svc, log))
	r.Get("/me/walks", listMyWalksHandler(svc, log))
}

type scheduleWalkRequest struct {
	Date        string `json:"date" validate:"required"` // RFC3339 o YYYY-MM-DDTHH:MM (hora local)
	Description string `json:"description"`
}

type walkResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id"`
	AnimalID    *string   `json:"animal_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type windowResponse struct {
	Min       string `json:"min"`
	Max       string `json:"max"`
	OpenHour  int    `json:"open_hour"`
	CloseHour int    `json:"close_hour"`
	Timezone  string `json:"timezone"`
}

// windowHandler godoc
// @Summary Ventana de paseos
// @Description Límites sugeridos para el selector de fecha (formato YYYY-MM-DDTHH:MM en hora del refugio).
// @Tags walks
// @Produce json
// @Success 200 {object} windowResponse
// @Router /walks/window [get]
func windowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lo, hi := svc.Bounds()
		win := svc.Window()
		writeJSON(w, http.StatusOK, windowResponse{
			Min:       lo,
			Max:       hi,
			OpenHour:  win.OpenHour,
			CloseHour: win.CloseHour,
			Timezone:  win.loc().String(),
		})
	}
}

// scheduleWalkHandler godoc
// @Summary Agendar paseo
// @Description La fecha debe ser futura y caer entre la hora de apertura y cierre. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags walks
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Param payload body scheduleWalkRequest true "Fecha y descripción"
// @Success 201 {object} walkResponse
// @Failure 400 {object} apperror.Body "out_of_window / invalid_entity"
// @Failure 401 {object} apperror.Body
// @Failure 404 {object} apperror.Body "animal not found"
// @Router /animals/{animalID}/walks [post]
func scheduleWalkHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, r, log, apperror.ErrUnauthorized)
			return
		}

		var req scheduleWalkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		date, err := svc.Window().ParseDate(req.Date)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		walk, err := svc.Schedule(r.Context(), claims.UserID, chi.URLParam(r, "animalID"), ScheduleInput{
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toWalkResponse(walk))
	}
}

// listMyWalksHandler godoc
// @Summary Mis paseos
// @Description Ordenados por fecha. animal_id es null si el animal fue dado de baja.
// @Tags walks
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} walkResponse
// @Failure 401 {object} apperror.Body
// @Router /me/walks [get]
func listMyWalksHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, r, log, apperror.ErrUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]walkResponse, 0, len(items))
		for _, wk := range items {
			out = append(out, toWalkResponse(wk))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toWalkResponse(w Walk) walkResponse {
	resp := walkResponse{
		ID:          w.ID,
		Date:        w.Date,
		Description: w.Description,
		UserID:      w.UserID,
		CreatedAt:   w.CreatedAt,
	}
	if w.AnimalID != "" {
		id := w.AnimalID
		resp.AnimalID = &id
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), log).Error("walks handler failed", logger.Fields{"err": err})
	}
	writeJSON(w, status, apperror.ToBody(err))
}
