package adoptions

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/animals/{animalID}/adoptions", requestAdoptionHandler(svc, log))
	r.Get("/me/adoptions", listMyAdoptionsHandler(svc, log))
}

// RegisterAdminRoutes se monta bajo /admin (RequireStaff).
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/adoptions", listAdoptionsHandler(svc, log))
	r.Patch("/adoptions/{adoptionID}", decideAdoptionHandler(svc, log))
}

type requestAdoptionRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type decideAdoptionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"animal_id"`
	UserID    string    `json:"user_id"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// requestAdoptionHandler godoc
// @Summary Solicitar adopción
// @Description Crea una solicitud pending y deja al animal en `pending`. Falla si el usuario ya pidió ese animal o no tiene teléfono cargado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags adoptions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Param payload body requestAdoptionRequest false "Mensaje opcional"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} apperror.Body "missing_contact_info"
// @Failure 401 {object} apperror.Body
// @Failure 404 {object} apperror.Body "animal not found"
// @Failure 409 {object} apperror.Body "duplicate_request / constraint_violation"
// @Failure 500 {object} apperror.Body "synchronization_failure"
// @Router /animals/{animalID}/adoptions [post]
func requestAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, r, log, apperror.ErrUnauthorized)
			return
		}

		// body opcional
		var req requestAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		a, err := svc.Request(r.Context(), claims.UserID, chi.URLParam(r, "animalID"), req.Notes)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// listMyAdoptionsHandler godoc
// @Summary Mis solicitudes de adopción
// @Description Más recientes primero.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} adoptionResponse
// @Failure 401 {object} apperror.Body
// @Router /me/adoptions [get]
func listMyAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones (staff)
// @Tags admin
// @Produce json
// @Param status query string false "pending | approved | rejected"
// @Success 200 {array} adoptionResponse
// @Failure 400 {object} apperror.Body
// @Failure 403 {object} apperror.Body
// @Router /admin/adoptions [get]
func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := Filter{Status: Status(strings.TrimSpace(r.URL.Query().Get("status")))}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// decideAdoptionHandler godoc
// @Summary Decidir adopción (staff)
// @Description Cambia el status de la adopción y sincroniza el del animal (pending→pending, approved→adopted, rejected→available). Si la sincronización falla no se guarda nada.
// @Tags admin
// @Accept json
// @Produce json
// @Param adoptionID path string true "ID de la adopción"
// @Param payload body decideAdoptionRequest true "Nuevo status"
// @Success 200 {object} adoptionResponse
// @Failure 400 {object} apperror.Body
// @Failure 404 {object} apperror.Body
// @Failure 500 {object} apperror.Body "synchronization_failure"
// @Router /admin/adoptions/{adoptionID} [patch]
func decideAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decideAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		a, err := svc.Decide(r.Context(), chi.URLParam(r, "adoptionID"), Status(req.Status))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		AnimalID:  a.AnimalID,
		UserID:    a.UserID,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAdoptionResponses(items []Adoption) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), log).Error("adoptions handler failed", logger.Fields{"err": err})
	}
	writeJSON(w, status, apperror.ToBody(err))
}
