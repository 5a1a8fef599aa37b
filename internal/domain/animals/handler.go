package animals

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas públicas (sin auth).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/stats", statsHandler(svc, log))
	r.Get("/animal-types", listTypesHandler(svc, log))

	r.Get("/animals", listAvailableHandler(svc, log))
	r.Get("/animals/{animalID}", getAnimalHandler(svc, log))
}

// RegisterAdminRoutes monta el ABM de staff. El router ya aplica RequireStaff.
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/animals", createAnimalHandler(svc, log))
	r.Patch("/animals/{animalID}", updateAnimalHandler(svc, log))
	r.Delete("/animals/{animalID}", deleteAnimalHandler(svc, log))

	r.Post("/animal-types", createTypeHandler(svc, log))
	r.Delete("/animal-types/{typeID}", deleteTypeHandler(svc, log))
}

type createAnimalRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Age         *int   `json:"age" validate:"required"`
	TypeID      string `json:"type_id" validate:"required"`
	Gender      string `json:"gender" validate:"omitempty,oneof=boy girl unknown"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=available adopted pending reserved"`
}

type updateAnimalRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Age         *int    `json:"age"`
	TypeID      *string `json:"type_id"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=boy girl unknown"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=available adopted pending reserved"`
}

type createTypeRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type animalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	TypeID        string    `json:"type_id"`
	Gender        Gender    `json:"gender"`
	Description   string    `json:"description"`
	Status        Status    `json:"status"`
	AdmissionDate time.Time `json:"admission_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type animalPageResponse struct {
	Items      []animalResponse `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
}

type animalTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type statsResponse struct {
	TotalAnimals   int `json:"total_animals"`
	AdoptedCount   int `json:"adopted_count"`
	AvailableCount int `json:"available_count"`
}

// statsHandler godoc
// @Summary Contadores de la home
// @Description Total de animales, adoptados y disponibles.
// @Tags animals
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {object} apperror.Body
// @Router /stats [get]
func statsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			TotalAnimals:   st.Total,
			AdoptedCount:   st.Adopted,
			AvailableCount: st.Available,
		})
	}
}

// listAvailableHandler godoc
// @Summary Listar animales adoptables
// @Description Solo animales con status `available`, ordenados por nombre. Filtros opcionales por tipo, género y edad exacta.
// @Tags animals
// @Produce json
// @Param type query string false "Nombre del tipo (cat, dog, ...)"
// @Param gender query string false "boy | girl | unknown"
// @Param age query int false "Edad exacta"
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} animalPageResponse
// @Failure 400 {object} apperror.Body
// @Failure 404 {object} apperror.Body "página fuera de rango"
// @Router /animals [get]
func listAvailableHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		lq := ListQuery{
			TypeName: q.Get("type"),
			Gender:   Gender(strings.TrimSpace(q.Get("gender"))),
		}

		if raw := strings.TrimSpace(q.Get("age")); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, r, log, apperror.Field(apperror.ErrInvalidEntity, "age", "age must be an integer"))
				return
			}
			lq.Age = &age
		}
		if raw := strings.TrimSpace(q.Get("page")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, r, log, apperror.ErrNotFound)
				return
			}
			lq.Page = n
		}

		page, err := svc.ListAvailable(r.Context(), lq)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := animalPageResponse{
			Items:      make([]animalResponse, 0, len(page.Items)),
			Page:       page.Number,
			PageSize:   page.Size,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			HasNext:    page.HasNext(),
			HasPrev:    page.HasPrev(),
		}
		for _, a := range page.Items {
			out.Items = append(out.Items, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalle de animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} apperror.Body
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listTypesHandler godoc
// @Summary Tipos de animal
// @Tags animals
// @Produce json
// @Success 200 {array} animalTypeResponse
// @Router /animal-types [get]
func listTypesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTypes(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		out := make([]animalTypeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, animalTypeResponse{ID: t.ID, Name: t.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAnimalHandler godoc
// @Summary Alta de animal (staff)
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} apperror.Body "Age cannot be negative. / Name cannot be empty."
// @Failure 401 {object} apperror.Body
// @Failure 403 {object} apperror.Body
// @Router /admin/animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Age:         *req.Age,
			TypeID:      req.TypeID,
			Gender:      Gender(req.Gender),
			Description: req.Description,
			Status:      Status(req.Status),
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Editar animal (staff)
// @Description PATCH parcial; admission_date no cambia.
// @Tags admin
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} apperror.Body
// @Failure 403 {object} apperror.Body
// @Failure 404 {object} apperror.Body
// @Router /admin/animals/{animalID} [patch]
func updateAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		in := UpdateInput{
			Name:        req.Name,
			Age:         req.Age,
			TypeID:      req.TypeID,
			Description: req.Description,
		}
		if req.Gender != nil {
			g := Gender(*req.Gender)
			in.Gender = &g
		}
		if req.Status != nil {
			st := Status(*req.Status)
			in.Status = &st
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal (staff)
// @Description Borra sus adopciones; los paseos quedan sin animal.
// @Tags admin
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 403 {object} apperror.Body
// @Failure 404 {object} apperror.Body
// @Router /admin/animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// createTypeHandler godoc
// @Summary Crear tipo de animal (staff)
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body createTypeRequest true "Nombre del tipo"
// @Success 201 {object} animalTypeResponse
// @Failure 400 {object} apperror.Body "invalid_entity (duplicado)"
// @Failure 403 {object} apperror.Body
// @Router /admin/animal-types [post]
func createTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		t, err := svc.CreateType(r.Context(), req.Name)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, animalTypeResponse{ID: t.ID, Name: t.Name})
	}
}

// deleteTypeHandler godoc
// @Summary Baja de tipo (staff)
// @Description Falla con 409 `in_use` mientras existan animales de ese tipo.
// @Tags admin
// @Param typeID path string true "ID del tipo"
// @Success 204
// @Failure 404 {object} apperror.Body
// @Failure 409 {object} apperror.Body
// @Router /admin/animal-types/{typeID} [delete]
func deleteTypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteType(r.Context(), chi.URLParam(r, "typeID")); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:            a.ID,
		Name:          a.Name,
		Age:           a.Age,
		TypeID:        a.TypeID,
		Gender:        a.Gender,
		Description:   a.Description,
		Status:        a.Status,
		AdmissionDate: a.AdmissionDate,
		UpdatedAt:     a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), log).Error("animals handler failed", logger.Fields{"err": err})
	}
	writeJSON(w, status, apperror.ToBody(err))
}
