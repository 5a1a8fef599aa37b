package users

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
	r.Post("/users", registerHandler(svc, log))

	r.Get("/me", getMeHandler(svc, log))
	r.Patch("/me", updateMeHandler(svc, log))
}

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=150,username"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
}

type updateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=150,username"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name" validate:"omitempty,max=150"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phone_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta"
// @Success 201 {object} userResponse
// @Failure 400 {object} apperror.Body
// @Router /users [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Username:    req.Username,
			PhoneNumber: req.PhoneNumber,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// getMeHandler godoc
// @Summary Mi perfil
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} userResponse
// @Failure 401 {object} apperror.Body
// @Router /me [get]
func getMeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, r, log, apperror.ErrUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateMeHandler godoc
// @Summary Editar mi perfil
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body updateProfileRequest true "Campos a modificar"
// @Success 200 {object} userResponse
// @Failure 400 {object} apperror.Body
// @Failure 401 {object} apperror.Body
// @Router /me [patch]
func updateMeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, r, log, apperror.ErrUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateProfileRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, log, apperror.Form(apperror.ErrInvalidEntity, "invalid json"))
			return
		}
		if err := validation.Struct(req); err != nil {
			writeError(w, r, log, err)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, UpdateProfileInput{
			Username:    req.Username,
			PhoneNumber: req.PhoneNumber,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsStaff:     u.IsStaff,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
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
		logger.FromContext(r.Context(), log).Error("users handler failed", logger.Fields{"err": err})
	}
	writeJSON(w, status, apperror.ToBody(err))
}
