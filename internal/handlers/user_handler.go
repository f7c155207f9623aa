package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"traveleon/internal/models"
	"traveleon/internal/services"
	"traveleon/utils"
)

const maxAvatarSize = 10 << 20

type UserHandler struct {
	Service *services.UserService
	Storage *utils.Storage
}

// SignInErrorMessage maps an authentication failure to the message shown
// to the user. Unknown errors collapse into a generic message.
func SignInErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidEmail):
		return "The email address is not valid."
	case errors.Is(err, models.ErrUserDisabled):
		return "This user account has been disabled."
	case errors.Is(err, models.ErrUserNotFound):
		return "No user found with this email."
	case errors.Is(err, models.ErrInvalidPassword):
		return "The password is incorrect."
	default:
		return "Something went wrong. Please try again."
	}
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	res, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidEmail):
			http.Error(w, "The email address is not valid.", http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateEmail):
			http.Error(w, "An account already exists with this email.", http.StatusConflict)
		default:
			http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, models.ErrInvalidEmail) {
			status = http.StatusBadRequest
		}
		http.Error(w, SignInErrorMessage(err), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.UserLogOut(r.Context(), userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value("user_id").(int)
	role, _ := r.Context().Value("role").(string)
	if userID != id && role != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value("user_id").(int)
	if userID != id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if h.Storage == nil {
		http.Error(w, "File storage is not configured", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%d_%d_%s_%s", id, time.Now().Unix(), uuid.New().String()[:8], header.Filename)
	url, err := h.Storage.UploadFile(data, fileName, "avatars")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Service.UpdateAvatar(r.Context(), id, url); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"avatar": url})
}
