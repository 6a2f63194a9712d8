package http

import (
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct{}

func NewProfileHandler() ProfileHandler {
	return &ProfileHandlerImpl{}
}

type profileResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
}

// Get implements ProfileHandler. It must run behind middleware.FirebaseAuth.
func (p *ProfileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.FirebaseIdentityFromContext(r.Context())
	if !ok {
		response.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Token missing"})
		return
	}

	response.JSON(w, http.StatusOK, profileResponse{
		Message: "User authenticated",
		UID:     identity.UID,
		Email:   identity.Email,
	})
}
