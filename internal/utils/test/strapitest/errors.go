package strapitest

import (
	"net/http"

	"github.com/articledesk/articles-cli/internal/cloud/strapi"

	"github.com/go-chi/render"
)

type errorResponse struct {
	Data  interface{}        `json:"data"`
	Error strapi.ServerError `json:"error"`
}

var errorNames = map[int]string{
	http.StatusBadRequest:          "ValidationError",
	http.StatusUnauthorized:        "UnauthorizedError",
	http.StatusForbidden:           "ForbiddenError",
	http.StatusNotFound:            "NotFoundError",
	http.StatusInternalServerError: "InternalServerError",
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	name, ok := errorNames[status]
	if !ok {
		name = "ApplicationError"
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: strapi.ServerError{
		Status:  status,
		Name:    name,
		Message: message,
		Details: map[string]interface{}{},
	}})
}
