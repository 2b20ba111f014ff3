// Package api exposes the user API over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mtavares/gatekeeper/auth"
	authapi "github.com/mtavares/gatekeeper/auth/api"
	"github.com/mtavares/gatekeeper/internal/httpjson"
	"github.com/mtavares/gatekeeper/user"
)

const (
	BasePath = "/api/v1"
)

// ExcludedPaths never require authentication.
var ExcludedPaths = []string{
	BasePath + "/status/",
	BasePath + "/unauthorized/",
	BasePath + "/forbidden/",
}

type (
	// userView is the wire shape of a user, the password hash never
	// leaves the store.
	userView struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		FirstName   string `json:"first_name,omitempty"`
		LastName    string `json:"last_name,omitempty"`
		DisplayName string `json:"display_name"`
	}
)

// AsHandler wires the API routes and wraps them with the auth filter
// built from strategy.
func AsHandler(users user.Store, strategy auth.Strategy) http.Handler {
	router := httprouter.New()
	router.HandlerFunc("GET", BasePath+"/status", status)
	router.HandlerFunc("GET", BasePath+"/unauthorized", triggerUnauthorized)
	router.HandlerFunc("GET", BasePath+"/forbidden", triggerForbidden)
	router.HandlerFunc("GET", BasePath+"/users", listUsers(users))
	router.Handle("GET", BasePath+"/users/:id", getUser(users))
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpjson.Error(w, http.StatusNotFound)
	})

	gate := authapi.NewGatekeeper(strategy, ExcludedPaths...)
	return gate.Protect(router)
}

func status(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "OK"})
}

func triggerUnauthorized(w http.ResponseWriter, r *http.Request) {
	httpjson.Error(w, http.StatusUnauthorized)
}

func triggerForbidden(w http.ResponseWriter, r *http.Request) {
	httpjson.Error(w, http.StatusForbidden)
}

func listUsers(users user.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := users.All(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError)
			return
		}
		views := make([]userView, 0, len(all))
		for _, u := range all {
			views = append(views, viewOf(u))
		}
		httpjson.Write(w, http.StatusOK, views)
	}
}

func getUser(users user.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		id := params.ByName("id")
		if id == "me" {
			u, ok := authapi.UserFrom(r.Context())
			if !ok {
				httpjson.Error(w, http.StatusNotFound)
				return
			}
			httpjson.Write(w, http.StatusOK, viewOf(*u))
			return
		}
		u, err := users.FindByID(r.Context(), id)
		var missing user.NotFound
		if errors.As(err, &missing) {
			httpjson.Error(w, http.StatusNotFound)
			return
		}
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError)
			return
		}
		httpjson.Write(w, http.StatusOK, viewOf(u))
	}
}

func viewOf(u user.User) userView {
	return userView{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName(),
	}
}
