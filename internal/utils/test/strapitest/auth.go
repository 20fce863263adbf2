package strapitest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/articledesk/articles-cli/internal/auth"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = 30 * 24 * time.Hour
)

type ctxKey string

const ctxKeyUserID ctxKey = "userID"

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *registerRequest) Bind(r *http.Request) error {
	switch {
	case req.Username == "":
		return errors.New("username is a required field")
	case req.Email == "":
		return errors.New("email is a required field")
	case req.Password == "":
		return errors.New("password is a required field")
	}
	return nil
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (req *loginRequest) Bind(r *http.Request) error {
	if req.Identifier == "" || req.Password == "" {
		return errors.New("identifier and password are required fields")
	}
	return nil
}

// SeedUser registers a user directly in the store
func (s *Server) SeedUser(username, email, password string) strapi.Profile {
	profile, err := s.addUser(username, email, password)
	if err != nil {
		panic(err)
	}
	return profile
}

// IssueToken issues a session token for the user id
func (s *Server) IssueToken(userID int64) string {
	now := s.now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
	}).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

var errTaken = errors.New("Email or Username are already taken")

func (s *Server) addUser(username, email, password string) (strapi.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return strapi.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.profile.Email, email) || u.profile.Username == username {
			return strapi.Profile{}, errTaken
		}
	}

	now := s.now().UTC()
	profile := strapi.Profile{
		ID:        s.nextUserID,
		Username:  username,
		Email:     strings.ToLower(email),
		Provider:  "local",
		Confirmed: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextUserID++
	s.users = append(s.users, account{profile, hash})

	return profile, nil
}

func (s *Server) findUser(match func(p strapi.Profile) bool) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if match(u.profile) {
			return u, true
		}
	}
	return account{}, false
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.Bind(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.addUser(req.Username, req.Email, req.Password)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	render.JSON(w, r, strapi.AuthResponse{JWT: s.IssueToken(profile.ID), User: profile})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.Bind(r, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	u, ok := s.findUser(func(p strapi.Profile) bool {
		return strings.EqualFold(p.Email, req.Identifier) || p.Username == req.Identifier
	})
	if !ok || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid identifier or password")
		return
	}

	render.JSON(w, r, strapi.AuthResponse{JWT: s.IssueToken(u.profile.ID), User: u.profile})
}

func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			renderError(w, r, http.StatusForbidden, "Forbidden")
			return
		}

		var claims auth.Claims
		_, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			&claims,
			func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, "Missing or invalid credentials")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(ctxKeyUserID).(int64)

	u, ok := s.findUser(func(p strapi.Profile) bool { return p.ID == userID })
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "Missing or invalid credentials")
		return
	}

	render.JSON(w, r, u.profile)
}
