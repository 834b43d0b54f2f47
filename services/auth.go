package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	jwt "github.com/KanapuramVaishnavi/Core/config/jwt"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is assigned to every staff account provisioned by an
// admin. The owner is forced through a password reset on first login.
const DefaultPassword = "testing"

var (
	ErrBadCredentials = errors.New("invalid email or password")
	ErrAccountBlocked = errors.New("account is blocked after too many failed logins")
	ErrEmailTaken     = errors.New("an account with this email already exists")
)

var loginAttempts = make(map[string]int)
var attemptsMu sync.Mutex

func incrementLoginAttempts(email string) int {
	attemptsMu.Lock()
	defer attemptsMu.Unlock()
	loginAttempts[email]++
	attempts := loginAttempts[email]
	log.Println("Current attempts for", email, ":", attempts)
	return attempts
}

func clearLoginAttempts(email string) {
	attemptsMu.Lock()
	delete(loginAttempts, email)
	attemptsMu.Unlock()
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

type AuthService struct {
	Store store.RecordStore
	Now   func() time.Time
}

type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

/*
* Find the account by email
* Three failed password checks in a row block the account
* A successful check clears the attempt counter
 */
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return models.User{}, ErrBadCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrAccountBlocked
	}
	if err := verifyPassword(user.Password, password); err != nil {
		attempts := incrementLoginAttempts(email)
		if attempts >= 3 {
			user.IsActive = false
			if updErr := s.Store.UpdateByID(ctx, store.Users, user.ID, user); updErr != nil {
				log.Println("Error blocking account: ", updErr)
			}
			return models.User{}, ErrAccountBlocked
		}
		return models.User{}, ErrBadCredentials
	}
	clearLoginAttempts(email)
	return user, nil
}

/*
* Authenticate
* GenerateJWT
* Persist the token on the user record
 */
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	isAdmin := user.Role == models.RoleAdmin
	token, err := jwt.GenerateJWT(user.ID, user.Email, user.Role, store.Users, "", isAdmin)
	if err != nil {
		log.Println("Error while generating the token: ", err)
		return LoginResult{}, err
	}

	user.Token = token
	if err := s.Store.UpdateByID(ctx, store.Users, user.ID, user); err != nil {
		log.Println("Error persisting login token: ", err)
		return LoginResult{}, err
	}

	user.Password = ""
	return LoginResult{User: user, Token: token}, nil
}

/*
* Verify the current password before accepting the new one
* Clearing isFirstLogin ends the forced-reset flow
 */
func (s *AuthService) ResetPassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := verifyPassword(user.Password, currentPassword); err != nil {
		return ErrBadCredentials
	}
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.IsFirstLogin = false
	if err := s.Store.UpdateByID(ctx, store.Users, user.ID, user); err != nil {
		return err
	}
	Notify(store.Users, "updated", user.ID)
	return nil
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (models.User, error) {
	var users []models.User
	if err := s.Store.GetAll(ctx, store.Users, &users); err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

// UserByID resolves the session subject to its account record.
func (s *AuthService) UserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.findByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *AuthService) findByID(ctx context.Context, id string) (models.User, error) {
	var users []models.User
	if err := s.Store.GetAll(ctx, store.Users, &users); err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

// emailTaken reports whether any account already uses the address.
func emailTaken(ctx context.Context, st store.RecordStore, email string) (bool, error) {
	var users []models.User
	if err := st.GetAll(ctx, store.Users, &users); err != nil {
		return false, err
	}
	for _, user := range users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
