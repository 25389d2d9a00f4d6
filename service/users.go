package service

import (
	"errors"
	"strings"
	"time"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/mailer"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/repository"
)

type users interface {
	RegisterUser(name string, email string, password string, personID *int64) (*data.User, error)
	ActivateUser(token string) (*data.User, error)
	ShowUser(userID int64) (*data.User, error)
	UpdateUser(userID int64, name *string, email *string) (*data.User, error)
	UpdateUserPassword(userID int64, old string, new string, confirm string) (*data.User, error)
	DeleteUser(userID int64) error
	ResetUserPassword(password string, token string) error
	GetUserForToken(tokenScope string, tokenPlaintext string) (*data.User, error)
}

// RegisterUser service registers a new user account, optionally linked to an
// existing person record so the account can act as that person's borrower.
func (s *service) RegisterUser(name string, email string, password string, personID *int64) (*data.User, error) {
	user := &data.User{
		Name:      name,
		Email:     email,
		Activated: false,
		PersonID:  personID,
	}
	err := user.Password.Set(password)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	if personID != nil {
		_, err := s.repo.GetPerson(*personID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("person_id", "no matching person record found")
				return nil, s.failedValidation(v.Errors)
			default:
				return nil, err
			}
		}
	}
	err = s.repo.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	// Generate a new activation token for user
	token, err := s.repo.CreateNewToken(user.ID, 3*24*time.Hour, data.ScopeActivation)
	if err != nil {
		return nil, err
	}
	// Send welcome email in a background goroutine to speed up response time
	s.background(func() {
		data := map[string]string{
			"userName":        strings.Split(user.Name, " ")[0],
			"activationToken": token.Plaintext,
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err := mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return user, nil
}

// ActivateUser service activates a newly registered user.
func (s *service) ActivateUser(token string) (*data.User, error) {
	v := validator.New()
	if data.ValidateTokenPlaintext(v, token); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	// Retrieve user associated with the activation token. If the user record
	// isn't found, it means the token is invalid
	user, err := s.repo.GetUserForToken(data.ScopeActivation, token)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("token", "invalid or expired activation token")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	// Activate user
	user.Activated = true
	err = s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	// Delete all activation tokens for user
	err = s.repo.DeleteAllTokensForUser(data.ScopeActivation, user.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ShowUser service shows the details of a specific user.
func (s *service) ShowUser(userID int64) (*data.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// UpdateUser service updates the details of a specific user.
func (s *service) UpdateUser(userID int64, name *string, email *string) (*data.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	v := validator.New()
	data.ValidateName(v, user.Name)
	data.ValidateEmail(v, user.Email)
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return user, nil
}

// UpdateUserPassword service updates an authenticated user's password.
func (s *service) UpdateUserPassword(userID int64, old string, new string, confirm string) (*data.User, error) {
	// Validate password data
	v := validator.New()
	data.ValidatePasswordPlaintext(v, old)
	data.ValidatePasswordPlaintext(v, new)
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	if new != confirm {
		return nil, ErrPasswordMismatch
	}
	// Retrieve user by ID
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}
	// Check whether old matches the stored password hash. If there is a
	// match, proceed and update the password. Otherwise return with error.
	match, err := user.Password.Matches(old)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	err = user.Password.Set(new)
	if err != nil {
		return nil, err
	}
	err = s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return user, nil
}

// DeleteUser service deletes a user account. Any person record linked to the
// account stays; only the login goes away.
func (s *service) DeleteUser(userID int64) error {
	err := s.repo.DeleteUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ResetUserPassword service resets a registered user's password.
func (s *service) ResetUserPassword(password string, token string) error {
	v := validator.New()
	data.ValidateTokenPlaintext(v, token)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	// Retrieve user associated with password reset token
	user, err := s.repo.GetUserForToken(data.ScopePasswordReset, token)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("token", "invalid or expired token")
			return s.failedValidation(v.Errors)
		default:
			return err
		}
	}
	// Set new password
	err = user.Password.Set(password)
	if err != nil {
		return err
	}
	err = s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrEditConflict
		default:
			return err
		}
	}
	// Delete all password reset tokens for user
	err = s.repo.DeleteAllTokensForUser(data.ScopePasswordReset, user.ID)
	if err != nil {
		return err
	}
	return nil
}

// GetUserForToken retrieves the user associated with a token.
func (s *service) GetUserForToken(tokenScope string, tokenPlaintext string) (*data.User, error) {
	v := validator.New()
	user, err := s.repo.GetUserForToken(tokenScope, tokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("token", "invalid or expired token")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return user, nil
}
