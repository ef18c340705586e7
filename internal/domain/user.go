package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Rank classifies a user account into a tier.
type Rank string

// Account tiers accepted by register_user.
const (
	RankGuest      Rank = "GUEST"
	RankRegistered Rank = "REGISTERED"
	RankAdmin      Rank = "ADMIN"
)

// String implements fmt.Stringer.
func (r Rank) String() string {
	return string(r)
}

// Valid reports whether r is one of the known tiers.
func (r Rank) Valid() bool {
	switch r {
	case RankGuest, RankRegistered, RankAdmin:
		return true
	}
	return false
}

// Common validation errors
var (
	// ErrInvalidFixture wraps every validation failure returned by UserFixture.Validate.
	ErrInvalidFixture = errors.New("invalid user fixture")
	ErrInvalidRank    = errors.New("invalid rank")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Register custom validation for rank values
	_ = validate.RegisterValidation("rank", func(fl validator.FieldLevel) bool {
		return Rank(fl.Field().String()).Valid()
	})
}

// UserFixture is a fixed, known user inserted before a test scenario and
// removed after it. Values are never mutated once constructed.
type UserFixture struct {
	Name  string `json:"name" validate:"required,max=64"`
	Email string `json:"email" validate:"required,email,max=320"`
	// Password is the plaintext credential for login steps. It is never sent
	// to the database.
	Password       string `json:"password"`
	HashedPassword string `json:"hashedPassword" validate:"required"`
	Rank           Rank   `json:"rank" validate:"required,rank"`
}

// The registered user fixture. The hash is bcrypt (cost 10) of the password.
const (
	registeredName     = "Registered Test User"
	registeredEmail    = "registered@thunderdome.dev"
	registeredPassword = "kentRules!"
	registeredHash     = "$2a$10$3CvuzyoGIme3dJ4v9BnvyOIKFxEaYyjV2Lfunykv0VokGf/twxi9m"
)

// RegisteredUserFixture returns the canonical registered test user.
func RegisteredUserFixture() UserFixture {
	return UserFixture{
		Name:           registeredName,
		Email:          registeredEmail,
		Password:       registeredPassword,
		HashedPassword: registeredHash,
		Rank:           RankRegistered,
	}
}

// Validate checks that the fixture carries everything register_user needs.
// The plaintext password is not required.
func (f UserFixture) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "rank" {
				return fmt.Errorf("%w: %w: %q", ErrInvalidFixture, ErrInvalidRank, f.Rank)
			}
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidFixture, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	return nil
}

// Registration is the row produced by register_user.
type Registration struct {
	UserID   uuid.UUID
	VerifyID uuid.UUID
}

// SeededUser is a fixture that now exists in the database.
type SeededUser struct {
	UserFixture
	ID uuid.UUID `json:"id"`
	// VerifyID is the email verification id created alongside the user.
	VerifyID uuid.UUID `json:"verifyId"`
}

// NewSeededUser merges the static fixture fields with the generated ids.
func NewSeededUser(f UserFixture, reg Registration) *SeededUser {
	return &SeededUser{
		UserFixture: f,
		ID:          reg.UserID,
		VerifyID:    reg.VerifyID,
	}
}
