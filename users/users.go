package users

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellspring-health/clinic/errors"
)

const (
	CollectionName = "users"

	// UnknownDoctorName is displayed when a doctor reference cannot be resolved
	UnknownDoctorName = "Unknown"
)

var (
	ErrNotFound  = fmt.Errorf("user %w", errors.NotFound)
	ErrDuplicate = fmt.Errorf("%w: user with this email already exists", errors.Duplicate)
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func (r Role) IsClinician() bool {
	return r == RoleDoctor || r == RoleAdmin
}

//go:generate go tool mockgen -source=./users.go -destination=./test/mock_users.go -package test

type Repository interface {
	Create(ctx context.Context, create *User) (*User, error)
	Get(ctx context.Context, userId string) (*User, error)
	ListByIds(ctx context.Context, userIds []string) ([]User, error)
}

// Directory resolves user references to display information
type Directory interface {
	Resolve(ctx context.Context, userIds []string) (Doctors, error)
}

type User struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty"`
	UserId         string              `bson:"userId"`
	Name           string              `bson:"name"`
	Email          string              `bson:"email"`
	Role           Role                `bson:"role"`
	Specialization *string             `bson:"specialization,omitempty"`
	CreatedTime    time.Time           `bson:"createdTime"`
}

type Doctor struct {
	Name           string
	Specialization *string
}

// Doctors are resolved doctor references keyed by user id
type Doctors map[string]Doctor

func (d Doctors) Get(userId *string) (Doctor, bool) {
	if userId == nil {
		return Doctor{}, false
	}
	doctor, ok := d[*userId]
	return doctor, ok
}

// DisplayName returns the name of the referenced doctor or UnknownDoctorName when the
// reference is missing or could not be resolved
func (d Doctors) DisplayName(userId *string) string {
	if doctor, ok := d.Get(userId); ok && doctor.Name != "" {
		return doctor.Name
	}
	return UnknownDoctorName
}

// Specialization returns the specialization of the referenced doctor if known
func (d Doctors) Specialization(userId *string) *string {
	if doctor, ok := d.Get(userId); ok {
		return doctor.Specialization
	}
	return nil
}
