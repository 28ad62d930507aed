package appointments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "appointments"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// ActiveStatuses are the statuses of appointments which are expected to take place
var ActiveStatuses = []Status{StatusScheduled, StatusConfirmed}

func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

//go:generate go tool mockgen -source=./appointments.go -destination=./test/mock_appointments.go -package test

type Repository interface {
	Create(ctx context.Context, create *Appointment) (*Appointment, error)
	// ListUpcoming returns at most limit active appointments of the patient after now, nearest first
	ListUpcoming(ctx context.Context, patientId string, now time.Time, limit int) ([]Appointment, error)
}

type Appointment struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId   string              `bson:"patientId"`
	DoctorId    string              `bson:"doctorId"`
	Date        time.Time           `bson:"date"`
	Type        string              `bson:"type"`
	Location    string              `bson:"location"`
	Reason      string              `bson:"reason"`
	Status      Status              `bson:"status"`
	CreatedTime time.Time           `bson:"createdTime"`
}
