package outbox

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "outbox"

// EventType identifies the kind of event
type EventType string

const (
	EventTypeAssessmentCompleted EventType = "assessmentCompleted"
)

// Event is the common envelope for all outbox events
type Event struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty"`
	EventType     EventType           `bson:"eventType"`
	CreatedTime   time.Time           `bson:"createdTime"`
	PublishedTime *time.Time          `bson:"publishedTime,omitempty"`
	Payload       bson.Raw            `bson:"payload"`
}

// AssessmentCompletedPayload notifies the patient that a clinician completed their intake assessment
type AssessmentCompletedPayload struct {
	PatientId       string `bson:"patientId" json:"patientId"`
	DoctorId        string `bson:"doctorId" json:"doctorId"`
	AssessmentId    string `bson:"assessmentId" json:"assessmentId"`
	CancerRiskLevel string `bson:"cancerRiskLevel" json:"cancerRiskLevel"`
}

//go:generate go tool mockgen -source=./outbox.go -destination=./test/mock_outbox.go -package test

type Repository interface {
	Create(ctx context.Context, event Event) error
	Initialize(ctx context.Context) error
	// ListPending returns at most limit unpublished events, oldest first
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, id primitive.ObjectID, publishedTime time.Time) error
}

// Publisher delivers events to the notification transport
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
}

// NewEvent creates an Event from a typed payload
func NewEvent(eventType EventType, payload interface{}) (Event, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("error marshaling outbox event payload: %w", err)
	}

	return Event{
		EventType:   eventType,
		CreatedTime: time.Now().UTC(),
		Payload:     bson.Raw(raw),
	}, nil
}
