package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/snipx/snipx-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ticketDoc is the persisted shape of a support ticket
type ticketDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Subject     string             `bson:"subject"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Type        string             `bson:"type"`
	Status      string             `bson:"status"`
	Responses   []responseDoc      `bson:"responses"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type responseDoc struct {
	Message    string    `bson:"message"`
	Author     string    `bson:"author"`
	AuthorType string    `bson:"author_type"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d *ticketDoc) toDomain() *domain.Ticket {
	responses := make([]domain.TicketResponse, len(d.Responses))
	for i, r := range d.Responses {
		responses[i] = domain.TicketResponse{
			Message:    r.Message,
			Author:     r.Author,
			AuthorType: r.AuthorType,
			CreatedAt:  r.CreatedAt,
		}
	}
	return &domain.Ticket{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Subject:     d.Subject,
		Description: d.Description,
		Priority:    domain.TicketPriority(d.Priority),
		Type:        d.Type,
		Status:      d.Status,
		Responses:   responses,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// TicketRepository stores support tickets
type TicketRepository struct {
	coll *mongo.Collection
}

// NewTicketRepository creates a ticket repository
func NewTicketRepository(db *DB) *TicketRepository {
	return &TicketRepository{coll: db.db.Collection(ticketsCollection)}
}

// Insert stores a new ticket and returns the generated id
func (r *TicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) (string, error) {
	doc := ticketDoc{
		Name:        ticket.Name,
		Email:       ticket.Email,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Priority:    string(ticket.Priority),
		Type:        ticket.Type,
		Status:      ticket.Status,
		Responses:   []responseDoc{},
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert ticket: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByID looks up a ticket by id. Returns domain.ErrTicketNotFound when
// absent or when the id is malformed.
func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	var doc ticketDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns tickets newest-created-first, optionally filtered by status
func (r *TicketRepository) List(ctx context.Context, status string) ([]domain.Ticket, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ticketDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}

	tickets := make([]domain.Ticket, len(docs))
	for i := range docs {
		tickets[i] = *docs[i].toDomain()
	}
	return tickets, nil
}

// SetStatus updates a ticket's status and bumps updated_at. Returns whether
// a document matched.
func (r *TicketRepository) SetStatus(ctx context.Context, id, status string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to update ticket status: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// PushResponse appends a response to the ticket thread and bumps
// updated_at. Returns whether a document matched.
func (r *TicketRepository) PushResponse(ctx context.Context, id string, resp domain.TicketResponse) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"responses": responseDoc{
			Message:    resp.Message,
			Author:     resp.Author,
			AuthorType: resp.AuthorType,
			CreatedAt:  resp.CreatedAt,
		}},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to push response: %w", err)
	}
	return res.MatchedCount > 0, nil
}
