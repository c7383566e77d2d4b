package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notekeep/notes-api/internal/core/domain"
	"github.com/notekeep/notes-api/internal/core/ports"
)

const notesCollection = "notes"

// NoteRepository implements ports.NoteRepository on MongoDB. Every query
// filter includes the owner id, so a note belonging to another user is
// indistinguishable from an absent one.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Color     string             `bson:"color"`
	IsPinned  bool               `bson:"is_pinned"`
	Tags      []string           `bson:"tags"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoNote{
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Color:     note.Color,
		IsPinned:  note.IsPinned,
		Tags:      note.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	created := *note
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *NoteRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: "updated_at", Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	return decodeNotes(ctx, cur)
}

func (r *NoteRepository) FindByID(ctx context.Context, ownerID, id string) (*domain.Note, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.coll.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

// Update atomically replaces the supplied fields and bumps updated_at,
// returning the post-update document.
func (r *NoteRepository) Update(ctx context.Context, ownerID, id string, update ports.NoteUpdate) (*domain.Note, error) {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Color != nil {
		set["color"] = *update.Color
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.IsPinned != nil {
		set["is_pinned"] = *update.IsPinned
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mn mongoNote
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id string) error {
	filter, err := ownerFilter(ownerID, id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.coll.FindOneAndDelete(ctx, filter).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// Search runs a case-insensitive substring match over title, content, and
// tags. The query is quoted so user input cannot inject regex syntax.
func (r *NoteRepository) Search(ctx context.Context, ownerID, query string) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"user_id": ownerID,
		"$or": []bson.M{
			{"title": pattern},
			{"content": pattern},
			{"tags": pattern},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return decodeNotes(ctx, cur)
}

// EnsureIndexes creates the owner index every query hits.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_pinned", Value: -1}, {Key: "updated_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// ownerFilter builds the owner-scoped id filter. A malformed id cannot match
// any document, so it is reported as not-found rather than as a client error;
// existence of foreign notes must not leak through error shapes.
func ownerFilter(ownerID, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}
	return bson.M{"_id": oid, "user_id": ownerID}, nil
}

func decodeNotes(ctx context.Context, cur *mongo.Cursor) ([]*domain.Note, error) {
	defer cur.Close(ctx)

	notes := make([]*domain.Note, 0)
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

func (mn *mongoNote) toDomain() *domain.Note {
	tags := mn.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Note{
		ID:        mn.ID.Hex(),
		UserID:    mn.UserID,
		Title:     mn.Title,
		Content:   mn.Content,
		Color:     mn.Color,
		IsPinned:  mn.IsPinned,
		Tags:      tags,
		CreatedAt: mn.CreatedAt,
		UpdatedAt: mn.UpdatedAt,
	}
}
