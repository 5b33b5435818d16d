// internal/app/store/projectstudies/projectstudystore.go

// Package projectstudystore persists ProjectStudy aggregates in the
// "project_studies" collection.
package projectstudystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/store/subdoc"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c        *mongo.Collection
	comments subdoc.Collection[models.ProjectStudy]
}

func New(db *mongo.Database) *Store {
	c := db.Collection("project_studies")
	return &Store{
		c:        c,
		comments: subdoc.New[models.ProjectStudy](c, "comments"),
	}
}

func notFound(id primitive.ObjectID) error {
	return apperr.NotFoundf("project/study post %s does not exist", id.Hex())
}

// GetByID loads a post by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectStudy, error) {
	var ps models.ProjectStudy
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ps)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding project/study post")
	}
	return &ps, nil
}

// GetByTitle returns the post with the given title, or nil when none
// matches.
func (s *Store) GetByTitle(ctx context.Context, title string) (*models.ProjectStudy, error) {
	var ps models.ProjectStudy
	err := s.c.FindOne(ctx, bson.M{"title": title}).Decode(&ps)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding project/study post by title")
	}
	return &ps, nil
}

// GetByOwnerID returns all of the owner's posts, newest first. An empty
// result is not an error.
func (s *Store) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]models.ProjectStudy, error) {
	opts := options.Find().SetSort(paging.NewestFirst())
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "finding project/study posts by owner")
	}
	defer cur.Close(ctx)

	items := []models.ProjectStudy{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "finding project/study posts by owner")
	}
	return items, nil
}

// ListFilter is the closed set of filter dimensions for post lists.
// Classification and position are independent; zero-valued dimensions
// do not constrain the query.
type ListFilter struct {
	Classification string
	Position       string
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Classification != "" {
		q["classification"] = f.Classification
	}
	if f.Position != "" {
		q["position"] = f.Position
	}
	return q
}

// List returns one page of posts plus the total match count.
func (s *Store) List(ctx context.Context, f ListFilter, p paging.Params) ([]models.ProjectStudy, int64, error) {
	items, total, err := paging.FindPage[models.ProjectStudy](ctx, s.c, f.query(), p)
	if err != nil {
		return nil, 0, apperr.Storef(err, "listing project/study posts")
	}
	return items, total, nil
}

// Create inserts a new post, assigning its id and timestamps.
func (s *Store) Create(ctx context.Context, ps models.ProjectStudy) (models.ProjectStudy, error) {
	ps.ID = primitive.NewObjectID()
	ps.Position = models.NormalizePositions(ps.Position...)
	if ps.Comments == nil {
		ps.Comments = []models.Comment{}
	}

	now := time.Now()
	ps.CreatedAt = now
	ps.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, ps); err != nil {
		return models.ProjectStudy{}, apperr.Storef(err, "creating project/study post")
	}
	return ps, nil
}

// Update holds the fields a post update may change. Nil fields are left
// untouched.
type Update struct {
	NickName          *string
	Name              *string
	Title             *string
	Description       *string
	Classification    *string
	HowContactTitle   *string
	HowContactContent *string
	Process           *string
	Deadline          *time.Time
	Recruits          *string
	RecruitsStatus    *string
	ProfileImageURL   *string
	Position          models.Positions
}

func (u Update) set() bson.M {
	set := bson.M{"updated_at": time.Now()}
	if u.NickName != nil {
		set["nick_name"] = *u.NickName
	}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Classification != nil {
		set["classification"] = *u.Classification
	}
	if u.HowContactTitle != nil {
		set["how_contact_title"] = *u.HowContactTitle
	}
	if u.HowContactContent != nil {
		set["how_contact_content"] = *u.HowContactContent
	}
	if u.Process != nil {
		set["process"] = *u.Process
	}
	if u.Deadline != nil {
		set["deadline"] = *u.Deadline
	}
	if u.Recruits != nil {
		set["recruits"] = *u.Recruits
	}
	if u.RecruitsStatus != nil {
		set["recruits_status"] = *u.RecruitsStatus
	}
	if u.ProfileImageURL != nil {
		set["profile_image_url"] = *u.ProfileImageURL
	}
	if u.Position != nil {
		set["position"] = models.NormalizePositions(u.Position...)
	}
	return set
}

// Update patches the named fields and returns the post-update document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.ProjectStudy, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ps models.ProjectStudy
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": upd.set()}, opts).Decode(&ps)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "updating project/study post")
	}
	return &ps, nil
}

// Delete removes the post and returns the deleted document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.ProjectStudy, error) {
	var ps models.ProjectStudy
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&ps)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "deleting project/study post")
	}
	return &ps, nil
}

// Latest returns the newest posts, most recent first.
func (s *Store) Latest(ctx context.Context, limit int64) ([]models.ProjectStudy, error) {
	opts := options.Find().SetSort(paging.NewestFirst()).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "listing latest posts")
	}
	defer cur.Close(ctx)

	items := []models.ProjectStudy{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "listing latest posts")
	}
	return items, nil
}

// LatestByPosition returns the newest posts carrying the given position
// tag.
func (s *Store) LatestByPosition(ctx context.Context, position string, limit int64) ([]models.ProjectStudy, error) {
	opts := options.Find().SetSort(paging.NewestFirst()).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"position": position}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "listing latest posts by position")
	}
	defer cur.Close(ctx)

	items := []models.ProjectStudy{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "listing latest posts by position")
	}
	return items, nil
}

// DistinctPositions flattens every post's position tags into one
// deduplicated set. Legacy single-string position fields are folded in
// by Distinct the same as array elements.
func (s *Store) DistinctPositions(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "position", bson.M{})
	if err != nil {
		return nil, apperr.Storef(err, "collecting distinct positions")
	}

	positions := make([]string, 0, len(raw))
	for _, v := range raw {
		if p, ok := v.(string); ok && p != "" {
			positions = append(positions, p)
		}
	}
	return models.NormalizePositions(positions...), nil
}

// PushComment appends the comment to the post's comment array and
// returns the updated post.
func (s *Store) PushComment(ctx context.Context, id primitive.ObjectID, c models.Comment) (*models.ProjectStudy, error) {
	c.ID = primitive.NewObjectID()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	ps, err := s.comments.Push(ctx, id, c)
	if errors.Is(err, subdoc.ErrParentNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "adding comment to post")
	}
	return ps, nil
}

// PullComment removes the comment with the given id; pulling an absent
// id is a silent no-op.
func (s *Store) PullComment(ctx context.Context, id, commentID primitive.ObjectID) (*models.ProjectStudy, error) {
	ps, err := s.comments.Pull(ctx, id, commentID)
	if errors.Is(err, subdoc.ErrParentNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "removing comment from post")
	}
	return ps, nil
}

// SetCommentContent replaces the comment's content in place.
func (s *Store) SetCommentContent(ctx context.Context, id, commentID primitive.ObjectID, content string) (*models.ProjectStudy, error) {
	fields := bson.M{"content": content, "updated_at": time.Now()}

	ps, err := s.comments.Set(ctx, id, commentID, fields)
	switch {
	case errors.Is(err, subdoc.ErrParentNotFound):
		return nil, notFound(id)
	case errors.Is(err, subdoc.ErrElementNotFound):
		return nil, apperr.NotFoundf("comment %s does not exist on post %s", commentID.Hex(), id.Hex())
	case err != nil:
		return nil, apperr.Storef(err, "updating comment on post")
	}
	return ps, nil
}
