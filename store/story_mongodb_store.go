package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

const STORIES_COLLECTION = "stories"

type StoryMongoDBStore struct {
	stories *mongo.Collection
	tracer  trace.Tracer
}

func NewStoryMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.StoryStore {
	stories := client.Database(DATABASE).Collection(STORIES_COLLECTION)
	return &StoryMongoDBStore{
		stories: stories,
		tracer:  tracer,
	}
}

func (store *StoryMongoDBStore) Insert(ctx context.Context, story *domain.Story) (*domain.InsertResult, error) {
	ctx, span := store.tracer.Start(ctx, "StoryStore.Insert")
	defer span.End()

	story.ID = primitive.NewObjectID()
	result, err := store.stories.InsertOne(ctx, story)
	if err != nil {
		return nil, err
	}

	return &domain.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (store *StoryMongoDBStore) GetAll(ctx context.Context) ([]*domain.Story, error) {
	ctx, span := store.tracer.Start(ctx, "StoryStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	cursor, err := store.stories.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []*domain.Story{}
	for cursor.Next(ctx) {
		var story domain.Story
		if err := cursor.Decode(&story); err != nil {
			return nil, err
		}
		stories = append(stories, &story)
	}
	return stories, cursor.Err()
}

func (store *StoryMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	ctx, span := store.tracer.Start(ctx, "StoryStore.Get")
	defer span.End()

	filter := bson.M{"_id": id}
	result := store.stories.FindOne(ctx, filter)

	var story domain.Story
	if err := result.Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &story, nil
}
