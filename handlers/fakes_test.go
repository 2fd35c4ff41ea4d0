package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/authorization"
	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	application "github.com/fahim-khandakar/explore-elite-server-side/service"
)

type fakeUserStore struct {
	users []*domain.User
}

func (f *fakeUserStore) Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	user.ID = primitive.NewObjectID()
	stored := *user
	f.users = append(f.users, &stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetAllNonAdmin(ctx context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, user := range f.users {
		if user.Role != domain.Admin {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) GetGuides(ctx context.Context) ([]*domain.User, error) {
	guides := []*domain.User{}
	for _, user := range f.users {
		if user.Role != "" && user.Role != domain.Admin && user.Role != domain.Tourist {
			guides = append(guides, user)
		}
	}
	return guides, nil
}

func (f *fakeUserStore) SetRole(ctx context.Context, id primitive.ObjectID, role domain.UserRole) (*domain.UpdateResult, error) {
	for _, user := range f.users {
		if user.ID == id {
			modified := int64(0)
			if user.Role != role {
				modified = 1
			}
			user.Role = role
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

type fakePackageStore struct {
	packages []*domain.Package
}

func (f *fakePackageStore) Insert(ctx context.Context, tourPackage *domain.Package) (*domain.InsertResult, error) {
	tourPackage.ID = primitive.NewObjectID()
	stored := *tourPackage
	f.packages = append(f.packages, &stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: tourPackage.ID}, nil
}

func (f *fakePackageStore) GetAll(ctx context.Context) ([]*domain.Package, error) {
	packages := []*domain.Package{}
	packages = append(packages, f.packages...)
	return packages, nil
}

func (f *fakePackageStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	for _, tourPackage := range f.packages {
		if tourPackage.ID == id {
			return tourPackage, nil
		}
	}
	return nil, nil
}

func (f *fakePackageStore) GetByType(ctx context.Context, packageType string) ([]*domain.Package, error) {
	packages := []*domain.Package{}
	for _, tourPackage := range f.packages {
		if tourPackage.Type == packageType {
			packages = append(packages, tourPackage)
		}
	}
	return packages, nil
}

type fakeBookingStore struct {
	bookings []*domain.Booking
}

func (f *fakeBookingStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.InsertResult, error) {
	booking.ID = primitive.NewObjectID()
	stored := *booking
	f.bookings = append(f.bookings, &stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (f *fakeBookingStore) GetByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for _, booking := range f.bookings {
		if booking.Email == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (f *fakeBookingStore) GetAssigned(ctx context.Context, guideEmail string) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for _, booking := range f.bookings {
		if booking.Guide.Email == guideEmail && booking.Status != domain.Rejected {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (f *fakeBookingStore) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.UpdateResult, error) {
	for _, booking := range f.bookings {
		if booking.ID == id {
			modified := int64(0)
			if booking.Status != status {
				modified = 1
			}
			booking.Status = status
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

type fakeWishStore struct {
	wishes []*domain.Wish
}

func (f *fakeWishStore) Insert(ctx context.Context, wish *domain.Wish) (*domain.InsertResult, error) {
	wish.ID = primitive.NewObjectID()
	stored := *wish
	f.wishes = append(f.wishes, &stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: wish.ID}, nil
}

func (f *fakeWishStore) GetByUser(ctx context.Context, email string) ([]*domain.Wish, error) {
	wishes := []*domain.Wish{}
	for _, wish := range f.wishes {
		if wish.User == email {
			wishes = append(wishes, wish)
		}
	}
	return wishes, nil
}

func (f *fakeWishStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	for i, wish := range f.wishes {
		if wish.ID == id {
			f.wishes = append(f.wishes[:i], f.wishes[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

type fakeStoryStore struct {
	stories []*domain.Story
}

func (f *fakeStoryStore) Insert(ctx context.Context, story *domain.Story) (*domain.InsertResult, error) {
	story.ID = primitive.NewObjectID()
	stored := *story
	f.stories = append(f.stories, &stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: story.ID}, nil
}

func (f *fakeStoryStore) GetAll(ctx context.Context) ([]*domain.Story, error) {
	stories := []*domain.Story{}
	stories = append(stories, f.stories...)
	return stories, nil
}

func (f *fakeStoryStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	for _, story := range f.stories {
		if story.ID == id {
			return story, nil
		}
	}
	return nil, nil
}

type testEnv struct {
	users    *fakeUserStore
	packages *fakePackageStore
	bookings *fakeBookingStore
	wishes   *fakeWishStore
	stories  *fakeStoryStore
	auth     *authorization.Authorizer
	router   *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	tracer := trace.NewNoopTracerProvider().Tracer("test")

	users := &fakeUserStore{}
	auth, err := authorization.NewAuthorizer([]byte("test-secret"), users, logger, "../rbac_model.conf", "../policy.csv")
	if err != nil {
		t.Fatalf("building authorizer: %v", err)
	}

	env := &testEnv{
		users:    users,
		packages: &fakePackageStore{},
		bookings: &fakeBookingStore{},
		wishes:   &fakeWishStore{},
		stories:  &fakeStoryStore{},
		auth:     auth,
		router:   mux.NewRouter(),
	}

	NewUserHandler(application.NewUserService(env.users), auth, tracer, logger).Init(env.router)
	NewPackageHandler(application.NewPackageService(env.packages), auth, tracer, logger).Init(env.router)
	NewBookingHandler(application.NewBookingService(env.bookings), auth, tracer, logger).Init(env.router)
	NewWishHandler(application.NewWishService(env.wishes), auth, tracer, logger).Init(env.router)
	NewStoryHandler(application.NewStoryService(env.stories), auth, tracer, logger).Init(env.router)

	return env
}

func (env *testEnv) seedUsers(users ...*domain.User) {
	for _, user := range users {
		user.ID = primitive.NewObjectID()
		env.users.users = append(env.users.users, user)
	}
}

func (env *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, err := env.auth.GenerateToken(map[string]interface{}{"email": email})
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

func (env *testEnv) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}
