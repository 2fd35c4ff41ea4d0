package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fahim-khandakar/explore-elite-server-side/domain"
)

func TestIssueTokenSignsArbitraryBody(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/jwt", `{"email":"tourist@example.com","name":"Tara"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["token"] == "" {
		t.Fatalf("expected a token in the response")
	}

	// The minted token must open protected routes.
	recorder = env.do(t, http.MethodGet, "/bookings?email=tourist@example.com", "", body["token"])
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected minted token to be accepted, got %d", recorder.Code)
	}
}

func TestRegisterIsIdempotentPerEmail(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/users", `{"email":"tara@example.com","name":"Tara"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var first map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &first); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if first["insertedId"] == nil {
		t.Fatalf("expected an inserted id on first registration")
	}

	recorder = env.do(t, http.MethodPost, "/users", `{"email":"tara@example.com","name":"Tara"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat registration, got %d", recorder.Code)
	}

	var second map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &second); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if second["message"] != "User already exist" {
		t.Fatalf("unexpected message %q", second["message"])
	}
	if second["insertedId"] != nil {
		t.Fatalf("expected null insertedId on repeat registration")
	}
	if len(env.users.users) != 1 {
		t.Fatalf("expected a single stored user, got %d", len(env.users.users))
	}
}

func TestListUsersRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/users", "", "")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "unauthorized access" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestListUsersExcludesAdmins(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []*domain.User{
		{Email: "tourist@example.com"},
		{Email: "guide@example.com", Role: domain.Guide},
		{Email: "admin@example.com", Role: domain.Admin},
	}

	recorder := env.do(t, http.MethodGet, "/users", "", env.token(t, "tourist@example.com"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var users []domain.User
	if err := json.Unmarshal(recorder.Body.Bytes(), &users); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, user := range users {
		if user.Role == domain.Admin {
			t.Fatalf("admin %s leaked into the listing", user.Email)
		}
	}
}

func TestCheckAdminRejectsForeignEmail(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []*domain.User{{Email: "victim@example.com", Role: domain.Admin}}

	recorder := env.do(t, http.MethodGet, "/users/admin/victim@example.com", "", env.token(t, "attacker@example.com"))
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "forbidden access" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestCheckAdminForOwnEmail(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []*domain.User{
		{Email: "admin@example.com", Role: domain.Admin},
		{Email: "tourist@example.com"},
	}

	recorder := env.do(t, http.MethodGet, "/users/admin/admin@example.com", "", env.token(t, "admin@example.com"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !body["admin"] {
		t.Fatalf("expected admin true")
	}

	recorder = env.do(t, http.MethodGet, "/users/admin/tourist@example.com", "", env.token(t, "tourist@example.com"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["admin"] {
		t.Fatalf("expected admin false for tourist")
	}
}

func TestCheckGuideForOwnEmail(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []*domain.User{{Email: "guide@example.com", Role: domain.Guide}}

	recorder := env.do(t, http.MethodGet, "/users/guide/guide@example.com", "", env.token(t, "guide@example.com"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !body["guide"] {
		t.Fatalf("expected guide true")
	}
}

func TestMakeAdminForbiddenForNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	tourist := &domain.User{Email: "tourist@example.com"}
	target := &domain.User{Email: "target@example.com"}
	env.seedUsers(tourist, target)

	recorder := env.do(t, http.MethodPut, "/users/makeAdmin/"+target.ID.Hex(), "", env.token(t, "tourist@example.com"))
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}
	if target.Role != "" {
		t.Fatalf("role mutated despite forbidden response")
	}
}

func TestMakeGuideAppliedByAdmin(t *testing.T) {
	env := newTestEnv(t)
	admin := &domain.User{Email: "admin@example.com", Role: domain.Admin}
	target := &domain.User{Email: "target@example.com"}
	env.seedUsers(admin, target)

	recorder := env.do(t, http.MethodPut, "/users/makeGuide/"+target.ID.Hex(), "", env.token(t, "admin@example.com"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var result domain.UpdateResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Fatalf("unexpected update result %+v", result)
	}
	if target.Role != domain.Guide {
		t.Fatalf("expected target promoted to guide, got %q", target.Role)
	}
}

func TestGuideListingOnlyGuides(t *testing.T) {
	env := newTestEnv(t)
	env.users.users = []*domain.User{
		{Email: "tourist@example.com"},
		{Email: "guide@example.com", Role: domain.Guide},
		{Email: "admin@example.com", Role: domain.Admin},
	}

	recorder := env.do(t, http.MethodGet, "/users/guide", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var guides []domain.User
	if err := json.Unmarshal(recorder.Body.Bytes(), &guides); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(guides) != 1 || guides[0].Email != "guide@example.com" {
		t.Fatalf("unexpected guide listing %+v", guides)
	}
}

func TestGuideDetailsMissReturnsNull(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/guideDetails/65b9a5f1e3a7c2d4b8f01234", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 for a miss, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != "null\n" {
		t.Fatalf("expected null body, got %q", body)
	}
}

func TestLiveness(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != "Explore Elite is running" {
		t.Fatalf("unexpected liveness body %q", recorder.Body.String())
	}
}
