package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"traveleon/internal/models"
)

type fakeUserStore struct {
	users    map[int]models.User
	sessions map[int]models.Session
	nextID   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int]models.User),
		sessions: make(map[int]models.Session),
		nextID:   1,
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return models.User{}, models.ErrUserNotFound
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) UpdateAvatar(_ context.Context, userID int, avatarURL string) error {
	u, ok := f.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Avatar = &avatarURL
	f.users[userID] = u
	return nil
}

func (f *fakeUserStore) SetSession(_ context.Context, userID int, session models.Session) error {
	if _, ok := f.users[userID]; !ok {
		return models.ErrUserNotFound
	}
	session.UserID = userID
	f.sessions[userID] = session
	return nil
}

func (f *fakeUserStore) UserLogOut(_ context.Context, userID int) error {
	delete(f.sessions, userID)
	return nil
}

func (f *fakeUserStore) SetDeviceToken(_ context.Context, _ int, _ string) error { return nil }

func newUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	return &UserService{UserRepo: store, SigningKey: "test-signing-key"}, store
}

func seedUser(t *testing.T, store *fakeUserStore, email, password string, disabled bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user, err := store.CreateUser(context.Background(), models.User{
		Name:     "Amara",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleBuyer,
		Disabled: disabled,
	})
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func TestSignInWrongPassword(t *testing.T) {
	svc, store := newUserService(t)
	seedUser(t, store, "amara@example.com", "correct horse", false)

	tokens, err := svc.SignIn(context.Background(), "amara@example.com", "wrong")
	if !errors.Is(err, models.ErrInvalidPassword) {
		t.Fatalf("got err %v, want ErrInvalidPassword", err)
	}
	if tokens.AccessToken != "" || tokens.RefreshToken != "" {
		t.Error("no identity may be issued on a wrong password")
	}
	if len(store.sessions) != 0 {
		t.Error("no session may be stored on a wrong password")
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("got err %v, want ErrUserNotFound", err)
	}
}

func TestSignInDisabledAccount(t *testing.T) {
	svc, store := newUserService(t)
	seedUser(t, store, "amara@example.com", "correct horse", true)

	_, err := svc.SignIn(context.Background(), "amara@example.com", "correct horse")
	if !errors.Is(err, models.ErrUserDisabled) {
		t.Errorf("got err %v, want ErrUserDisabled", err)
	}
}

func TestSignInMalformedEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.SignIn(context.Background(), "not-an-email", "whatever")
	if !errors.Is(err, models.ErrInvalidEmail) {
		t.Errorf("got err %v, want ErrInvalidEmail", err)
	}
}

func TestSignInIssuesTokensAndSession(t *testing.T) {
	svc, store := newUserService(t)
	user := seedUser(t, store, "amara@example.com", "correct horse", false)

	tokens, err := svc.SignIn(context.Background(), "amara@example.com", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("incomplete tokens: %#v", tokens)
	}

	session, ok := store.sessions[user.ID]
	if !ok {
		t.Fatal("no session stored")
	}
	if session.RefreshToken != tokens.RefreshToken {
		t.Error("stored refresh token differs from the issued one")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session must expire in the future")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, store := newUserService(t)
	seedUser(t, store, "amara@example.com", "correct horse", false)

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Name:     "Other",
		Email:    "amara@example.com",
		Password: "irrelevant",
	})
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("got err %v, want ErrDuplicateEmail", err)
	}
}

func TestSignUpHashesPasswordAndClearsIt(t *testing.T) {
	svc, store := newUserService(t)

	res, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Name:     "Amara",
		Email:    "amara@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Password != "" {
		t.Error("response must not carry the password")
	}
	if res.User.Role != models.RoleBuyer {
		t.Errorf("role = %q, want buyer", res.User.Role)
	}

	stored := store.users[res.User.ID]
	if stored.Password == "correct horse" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}
