package service

import (
	"context"
	"time"

	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/models"
)

// fakeUserRepo is an in-memory UserRepository keyed by login.
type fakeUserRepo struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := f.users[user.Login]; ok {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	user.UserID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now().UTC()
	f.users[user.Login] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (models.User, error) {
	user, ok := f.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

// fakeRecordRepo is an in-memory RecordRepository. failNext forces the next
// call to return the given error.
type fakeRecordRepo struct {
	envelopes map[string]models.RecordEnvelope
	failNext  error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{envelopes: make(map[string]models.RecordEnvelope)}
}

func (f *fakeRecordRepo) fail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeRecordRepo) ListRecords(_ context.Context, userID int64, collection string) ([]models.RecordEnvelope, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	out := make([]models.RecordEnvelope, 0)
	for _, env := range f.envelopes {
		if env.UserID == userID && env.Collection == collection {
			out = append(out, env)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) GetRecord(_ context.Context, userID int64, collection, id string) (models.RecordEnvelope, error) {
	if err := f.fail(); err != nil {
		return models.RecordEnvelope{}, err
	}
	env, ok := f.envelopes[id]
	if !ok || env.UserID != userID || env.Collection != collection {
		return models.RecordEnvelope{}, store.ErrRecordNotFound
	}
	return env, nil
}

func (f *fakeRecordRepo) CreateRecord(_ context.Context, env models.RecordEnvelope) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.envelopes[env.ID] = env
	return nil
}

func (f *fakeRecordRepo) UpdateRecord(_ context.Context, env models.RecordEnvelope) error {
	if err := f.fail(); err != nil {
		return err
	}
	existing, ok := f.envelopes[env.ID]
	if !ok || existing.UserID != env.UserID || existing.Collection != env.Collection {
		return store.ErrRecordNotFound
	}
	existing.Payload = env.Payload
	existing.UpdatedAt = env.UpdatedAt
	f.envelopes[env.ID] = existing
	return nil
}

func (f *fakeRecordRepo) DeleteRecord(_ context.Context, userID int64, collection, id string) error {
	if err := f.fail(); err != nil {
		return err
	}
	env, ok := f.envelopes[id]
	if ok && env.UserID == userID && env.Collection == collection {
		delete(f.envelopes, id)
	}
	return nil
}

func (f *fakeRecordRepo) CountByCollection(_ context.Context, userID int64) (map[string]int, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, env := range f.envelopes {
		if env.UserID == userID {
			counts[env.Collection]++
		}
	}
	return counts, nil
}
