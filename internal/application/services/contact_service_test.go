package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/email"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

type fakeMailer struct {
	sent []email.ContactNotification
	err  error
}

func (f *fakeMailer) SendContactNotification(n email.ContactNotification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func newContactFixture(t *testing.T, mailer email.Service) *ContactService {
	t.Helper()
	repo := persistence.NewMessageRepository(t.TempDir(), store.NewLockManager())
	return NewContactService(repo, mailer, testLogger(t))
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newContactFixture(t, mailer)

	created, err := svc.Submit(&content.Message{
		Name:    "Sara",
		Email:   "sara@example.com",
		Subject: "Tender inquiry",
		Body:    "Please send your prequalification pack.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.False(t, created.Read)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "sara@example.com", mailer.sent[0].Email)
	assert.Equal(t, "Tender inquiry", mailer.sent[0].Subject)
}

func TestSubmit_MailFailureDoesNotFailSubmission(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := newContactFixture(t, mailer)

	created, err := svc.Submit(&content.Message{Name: "A", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)

	stored, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestSubmit_NilMailer(t *testing.T) {
	svc := newContactFixture(t, nil)

	created, err := svc.Submit(&content.Message{Name: "A", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestMarkReadAndDelete(t *testing.T) {
	svc := newContactFixture(t, nil)
	created, err := svc.Submit(&content.Message{Name: "A", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)

	msg, err := svc.MarkRead(created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.True(t, msg.Read)

	msg, err = svc.MarkRead(99, true)
	require.NoError(t, err)
	assert.Nil(t, msg)

	removed, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
