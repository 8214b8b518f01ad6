package friend

import (
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockFriendshipRepo struct{ mock.Mock }

func (m *mockFriendshipRepo) Create(f *models.Friendship) error {
	return m.Called(f).Error(0)
}
func (m *mockFriendshipRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}
func (m *mockFriendshipRepo) GetByID(id string) (*models.Friendship, error) {
	args := m.Called(id)
	if f, _ := args.Get(0).(*models.Friendship); f != nil {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFriendshipRepo) GetBetween(userA, userB string) (*models.Friendship, error) {
	args := m.Called(userA, userB)
	if f, _ := args.Get(0).(*models.Friendship); f != nil {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFriendshipRepo) ListForUser(userID string) ([]models.Friendship, error) {
	args := m.Called(userID)
	if fs, _ := args.Get(0).([]models.Friendship); fs != nil {
		return fs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFriendshipRepo) SetStatus(id string, status models.FriendStatus) error {
	return m.Called(id, status).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(u *models.User) error { return m.Called(u).Error(0) }
func (m *mockUserRepo) Update(u *models.User) error { return m.Called(u).Error(0) }
func (m *mockUserRepo) Delete(id string) error      { return m.Called(id).Error(0) }
func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	args := m.Called(tokenHash)
	if u, _ := args.Get(0).(*models.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetManyByID(ids []string) ([]models.User, error) {
	args := m.Called(ids)
	if us, _ := args.Get(0).([]models.User); us != nil {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) SetFields(id string, fields map[string]any) error {
	return m.Called(id, fields).Error(0)
}

// --- SendRequest ---

func TestSendRequest_CreatesPending(t *testing.T) {
	repo := &mockFriendshipRepo{}
	users := &mockUserRepo{}

	users.On("GetByUsername", "bob_k").Return(&models.User{ID: "bob", Username: "bob_k"}, nil)
	repo.On("GetBetween", "alice", "bob").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*models.Friendship")).Return(nil)

	svc := &DefaultFriendService{Repo: repo, Users: users}
	f, err := svc.SendRequest("alice", "bob_k")

	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusPending, f.Status)
	assert.Equal(t, "alice", f.FromID)
	assert.Equal(t, "bob", f.ToID)
}

func TestSendRequest_SelfRejected(t *testing.T) {
	users := &mockUserRepo{}
	users.On("GetByUsername", "alice_w").Return(&models.User{ID: "alice", Username: "alice_w"}, nil)

	svc := &DefaultFriendService{Users: users}
	_, err := svc.SendRequest("alice", "alice_w")
	require.Error(t, err)
}

func TestSendRequest_AlreadyFriends(t *testing.T) {
	repo := &mockFriendshipRepo{}
	users := &mockUserRepo{}

	users.On("GetByUsername", "bob_k").Return(&models.User{ID: "bob"}, nil)
	repo.On("GetBetween", "alice", "bob").Return(&models.Friendship{
		ID: "f1", FromID: "bob", ToID: "alice", Status: models.FriendStatusAccepted,
	}, nil)

	svc := &DefaultFriendService{Repo: repo, Users: users}
	_, err := svc.SendRequest("alice", "bob_k")
	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// --- AcceptRequest / DeclineRequest ---

func TestAcceptRequest_OnlyAddresseeAccepts(t *testing.T) {
	repo := &mockFriendshipRepo{}
	pending := &models.Friendship{ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusPending}
	repo.On("GetByID", "f1").Return(pending, nil)

	svc := &DefaultFriendService{Repo: repo}

	// The sender cannot accept their own request.
	require.Error(t, svc.AcceptRequest("alice", "f1"))

	repo.On("SetStatus", "f1", models.FriendStatusAccepted).Return(nil)
	require.NoError(t, svc.AcceptRequest("bob", "f1"))
	repo.AssertExpectations(t)
}

func TestAcceptRequest_AlreadyAccepted(t *testing.T) {
	repo := &mockFriendshipRepo{}
	repo.On("GetByID", "f1").Return(&models.Friendship{
		ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusAccepted,
	}, nil)

	svc := &DefaultFriendService{Repo: repo}
	require.Error(t, svc.AcceptRequest("bob", "f1"))
}

func TestDeclineRequest_DeletesPending(t *testing.T) {
	repo := &mockFriendshipRepo{}
	repo.On("GetByID", "f1").Return(&models.Friendship{
		ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusPending,
	}, nil)
	repo.On("Delete", "f1").Return(nil)

	svc := &DefaultFriendService{Repo: repo}
	require.NoError(t, svc.DeclineRequest("bob", "f1"))
	repo.AssertExpectations(t)
}

// --- RemoveFriend ---

func TestRemoveFriend_EitherSideMayRemove(t *testing.T) {
	accepted := &models.Friendship{ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusAccepted}

	for _, userID := range []string{"alice", "bob"} {
		repo := &mockFriendshipRepo{}
		repo.On("GetByID", "f1").Return(accepted, nil)
		repo.On("Delete", "f1").Return(nil)

		svc := &DefaultFriendService{Repo: repo}
		require.NoError(t, svc.RemoveFriend(userID, "f1"))
	}
}

func TestRemoveFriend_OutsiderRejected(t *testing.T) {
	repo := &mockFriendshipRepo{}
	repo.On("GetByID", "f1").Return(&models.Friendship{
		ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusAccepted,
	}, nil)

	svc := &DefaultFriendService{Repo: repo}
	require.Error(t, svc.RemoveFriend("carol", "f1"))
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

// --- ListFriends ---

func TestListFriends_AttachesProfilesAndSkipsOrphans(t *testing.T) {
	repo := &mockFriendshipRepo{}
	users := &mockUserRepo{}

	repo.On("ListForUser", "alice").Return([]models.Friendship{
		{ID: "f1", FromID: "alice", ToID: "bob", Status: models.FriendStatusAccepted},
		{ID: "f2", FromID: "carol", ToID: "alice", Status: models.FriendStatusPending},
		{ID: "f3", FromID: "alice", ToID: "deleted", Status: models.FriendStatusAccepted},
	}, nil)
	users.On("GetManyByID", []string{"bob", "carol", "deleted"}).Return([]models.User{
		{ID: "bob", Username: "bob_k"},
		{ID: "carol", Username: "carol_m"},
	}, nil)

	svc := &DefaultFriendService{Repo: repo, Users: users}
	views, err := svc.ListFriends("alice")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "f1", views[0].FriendshipID)
	assert.False(t, views[0].Incoming)
	assert.Equal(t, "f2", views[1].FriendshipID)
	assert.True(t, views[1].Incoming)
}
