package group

import (
	"context"
	"testing"
	"time"

	"gatherly/models"
	"gatherly/services/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) Create(g *models.Group) error { return m.Called(g).Error(0) }
func (m *mockGroupRepo) Update(g *models.Group) error { return m.Called(g).Error(0) }
func (m *mockGroupRepo) Delete(id string) error       { return m.Called(id).Error(0) }
func (m *mockGroupRepo) GetByID(id string) (*models.Group, error) {
	args := m.Called(id)
	if g, _ := args.Get(0).(*models.Group); g != nil {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) ListForUser(userID string) ([]models.Group, error) {
	args := m.Called(userID)
	if gs, _ := args.Get(0).([]models.Group); gs != nil {
		return gs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) AddInvite(groupID, userID string) error {
	return m.Called(groupID, userID).Error(0)
}
func (m *mockGroupRepo) RemoveInvite(groupID, userID string) error {
	return m.Called(groupID, userID).Error(0)
}
func (m *mockGroupRepo) AddMember(groupID, userID string) error {
	return m.Called(groupID, userID).Error(0)
}
func (m *mockGroupRepo) RemoveMember(groupID, userID string) error {
	return m.Called(groupID, userID).Error(0)
}
func (m *mockGroupRepo) SetOuting(groupID string, fields map[string]any) error {
	return m.Called(groupID, fields).Error(0)
}

type mockFriendshipRepo struct{ mock.Mock }

func (m *mockFriendshipRepo) Create(f *models.Friendship) error { return m.Called(f).Error(0) }
func (m *mockFriendshipRepo) Delete(id string) error            { return m.Called(id).Error(0) }
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

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Feed(userID string) ([]models.Notification, int, error) {
	args := m.Called(userID)
	feed, _ := args.Get(0).([]models.Notification)
	return feed, args.Int(1), args.Error(2)
}
func (m *mockNotifier) MarkRead(userID, notificationID string) error {
	return m.Called(userID, notificationID).Error(0)
}
func (m *mockNotifier) Delete(userID, notificationID string) error {
	return m.Called(userID, notificationID).Error(0)
}
func (m *mockNotifier) NotifyGroupInvitation(ctx context.Context, group *models.Group, inviter *models.User, inviteeID string) error {
	return m.Called(ctx, group, inviter, inviteeID).Error(0)
}
func (m *mockNotifier) NotifyNewMessage(ctx context.Context, group *models.Group, msg *models.Message) error {
	return m.Called(ctx, group, msg).Error(0)
}
func (m *mockNotifier) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	return m.Called(ctx, userID, title, body, data).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) BroadcastToUser(userID string, event realtime.Event) {
	m.Called(userID, event)
}
func (m *mockPublisher) BroadcastToUsers(userIDs []string, event realtime.Event) {
	m.Called(userIDs, event)
}
func (m *mockPublisher) OnlineUserIDs() []string {
	args := m.Called()
	ids, _ := args.Get(0).([]string)
	return ids
}
func (m *mockPublisher) IsOnline(userID string) bool {
	return m.Called(userID).Bool(0)
}

func testGroup() *models.Group {
	return &models.Group{
		ID:        "g1",
		Name:      "Weekend Crew",
		CreatedBy: "alice",
		Members:   []string{"alice", "bob"},
		Invited:   []string{"dave"},
	}
}

// --- CreateGroup ---

func TestCreateGroup_CreatorIsFirstMember(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("Create", mock.AnythingOfType("*models.Group")).Return(nil)

	svc := &DefaultGroupService{Repo: repo}
	g, err := svc.CreateGroup("alice", "  Weekend Crew  ", "saturday plans")

	require.NoError(t, err)
	assert.Equal(t, "Weekend Crew", g.Name)
	assert.Equal(t, []string{"alice"}, g.Members)
	assert.Equal(t, "alice", g.CreatedBy)
}

func TestCreateGroup_EmptyName(t *testing.T) {
	svc := &DefaultGroupService{}
	_, err := svc.CreateGroup("alice", "   ", "")
	require.Error(t, err)
}

// --- DeleteGroup ---

func TestDeleteGroup_CreatorOnly(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("GetByID", "g1").Return(testGroup(), nil)

	svc := &DefaultGroupService{Repo: repo}
	require.Error(t, svc.DeleteGroup("g1", "bob"))

	repo.On("Delete", "g1").Return(nil)
	require.NoError(t, svc.DeleteGroup("g1", "alice"))
}

// --- InviteFriend ---

func TestInviteFriend_RequiresAcceptedFriendship(t *testing.T) {
	repo := &mockGroupRepo{}
	friendships := &mockFriendshipRepo{}

	repo.On("GetByID", "g1").Return(testGroup(), nil)
	friendships.On("GetBetween", "alice", "carol").Return(&models.Friendship{
		ID: "f1", FromID: "alice", ToID: "carol", Status: models.FriendStatusPending,
	}, nil)

	svc := &DefaultGroupService{Repo: repo, Friendships: friendships}
	err := svc.InviteFriend(context.Background(), "g1", "alice", "carol")

	require.Error(t, err)
	repo.AssertNotCalled(t, "AddInvite", mock.Anything, mock.Anything)
}

func TestInviteFriend_HappyPath(t *testing.T) {
	repo := &mockGroupRepo{}
	friendships := &mockFriendshipRepo{}
	users := &mockUserRepo{}
	notifier := &mockNotifier{}

	repo.On("GetByID", "g1").Return(testGroup(), nil)
	friendships.On("GetBetween", "alice", "carol").Return(&models.Friendship{
		ID: "f1", FromID: "alice", ToID: "carol", Status: models.FriendStatusAccepted,
	}, nil)
	repo.On("AddInvite", "g1", "carol").Return(nil)
	users.On("GetByID", "alice").Return(&models.User{ID: "alice", Username: "alice_w"}, nil)
	notifier.On("NotifyGroupInvitation", mock.Anything, mock.Anything, mock.Anything, "carol").Return(nil)

	svc := &DefaultGroupService{Repo: repo, Friendships: friendships, Users: users, Notifier: notifier}
	require.NoError(t, svc.InviteFriend(context.Background(), "g1", "alice", "carol"))

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestInviteFriend_ExistingMemberRejected(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("GetByID", "g1").Return(testGroup(), nil)

	svc := &DefaultGroupService{Repo: repo}
	require.Error(t, svc.InviteFriend(context.Background(), "g1", "alice", "bob"))
}

// --- AcceptInvite / DeclineInvite ---

func TestAcceptInvite_RequiresPendingInvite(t *testing.T) {
	repo := &mockGroupRepo{}
	events := &mockPublisher{}

	repo.On("GetByID", "g1").Return(testGroup(), nil)
	repo.On("AddMember", "g1", "dave").Return(nil)
	events.On("BroadcastToUsers", mock.Anything, mock.Anything).Return()

	svc := &DefaultGroupService{Repo: repo, Events: events}
	require.NoError(t, svc.AcceptInvite("g1", "dave"))
	require.Error(t, svc.AcceptInvite("g1", "carol"), "no invitation for carol")
}

func TestDeclineInvite_RemovesInvite(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("GetByID", "g1").Return(testGroup(), nil)
	repo.On("RemoveInvite", "g1", "dave").Return(nil)

	svc := &DefaultGroupService{Repo: repo}
	require.NoError(t, svc.DeclineInvite("g1", "dave"))
	repo.AssertExpectations(t)
}

// --- ScheduleOuting ---

func TestScheduleOuting_PastTimeRejected(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("GetByID", "g1").Return(testGroup(), nil)

	svc := &DefaultGroupService{Repo: repo}
	_, err := svc.ScheduleOuting("g1", "alice", time.Now().Add(-time.Hour), "the park")
	require.Error(t, err)
}

func TestScheduleOuting_PersistsAndBroadcasts(t *testing.T) {
	repo := &mockGroupRepo{}
	events := &mockPublisher{}

	when := time.Now().Add(48 * time.Hour)
	repo.On("GetByID", "g1").Return(testGroup(), nil)
	repo.On("SetOuting", "g1", mock.Anything).Return(nil)
	events.On("BroadcastToUsers", []string{"alice", "bob"}, mock.AnythingOfType("realtime.Event")).Return()

	svc := &DefaultGroupService{Repo: repo, Events: events}
	g, err := svc.ScheduleOuting("g1", "alice", when, "the park")

	require.NoError(t, err)
	require.NotNil(t, g.OutingTime)
	assert.True(t, g.OutingTime.Equal(when))
	assert.Equal(t, "the park", g.OutingSpot)
	events.AssertExpectations(t)
}

func TestScheduleOuting_NonMemberRejected(t *testing.T) {
	repo := &mockGroupRepo{}
	repo.On("GetByID", "g1").Return(testGroup(), nil)

	svc := &DefaultGroupService{Repo: repo}
	_, err := svc.ScheduleOuting("g1", "carol", time.Now().Add(time.Hour), "the park")
	require.Error(t, err)
}
