package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gatherly/models"
	"gatherly/services/realtime"
	"gatherly/services/tasks"
	"gatherly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before the outing the reminder push fires.
const reminderLead = time.Hour

// CreateGroup creates a group with the creator as its first member.
func (s *DefaultGroupService) CreateGroup(creatorID, name, description string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name must not be empty")
	}

	g := &models.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedBy:   creatorID,
		Members:     []string{creatorID},
	}
	if err := s.Repo.Create(g); err != nil {
		return nil, fmt.Errorf("CreateGroup: %w", err)
	}
	return g, nil
}

// GetGroup returns the group if the requester is a member or invitee.
func (s *DefaultGroupService) GetGroup(groupID, requesterID string) (*models.Group, error) {
	g, err := s.load(groupID)
	if err != nil {
		return nil, err
	}
	if !g.HasMember(requesterID) && !g.HasInvite(requesterID) {
		return nil, fmt.Errorf("group %s not found", groupID)
	}
	return g, nil
}

// ListGroups returns every group the user is a member of.
func (s *DefaultGroupService) ListGroups(userID string) ([]models.Group, error) {
	groups, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("ListGroups: %w", err)
	}
	return groups, nil
}

// DeleteGroup removes the group. Only the creator may delete it.
func (s *DefaultGroupService) DeleteGroup(groupID, requesterID string) error {
	g, err := s.load(groupID)
	if err != nil {
		return err
	}
	if g.CreatedBy != requesterID {
		return fmt.Errorf("only the group creator can delete the group")
	}
	if err := s.Repo.Delete(groupID); err != nil {
		return fmt.Errorf("DeleteGroup: %w", err)
	}
	return nil
}

// InviteFriend invites an accepted friend of the inviter into the group.
func (s *DefaultGroupService) InviteFriend(ctx context.Context, groupID, inviterID, inviteeID string) error {
	g, err := s.load(groupID)
	if err != nil {
		return err
	}
	if !g.HasMember(inviterID) {
		return fmt.Errorf("only members can invite")
	}
	if g.HasMember(inviteeID) {
		return fmt.Errorf("user is already a member")
	}
	if g.HasInvite(inviteeID) {
		return fmt.Errorf("user is already invited")
	}

	friendship, err := s.Friendships.GetBetween(inviterID, inviteeID)
	if err != nil {
		return fmt.Errorf("InviteFriend: %w", err)
	}
	if friendship == nil || friendship.Status != models.FriendStatusAccepted {
		return fmt.Errorf("can only invite accepted friends")
	}

	if err := s.Repo.AddInvite(groupID, inviteeID); err != nil {
		return fmt.Errorf("InviteFriend: %w", err)
	}

	inviter, err := s.Users.GetByID(inviterID)
	if err != nil || inviter == nil {
		return fmt.Errorf("InviteFriend: inviter %s not found", inviterID)
	}
	if err := s.Notifier.NotifyGroupInvitation(ctx, g, inviter, inviteeID); err != nil {
		utils.GetLogger().Warn("failed to deliver group invitation",
			zap.String("groupID", groupID), zap.Error(err))
	}
	return nil
}

// AcceptInvite turns a pending invitation into membership.
func (s *DefaultGroupService) AcceptInvite(groupID, userID string) error {
	g, err := s.load(groupID)
	if err != nil {
		return err
	}
	if !g.HasInvite(userID) {
		return fmt.Errorf("no pending invitation")
	}
	if err := s.Repo.AddMember(groupID, userID); err != nil {
		return fmt.Errorf("AcceptInvite: %w", err)
	}
	s.broadcastGroup(groupID)
	return nil
}

// DeclineInvite drops a pending invitation.
func (s *DefaultGroupService) DeclineInvite(groupID, userID string) error {
	g, err := s.load(groupID)
	if err != nil {
		return err
	}
	if !g.HasInvite(userID) {
		return fmt.Errorf("no pending invitation")
	}
	if err := s.Repo.RemoveInvite(groupID, userID); err != nil {
		return fmt.Errorf("DeclineInvite: %w", err)
	}
	return nil
}

// LeaveGroup removes the caller from the member list.
func (s *DefaultGroupService) LeaveGroup(groupID, userID string) error {
	g, err := s.load(groupID)
	if err != nil {
		return err
	}
	if !g.HasMember(userID) {
		return fmt.Errorf("not a member of this group")
	}
	if err := s.Repo.RemoveMember(groupID, userID); err != nil {
		return fmt.Errorf("LeaveGroup: %w", err)
	}
	s.broadcastGroup(groupID)
	return nil
}

// ListMembers returns public profiles of all group members.
func (s *DefaultGroupService) ListMembers(groupID, requesterID string) ([]map[string]any, error) {
	g, err := s.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	members, err := s.Users.GetManyByID(g.Members)
	if err != nil {
		return nil, fmt.Errorf("ListMembers: %w", err)
	}

	profiles := make([]map[string]any, 0, len(members))
	for i := range members {
		profiles = append(profiles, members[i].PublicProfile())
	}
	return profiles, nil
}

// ScheduleOuting sets the outing time and place, then enqueues a reminder task
// that fires an hour before the outing. Enqueue failure is logged, not fatal:
// the schedule itself is already persisted.
func (s *DefaultGroupService) ScheduleOuting(groupID, requesterID string, when time.Time, spot string) (*models.Group, error) {
	g, err := s.load(groupID)
	if err != nil {
		return nil, err
	}
	if !g.HasMember(requesterID) {
		return nil, fmt.Errorf("only members can schedule the outing")
	}
	if when.Before(time.Now()) {
		return nil, fmt.Errorf("outing time must be in the future")
	}

	fields := map[string]any{"outingTime": when, "outingSpot": spot}
	if err := s.Repo.SetOuting(groupID, fields); err != nil {
		return nil, fmt.Errorf("ScheduleOuting: %w", err)
	}
	g.OutingTime = &when
	g.OutingSpot = spot

	if s.Reminders != nil {
		payload := models.ReminderPayload{
			GroupID:    g.ID,
			GroupName:  g.Name,
			OutingSpot: spot,
			OutingTime: when,
			MemberIDs:  g.Members,
		}
		fireAt := when.Add(-reminderLead)
		if fireAt.Before(time.Now()) {
			fireAt = time.Now()
		}
		task, opts, err := tasks.NewOutingReminderTask(payload, fireAt)
		if err == nil {
			_, err = s.Reminders.Enqueue(task, opts...)
		}
		if err != nil {
			utils.GetLogger().Warn("failed to enqueue outing reminder",
				zap.String("groupID", groupID), zap.Error(err))
		}
	}

	s.broadcastGroup(groupID)
	return g, nil
}

func (s *DefaultGroupService) load(groupID string) (*models.Group, error) {
	g, err := s.Repo.GetByID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	if g == nil {
		return nil, fmt.Errorf("group %s not found", groupID)
	}
	return g, nil
}

func (s *DefaultGroupService) broadcastGroup(groupID string) {
	g, err := s.Repo.GetByID(groupID)
	if err != nil || g == nil {
		return
	}
	s.Events.BroadcastToUsers(g.Members, realtime.Event{
		Type:    realtime.EventGroupUpdate,
		Path:    "groups/" + g.ID,
		Payload: g,
	})
}
