package chat

import (
	"context"

	"github.com/samber/lo"

	"jan-server/services/chat-api/internal/utils/platformerrors"
)

const (
	msgUserAlreadyMember = "User already in the chat"
	msgUserNotMember     = "User not in the chat"
	msgNoneAreMembers    = "None of the specified users are in the chat"
)

// addSingle connects one user and rejects users that are already members.
func addSingle(ctx context.Context, userID uint) MembershipPlanner {
	return func(members []uint) (MembershipChange, error) {
		if lo.Contains(members, userID) {
			return MembershipChange{}, platformerrors.Validation(ctx, platformerrors.LayerDomain, msgUserAlreadyMember, "chat-add-user-already-member")
		}
		return MembershipChange{Add: []uint{userID}}, nil
	}
}

// addMany replaces the member set with the union of the current members and
// newUsers. The union always keeps existing members, so the effect is additive.
func addMany(newUsers []uint) MembershipPlanner {
	return func(members []uint) (MembershipChange, error) {
		union := lo.Uniq(append(append([]uint{}, members...), newUsers...))
		return replaceWith(members, union), nil
	}
}

// removeSingle disconnects one user and rejects users that are not members.
func removeSingle(ctx context.Context, userID uint) MembershipPlanner {
	return func(members []uint) (MembershipChange, error) {
		if !lo.Contains(members, userID) {
			return MembershipChange{}, platformerrors.Validation(ctx, platformerrors.LayerDomain, msgUserNotMember, "chat-remove-user-not-member")
		}
		return MembershipChange{Remove: []uint{userID}}, nil
	}
}

// removeMany disconnects the members listed in userIDs and fails when none of
// them is a member.
func removeMany(ctx context.Context, userIDs []uint) MembershipPlanner {
	return func(members []uint) (MembershipChange, error) {
		toRemove := lo.Filter(members, func(id uint, _ int) bool {
			return lo.Contains(userIDs, id)
		})
		if len(toRemove) == 0 {
			return MembershipChange{}, platformerrors.Validation(ctx, platformerrors.LayerDomain, msgNoneAreMembers, "chat-remove-users-none-members")
		}
		return MembershipChange{Remove: toRemove}, nil
	}
}

// replaceWith computes the change that turns members into target.
func replaceWith(members, target []uint) MembershipChange {
	return MembershipChange{
		Add:    lo.Without(target, members...),
		Remove: lo.Without(members, target...),
	}
}
