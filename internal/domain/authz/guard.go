// Package authz holds the ownership guard: a stateless pre-condition gate
// every mutating use case runs after identity resolution and before touching
// the store. Decisions are computed fresh on each call and never cached.
package authz

import (
	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
)

// Action enumerates the mutations the guard knows how to authorize.
type Action string

const (
	ActionEditProfile    Action = "edit_profile"
	ActionDeleteAccount  Action = "delete_account"
	ActionEditBusiness   Action = "edit_business"
	ActionDeleteBusiness Action = "delete_business"
	ActionEditReview     Action = "edit_review"
	ActionDeleteReview   Action = "delete_review"
	ActionCreateDeal     Action = "create_deal"
	ActionEditDeal       Action = "edit_deal"
	ActionDeleteDeal     Action = "delete_deal"
)

// Target is any entity that can name the single identity allowed to mutate
// it: the account itself (User), a listing's owner (Business), or a review's
// author (Review). Deal actions pass the deal's resolved listing, not the
// deal row, because deals are owned through their listing.
type Target interface {
	OwnedBy() uuid.UUID
}

// Decision is the outcome of an authorization check. Reason is only set on
// denial and is meant to be surfaced to the caller, never swallowed.
type Decision struct {
	Allowed bool
	Reason  string
}

// Deny reasons surfaced to callers.
const (
	ReasonLoginRequired = "login required"
	ReasonNotOwner      = "not owner"
	ReasonNoTarget      = "no target"
	ReasonUnknownAction = "unknown action"
)

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether actor may perform action on target. An absent
// (nil) actor is always denied, as is any action the guard does not know.
// Every known rule reduces to an identity match between the actor and the
// target's owner; the action documents what was attempted and keeps unknown
// mutations denied by default.
func Authorize(actor *entity.User, action Action, target Target) Decision {
	if actor == nil {
		return deny(ReasonLoginRequired)
	}
	if target == nil {
		return deny(ReasonNoTarget)
	}

	switch action {
	case ActionEditProfile, ActionDeleteAccount,
		ActionEditBusiness, ActionDeleteBusiness,
		ActionEditReview, ActionDeleteReview,
		ActionCreateDeal, ActionEditDeal, ActionDeleteDeal:
		if actor.ID != target.OwnedBy() {
			return deny(ReasonNotOwner)
		}

		return allow
	default:
		return deny(ReasonUnknownAction)
	}
}
