package authz

import (
	"testing"

	"bizdir/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize_AccountActions(t *testing.T) {
	alice := &entity.User{ID: uuid.New(), Username: "alice"}
	bob := &entity.User{ID: uuid.New(), Username: "bob"}

	for _, action := range []Action{ActionEditProfile, ActionDeleteAccount} {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, Authorize(alice, action, alice).Allowed)

			decision := Authorize(bob, action, alice)
			assert.False(t, decision.Allowed)
			assert.Equal(t, ReasonNotOwner, decision.Reason)
		})
	}
}

func TestAuthorize_BusinessActions(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	stranger := &entity.User{ID: uuid.New()}
	listing := &entity.Business{ID: uuid.New(), OwnerID: owner.ID}

	actions := []Action{
		ActionEditBusiness, ActionDeleteBusiness,
		ActionCreateDeal, ActionEditDeal, ActionDeleteDeal,
	}
	for _, action := range actions {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, Authorize(owner, action, listing).Allowed)

			decision := Authorize(stranger, action, listing)
			assert.False(t, decision.Allowed)
			assert.Equal(t, ReasonNotOwner, decision.Reason)
		})
	}
}

func TestAuthorize_ReviewActions(t *testing.T) {
	author := &entity.User{ID: uuid.New()}
	other := &entity.User{ID: uuid.New()}
	businessID := uuid.New()
	review := &entity.Review{ID: uuid.New(), BusinessID: &businessID, AuthorID: author.ID}

	for _, action := range []Action{ActionEditReview, ActionDeleteReview} {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, Authorize(author, action, review).Allowed)

			decision := Authorize(other, action, review)
			assert.False(t, decision.Allowed)
			assert.Equal(t, ReasonNotOwner, decision.Reason)
		})
	}
}

func TestAuthorize_AnonymousAlwaysDenied(t *testing.T) {
	listing := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	decision := Authorize(nil, ActionEditBusiness, listing)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonLoginRequired, decision.Reason)
}

func TestAuthorize_MissingTargetDenied(t *testing.T) {
	actor := &entity.User{ID: uuid.New()}

	decision := Authorize(actor, ActionDeleteBusiness, nil)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNoTarget, decision.Reason)
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	actor := &entity.User{ID: uuid.New()}

	decision := Authorize(actor, Action("reindex_everything"), actor)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonUnknownAction, decision.Reason)
}

// Ownership is re-evaluated on every call: the same actor/target pair must
// not be influenced by any earlier decision.
func TestAuthorize_StatelessAcrossCalls(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	listing := &entity.Business{ID: uuid.New(), OwnerID: owner.ID}

	assert.True(t, Authorize(owner, ActionEditBusiness, listing).Allowed)

	// Simulate the listing changing hands between calls.
	listing.OwnerID = uuid.New()

	assert.False(t, Authorize(owner, ActionEditBusiness, listing).Allowed)
}
