package services

import (
	"context"
	"regexp"

	"sparkd_server/models"
)

// userIDPattern accepts the handle and email-style identity tokens issued by
// the identity provider.
var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_@.+-]{1,64}$`)

// ActionValidator rejects malformed, self-targeting, or already-recorded
// actions before the gate does any quota or match work. Read-only.
type ActionValidator struct {
	Profiles ProfileStore
	Actions  ActionStore
}

// Validate checks the request and returns the target's profile so later
// stages can reuse it without another read.
func (v *ActionValidator) Validate(ctx context.Context, actorID, targetID, kind string) (*models.UserProfile, error) {
	if kind != models.ActionKindLike && kind != models.ActionKindPass {
		return nil, NewValidationError("unsupported action kind: %q", kind)
	}
	// The actor id arrives from the identity header, so it gets the same
	// syntactic screening as the target; anything outside the pattern would
	// leak into the USER#/ACTION# key scheme.
	if !userIDPattern.MatchString(actorID) {
		return nil, NewValidationError("invalid actor id: %q", actorID)
	}
	if !userIDPattern.MatchString(targetID) {
		return nil, NewValidationError("invalid target id: %q", targetID)
	}
	if actorID == targetID {
		return nil, NewSelfActionError("user %s cannot act on their own profile", actorID)
	}

	profile, err := v.Profiles.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, NewNotFoundError("target profile %s not found", targetID)
	}

	existing, err := v.Actions.GetAction(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewDuplicateActionError("action already recorded for %s -> %s", actorID, targetID)
	}

	return profile, nil
}
