// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import "context"

// DraftRepository keeps wizards between requests.
//
// Drafts expire after a fixed TTL that is refreshed on every Save. Get returns
// a NOT_FOUND error for an absent or expired draft.
type DraftRepository interface {
	Save(ctx context.Context, wizard *Wizard) error
	Get(ctx context.Context, id string) (*Wizard, error)
	Delete(ctx context.Context, id string) error
}
