package services

// Ownership model: every content row carries the owning user id, denormalized
// from its parent at creation time. Authorization is therefore a single
// comparison against the loaded row, never against a raw request id, and
// never a walk up the tree at check time.
//
// Reads are deliberately unauthenticated and unscoped; only mutations are
// gated.

// requireOwner compares the owner recorded on a loaded row with the acting
// user. The row must already have been loaded (so a missing row surfaces as
// ErrNotFound before this runs, keeping the 404/403 distinction honest).
func requireOwner(ownerID, actingUserID uint64) error {
	if ownerID != actingUserID {
		return ErrDenied
	}
	return nil
}
