package ports

import "context"

// CascadeEngine removes a hierarchy row together with every row that
// transitively references it, as one atomic unit per call. The storage
// foreign keys do not cascade; this engine owns delete-time integrity.
//
// Each method fails with the level's NotFound error when the target does not
// exist, including when a concurrent cascade got there first.
type CascadeEngine interface {
	DeleteClub(ctx context.Context, id int64) error
	DeletePlayer(ctx context.Context, id int64) error
	DeleteGoal(ctx context.Context, id int64) error
}
