package life

import "errors"

// ErrOutOfRange is returned when a coordinate cannot be represented even
// after growing the root to the height cap. In practice this cannot
// happen for any valid int64 pair, since a node at the height cap already
// covers [math.MinInt64, math.MaxInt64] on both axes; it is kept as a
// defensive outcome rather than silently saturating, per the engine's
// error handling design.
var ErrOutOfRange = errors.New("life: coordinate out of range")
