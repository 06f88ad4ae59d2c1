package entity

// DeliberationSettings gates whether non-privileged voters may view and vote
// on candidates. Single record per deliberation cycle.
type DeliberationSettings struct {
	Open    bool
	Version int
}
