package domain

// ToggleMember flips userID's membership in members: a present id is
// removed, an absent id is appended. The input slice is not mutated and
// the relative order of the remaining members is preserved. Applying the
// toggle twice with the same user returns the original membership.
func ToggleMember(members []string, userID string) []string {
	for i, m := range members {
		if m != userID {
			continue
		}
		out := make([]string, 0, len(members)-1)
		out = append(out, members[:i]...)
		return append(out, members[i+1:]...)
	}

	out := make([]string, 0, len(members)+1)
	out = append(out, members...)
	return append(out, userID)
}
