package comment

import "github.com/postline/postline/domain"

// BuildThread attaches each reply to its parent among topLevel, producing
// a view that is never nested deeper than one level. Replies whose parent
// is not in topLevel are omitted from the result: they either belong to a
// parent on another page or sit deeper in the thread, and this view
// carries no "more replies" marker for them. Input order is preserved for
// topLevel and within each parent's reply list.
func BuildThread(topLevel []*domain.Comment, replies []*domain.Comment) []*domain.Comment {
	byID := make(map[int64]*domain.Comment, len(topLevel))
	for _, c := range topLevel {
		c.Replies = []*domain.Comment{}
		byID[c.ID] = c
	}

	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		if parent, ok := byID[*r.ParentID]; ok {
			parent.Replies = append(parent.Replies, r)
		}
	}
	return topLevel
}

// BuildForest turns the flat comment list into a forest of unlimited
// depth. Comments without a parent become roots; a comment whose parent
// is absent from the input is an orphan and is dropped from the output.
// Traversal order of all decides both root order and sibling order.
func BuildForest(all []*domain.Comment) []*domain.Comment {
	byID := make(map[int64]*domain.Comment, len(all))
	for _, c := range all {
		c.Replies = []*domain.Comment{}
		byID[c.ID] = c
	}

	roots := make([]*domain.Comment, 0, len(all))
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return roots
}
