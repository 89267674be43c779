package lib

import (
	"strings"

	shared "blogzone-cli/shared"
)

type SearchField string

const (
	SearchFieldTitle   SearchField = "title"
	SearchFieldContent SearchField = "content"
	SearchFieldAuthor  SearchField = "author"
)

// FilterPosts returns the ordered subsequence of posts whose selected field
// contains the query as a case-insensitive substring. A query that trims to
// empty returns the input unchanged. An unrecognized field passes every post
// rather than erroring. Matching uses the untrimmed query, same as the
// emptiness check vs. match split in the web client.
func FilterPosts(posts []*shared.Post, query string, field SearchField) []*shared.Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}

	q := strings.ToLower(query)

	filtered := make([]*shared.Post, 0, len(posts))
	for _, post := range posts {
		var haystack string
		switch field {
		case SearchFieldTitle:
			haystack = post.Title
		case SearchFieldContent:
			haystack = post.Content
		case SearchFieldAuthor:
			haystack = post.Blogger.Name
		default:
			filtered = append(filtered, post)
			continue
		}

		if strings.Contains(strings.ToLower(haystack), q) {
			filtered = append(filtered, post)
		}
	}

	return filtered
}

// DedupePosts drops repeated ids, keeping the first occurrence.
func DedupePosts(posts []*shared.Post) []*shared.Post {
	seen := make(map[int]bool, len(posts))
	deduped := make([]*shared.Post, 0, len(posts))

	for _, post := range posts {
		if seen[post.Id] {
			continue
		}
		seen[post.Id] = true
		deduped = append(deduped, post)
	}

	return deduped
}

// RemovePost drops exactly the post with the given id, preserving order.
func RemovePost(posts []*shared.Post, postId int) []*shared.Post {
	filtered := make([]*shared.Post, 0, len(posts))
	for _, post := range posts {
		if post.Id != postId {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
