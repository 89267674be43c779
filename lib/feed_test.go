package lib

import (
	"testing"

	shared "blogzone-cli/shared"

	"github.com/stretchr/testify/assert"
)

func feedFixture() []*shared.Post {
	return []*shared.Post{
		{Id: 1, Title: "Gardening 101", Content: "How to grow tomatoes", Blogger: shared.Blogger{Name: "Alice", Username: "alice"}},
		{Id: 2, Title: "My travel diary", Content: "A week in Lisbon", Blogger: shared.Blogger{Name: "Bob", Username: "bob"}},
		{Id: 3, Title: "Tomato soup recipe", Content: "Start with ripe tomatoes", Blogger: shared.Blogger{Name: "Alice", Username: "alice"}},
	}
}

func postIds(posts []*shared.Post) []int {
	ids := make([]int, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.Id)
	}
	return ids
}

func TestFilterPostsEmptyQuery(t *testing.T) {
	posts := feedFixture()

	filtered := FilterPosts(posts, "", SearchFieldTitle)
	assert.Equal(t, postIds(posts), postIds(filtered))

	// a query that trims to empty behaves the same as no query
	filtered = FilterPosts(posts, "   ", SearchFieldContent)
	assert.Equal(t, postIds(posts), postIds(filtered))
}

func TestFilterPostsByField(t *testing.T) {
	posts := feedFixture()

	byTitle := FilterPosts(posts, "tomato", SearchFieldTitle)
	assert.Equal(t, []int{3}, postIds(byTitle))

	byContent := FilterPosts(posts, "tomato", SearchFieldContent)
	assert.Equal(t, []int{1, 3}, postIds(byContent))

	byAuthor := FilterPosts(posts, "ALICE", SearchFieldAuthor)
	assert.Equal(t, []int{1, 3}, postIds(byAuthor))

	noMatch := FilterPosts(posts, "zzz", SearchFieldTitle)
	assert.Empty(t, noMatch)
}

func TestFilterPostsPreservesOrder(t *testing.T) {
	posts := feedFixture()

	filtered := FilterPosts(posts, "a", SearchFieldTitle)
	assert.Equal(t, []int{1, 2, 3}, postIds(filtered))
}

func TestFilterPostsUnknownField(t *testing.T) {
	posts := feedFixture()

	filtered := FilterPosts(posts, "no such text anywhere", SearchField("bogus"))
	assert.Equal(t, postIds(posts), postIds(filtered))
}

func TestFilterPostsUntrimmedQuery(t *testing.T) {
	posts := feedFixture()

	// the untrimmed query is what gets matched, so padding can miss
	filtered := FilterPosts(posts, " tomato ", SearchFieldTitle)
	assert.Empty(t, filtered)
}

func TestDedupePosts(t *testing.T) {
	first := &shared.Post{Id: 1, Title: "first copy"}
	dupe := &shared.Post{Id: 1, Title: "second copy"}
	other := &shared.Post{Id: 2, Title: "other"}

	deduped := DedupePosts([]*shared.Post{first, dupe, other, dupe})

	assert.Equal(t, []int{1, 2}, postIds(deduped))
	assert.Equal(t, "first copy", deduped[0].Title)
}

func TestRemovePost(t *testing.T) {
	posts := feedFixture()

	remaining := RemovePost(posts, 2)
	assert.Equal(t, []int{1, 3}, postIds(remaining))

	remaining = RemovePost(posts, 99)
	assert.Equal(t, []int{1, 2, 3}, postIds(remaining))
}
