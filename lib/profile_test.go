package lib

import (
	"testing"
	"time"

	shared "blogzone-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileFixture() []*shared.Post {
	alice := shared.Blogger{Name: "Alice", Username: "alice", CreatedAt: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)}
	bob := shared.Blogger{Name: "Bob", Username: "bob", CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}

	return []*shared.Post{
		{
			Id: 1, Title: "Alice's first post", Blogger: alice,
			Comments: []shared.Comment{
				{Id: 10, Content: "nice one", Blogger: bob},
			},
		},
		{
			Id: 2, Title: "Bob's post", Blogger: bob,
			Comments: []shared.Comment{
				{Id: 11, Content: "thanks for sharing", Blogger: alice},
				{Id: 12, Content: "self reply", Blogger: bob},
			},
		},
	}
}

func TestBuildProfileFromPosts(t *testing.T) {
	prof := BuildProfile(profileFixture(), "alice")

	assert.False(t, prof.Unknown)
	assert.Equal(t, "Alice", prof.Name)
	assert.Equal(t, "alice", prof.Username)
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), prof.CreatedAt)

	require.Len(t, prof.Posts, 1)
	assert.Equal(t, 1, prof.Posts[0].Id)

	require.Len(t, prof.Comments, 1)
	assert.Equal(t, 11, prof.Comments[0].Id)
	assert.Equal(t, 2, prof.Comments[0].PostId)
	assert.Equal(t, "Bob's post", prof.Comments[0].PostTitle)
}

func TestBuildProfileCommentsOnly(t *testing.T) {
	carol := shared.Blogger{Name: "Carol", Username: "carol", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	posts := []*shared.Post{
		{
			Id: 1, Title: "someone else's post",
			Blogger: shared.Blogger{Name: "Alice", Username: "alice"},
			Comments: []shared.Comment{
				{Id: 20, Content: "hello from carol", Blogger: carol},
			},
		},
	}

	prof := BuildProfile(posts, "carol")

	assert.False(t, prof.Unknown)
	assert.Equal(t, "Carol", prof.Name)
	assert.Equal(t, "carol", prof.Username)
	assert.Equal(t, carol.CreatedAt, prof.CreatedAt)
	assert.Empty(t, prof.Posts)
	require.Len(t, prof.Comments, 1)
	assert.Equal(t, 20, prof.Comments[0].Id)
}

func TestBuildProfileUnknownUser(t *testing.T) {
	prof := BuildProfile(profileFixture(), "nobody")

	assert.True(t, prof.Unknown)
	assert.Equal(t, "nobody", prof.Name)
	assert.Equal(t, "nobody", prof.Username)
	assert.Empty(t, prof.Posts)
	assert.Empty(t, prof.Comments)
}

func TestBuildProfileDedupes(t *testing.T) {
	alice := shared.Blogger{Name: "Alice", Username: "alice"}
	post := &shared.Post{
		Id: 1, Title: "repeated", Blogger: alice,
		Comments: []shared.Comment{
			{Id: 30, Content: "dup comment", Blogger: alice},
		},
	}

	prof := BuildProfile([]*shared.Post{post, post}, "alice")

	assert.Len(t, prof.Posts, 1)
	assert.Len(t, prof.Comments, 1)
}
