package lib

import (
	"time"

	shared "blogzone-cli/shared"
)

// ProfileComment is a comment annotated with its parent post for display and
// navigation, since comments only exist embedded in posts.
type ProfileComment struct {
	shared.Comment
	PostId    int
	PostTitle string
}

// Profile is the client-derived public profile of a user. The backend has no
// profile endpoint, so it gets reconstructed by scanning the full post
// collection.
type Profile struct {
	Name      string
	Username  string
	CreatedAt time.Time

	// Unknown is set when the user appears in no post or comment, so the
	// display fields are just the requested username echoed back.
	Unknown bool

	Posts    []*shared.Post
	Comments []ProfileComment
}

// BuildProfile scans posts for everything authored by username. Posts and
// comments are de-duplicated by id, first occurrence wins. Display fields
// come from the first authored post's author record, then the first authored
// comment's, then a placeholder.
func BuildProfile(posts []*shared.Post, username string) *Profile {
	seenPostIds := make(map[int]bool)
	var userPosts []*shared.Post

	for _, post := range posts {
		if post.Blogger.Username == username && !seenPostIds[post.Id] {
			userPosts = append(userPosts, post)
			seenPostIds[post.Id] = true
		}
	}

	seenCommentIds := make(map[int]bool)
	var userComments []ProfileComment

	for _, post := range posts {
		for _, comment := range post.Comments {
			if comment.Blogger.Username == username && !seenCommentIds[comment.Id] {
				userComments = append(userComments, ProfileComment{
					Comment:   comment,
					PostId:    post.Id,
					PostTitle: post.Title,
				})
				seenCommentIds[comment.Id] = true
			}
		}
	}

	profile := &Profile{
		Posts:    userPosts,
		Comments: userComments,
	}

	// post author records are preferred as the more standardized source
	switch {
	case len(userPosts) > 0:
		author := userPosts[0].Blogger
		profile.Name = author.Name
		profile.Username = author.Username
		profile.CreatedAt = author.CreatedAt
	case len(userComments) > 0:
		author := userComments[0].Blogger
		profile.Name = author.Name
		profile.Username = author.Username
		profile.CreatedAt = author.CreatedAt
	default:
		profile.Name = username
		profile.Username = username
		profile.Unknown = true
	}

	return profile
}
