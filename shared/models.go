package shared

import "time"

// Blogger is the author reference embedded in posts and comments. The
// backend returns it under the capitalized "Blogger" key.
type Blogger struct {
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	Id        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"createdAt"`
	Blogger   Blogger   `json:"Blogger"`
	Comments  []Comment `json:"Comments"`
}

type Comment struct {
	Id        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Blogger   Blogger   `json:"Blogger"`
}

// User is the record returned by the who-am-I endpoint.
type User struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
