package models

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRoundTrip(t *testing.T) {
	reader := mustCreateUser(t, "rt-reader")
	author := mustCreateUser(t, "rt-author")

	assert.False(t, FollowExists(reader.ID, author.ID))
	require.NoError(t, FollowCreate(reader.ID, author.ID))
	assert.True(t, FollowExists(reader.ID, author.ID))

	// A second insert hits the composite primary key
	err := FollowCreate(reader.ID, author.ID)
	require.Error(t, err)
	assert.True(t, IsDuplicateEntry(err))

	require.NoError(t, FollowDelete(reader.ID, author.ID))
	assert.False(t, FollowExists(reader.ID, author.ID))

	// Deleting a missing edge is a no-op
	require.NoError(t, FollowDelete(reader.ID, author.ID))
}

func TestFollowedPosts(t *testing.T) {
	reader := mustCreateUser(t, "feed-reader")
	celebrity := mustCreateUser(t, "feed-celebrity")
	stranger := mustCreateUser(t, "feed-stranger")

	followed := mustCreatePost(t, celebrity, "celebrity says hi", nil)
	mustCreatePost(t, stranger, "stranger says hi", nil)
	mustCreatePost(t, reader, "reader says hi", nil)

	// Nothing before the edge exists
	page, err := Paginate(FollowedPosts(reader.ID), "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	require.NoError(t, FollowCreate(reader.ID, celebrity.ID))
	page, err = Paginate(FollowedPosts(reader.ID), "")
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, followed.ID, page.Posts[0].ID)

	// The celebrity's own feed stays empty: no self-follow
	page, err = Paginate(FollowedPosts(celebrity.ID), "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	require.NoError(t, FollowDelete(reader.ID, celebrity.ID))
	page, err = Paginate(FollowedPosts(reader.ID), "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
}

func TestIsDuplicateEntry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1045, Message: "Access denied"}, false},
		{"sqlite unique", errUniqueSqlite{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateEntry(tt.err); got != tt.want {
				t.Errorf("IsDuplicateEntry() = %v, want %v", got, tt.want)
			}
		})
	}
}

type errUniqueSqlite struct{}

func (errUniqueSqlite) Error() string {
	return "UNIQUE constraint failed: follows.user_id, follows.author_id"
}
