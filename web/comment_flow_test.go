package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"inkwell/db"
	"inkwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	server := httptest.NewServer(newTestRouter(nil))
	defer server.Close()
	author := newTestClient(t, server)
	authorUser := author.signup("commented")
	commenter := newTestClient(t, server)
	commenter.signup("commenter")

	resp, _ := author.postForm("/new/", url.Values{"text": {"please discuss"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	post := latestPostBy(t, authorUser)
	detailPath := "/commented/" + strconv.FormatUint(post.ID, 10) + "/"

	resp, _ = commenter.postForm(detailPath+"comment/", url.Values{"text": {"great post"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, detailPath, resp.Header.Get("Location"))

	resp, body := commenter.get(detailPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "great post")
	assert.Contains(t, body, "@commenter")
}

func TestAddCommentValidation(t *testing.T) {
	server := httptest.NewServer(newTestRouter(nil))
	defer server.Close()
	client := newTestClient(t, server)
	user := client.signup("strict")

	resp, _ := client.postForm("/new/", url.Values{"text": {"rules are rules"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	post := latestPostBy(t, user)
	commentPath := "/strict/" + strconv.FormatUint(post.ID, 10) + "/comment/"

	// Empty text re-renders the post page with the field error
	resp, body := client.postForm(commentPath, url.Values{"text": {"  "}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")

	// Over the length bound
	resp, body = client.postForm(commentPath, url.Values{
		"text": {strings.Repeat("x", models.CommentMaxLength+1)},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "at most 200 characters")

	var count int64
	db.Instance.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Zero(t, count)

	// Exactly at the bound is fine
	resp, _ = client.postForm(commentPath, url.Values{
		"text": {strings.Repeat("y", models.CommentMaxLength)},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	db.Instance.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddCommentMissingPost(t *testing.T) {
	server := httptest.NewServer(newTestRouter(nil))
	defer server.Close()
	client := newTestClient(t, server)
	client.signup("shouting-into-void")

	resp, _ := client.postForm("/shouting-into-void/424242/comment/", url.Values{"text": {"anyone?"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
