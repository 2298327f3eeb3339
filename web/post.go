package web

import (
	"bytes"
	"image"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"inkwell/db"
	"inkwell/models"
	"inkwell/storage"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const thumbSize = 300

type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"` // group id, empty for none
}

// validate checks the text and resolves the optional group. Field errors
// come back keyed by field name, ready for the form template.
func (f *PostForm) validate() (groupID *uint64, errs map[string]string) {
	errs = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "This field is required."
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			errs["group"] = "Choose a valid group."
			return
		}
		group := models.Group{}
		if db.Instance.First(&group, id).Error != nil {
			errs["group"] = "Choose a valid group."
			return
		}
		groupID = &group.ID
	}
	return
}

// imageUpload sniffs the optional image upload without storing anything.
// An upload that isn't a decodable image yields a field error.
func imageUpload(c *gin.Context) (header *multipart.FileHeader, fieldError string) {
	header, err := c.FormFile("image")
	if err != nil {
		// No file submitted
		return nil, ""
	}
	file, err := header.Open()
	if err != nil {
		return nil, "Upload a valid image."
	}
	defer file.Close()
	if _, _, err = image.DecodeConfig(file); err != nil {
		return nil, "Upload a valid image."
	}
	return header, ""
}

// storeImage persists an already validated upload and its thumbnail.
// Only called once the whole form is clean, so a rejected form never
// leaves files behind in the media store.
func storeImage(header *multipart.FileHeader) (imagePath, thumbPath string, err error) {
	file, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()
	name := uuid.NewString()
	imagePath = "posts/" + name + strings.ToLower(filepath.Ext(header.Filename))
	if _, err = storage.Get().Save(imagePath, file); err != nil {
		return "", "", err
	}
	var thumbBuf bytes.Buffer
	if _, seekErr := file.Seek(0, 0); seekErr == nil {
		if _, thumbErr := utils.CreateThumb(thumbSize, file, &thumbBuf); thumbErr == nil {
			thumbPath = "thumbs/" + name + ".jpg"
			if _, saveErr := storage.Get().Save(thumbPath, &thumbBuf); saveErr != nil {
				thumbPath = ""
			}
		}
	}
	return imagePath, thumbPath, nil
}

func postURL(username string, postID uint64) string {
	return "/" + username + "/" + strconv.FormatUint(postID, 10) + "/"
}

// PostNew renders the create form on GET and creates the post on POST.
func PostNew(c *gin.Context, user *models.User) {
	groups, err := models.GroupList()
	if err != nil {
		ServerError(c)
		return
	}
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "new_post.tmpl", gin.H{
			"groups": groups,
			"form":   PostForm{},
			"errors": map[string]string{},
		})
		return
	}
	form := PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	groupID, errs := form.validate()
	header, imageError := imageUpload(c)
	if imageError != "" {
		errs["image"] = imageError
	}
	if len(errs) > 0 {
		render(c, http.StatusOK, "new_post.tmpl", gin.H{
			"groups": groups,
			"form":   form,
			"errors": errs,
		})
		return
	}
	imagePath, thumbPath := "", ""
	if header != nil {
		if imagePath, thumbPath, err = storeImage(header); err != nil {
			ServerError(c)
			return
		}
	}
	post := models.Post{
		UserID:    user.ID,
		GroupID:   groupID,
		Text:      form.Text,
		ImagePath: imagePath,
		ThumbPath: thumbPath,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func PostDetail(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		PageNotFound(c)
		return
	}
	post, err := models.AuthorPost(author.ID, postID)
	if err != nil {
		PageNotFound(c)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		ServerError(c)
		return
	}
	render(c, http.StatusOK, "post.tmpl", gin.H{
		"author":       author,
		"post":         post,
		"comments":     comments,
		"commentText":  "",
		"commentError": "",
	})
}

// PostEdit mutates text/group/image only. A caller who is not the author
// is silently sent back to the post view, no error surfaced.
func PostEdit(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		PageNotFound(c)
		return
	}
	post, err := models.AuthorPost(author.ID, postID)
	if err != nil {
		PageNotFound(c)
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, postURL(author.Username, post.ID))
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		ServerError(c)
		return
	}
	if c.Request.Method != http.MethodPost {
		form := PostForm{Text: post.Text}
		if post.GroupID != nil {
			form.Group = strconv.FormatUint(*post.GroupID, 10)
		}
		render(c, http.StatusOK, "new_post.tmpl", gin.H{
			"groups": groups,
			"form":   form,
			"errors": map[string]string{},
			"post":   post,
		})
		return
	}
	form := PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	groupID, errs := form.validate()
	header, imageError := imageUpload(c)
	if imageError != "" {
		errs["image"] = imageError
	}
	if len(errs) > 0 {
		render(c, http.StatusOK, "new_post.tmpl", gin.H{
			"groups": groups,
			"form":   form,
			"errors": errs,
			"post":   post,
		})
		return
	}
	imagePath, thumbPath := "", ""
	if header != nil {
		if imagePath, thumbPath, err = storeImage(header); err != nil {
			ServerError(c)
			return
		}
	}
	// ID, author and creation time stay as they are
	oldImagePath, oldThumbPath := post.ImagePath, post.ThumbPath
	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": groupID,
	}
	if imagePath != "" {
		updates["image_path"] = imagePath
		updates["thumb_path"] = thumbPath
	}
	if err := db.Instance.Model(&post).Updates(updates).Error; err != nil {
		ServerError(c)
		return
	}
	// The replaced files have no more references
	if imagePath != "" {
		if oldImagePath != "" {
			_ = storage.Get().Delete(oldImagePath)
		}
		if oldThumbPath != "" {
			_ = storage.Get().Delete(oldThumbPath)
		}
	}
	c.Redirect(http.StatusFound, postURL(author.Username, post.ID))
}
