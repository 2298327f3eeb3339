package models

import (
	"strconv"

	"gorm.io/gorm"
)

// PostsPerPage is the fixed feed page size.
const PostsPerPage = 10

type Page struct {
	Posts  []Post
	Number int // 1-based
	Total  int // total number of pages, at least 1
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.Total }
func (p *Page) Prev() int     { return p.Number - 1 }
func (p *Page) Next() int     { return p.Number + 1 }

// Paginate slices a posts query into fixed pages, newest first.
// pageParam is the raw "page" query value; anything unparsable or
// out of range clamps to the nearest valid page.
func Paginate(query *gorm.DB, pageParam string) (page Page, err error) {
	var count int64
	if err = query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return
	}
	page.Total = int((count + PostsPerPage - 1) / PostsPerPage)
	if page.Total < 1 {
		page.Total = 1
	}
	page.Number, _ = strconv.Atoi(pageParam)
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Number > page.Total {
		page.Number = page.Total
	}
	err = query.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset((page.Number - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Preload("User").Preload("Group").
		Find(&page.Posts).Error
	return
}
