package service

import (
	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
)

// PostService manages blog-style posts.
type PostService struct {
	posts *datastore.Manager[model.Post, schema.Post]
}

// NewPostService creates a PostService on the given session.
func NewPostService(db *gorm.DB) *PostService {
	return &PostService{posts: postManager(db)}
}

func (s *PostService) Post(id int64) (*schema.Post, error) { return s.posts.GetItem(id) }
func (s *PostService) Posts() ([]schema.Post, error)       { return s.posts.GetItems() }

func (s *PostService) SearchPosts(q string) ([]schema.Post, error) {
	return s.posts.SearchItems(q)
}

func (s *PostService) AddPost(p schema.Post) (*schema.Post, error) {
	rec := model.Post{
		UserID:      p.UserID,
		Title:       p.Title,
		Content:     p.Content,
		Description: p.Description,
	}
	return s.posts.AddItem(&rec)
}

func (s *PostService) UpdatePost(id int64, p schema.Post) (*schema.Post, error) {
	return s.posts.UpdateItem(id, p)
}

func (s *PostService) DeletePost(id int64) bool { return s.posts.DeleteItem(id) }
