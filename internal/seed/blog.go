package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/starterkit/render-starter/internal/domain"
	"gorm.io/gorm"
)

type authorDef struct {
	Email string
	Name  string
	Bio   string
}

type postDef struct {
	Slug      string
	Title     string
	Excerpt   string
	Content   string
	Published bool
	Author    string
	Category  string
	Tags      []string
}

type commentDef struct {
	ID       uint64
	Post     string
	Author   string
	ParentID uint64
	Content  string
}

var blogAuthors = []authorDef{
	{Email: "alice@example.com", Name: "Alice Johnson", Bio: "Backend engineer writing about services and databases."},
	{Email: "bob@example.com", Name: "Bob Smith", Bio: "Frontend developer and occasional DevOps tinkerer."},
	{Email: "carol@example.com", Name: "Carol White", Bio: "Technical writer."},
}

var blogCategories = []struct{ Slug, Name, Description string }{
	{"technology", "Technology", "Software, tools and infrastructure"},
	{"tutorials", "Tutorials", "Step-by-step guides"},
	{"lifestyle", "Lifestyle", "Life as a developer"},
}

var blogTags = []struct{ Slug, Name string }{
	{"go", "Go"},
	{"web", "Web"},
	{"databases", "Databases"},
	{"deployment", "Deployment"},
}

var blogPosts = []postDef{
	{
		Slug:      "getting-started-with-render",
		Title:     "Getting Started with Render",
		Excerpt:   "Deploy a web service in minutes.",
		Content:   "Render builds and deploys your service straight from the repository. Add a health check path and you are done.",
		Published: true,
		Author:    "alice@example.com",
		Category:  "tutorials",
		Tags:      []string{"deployment", "web"},
	},
	{
		Slug:      "idempotent-database-seeding",
		Title:     "Idempotent Database Seeding",
		Excerpt:   "Upserts keep reference data stable across deploys.",
		Content:   "Key every seeded row by a natural unique key and rerunning the seed becomes a no-op.",
		Published: true,
		Author:    "alice@example.com",
		Category:  "technology",
		Tags:      []string{"databases", "go"},
	},
	{
		Slug:     "working-remotely",
		Title:    "Working Remotely",
		Excerpt:  "Notes from three years of remote work.",
		Content:  "Draft.",
		Author:   "bob@example.com",
		Category: "lifestyle",
	},
}

var blogComments = []commentDef{
	{ID: 1, Post: "getting-started-with-render", Author: "bob@example.com", Content: "This worked on the first try."},
	{ID: 2, Post: "getting-started-with-render", Author: "alice@example.com", ParentID: 1, Content: "Glad to hear it!"},
	{ID: 3, Post: "getting-started-with-render", Author: "carol@example.com", ParentID: 2, Content: "Same here, thanks both."},
	{ID: 4, Post: "idempotent-database-seeding", Author: "carol@example.com", Content: "What about deleting rows that are no longer seeded?"},
}

// BlogSeeder seeds authors, categories, tags, posts and comments of the blog schema
type BlogSeeder struct {
	now func() time.Time
}

// NewBlogSeeder creates a BlogSeeder
func NewBlogSeeder() *BlogSeeder {
	return &BlogSeeder{now: time.Now}
}

func (s *BlogSeeder) Name() string { return "blog" }

func (s *BlogSeeder) Seed(ctx context.Context, db *gorm.DB) error {
	authors := make(map[string]*domain.Author, len(blogAuthors))
	for _, def := range blogAuthors {
		bio := def.Bio
		author := &domain.Author{Email: def.Email, Name: def.Name, Bio: &bio}
		if err := Upsert(ctx, db, author, map[string]interface{}{"email": def.Email}, "name", "bio"); err != nil {
			return fmt.Errorf("author %s: %w", def.Email, err)
		}
		authors[def.Email] = author
	}

	categories := make(map[string]*domain.Category, len(blogCategories))
	for _, def := range blogCategories {
		desc := def.Description
		category := &domain.Category{Slug: def.Slug, Name: def.Name, Description: &desc}
		if err := Upsert(ctx, db, category, map[string]interface{}{"slug": def.Slug}, "name", "description"); err != nil {
			return fmt.Errorf("category %s: %w", def.Slug, err)
		}
		categories[def.Slug] = category
	}

	tags := make(map[string]*domain.Tag, len(blogTags))
	for _, def := range blogTags {
		tag := &domain.Tag{Slug: def.Slug, Name: def.Name}
		if err := Upsert(ctx, db, tag, map[string]interface{}{"slug": def.Slug}, "name"); err != nil {
			return fmt.Errorf("tag %s: %w", def.Slug, err)
		}
		tags[def.Slug] = tag
	}

	posts := make(map[string]*domain.Post, len(blogPosts))
	for _, def := range blogPosts {
		post, err := s.seedPost(ctx, db, def, authors, categories, tags)
		if err != nil {
			return fmt.Errorf("post %s: %w", def.Slug, err)
		}
		posts[def.Slug] = post
	}

	// comments are ordered so that parents exist before replies
	for _, def := range blogComments {
		comment := &domain.Comment{
			ID:       def.ID,
			PostID:   posts[def.Post].ID,
			AuthorID: authors[def.Author].ID,
			Content:  def.Content,
		}
		if def.ParentID != 0 {
			parent := def.ParentID
			comment.ParentID = &parent
		}
		if err := Upsert(ctx, db, comment, map[string]interface{}{"id": def.ID}, "post_id", "author_id", "parent_id", "content"); err != nil {
			return fmt.Errorf("comment %d: %w", def.ID, err)
		}
	}
	return nil
}

func (s *BlogSeeder) seedPost(ctx context.Context, db *gorm.DB, def postDef,
	authors map[string]*domain.Author, categories map[string]*domain.Category, tags map[string]*domain.Tag) (*domain.Post, error) {
	author, ok := authors[def.Author]
	if !ok {
		return nil, fmt.Errorf("unknown author %s", def.Author)
	}

	post := &domain.Post{
		Slug:      def.Slug,
		Title:     def.Title,
		Excerpt:   def.Excerpt,
		Content:   def.Content,
		Published: def.Published,
		AuthorID:  author.ID,
	}
	if category, ok := categories[def.Category]; ok {
		post.CategoryID = &category.ID
	}

	update := []string{"title", "excerpt", "content", "published", "author_id", "category_id"}
	if def.Published {
		now := s.now()
		post.PublishedAt = &now
	}
	// published_at is only written on insert so reruns keep the original date
	if err := Upsert(ctx, db, post, map[string]interface{}{"slug": def.Slug}, update...); err != nil {
		return nil, err
	}

	for _, slug := range def.Tags {
		tag, ok := tags[slug]
		if !ok {
			return nil, fmt.Errorf("unknown tag %s", slug)
		}
		if err := Link(ctx, db, &domain.PostTag{PostID: post.ID, TagID: tag.ID}); err != nil {
			return nil, fmt.Errorf("tag %s: %w", slug, err)
		}
	}
	return post, nil
}
