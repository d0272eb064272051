package domain

import "time"

// Author writes posts and comments on the blog
type Author struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Bio       *string   `gorm:"column:bio;type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Author) TableName() string { return "blog_authors" }

// Category groups posts
type Category struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"column:slug;type:varchar(100);not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string { return "blog_categories" }

// Tag labels posts
type Tag struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(50);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Tag) TableName() string { return "blog_tags" }

// Post is a blog article
type Post struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	Excerpt     string     `gorm:"column:excerpt;type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"column:content;type:text" json:"content"`
	Published   bool       `gorm:"column:published;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	AuthorID    uint64     `gorm:"column:author_id;index" json:"author_id"`
	CategoryID  *uint64    `gorm:"column:category_id;index" json:"category_id,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author   Author    `gorm:"foreignKey:AuthorID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Post) TableName() string { return "blog_posts" }

// PostTag links posts and tags
type PostTag struct {
	PostID uint64 `gorm:"column:post_id;primaryKey" json:"post_id"`
	TagID  uint64 `gorm:"column:tag_id;primaryKey" json:"tag_id"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Tag  Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PostTag) TableName() string { return "blog_post_tags" }

// Comment is a reply to a post, threaded through ParentID
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	PostID    uint64    `gorm:"column:post_id;index" json:"post_id"`
	AuthorID  uint64    `gorm:"column:author_id;index" json:"author_id"`
	ParentID  *uint64   `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Post   Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author Author   `gorm:"foreignKey:AuthorID" json:"-"`
	Parent *Comment `gorm:"foreignKey:ParentID" json:"-"`
}

func (Comment) TableName() string { return "blog_comments" }
