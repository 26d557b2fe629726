// Package model defines the gorm models persisted by the clubsite backend.
package model

import "time"

// Role is the sole axis of authorization. There is no per-permission flag on
// users; everything derives from this value.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// ValidRole reports whether r names one of the known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Review states for rows that go through an approval workflow (news, messages).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null"`
	Nickname     string    `json:"nickname"`
	CreatedAt    time.Time `json:"created_at"`
}

type News struct {
	Id      int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title   string    `json:"title" gorm:"not null"`
	Date    time.Time `json:"date"`
	Author  string    `json:"author"`
	Image   string    `json:"image"`
	Summary string    `json:"summary"`
	Content string    `json:"content"`
	Status  string    `json:"status" gorm:"default:'pending';index"`
	UserId  *int      `json:"user_id" gorm:"column:user_id;index"`
}

func (News) TableName() string { return "news" }

type Work struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl" gorm:"column:image_url"`
	Link        string `json:"link"`
	Club        string `json:"club" gorm:"index"`
	Featured    bool   `json:"featured" gorm:"default:false"`
	UserId      *int   `json:"user_id" gorm:"column:user_id;index"`
}

type Member struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;index"`
	Logo string `json:"logo"`
	Link string `json:"link"`
}

type FriendLink struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" gorm:"not null"`
	Url   string `json:"url" gorm:"not null"`
	Logo  string `json:"logo"`
}

type FameMember struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type HistoryEvent struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	DialogData  string `json:"dialog_data" gorm:"column:dialog_data"`
}

func (HistoryEvent) TableName() string { return "history" }

type AdminTerm struct {
	Id          int               `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string            `json:"title" gorm:"not null"`
	Term        string            `json:"term"`
	Description string            `json:"description"`
	Members     []AdminTermMember `json:"members" gorm:"foreignKey:TermId;constraint:OnDelete:CASCADE"`
}

type AdminTermMember struct {
	Id       int    `json:"-" gorm:"primaryKey;autoIncrement"`
	TermId   int    `json:"-" gorm:"column:term_id;index;not null"`
	Name     string `json:"name" gorm:"not null"`
	Position string `json:"position"`
	Image    string `json:"image"`
}

type Message struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Author  string `json:"author" gorm:"not null"`
	Content string `json:"content" gorm:"not null"`
	QQ      string `json:"qq" gorm:"column:qq"`
	Status  string `json:"status" gorm:"default:'pending';index"`
}

type Announcement struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string     `json:"title" gorm:"not null"`
	Content   string     `json:"content"`
	Type      string     `json:"type" gorm:"default:'info'"`
	Enabled   bool       `json:"enabled" gorm:"default:true"`
	Closeable bool       `json:"closeable" gorm:"default:true"`
	StartAt   *time.Time `json:"start_at" gorm:"column:start_at"`
	EndAt     *time.Time `json:"end_at" gorm:"column:end_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Announcement) TableName() string { return "site_announcements" }
