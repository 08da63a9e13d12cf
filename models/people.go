package models

// Author represents the primary_author table.
type Author struct {
	AuthorID    int    `gorm:"primaryKey;column:author_id" json:"author_id"`
	FName       string `gorm:"column:f_name;not null" json:"f_name"`
	LName       string `gorm:"column:l_name;not null" json:"l_name"`
	Email       string `gorm:"column:email;not null" json:"email"`
	Affiliation string `gorm:"column:affiliation" json:"affiliation"`
}

// Editor represents the editor table.
type Editor struct {
	EditorID int    `gorm:"primaryKey;column:editor_id" json:"editor_id"`
	FName    string `gorm:"column:f_name;not null" json:"f_name"`
	LName    string `gorm:"column:l_name;not null" json:"l_name"`
}

// Reviewer represents the reviewer table.
type Reviewer struct {
	ReviewerID int    `gorm:"primaryKey;column:reviewer_id" json:"reviewer_id"`
	FName      string `gorm:"column:f_name;not null" json:"f_name"`
	LName      string `gorm:"column:l_name;not null" json:"l_name"`
}

// LoginToRole maps the id a user types at login onto the role record it belongs to.
type LoginToRole struct {
	LoginID  int  `gorm:"primaryKey;column:login_id" json:"login_id"`
	RoleID   int  `gorm:"column:role_id;not null" json:"role_id"`
	RoleType Role `gorm:"column:role_type;type:varchar(16);not null" json:"role_type"`
}

// TableName overrides
func (Author) TableName() string {
	return "primary_author"
}

func (Editor) TableName() string {
	return "editor"
}

func (Reviewer) TableName() string {
	return "reviewer"
}

func (LoginToRole) TableName() string {
	return "login_to_role"
}

func (a Author) FullName() string {
	return a.FName + " " + a.LName
}

func (e Editor) FullName() string {
	return e.FName + " " + e.LName
}

func (r Reviewer) FullName() string {
	return r.FName + " " + r.LName
}
