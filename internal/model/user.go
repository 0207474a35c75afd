package model

import "time"

// User is a club member account — table users.
// An account starts inactive and becomes active once the emailed OTP is
// verified. OTP and OTPLastGen together form the pending challenge.
type User struct {
	ID              uint       `gorm:"primaryKey"                       json:"id"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FullName        string     `gorm:"type:varchar(255);not null"       json:"full_name"`
	HashedPassword  string     `gorm:"type:varchar(255);not null"       json:"-"`
	IsActive        bool       `gorm:"not null;default:false"           json:"is_active"`
	RFIDKey         *string    `gorm:"column:rfid_key;type:varchar(64);uniqueIndex" json:"rfid_key"`
	OTP             *string    `gorm:"type:varchar(10)"                 json:"-"`
	OTPLastGen      *time.Time `gorm:"column:otp_last_gen"              json:"-"`
	Role            string     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Gender          string     `gorm:"type:varchar(20)"                 json:"gender"`
	Stay            string     `gorm:"type:varchar(20)"                 json:"stay"`
	RegisterNum     string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"register_num"`
	DiscordUsername *string    `gorm:"type:varchar(100);uniqueIndex"    json:"discord_username"`
	PhoneNo         string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone_no"`
	College         string     `gorm:"type:varchar(255)"                json:"college"`
	Dept            string     `gorm:"type:varchar(100)"                json:"dept"`
	JoinYear        int        `json:"join_year"`
	GradYear        int        `json:"grad_year"`
}

// TableName pins the legacy table name.
func (User) TableName() string { return "users" }
