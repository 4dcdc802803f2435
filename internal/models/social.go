package models

// SocialLinksID is the fixed primary key of the singleton row.
const SocialLinksID uint = 1

// SocialLinks is a singleton record holding the site-wide social links.
// The row is created lazily on first write; readers treat an absent row
// as three empty links.
type SocialLinks struct {
	ID       uint `gorm:"primaryKey"`
	Telegram string
	Github   string
	Linkedin string
}
