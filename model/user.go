package model

import "time"

// User is the public profile stored at users/{uid}. Copies of it are
// denormalized into Project.Members and StatusUpdate.Author, so it must
// never grow credential fields.
type User struct {
	UID       string `firestore:"uid" json:"uid"`
	Name      string `firestore:"name" json:"name"`
	Email     string `firestore:"email" json:"email"`
	AvatarURL string `firestore:"avatarUrl" json:"avatarUrl"`
}

// Account holds the credential record at accounts/{uid}. Kept out of User
// so member snapshots embedded in projects never carry the password hash.
type Account struct {
	UID          string    `firestore:"uid"`
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"passwordHash"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
}
