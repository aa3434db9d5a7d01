package model

import "time"

// Project is the document at projects/{id}. MemberIDs is the authoritative
// membership set used by security rules and the dashboard query; Members is
// the denormalized snapshot kept in step with it on every membership write.
type Project struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	IsShared    bool      `firestore:"isShared" json:"isShared"`
	Members     []User    `firestore:"members" json:"members"`
	MemberIDs   []string  `firestore:"memberIds" json:"memberIds"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasMember reports whether uid is in the authoritative membership set.
func (p Project) HasMember(uid string) bool {
	for _, id := range p.MemberIDs {
		if id == uid {
			return true
		}
	}
	return false
}
