package models

// User is the authenticated professional as returned by the login endpoint.
type User struct {
	ProfessionalsID int    `json:"professionalsId"`
	FullName        string `json:"fullName,omitempty"`
	Email           string `json:"email,omitempty"`
	PhoneNo         string `json:"phoneNo,omitempty"`
	Role            string `json:"role,omitempty"`
}

// Session is the locally persisted login record. Timestamp is unix
// milliseconds at login time and bounds the session together with the
// configured TTL.
type Session struct {
	User                   User   `json:"user"`
	Token                  string `json:"token"`
	Timestamp              int64  `json:"timestamp"`
	ProfessionalsProfileID int    `json:"professionalsProfileId,omitempty"`
}
