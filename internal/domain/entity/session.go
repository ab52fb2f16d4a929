package entity

import "strings"

// MerchantInfo is the store pointer the API embeds in a merchant's profile.
// It may lag behind the store record it points at.
type MerchantInfo struct {
	StoreID   string `json:"storeId,omitempty"`
	StoreName string `json:"storeName,omitempty"`
}

// Session is the authenticated principal's in-memory identity.
type Session struct {
	ID           string        `json:"_id"`
	Email        string        `json:"email"`
	Name         string        `json:"name,omitempty"`
	Role         Role          `json:"role"`
	MerchantInfo *MerchantInfo `json:"merchantInfo,omitempty"`
}

// IsMerchant reports whether the session belongs to a merchant.
func (s *Session) IsMerchant() bool {
	return s != nil && s.Role == RoleMerchant
}

// StorePointer returns the embedded storeId, or "" when there is none.
func (s *Session) StorePointer() string {
	if s == nil || s.MerchantInfo == nil {
		return ""
	}

	return strings.TrimSpace(s.MerchantInfo.StoreID)
}

// Clone returns a deep copy so snapshots never alias manager state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	cloned := *s
	if s.MerchantInfo != nil {
		info := *s.MerchantInfo
		cloned.MerchantInfo = &info
	}

	return &cloned
}

// Credentials is the client state persisted between runs.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	User         *Session
}

// Empty reports whether nothing usable is stored.
func (c *Credentials) Empty() bool {
	return c == nil || c.AccessToken == ""
}
