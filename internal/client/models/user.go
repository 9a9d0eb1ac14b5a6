package models

import (
	"encoding/json"
	"slices"

	"github.com/tidwall/gjson"
)

// UserProfile is the signed-in user as reported by /auth/me. Favorite
// recipes are always held as bare ids, whatever shape the server sent.
type UserProfile struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Username          string   `json:"username"`
	Image             string   `json:"image"`
	Bio               string   `json:"bio"`
	Role              string   `json:"role"`
	FavoriteRecipeIDs []string `json:"favoriteRecipes"`
}

func (u *UserProfile) UnmarshalJSON(b []byte) error {
	type plain UserProfile
	var aux struct {
		plain
		MongoID   string          `json:"_id"`
		Favorites json.RawMessage `json:"favoriteRecipes"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*u = UserProfile(aux.plain)
	if u.ID == "" {
		u.ID = aux.MongoID
	}
	u.FavoriteRecipeIDs = NormalizeFavoriteIDs(aux.Favorites)
	return nil
}

// Clone returns a deep copy.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	c.FavoriteRecipeIDs = slices.Clone(u.FavoriteRecipeIDs)
	return &c
}

func (u *UserProfile) IsFavorite(recipeID string) bool {
	return u != nil && slices.Contains(u.FavoriteRecipeIDs, recipeID)
}

// DisplayName prefers "First Last", then username, then email.
func (u *UserProfile) DisplayName() string {
	switch {
	case u.FirstName != "" || u.LastName != "":
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}
		return u.FirstName + " " + u.LastName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// LoginData is the payload of POST /auth/login: the basic user fields plus
// the bearer token.
type LoginData struct {
	Token string
	User  UserProfile
}

func (l *LoginData) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &l.User); err != nil {
		return err
	}
	l.Token = gjson.GetBytes(b, "token").String()
	return nil
}

// ProfileUpdate is the body of PUT /users/profile.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
}

// PasswordUpdate is the body of PUT /users/password.
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// FavoritesData is the payload of the favorite add/remove endpoints.
type FavoritesData struct {
	FavoriteRecipes json.RawMessage `json:"favoriteRecipes"`
}
