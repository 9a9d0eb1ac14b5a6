package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/secret"
)

var ErrPasswordMismatch = errors.New("new passwords do not match")

// Register prompts for the account fields, creates the account and signs
// the new user in.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &r.FirstName},
		{"Enter last name", &r.LastName},
		{"Enter username", &r.Username},
		{"Enter email", &r.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	pw, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	r.Password = secret.String(pw)

	if _, err := a.api.Register(ctx, r); err != nil {
		return a.report(ctx, "register", err)
	}
	fmt.Fprintln(a.out, "Account created.")

	if err := a.session.Login(ctx, r.Email, r.Password); err != nil {
		return a.report(ctx, "login", err)
	}
	a.welcome()
	return nil
}

// Login prompts for credentials and signs in. On failure the session is
// left as it was and the server's message is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	pw, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, secret.String(pw)); err != nil {
		return a.report(ctx, "login", err)
	}
	a.welcome()
	return nil
}

func (a *App) welcome() {
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Welcome, %s!\n", u.DisplayName())
	}
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the cached profile and what the token says about itself.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.printProfile(u)

	info, err := a.session.TokenInfo(ctx)
	switch {
	case err != nil:
		fmt.Fprintln(a.out, "Token:     none (profile restored from cache)")
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Token:     no expiry")
	case info.Expired(time.Now()):
		fmt.Fprintf(a.out, "Token:     expired at %s, please log in again\n", info.ExpiresAt.Format(time.RFC1123))
	default:
		fmt.Fprintf(a.out, "Token:     valid until %s\n", info.ExpiresAt.Format(time.RFC1123))
	}
	return nil
}

// Profile edits the name, username and bio. Empty answers keep the current
// values.
func (a *App) Profile(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		return nil
	}

	upd := models.ProfileUpdate{}
	fields := []struct {
		prompt  string
		current string
		dst     *string
	}{
		{"First name", u.FirstName, &upd.FirstName},
		{"Last name", u.LastName, &upd.LastName},
		{"Username", u.Username, &upd.Username},
		{"Bio", u.Bio, &upd.Bio},
	}
	for _, f := range fields {
		v, err := getWithDefault(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	updated, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		return a.report(ctx, "update profile", err)
	}
	if err := a.session.UpdateProfile(ctx, updated); err != nil {
		return a.report(ctx, "update profile", err)
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) Password(ctx context.Context) error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer secret.Wipe(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer secret.Wipe(next)

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}
	defer secret.Wipe(confirm)

	if string(next) != string(confirm) {
		return a.report(ctx, "update password", ErrPasswordMismatch)
	}

	if err := a.api.UpdatePassword(ctx, string(current), string(next)); err != nil {
		return a.report(ctx, "update password", err)
	}
	fmt.Fprintln(a.out, "Password updated.")
	return nil
}
