package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/recipebook/internal/client/client"
	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	svc, gw := newService(map[string]string{
		"POST /auth/login": `{"success":true,"data":{"_id":"u1","email":"a@b.c","firstName":"Ann","token":"T"}}`,
	})

	data, err := svc.Login(context.Background(), "  a@b.c ", "secret")
	require.NoError(t, err)
	require.Equal(t, "T", data.Token)
	require.Equal(t, "u1", data.User.ID)
	require.Equal(t, "Ann", data.User.FirstName)

	c := gw.last(t)
	require.Equal(t, "POST", c.Method)
	require.Equal(t, models.Credentials{Email: "a@b.c", Password: "secret"}, c.Body)
}

func TestLogin_Rejected(t *testing.T) {
	svc, _ := newService(map[string]string{
		"POST /auth/login": `{"success":false,"message":"Invalid credentials"}`,
	})

	data, err := svc.Login(context.Background(), "a@b.c", "bad")
	require.Nil(t, data)
	require.ErrorIs(t, err, client.ErrServer)
	require.EqualError(t, err, "Invalid credentials")
}

func TestLogin_RejectedWithoutMessage(t *testing.T) {
	svc, _ := newService(map[string]string{
		"POST /auth/login": `{"success":false}`,
	})

	_, err := svc.Login(context.Background(), "a@b.c", "bad")
	require.ErrorIs(t, err, client.ErrServer)
	require.EqualError(t, err, MsgLoginFailed)
}

func TestMe_NormalizesFavorites(t *testing.T) {
	svc, gw := newService(map[string]string{
		"GET /auth/me": `{"success":true,"data":{"_id":"u1","favoriteRecipes":[{"_id":"r1"},"r2","r1"]}}`,
	})

	u, err := svc.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"r1", "r2"}, u.FavoriteRecipeIDs)
	require.Equal(t, "/auth/me", gw.last(t).Path)
}

func TestRegister(t *testing.T) {
	svc, gw := newService(map[string]string{
		"POST /auth/register": `{"success":true,"data":{"_id":"u9","username":"cook","token":"NEW"}}`,
	})

	data, err := svc.Register(context.Background(), models.Registration{Username: "cook", Email: " c@d.e ", Password: "pw1234"})
	require.NoError(t, err)
	require.Equal(t, "NEW", data.Token)
	require.Equal(t, "cook", data.User.Username)

	body := gw.last(t).Body.(models.Registration)
	require.Equal(t, "c@d.e", body.Email)
}
