package rolodex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
	"github.com/stretchr/testify/require"
)

// TestContactLifecycle walks a contact through create, read, update, and
// delete against a live server.
func TestContactLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := rolodexsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.Register(ctx, rolodexsdk.RegisterRequest{
		Email:    "carol@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, "carol@example.com", "hunter22")
	require.NoError(t, err)

	created, err := session.CreateContact(ctx, rolodexsdk.ContactRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     "+1 555 0100",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := session.GetContact(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Grace", got.FirstName)

	updated, err := session.UpdateContact(ctx, created.ID, rolodexsdk.ContactRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Phone:     "+1 555 0199",
	})
	require.NoError(t, err)
	require.Equal(t, "+1 555 0199", updated.Phone)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, session.DeleteContact(ctx, created.ID))

	_, err = session.GetContact(ctx, created.ID)
	var apiErr *rolodexsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, rolodexsdk.ErrorCodeNotFound, apiErr.Code)
}

// TestContactListPagination verifies list ordering and paging.
func TestContactListPagination(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := rolodexsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.Register(ctx, rolodexsdk.RegisterRequest{
		Email:    "dave@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, "dave@example.com", "hunter22")
	require.NoError(t, err)

	for i := range 5 {
		_, err := session.CreateContact(ctx, rolodexsdk.ContactRequest{
			FirstName: fmt.Sprintf("Contact%d", i),
		})
		require.NoError(t, err)
	}

	page1, err := session.ListContacts(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1.Contacts, 2)

	page2, err := session.ListContacts(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Contacts, 2)
	require.NotEqual(t, page1.Contacts[0].ID, page2.Contacts[0].ID)

	all, err := session.ListContacts(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all.Contacts, 5)
}

// TestContactsAreOwnerScoped verifies one account can never see or touch
// another account's contacts.
func TestContactsAreOwnerScoped(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := rolodexsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	for _, email := range []string{"owner@example.com", "other@example.com"} {
		_, err := client.Register(ctx, rolodexsdk.RegisterRequest{Email: email, Password: "hunter22"})
		require.NoError(t, err)
	}

	owner, err := client.Login(ctx, "owner@example.com", "hunter22")
	require.NoError(t, err)
	other, err := client.Login(ctx, "other@example.com", "hunter22")
	require.NoError(t, err)

	secret, err := owner.CreateContact(ctx, rolodexsdk.ContactRequest{FirstName: "Secret"})
	require.NoError(t, err)

	// The other account sees it as missing, never as forbidden.
	_, err = other.GetContact(ctx, secret.ID)
	var apiErr *rolodexsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, rolodexsdk.ErrorCodeNotFound, apiErr.Code)

	err = other.DeleteContact(ctx, secret.ID)
	require.Error(t, err)

	list, err := other.ListContacts(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, list.Contacts)

	// Still intact for the owner.
	_, err = owner.GetContact(ctx, secret.ID)
	require.NoError(t, err)
}
